package domain

import "errors"

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Ошибки файлов
var (
	ErrFileNotFound           = errors.New("file not found")
	ErrFileBusy               = errors.New("file is being processed by another worker")
	ErrUnknownFileStatus      = errors.New("unknown file status")
	ErrInvalidStatusTransition = errors.New("invalid file status transition")
)

// Ошибки магазинов и сверки
var (
	ErrStoreNotFound       = errors.New("store not found")
	ErrBatchAlreadyApplied = errors.New("transactions already applied for this file")
)
