package postgres

import "errors"

// Ошибки пользователей
var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// Ошибки файлов
var (
	ErrFileNotFound            = errors.New("file not found")
	ErrInvalidStatusTransition = errors.New("invalid file status transition")
)

// Ошибки магазинов и сверки
var (
	ErrStoreNotFound       = errors.New("store not found")
	ErrBatchAlreadyApplied = errors.New("transactions already applied for this file")
)
