package service

import "errors"

// Ошибки аутентификации и ввода
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Ошибки файлов
var (
	ErrFileNotFound = errors.New("file not found")
	ErrFileBusy     = errors.New("file is being processed by another worker")
	ErrEmptyFile    = errors.New("file is empty")
)
