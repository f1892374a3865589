package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/cnab-ledger/internal/domain"
	"github.com/avc/cnab-ledger/internal/repository/postgres"
	"github.com/avc/cnab-ledger/internal/utils/jwt"
	"github.com/avc/cnab-ledger/internal/utils/password"
)

// AuthServiceConfig содержит настройки аутентификации
type AuthServiceConfig struct {
	MinPasswordLength int
}

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo   domain.UserRepository
	hasher     password.Hasher
	jwtManager *jwt.Manager
	config     AuthServiceConfig
}

// NewAuthService создает новый AuthService
func NewAuthService(userRepo domain.UserRepository, hasher password.Hasher, jwtManager *jwt.Manager, config AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtManager: jwtManager,
		config:     config,
	}
}

// Register регистрирует пользователя и возвращает JWT токен
func (s *AuthService) Register(ctx context.Context, login, pass string) (string, error) {
	if login == "" || len(pass) < s.config.MinPasswordLength {
		return "", ErrInvalidInput
	}

	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(ctx, login, hash)
	if err != nil {
		if errors.Is(err, postgres.ErrUserExists) {
			return "", ErrUserExists
		}
		return "", fmt.Errorf("auth service: failed to create user %q: %w", login, err)
	}

	token, err := s.jwtManager.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token: %w", err)
	}

	return token, nil
}

// Login аутентифицирует пользователя и возвращает JWT токен
func (s *AuthService) Login(ctx context.Context, login, pass string) (string, error) {
	if login == "" || pass == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to get user %q: %w", login, err)
	}

	if err := s.hasher.Check(user.PasswordHash, pass); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token: %w", err)
	}

	return token, nil
}
