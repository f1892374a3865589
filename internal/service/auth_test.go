package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/cnab-ledger/internal/domain"
	domainmocks "github.com/avc/cnab-ledger/internal/domain/mocks"
	"github.com/avc/cnab-ledger/internal/repository/postgres"
	"github.com/avc/cnab-ledger/internal/utils/jwt"
	passwordmocks "github.com/avc/cnab-ledger/internal/utils/password/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, jwtManager, AuthServiceConfig{MinPasswordLength: 8})
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		login := "testuser"
		pwd := "password123"
		passwordHash := "hashed_password"
		user := &domain.User{ID: 1, Login: login, PasswordHash: passwordHash}

		mockHasher.EXPECT().Hash(pwd).Return(passwordHash, nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, login, passwordHash).Return(user, nil).Once()

		token, err := svc.Register(ctx, login, pwd)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Empty login", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "password123")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Password too short", func(t *testing.T) {
		_, err := svc.Register(ctx, "testuser", "short")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("User already exists", func(t *testing.T) {
		login := "existing"
		pwd := "password123"

		mockHasher.EXPECT().Hash(pwd).Return("hash", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, login, "hash").Return(nil, postgres.ErrUserExists).Once()

		_, err := svc.Register(ctx, login, pwd)
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("Repository error", func(t *testing.T) {
		login := "testuser"
		pwd := "password123"
		repoErr := errors.New("connection lost")

		mockHasher.EXPECT().Hash(pwd).Return("hash", nil).Once()
		mockUserRepo.EXPECT().CreateUser(mock.Anything, login, "hash").Return(nil, repoErr).Once()

		_, err := svc.Register(ctx, login, pwd)
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestAuthService_Login(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, jwtManager, AuthServiceConfig{MinPasswordLength: 8})
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		login := "testuser"
		pwd := "password123"
		user := &domain.User{ID: 1, Login: login, PasswordHash: "stored_hash"}

		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, login).Return(user, nil).Once()
		mockHasher.EXPECT().Check("stored_hash", pwd).Return(nil).Once()

		token, err := svc.Login(ctx, login, pwd)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		userID, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("Empty credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Login(ctx, "testuser", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "ghost").Return(nil, postgres.ErrUserNotFound).Once()

		_, err := svc.Login(ctx, "ghost", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		user := &domain.User{ID: 1, Login: "testuser", PasswordHash: "stored_hash"}

		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "testuser").Return(user, nil).Once()
		mockHasher.EXPECT().Check("stored_hash", "wrongpass").Return(errors.New("password does not match")).Once()

		_, err := svc.Login(ctx, "testuser", "wrongpass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Repository error", func(t *testing.T) {
		repoErr := errors.New("connection lost")
		mockUserRepo.EXPECT().GetUserByLogin(mock.Anything, "testuser").Return(nil, repoErr).Once()

		_, err := svc.Login(ctx, "testuser", "password123")
		assert.ErrorIs(t, err, repoErr)
	})
}
