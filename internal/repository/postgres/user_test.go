package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "created_at"}).
			AddRow(int64(1), "operator", "hash", time.Now())

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("operator", "hash").
			WillReturnRows(rows)

		user, err := repo.CreateUser(ctx, "operator", "hash")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "operator", user.Login)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate login", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("operator", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.CreateUser(ctx, "operator", "hash")
		assert.ErrorIs(t, err, ErrUserExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByLogin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "created_at"}).
			AddRow(int64(1), "operator", "hash", time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE login`).
			WithArgs("operator").
			WillReturnRows(rows)

		user, err := repo.GetUserByLogin(ctx, "operator")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE login`).
			WithArgs("ghost").
			WillReturnRows(pgxmock.NewRows([]string{"id", "login", "password_hash", "created_at"}))

		_, err := repo.GetUserByLogin(ctx, "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
