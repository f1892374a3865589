package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/cnab-ledger/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBatch(store *domain.Store, amounts ...int64) domain.StoreBatch {
	batch := domain.StoreBatch{Store: store}
	for _, a := range amounts {
		signed, _ := domain.TypeDebit.SignedAmount(a)
		batch.Transactions = append(batch.Transactions, &domain.Transaction{
			Type:              domain.TypeDebit,
			AmountCents:       a,
			SignedAmountCents: signed,
			OccurredOn:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			OccurredAt:        "10:30:00",
			PayerDocument:     "12345678901",
			CardNumber:        "123456789012",
		})
	}
	return batch
}

func TestTransactionRepository_CountByFileID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		fileID := int64(7)

		rows := pgxmock.NewRows([]string{"count"}).AddRow(int64(3))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions WHERE file_id`).
			WithArgs(fileID).
			WillReturnRows(rows)

		count, err := repo.CountByFileID(ctx, fileID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions WHERE file_id`).
			WithArgs(int64(7)).
			WillReturnError(errors.New("query error"))

		_, err := repo.CountByFileID(ctx, int64(7))
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionRepository_ApplyBatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepository(mock)
	ctx := context.Background()
	fileID := int64(1)

	t.Run("Success - new store", func(t *testing.T) {
		store := &domain.Store{OwnerName: "OWNER NAME", Name: "STORE MAIN"}
		batch := testBatch(store, 12345, 5000)

		mock.ExpectBegin()

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(fileID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions WHERE file_id`).
			WithArgs(fileID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

		mock.ExpectQuery(`INSERT INTO stores`).
			WithArgs("OWNER NAME", "STORE MAIN").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))

		for _, tr := range batch.Transactions {
			mock.ExpectExec(`INSERT INTO transactions`).
				WithArgs(fileID, int64(10), tr.Type, tr.AmountCents, tr.SignedAmountCents,
					tr.OccurredOn, tr.OccurredAt, tr.PayerDocument, tr.CardNumber).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}

		mock.ExpectExec(`UPDATE stores SET balance`).
			WithArgs(int64(10)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectCommit()

		result, err := repo.ApplyBatch(ctx, fileID, []domain.StoreBatch{batch})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TransactionsInserted)
		assert.Equal(t, 1, result.StoresCreated)
		assert.Equal(t, int64(10), store.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - existing store", func(t *testing.T) {
		store := &domain.Store{ID: 42, OwnerName: "OWNER NAME", Name: "STORE MAIN"}
		batch := testBatch(store, 100)

		mock.ExpectBegin()

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(fileID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions WHERE file_id`).
			WithArgs(fileID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

		tr := batch.Transactions[0]
		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(fileID, int64(42), tr.Type, tr.AmountCents, tr.SignedAmountCents,
				tr.OccurredOn, tr.OccurredAt, tr.PayerDocument, tr.CardNumber).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		mock.ExpectExec(`UPDATE stores SET balance`).
			WithArgs(int64(42)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectCommit()

		result, err := repo.ApplyBatch(ctx, fileID, []domain.StoreBatch{batch})
		require.NoError(t, err)
		assert.Equal(t, 1, result.TransactionsInserted)
		assert.Equal(t, 0, result.StoresCreated)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already applied", func(t *testing.T) {
		store := &domain.Store{ID: 42, OwnerName: "OWNER NAME", Name: "STORE MAIN"}
		batch := testBatch(store, 100)

		mock.ExpectBegin()

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(fileID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions WHERE file_id`).
			WithArgs(fileID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))

		mock.ExpectRollback()

		_, err := repo.ApplyBatch(ctx, fileID, []domain.StoreBatch{batch})
		assert.ErrorIs(t, err, ErrBatchAlreadyApplied)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert error rolls back everything", func(t *testing.T) {
		store := &domain.Store{ID: 42, OwnerName: "OWNER NAME", Name: "STORE MAIN"}
		batch := testBatch(store, 100, 200)

		mock.ExpectBegin()

		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(fileID).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions WHERE file_id`).
			WithArgs(fileID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

		tr := batch.Transactions[0]
		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(fileID, int64(42), tr.Type, tr.AmountCents, tr.SignedAmountCents,
				tr.OccurredOn, tr.OccurredAt, tr.PayerDocument, tr.CardNumber).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		tr = batch.Transactions[1]
		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(fileID, int64(42), tr.Type, tr.AmountCents, tr.SignedAmountCents,
				tr.OccurredOn, tr.OccurredAt, tr.PayerDocument, tr.CardNumber).
			WillReturnError(errors.New("insert error"))

		mock.ExpectRollback()

		_, err := repo.ApplyBatch(ctx, fileID, []domain.StoreBatch{batch})
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("begin error"))

		_, err := repo.ApplyBatch(ctx, fileID, nil)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
