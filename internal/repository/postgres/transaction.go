package postgres

import (
	"context"
	"fmt"

	"github.com/avc/cnab-ledger/internal/domain"
)

// TransactionRepository реализует domain.TransactionRepository
type TransactionRepository struct {
	db DBTX
}

// NewTransactionRepository создает новый TransactionRepository
func NewTransactionRepository(db DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CountByFileID возвращает число транзакций, уже записанных для файла
func (r *TransactionRepository) CountByFileID(ctx context.Context, fileID int64) (int64, error) {
	var count int64

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE file_id = $1`,
		fileID,
	).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("repository: failed to count transactions for file %d: %w", fileID, err)
	}

	return count, nil
}

// ApplyBatch атомарно применяет партию транзакций одного файла:
// создает отсутствующие магазины, вставляет транзакции и пересчитывает
// балансы затронутых магазинов. Любая ошибка откатывает всё целиком.
//
// Advisory lock по ID файла сериализует повторные доставки одного файла,
// а повторная проверка существующих транзакций внутри блокировки делает
// применение идемпотентным даже при гонке двух воркеров
func (r *TransactionRepository) ApplyBatch(ctx context.Context, fileID int64, batches []domain.StoreBatch) (*domain.BatchResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin batch for file %d: %w", fileID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, fileID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for file %d: %w", fileID, err)
	}

	var existing int64
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE file_id = $1`,
		fileID,
	).Scan(&existing)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to recheck transactions for file %d: %w", fileID, err)
	}
	if existing > 0 {
		return nil, ErrBatchAlreadyApplied
	}

	result := &domain.BatchResult{}

	for i := range batches {
		batch := &batches[i]
		store := batch.Store

		if store.ID == 0 {
			// Upsert закрывает гонку с параллельным файлом того же магазина
			err := tx.QueryRow(ctx,
				`INSERT INTO stores (owner_name, name)
				 VALUES ($1, $2)
				 ON CONFLICT (owner_name, name) DO UPDATE SET updated_at = NOW()
				 RETURNING id`,
				store.OwnerName, store.Name,
			).Scan(&store.ID)
			if err != nil {
				return nil, fmt.Errorf("repository: failed to create store %q/%q: %w", store.OwnerName, store.Name, err)
			}
			result.StoresCreated++
		}

		for _, t := range batch.Transactions {
			_, err := tx.Exec(ctx,
				`INSERT INTO transactions
				 (file_id, store_id, type, amount, signed_amount, occurred_on, occurred_at, payer_document, card_number)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				fileID, store.ID, t.Type, t.AmountCents, t.SignedAmountCents,
				t.OccurredOn, t.OccurredAt, t.PayerDocument, t.CardNumber,
			)
			if err != nil {
				return nil, fmt.Errorf("repository: failed to insert transaction for store %d: %w", store.ID, err)
			}
			result.TransactionsInserted++
		}

		// Баланс всегда пересчитывается по всем транзакциям магазина,
		// а не по сумме текущей партии: прежние файлы не затираются
		_, err := tx.Exec(ctx,
			`UPDATE stores
			 SET balance = (SELECT COALESCE(SUM(signed_amount), 0) FROM transactions WHERE store_id = $1),
			     updated_at = NOW()
			 WHERE id = $1`,
			store.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to recompute balance for store %d: %w", store.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit batch for file %d: %w", fileID, err)
	}

	return result, nil
}
