package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/cnab-ledger/internal/domain"
	"github.com/jackc/pgx/v5"
)

// StoreRepository реализует domain.StoreRepository
type StoreRepository struct {
	db DBTX
}

// NewStoreRepository создает новый StoreRepository
func NewStoreRepository(db DBTX) *StoreRepository {
	return &StoreRepository{db: db}
}

// GetStoreByKey получает магазин по составному ключу (владелец, название)
func (r *StoreRepository) GetStoreByKey(ctx context.Context, ownerName, name string) (*domain.Store, error) {
	store := &domain.Store{}

	err := r.db.QueryRow(ctx,
		`SELECT id, owner_name, name, balance, created_at, updated_at
		 FROM stores
		 WHERE owner_name = $1 AND name = $2`,
		ownerName, name,
	).Scan(&store.ID, &store.OwnerName, &store.Name, &store.BalanceCents, &store.CreatedAt, &store.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("repository: failed to get store %q/%q: %w", ownerName, name, err)
	}

	return store, nil
}

// ListStores получает все магазины с балансами
func (r *StoreRepository) ListStores(ctx context.Context) ([]*domain.Store, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, owner_name, name, balance, created_at, updated_at
		 FROM stores
		 ORDER BY owner_name ASC, name ASC`,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []*domain.Store
	for rows.Next() {
		store := &domain.Store{}
		err := rows.Scan(&store.ID, &store.OwnerName, &store.Name, &store.BalanceCents, &store.CreatedAt, &store.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan store: %w", err)
		}
		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating stores: %w", err)
	}

	return stores, nil
}
