package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/avc/cnab-ledger/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StoresService определяет методы работы с магазинами
type StoresService interface {
	ListStores(ctx context.Context) ([]*domain.Store, error)
}

type StoreHandler struct {
	storeService StoresService
	logger       *zap.Logger
}

func NewStoreHandler(storeService StoresService, logger *zap.Logger) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
		logger:       logger,
	}
}

type storeResponse struct {
	OwnerName string    `json:"owner_name"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// List возвращает все магазины с текущими балансами.
// Баланс хранится в центах и отдается строкой с двумя знаками
func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	stores, err := h.storeService.ListStores(r.Context())
	if err != nil {
		h.logger.Error("failed to list stores", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	response := make([]storeResponse, 0, len(stores))
	for _, store := range stores {
		response = append(response, storeResponse{
			OwnerName: store.OwnerName,
			Name:      store.Name,
			Balance:   decimal.New(store.BalanceCents, -2).StringFixed(2),
			UpdatedAt: store.UpdatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode stores response", zap.Error(err))
	}
}
