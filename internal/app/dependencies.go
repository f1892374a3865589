package app

import (
	"context"
	"fmt"

	"github.com/avc/cnab-ledger/internal/cnab"
	"github.com/avc/cnab-ledger/internal/config"
	"github.com/avc/cnab-ledger/internal/domain"
	"github.com/avc/cnab-ledger/internal/handlers"
	"github.com/avc/cnab-ledger/internal/notify"
	"github.com/avc/cnab-ledger/internal/repository/postgres"
	"github.com/avc/cnab-ledger/internal/service"
	"github.com/avc/cnab-ledger/internal/storage"
	"github.com/avc/cnab-ledger/internal/utils/jwt"
	"github.com/avc/cnab-ledger/internal/utils/password"
	"github.com/avc/cnab-ledger/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user        domain.UserRepository
	file        domain.FileRepository
	store       domain.StoreRepository
	transaction domain.TransactionRepository
}

// services содержит все сервисы приложения
type services struct {
	auth      domain.AuthService
	files     *service.FileService
	processor domain.FileProcessor
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth   *handlers.AuthHandler
	files  *handlers.FileHandler
	stores *handlers.StoreHandler
	health *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	// Создание репозиториев
	repos := &repositories{
		user:        postgres.NewUserRepository(dbPool),
		file:        postgres.NewFileRepository(dbPool),
		store:       postgres.NewStoreRepository(dbPool),
		transaction: postgres.NewTransactionRepository(dbPool),
	}

	// Хранилище загруженных файлов
	blobs, err := initBlobStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Уведомления об итогах обработки
	var notifier domain.Notifier = notify.NoopNotifier{}
	if cfg.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.WebhookURL, logger)
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)
	parser := cnab.NewFileParser(cnab.NewValidator())

	// Создание сервисов
	authServiceConfig := service.AuthServiceConfig{
		MinPasswordLength: cfg.MinPasswordLength,
	}
	svcs := &services{
		auth:      service.NewAuthService(repos.user, passwordHasher, jwtManager, authServiceConfig),
		files:     service.NewFileService(repos.file, blobs, logger),
		processor: service.NewProcessor(repos.file, repos.store, repos.transaction, blobs, notifier, parser, logger),
	}

	// Создание worker pool
	workerPoolConfig := worker.PoolConfig{
		Workers:      cfg.WorkerPoolSize,
		QueueSize:    cfg.WorkerQueueSize,
		ScanInterval: cfg.WorkerScanInterval,
		StaleAfter:   cfg.WorkerStaleAfter,
	}
	workerPool := worker.NewPool(workerPoolConfig, repos.file, svcs.processor, logger)

	// Создание handlers
	hdlrs := &handlerSet{
		auth:   handlers.NewAuthHandler(svcs.auth, logger),
		files:  handlers.NewFileHandler(svcs.files, svcs.processor, workerPool, cfg.MaxUploadBytes, logger),
		stores: handlers.NewStoreHandler(repos.store, logger),
		health: handlers.NewHealthHandler(dbPool, logger),
	}

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}, nil
}

// initBlobStore выбирает бэкенд хранилища по конфигурации
func initBlobStore(ctx context.Context, cfg *config.Config) (domain.BlobStore, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendGCS:
		blobs, err := storage.NewGCSStore(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to init gcs storage: %w", err)
		}
		return blobs, nil
	default:
		blobs, err := storage.NewLocalStore(cfg.StorageDir)
		if err != nil {
			return nil, fmt.Errorf("failed to init local storage: %w", err)
		}
		return blobs, nil
	}
}
