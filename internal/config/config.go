package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Бэкенды хранения загруженных файлов
const (
	StorageBackendLocal = "local"
	StorageBackendGCS   = "gcs"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	DatabaseURI string        // URI подключения к БД
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена
	LogLevel    string        // Уровень логирования

	// Хранилище загруженных файлов
	StorageBackend string // "local" или "gcs"
	StorageDir     string // Каталог для локального хранилища
	GCSBucket      string // Имя bucket для GCS
	MaxUploadBytes int64  // Максимальный размер загружаемого файла

	// Webhook уведомления об итогах обработки
	WebhookURL string // Пустое значение отключает уведомления

	// Worker Pool конфигурация
	WorkerPoolSize     int           // Количество воркеров
	WorkerQueueSize    int           // Размер очереди файлов
	WorkerScanInterval time.Duration // Интервал сканирования необработанных файлов
	WorkerStaleAfter   time.Duration // Срок, после которого PROCESSING считается зависшим

	// Валидация
	MinPasswordLength int // Минимальная длина пароля
}

// Load загружает конфигурацию из .env файла, флагов и переменных окружения
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	// .env не обязателен: в проде настройки приходят из окружения
	_ = godotenv.Load()

	cfg := &Config{
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		StorageBackend:     StorageBackendLocal,
		MaxUploadBytes:     10 << 20,
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		WorkerScanInterval: 10 * time.Second,
		WorkerStaleAfter:   5 * time.Minute,
		MinPasswordLength:  6,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.StorageDir, "s", "./uploads", "directory for uploaded files (local backend)")
	flag.StringVar(&cfg.WebhookURL, "w", "", "webhook URL for processing notifications")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envStorageBackend, ok := os.LookupEnv("STORAGE_BACKEND"); ok {
		cfg.StorageBackend = envStorageBackend
	}

	if envStorageDir, ok := os.LookupEnv("STORAGE_DIR"); ok {
		cfg.StorageDir = envStorageDir
	}

	if envGCSBucket, ok := os.LookupEnv("GCS_BUCKET"); ok {
		cfg.GCSBucket = envGCSBucket
	}

	if envWebhookURL, ok := os.LookupEnv("WEBHOOK_URL"); ok {
		cfg.WebhookURL = envWebhookURL
	}

	if envMaxUpload, ok := os.LookupEnv("MAX_UPLOAD_BYTES"); ok {
		if size, err := strconv.ParseInt(envMaxUpload, 10, 64); err == nil && size > 0 {
			cfg.MaxUploadBytes = size
		}
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Worker Pool конфигурация из env
	if envWorkerPoolSize, ok := os.LookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerPoolSize); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}

	if envWorkerQueueSize, ok := os.LookupEnv("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerQueueSize); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}

	if envScanInterval, ok := os.LookupEnv("WORKER_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envScanInterval); err == nil && interval > 0 {
			cfg.WorkerScanInterval = interval
		}
	}

	if envStaleAfter, ok := os.LookupEnv("WORKER_STALE_AFTER"); ok {
		if staleAfter, err := time.ParseDuration(envStaleAfter); err == nil && staleAfter > 0 {
			cfg.WorkerStaleAfter = staleAfter
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	switch cfg.StorageBackend {
	case StorageBackendLocal:
		if cfg.StorageDir == "" {
			return nil, fmt.Errorf("storage directory is required for local backend (use -s flag or STORAGE_DIR env)")
		}
	case StorageBackendGCS:
		if cfg.GCSBucket == "" {
			return nil, fmt.Errorf("GCS bucket is required for gcs backend (use GCS_BUCKET env)")
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	return cfg, nil
}
