package domain

import (
	"context"
	"io"
	"time"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, login, passwordHash string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// FileRepository определяет методы для работы с файлами
type FileRepository interface {
	CreateFile(ctx context.Context, name string, size int64, storageKey string, uploadedBy int64) (*File, error)
	GetFileByID(ctx context.Context, id int64) (*File, error)
	GetFilesByUploader(ctx context.Context, uploadedBy int64) ([]*File, error)
	GetPendingFiles(ctx context.Context) ([]*File, error)
	// MarkProcessing выполняет условный переход UPLOADED -> PROCESSING.
	// Возвращает false, если файл уже не в статусе UPLOADED
	MarkProcessing(ctx context.Context, id int64) (bool, error)
	MarkProcessed(ctx context.Context, id int64) error
	MarkRejected(ctx context.Context, id int64, message string, validationErrors []string) error
	// RequeueStaleProcessing возвращает файлы, находящиеся в PROCESSING
	// дольше olderThan, обратно в UPLOADED. Возвращает число затронутых файлов
	RequeueStaleProcessing(ctx context.Context, olderThan time.Duration) (int64, error)
}

// StoreRepository определяет методы для работы с магазинами
type StoreRepository interface {
	GetStoreByKey(ctx context.Context, ownerName, name string) (*Store, error)
	ListStores(ctx context.Context) ([]*Store, error)
}

// TransactionRepository определяет методы для работы с транзакциями
type TransactionRepository interface {
	CountByFileID(ctx context.Context, fileID int64) (int64, error)
	// ApplyBatch атомарно создает новые магазины, вставляет транзакции
	// и пересчитывает балансы затронутых магазинов
	ApplyBatch(ctx context.Context, fileID int64, batches []StoreBatch) (*BatchResult, error)
}

// BlobStore определяет доступ к содержимому файлов
type BlobStore interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}

// Notifier отправляет уведомления о завершении обработки файла
type Notifier interface {
	NotifyFileProcessed(ctx context.Context, event FileEvent) error
}

// FileProcessor определяет конвейер обработки файла
type FileProcessor interface {
	Process(ctx context.Context, req ProcessRequest) (*ProcessResult, error)
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, login, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
}
