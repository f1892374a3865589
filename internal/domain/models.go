package domain

import "time"

// FileStatus представляет статус обработки файла
type FileStatus string

const (
	FileStatusUploaded   FileStatus = "UPLOADED"
	FileStatusProcessing FileStatus = "PROCESSING"
	FileStatusProcessed  FileStatus = "PROCESSED"
	FileStatusRejected   FileStatus = "REJECTED"
)

// ParseFileStatus преобразует строку из БД в FileStatus
// Неизвестное значение считается ошибкой данных, а не новым статусом
func ParseFileStatus(s string) (FileStatus, error) {
	switch FileStatus(s) {
	case FileStatusUploaded, FileStatusProcessing, FileStatusProcessed, FileStatusRejected:
		return FileStatus(s), nil
	}
	return "", ErrUnknownFileStatus
}

// Terminal сообщает, является ли статус конечным
func (s FileStatus) Terminal() bool {
	return s == FileStatusProcessed || s == FileStatusRejected
}

// User представляет пользователя бэк-офиса
type User struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"` // Не отправляем хеш в JSON
	CreatedAt    time.Time `json:"created_at"`
}

// File представляет загруженный CNAB файл
type File struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Size             int64      `json:"size"`
	StorageKey       string     `json:"-"`
	UploadedBy       int64      `json:"-"`
	Status           FileStatus `json:"status"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	ValidationErrors []string   `json:"validation_errors,omitempty"`
	UploadedAt       time.Time  `json:"uploaded_at"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
}

// Store представляет магазин, идентифицируемый парой (владелец, название)
type Store struct {
	ID           int64     `json:"-"`
	OwnerName    string    `json:"owner_name"`
	Name         string    `json:"name"`
	BalanceCents int64     `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Transaction представляет одну операцию из CNAB файла
// Записи неизменяемы: создаются только при обработке файла
type Transaction struct {
	ID                int64           `json:"id"`
	FileID            int64           `json:"-"`
	StoreID           int64           `json:"-"`
	Type              TransactionType `json:"type"`
	AmountCents       int64           `json:"amount_cents"`
	SignedAmountCents int64           `json:"signed_amount_cents"`
	// Дата и время храним раздельно, чтобы не привязываться к часовому поясу
	OccurredOn    time.Time `json:"occurred_on"`
	OccurredAt    string    `json:"occurred_at"`
	PayerDocument string    `json:"payer_document"`
	CardNumber    string    `json:"card_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// StoreBatch группирует транзакции одного магазина внутри одного файла.
// Store.ID == 0 означает, что магазин еще не существует и будет создан
// в рамках той же транзакции БД, что и вставка записей
type StoreBatch struct {
	Store        *Store
	Transactions []*Transaction
}

// BatchResult содержит счетчики примененной партии
type BatchResult struct {
	TransactionsInserted int
	StoresCreated        int
}

// ProcessRequest описывает запрос на обработку файла
type ProcessRequest struct {
	FileID        int64
	StorageKey    string // Пустое значение — взять ключ из записи файла
	CorrelationID string
}

// ProcessResult представляет итог обработки файла
type ProcessResult struct {
	Success              bool       `json:"success"`
	Status               FileStatus `json:"status"`
	TransactionsInserted int        `json:"transactions_inserted"`
	StoresUpserted       int        `json:"stores_upserted"`
	ErrorMessage         string     `json:"error_message,omitempty"`
	ValidationErrors     []string   `json:"validation_errors,omitempty"`
}

// FileEvent описывает событие для webhook уведомления
type FileEvent struct {
	FileID               int64      `json:"file_id"`
	Status               FileStatus `json:"status"`
	CorrelationID        string     `json:"correlation_id"`
	TransactionsInserted int        `json:"transactions_inserted"`
	ErrorMessage         string     `json:"error_message,omitempty"`
}
