package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc/cnab-ledger/internal/domain"
	"github.com/jackc/pgx/v5"
)

// FileRepository реализует domain.FileRepository
type FileRepository struct {
	db DBTX
}

// NewFileRepository создает новый FileRepository
func NewFileRepository(db DBTX) *FileRepository {
	return &FileRepository{db: db}
}

const fileColumns = `id, name, size, storage_key, uploaded_by, status, error_message, validation_errors, uploaded_at, processed_at`

// CreateFile регистрирует загруженный файл в статусе UPLOADED
func (r *FileRepository) CreateFile(ctx context.Context, name string, size int64, storageKey string, uploadedBy int64) (*domain.File, error) {
	file := &domain.File{
		Name:       name,
		Size:       size,
		StorageKey: storageKey,
		UploadedBy: uploadedBy,
		Status:     domain.FileStatusUploaded,
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO files (name, size, storage_key, uploaded_by, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, uploaded_at`,
		name, size, storageKey, uploadedBy, file.Status,
	).Scan(&file.ID, &file.UploadedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create file %q: %w", name, err)
	}

	return file, nil
}

// GetFileByID получает файл по ID
func (r *FileRepository) GetFileByID(ctx context.Context, id int64) (*domain.File, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+fileColumns+` FROM files WHERE id = $1`,
		id,
	)

	file, err := scanFile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("repository: failed to get file by id %d: %w", id, err)
	}

	return file, nil
}

// GetFilesByUploader получает файлы, загруженные пользователем
func (r *FileRepository) GetFilesByUploader(ctx context.Context, uploadedBy int64) ([]*domain.File, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+fileColumns+` FROM files
		 WHERE uploaded_by = $1
		 ORDER BY uploaded_at DESC`,
		uploadedBy,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get files for uploader %d: %w", uploadedBy, err)
	}
	defer rows.Close()

	return collectFiles(rows)
}

// GetPendingFiles получает файлы, ожидающие обработки
func (r *FileRepository) GetPendingFiles(ctx context.Context) ([]*domain.File, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+fileColumns+` FROM files
		 WHERE status = $1
		 ORDER BY uploaded_at ASC`,
		domain.FileStatusUploaded,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get pending files: %w", err)
	}
	defer rows.Close()

	return collectFiles(rows)
}

// MarkProcessing выполняет условный переход UPLOADED -> PROCESSING.
// Сравнение статуса в WHERE закрывает гонку двух воркеров за один файл:
// переход получает ровно один из них
func (r *FileRepository) MarkProcessing(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE files
		 SET status = $1, processing_started_at = NOW()
		 WHERE id = $2 AND status = $3`,
		domain.FileStatusProcessing, id, domain.FileStatusUploaded,
	)

	if err != nil {
		return false, fmt.Errorf("repository: failed to mark file %d processing: %w", id, err)
	}

	return result.RowsAffected() == 1, nil
}

// MarkProcessed переводит файл в конечный статус PROCESSED
func (r *FileRepository) MarkProcessed(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE files
		 SET status = $1, error_message = NULL, validation_errors = NULL, processed_at = NOW()
		 WHERE id = $2 AND status = $3`,
		domain.FileStatusProcessed, id, domain.FileStatusProcessing,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to mark file %d processed: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrInvalidStatusTransition
	}

	return nil
}

// MarkRejected переводит файл в конечный статус REJECTED с сообщением
// и полным списком ошибок валидации
func (r *FileRepository) MarkRejected(ctx context.Context, id int64, message string, validationErrors []string) error {
	var errsJSON any
	if len(validationErrors) > 0 {
		b, err := json.Marshal(validationErrors)
		if err != nil {
			return fmt.Errorf("repository: failed to marshal validation errors for file %d: %w", id, err)
		}
		errsJSON = b
	}

	result, err := r.db.Exec(ctx,
		`UPDATE files
		 SET status = $1, error_message = $2, validation_errors = $3, processed_at = NOW()
		 WHERE id = $4 AND status = $5`,
		domain.FileStatusRejected, message, errsJSON, id, domain.FileStatusProcessing,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to mark file %d rejected: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrInvalidStatusTransition
	}

	return nil
}

// RequeueStaleProcessing возвращает зависшие PROCESSING файлы в UPLOADED.
// Файл считается зависшим, если переход в PROCESSING случился раньше, чем
// NOW() - olderThan: владевший им процесс не дожил до записи конечного статуса
func (r *FileRepository) RequeueStaleProcessing(ctx context.Context, olderThan time.Duration) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE files
		 SET status = $1, processing_started_at = NULL
		 WHERE status = $2 AND processing_started_at < NOW() - make_interval(secs => $3)`,
		domain.FileStatusUploaded, domain.FileStatusProcessing, olderThan.Seconds(),
	)

	if err != nil {
		return 0, fmt.Errorf("repository: failed to requeue stale processing files: %w", err)
	}

	return result.RowsAffected(), nil
}

// scanFile читает одну строку результата в domain.File.
// Статус из БД проходит через ParseFileStatus: неизвестное значение — ошибка
func scanFile(row pgx.Row) (*domain.File, error) {
	file := &domain.File{}
	var status string
	var errsJSON []byte

	err := row.Scan(&file.ID, &file.Name, &file.Size, &file.StorageKey, &file.UploadedBy,
		&status, &file.ErrorMessage, &errsJSON, &file.UploadedAt, &file.ProcessedAt)
	if err != nil {
		return nil, err
	}

	file.Status, err = domain.ParseFileStatus(status)
	if err != nil {
		return nil, fmt.Errorf("file %d has status %q: %w", file.ID, status, err)
	}

	if len(errsJSON) > 0 {
		if err := json.Unmarshal(errsJSON, &file.ValidationErrors); err != nil {
			return nil, fmt.Errorf("file %d has malformed validation errors: %w", file.ID, err)
		}
	}

	return file, nil
}

func collectFiles(rows pgx.Rows) ([]*domain.File, error) {
	var files []*domain.File
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating files: %w", err)
	}

	return files, nil
}
