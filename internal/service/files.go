package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/avc/cnab-ledger/internal/domain"
	"github.com/avc/cnab-ledger/internal/repository/postgres"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FileService управляет приемом и просмотром файлов
type FileService struct {
	files  domain.FileRepository
	blobs  domain.BlobStore
	logger *zap.Logger
}

// NewFileService создает новый FileService
func NewFileService(files domain.FileRepository, blobs domain.BlobStore, logger *zap.Logger) *FileService {
	return &FileService{
		files:  files,
		blobs:  blobs,
		logger: logger,
	}
}

// Upload сохраняет содержимое в хранилище и регистрирует файл
// в статусе UPLOADED; обработку подхватит worker pool
func (s *FileService) Upload(ctx context.Context, uploaderID int64, name string, size int64, r io.Reader) (*domain.File, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}
	if size <= 0 {
		return nil, ErrEmptyFile
	}

	key := uuid.NewString()

	if err := s.blobs.Save(ctx, key, r); err != nil {
		return nil, fmt.Errorf("file service: failed to store contents of %q: %w", name, err)
	}

	file, err := s.files.CreateFile(ctx, name, size, key, uploaderID)
	if err != nil {
		return nil, fmt.Errorf("file service: failed to register file %q: %w", name, err)
	}

	s.logger.Info("file uploaded",
		zap.Int64("file_id", file.ID),
		zap.String("name", name),
		zap.Int64("size", size),
	)

	return file, nil
}

// ListFiles получает файлы, загруженные пользователем
func (s *FileService) ListFiles(ctx context.Context, uploaderID int64) ([]*domain.File, error) {
	files, err := s.files.GetFilesByUploader(ctx, uploaderID)
	if err != nil {
		return nil, fmt.Errorf("file service: failed to list files for user %d: %w", uploaderID, err)
	}

	return files, nil
}

// GetFile получает файл пользователя по ID
func (s *FileService) GetFile(ctx context.Context, uploaderID, fileID int64) (*domain.File, error) {
	file, err := s.files.GetFileByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, postgres.ErrFileNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("file service: failed to get file %d: %w", fileID, err)
	}

	// Файлы видны только загрузившему их пользователю
	if file.UploadedBy != uploaderID {
		return nil, ErrFileNotFound
	}

	return file, nil
}
