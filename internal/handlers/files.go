package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/avc/cnab-ledger/internal/domain"
	"github.com/avc/cnab-ledger/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FilesService определяет методы работы с файлами
type FilesService interface {
	Upload(ctx context.Context, uploaderID int64, name string, size int64, r io.Reader) (*domain.File, error)
	ListFiles(ctx context.Context, uploaderID int64) ([]*domain.File, error)
	GetFile(ctx context.Context, uploaderID, fileID int64) (*domain.File, error)
}

// Enqueuer отдает файл в очередь фоновой обработки
type Enqueuer interface {
	Enqueue(fileID int64) bool
}

type FileHandler struct {
	fileService    FilesService
	processor      domain.FileProcessor
	queue          Enqueuer
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewFileHandler(fileService FilesService, processor domain.FileProcessor, queue Enqueuer, maxUploadBytes int64, logger *zap.Logger) *FileHandler {
	return &FileHandler{
		fileService:    fileService,
		processor:      processor,
		queue:          queue,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Upload принимает multipart форму с полем "file", сохраняет содержимое
// и регистрирует файл в статусе UPLOADED
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	defer part.Close()

	file, err := h.fileService.Upload(r.Context(), userID, header.Filename, header.Size, part)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) || errors.Is(err, service.ErrEmptyFile) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to upload file", zap.Error(err), zap.String("name", header.Filename))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Будит воркеры сразу; при заполненной очереди файл подберет сканер
	h.queue.Enqueue(file.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(file); err != nil {
		h.logger.Error("failed to encode file response", zap.Error(err))
	}
}

// List возвращает файлы, загруженные текущим пользователем
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	files, err := h.fileService.ListFiles(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list files", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(files) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(files); err != nil {
		h.logger.Error("failed to encode files response", zap.Error(err))
	}
}

// Get возвращает один файл пользователя со статусом и ошибками валидации
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	fileID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	file, err := h.fileService.GetFile(r.Context(), userID, fileID)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get file", zap.Error(err), zap.Int64("file_id", fileID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(file); err != nil {
		h.logger.Error("failed to encode file response", zap.Error(err))
	}
}

// Process синхронно запускает обработку файла и возвращает итог.
// Повторный вызов для обработанного файла возвращает сохраненный итог
func (h *FileHandler) Process(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	fileID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	// Проверяем, что файл принадлежит пользователю
	if _, err := h.fileService.GetFile(r.Context(), userID, fileID); err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get file", zap.Error(err), zap.Int64("file_id", fileID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	result, err := h.processor.Process(r.Context(), domain.ProcessRequest{
		FileID:        fileID,
		CorrelationID: uuid.NewString(),
	})
	if err != nil {
		if errors.Is(err, service.ErrFileBusy) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		if errors.Is(err, service.ErrFileNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to process file", zap.Error(err), zap.Int64("file_id", fileID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("failed to encode process response", zap.Error(err))
	}
}
