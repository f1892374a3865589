package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc/cnab-ledger/internal/domain"
	domainmocks "github.com/avc/cnab-ledger/internal/domain/mocks"
	"github.com/avc/cnab-ledger/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// enqueuerStub фиксирует отданные в очередь файлы
type enqueuerStub struct {
	ids []int64
}

func (e *enqueuerStub) Enqueue(fileID int64) bool {
	e.ids = append(e.ids, fileID)
	return true
}

func authedRequest(req *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func multipartBody(t *testing.T, fieldName, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestAuthHandler_Register(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	handler := NewAuthHandler(mockService, zap.NewNop())

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "user", "password123").Return("token", nil).Once()

		body := `{"login":"user","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Authorization"), "Bearer token")
	})

	t.Run("User exists", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "user", "password123").Return("", service.ErrUserExists).Once()

		body := `{"login":"user","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid input", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "user", "short").Return("", service.ErrInvalidInput).Once()

		body := `{"login":"user","password":"short"}`
		req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		body := `{"login":}`
		req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	handler := NewAuthHandler(mockService, zap.NewNop())

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "user", "password123").Return("token", nil).Once()

		body := `{"login":"user","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Authorization"), "Bearer token")
	})

	t.Run("Wrong credentials", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "user", "wrong-password").Return("", service.ErrInvalidCredentials).Once()

		body := `{"login":"user","password":"wrong-password"}`
		req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestFileHandler_Upload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockFiles := domainmocks.NewFilesServiceMock(t)
		queue := &enqueuerStub{}
		handler := NewFileHandler(mockFiles, domainmocks.NewFileProcessorMock(t), queue, 1<<20, zap.NewNop())

		file := &domain.File{ID: 42, Name: "CNAB.txt", Status: domain.FileStatusUploaded}
		mockFiles.EXPECT().Upload(mock.Anything, int64(1), "CNAB.txt", mock.AnythingOfType("int64"), mock.Anything).
			Return(file, nil).Once()

		body, contentType := multipartBody(t, "file", "CNAB.txt", "some cnab content")
		req := httptest.NewRequest(http.MethodPost, "/api/files", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		handler.Upload(w, authedRequest(req, 1))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, []int64{42}, queue.ids)

		var got domain.File
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, int64(42), got.ID)
	})

	t.Run("Missing file field", func(t *testing.T) {
		handler := NewFileHandler(domainmocks.NewFilesServiceMock(t), domainmocks.NewFileProcessorMock(t), &enqueuerStub{}, 1<<20, zap.NewNop())

		body, contentType := multipartBody(t, "other", "CNAB.txt", "content")
		req := httptest.NewRequest(http.MethodPost, "/api/files", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		handler.Upload(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Empty file rejected", func(t *testing.T) {
		mockFiles := domainmocks.NewFilesServiceMock(t)
		handler := NewFileHandler(mockFiles, domainmocks.NewFileProcessorMock(t), &enqueuerStub{}, 1<<20, zap.NewNop())

		mockFiles.EXPECT().Upload(mock.Anything, int64(1), "CNAB.txt", mock.AnythingOfType("int64"), mock.Anything).
			Return(nil, service.ErrEmptyFile).Once()

		body, contentType := multipartBody(t, "file", "CNAB.txt", "")
		req := httptest.NewRequest(http.MethodPost, "/api/files", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		handler.Upload(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		handler := NewFileHandler(domainmocks.NewFilesServiceMock(t), domainmocks.NewFileProcessorMock(t), &enqueuerStub{}, 1<<20, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/files", nil)
		w := httptest.NewRecorder()

		handler.Upload(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestFileHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockFiles := domainmocks.NewFilesServiceMock(t)
		handler := NewFileHandler(mockFiles, domainmocks.NewFileProcessorMock(t), &enqueuerStub{}, 1<<20, zap.NewNop())

		files := []*domain.File{
			{ID: 1, Name: "a.txt", Status: domain.FileStatusProcessed},
			{ID: 2, Name: "b.txt", Status: domain.FileStatusUploaded},
		}
		mockFiles.EXPECT().ListFiles(mock.Anything, int64(1)).Return(files, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
		w := httptest.NewRecorder()

		handler.List(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusOK, w.Code)

		var got []*domain.File
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Len(t, got, 2)
	})

	t.Run("No files", func(t *testing.T) {
		mockFiles := domainmocks.NewFilesServiceMock(t)
		handler := NewFileHandler(mockFiles, domainmocks.NewFileProcessorMock(t), &enqueuerStub{}, 1<<20, zap.NewNop())

		mockFiles.EXPECT().ListFiles(mock.Anything, int64(1)).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
		w := httptest.NewRecorder()

		handler.List(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Service error", func(t *testing.T) {
		mockFiles := domainmocks.NewFilesServiceMock(t)
		handler := NewFileHandler(mockFiles, domainmocks.NewFileProcessorMock(t), &enqueuerStub{}, 1<<20, zap.NewNop())

		mockFiles.EXPECT().ListFiles(mock.Anything, int64(1)).Return(nil, errors.New("db is down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
		w := httptest.NewRecorder()

		handler.List(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestFileHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockFiles := domainmocks.NewFilesServiceMock(t)
		handler := NewFileHandler(mockFiles, domainmocks.NewFileProcessorMock(t), &enqueuerStub{}, 1<<20, zap.NewNop())

		msg := "Line 1: Invalid length"
		file := &domain.File{
			ID:               42,
			Status:           domain.FileStatusRejected,
			ErrorMessage:     &msg,
			ValidationErrors: []string{msg},
		}
		mockFiles.EXPECT().GetFile(mock.Anything, int64(1), int64(42)).Return(file, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/files/42", nil)
		req = withURLParam(req, "id", "42")
		w := httptest.NewRecorder()

		handler.Get(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusOK, w.Code)

		var got domain.File
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, domain.FileStatusRejected, got.Status)
		assert.Equal(t, []string{msg}, got.ValidationErrors)
	})

	t.Run("Invalid id", func(t *testing.T) {
		handler := NewFileHandler(domainmocks.NewFilesServiceMock(t), domainmocks.NewFileProcessorMock(t), &enqueuerStub{}, 1<<20, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/files/abc", nil)
		req = withURLParam(req, "id", "abc")
		w := httptest.NewRecorder()

		handler.Get(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		mockFiles := domainmocks.NewFilesServiceMock(t)
		handler := NewFileHandler(mockFiles, domainmocks.NewFileProcessorMock(t), &enqueuerStub{}, 1<<20, zap.NewNop())

		mockFiles.EXPECT().GetFile(mock.Anything, int64(1), int64(42)).Return(nil, service.ErrFileNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/files/42", nil)
		req = withURLParam(req, "id", "42")
		w := httptest.NewRecorder()

		handler.Get(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFileHandler_Process(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockFiles := domainmocks.NewFilesServiceMock(t)
		mockProcessor := domainmocks.NewFileProcessorMock(t)
		handler := NewFileHandler(mockFiles, mockProcessor, &enqueuerStub{}, 1<<20, zap.NewNop())

		file := &domain.File{ID: 42, UploadedBy: 1, Status: domain.FileStatusUploaded}
		result := &domain.ProcessResult{
			Success:              true,
			Status:               domain.FileStatusProcessed,
			TransactionsInserted: 3,
		}

		mockFiles.EXPECT().GetFile(mock.Anything, int64(1), int64(42)).Return(file, nil).Once()
		mockProcessor.EXPECT().Process(mock.Anything, mock.MatchedBy(func(req domain.ProcessRequest) bool {
			return req.FileID == 42 && req.CorrelationID != ""
		})).Return(result, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/files/42/process", nil)
		req = withURLParam(req, "id", "42")
		w := httptest.NewRecorder()

		handler.Process(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusOK, w.Code)

		var got domain.ProcessResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.True(t, got.Success)
		assert.Equal(t, 3, got.TransactionsInserted)
	})

	t.Run("Busy", func(t *testing.T) {
		mockFiles := domainmocks.NewFilesServiceMock(t)
		mockProcessor := domainmocks.NewFileProcessorMock(t)
		handler := NewFileHandler(mockFiles, mockProcessor, &enqueuerStub{}, 1<<20, zap.NewNop())

		file := &domain.File{ID: 42, UploadedBy: 1, Status: domain.FileStatusProcessing}

		mockFiles.EXPECT().GetFile(mock.Anything, int64(1), int64(42)).Return(file, nil).Once()
		mockProcessor.EXPECT().Process(mock.Anything, mock.Anything).Return(nil, service.ErrFileBusy).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/files/42/process", nil)
		req = withURLParam(req, "id", "42")
		w := httptest.NewRecorder()

		handler.Process(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Foreign file", func(t *testing.T) {
		mockFiles := domainmocks.NewFilesServiceMock(t)
		handler := NewFileHandler(mockFiles, domainmocks.NewFileProcessorMock(t), &enqueuerStub{}, 1<<20, zap.NewNop())

		mockFiles.EXPECT().GetFile(mock.Anything, int64(1), int64(42)).Return(nil, service.ErrFileNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/files/42/process", nil)
		req = withURLParam(req, "id", "42")
		w := httptest.NewRecorder()

		handler.Process(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStoreHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStores := domainmocks.NewStoresServiceMock(t)
		handler := NewStoreHandler(mockStores, zap.NewNop())

		stores := []*domain.Store{
			{OwnerName: "JOSE COSTA", Name: "MERCEARIA 3 IRMA", BalanceCents: 14200},
			{OwnerName: "MARCOS PEREIRA", Name: "LOJA DO O - MATRI", BalanceCents: -3350},
		}
		mockStores.EXPECT().ListStores(mock.Anything).Return(stores, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
		w := httptest.NewRecorder()

		handler.List(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusOK, w.Code)

		var got []storeResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		require.Len(t, got, 2)
		assert.Equal(t, "142.00", got[0].Balance)
		assert.Equal(t, "-33.50", got[1].Balance)
	})

	t.Run("Empty list", func(t *testing.T) {
		mockStores := domainmocks.NewStoresServiceMock(t)
		handler := NewStoreHandler(mockStores, zap.NewNop())

		mockStores.EXPECT().ListStores(mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
		w := httptest.NewRecorder()

		handler.List(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Service error", func(t *testing.T) {
		mockStores := domainmocks.NewStoresServiceMock(t)
		handler := NewStoreHandler(mockStores, zap.NewNop())

		mockStores.EXPECT().ListStores(mock.Anything).Return(nil, errors.New("db is down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
		w := httptest.NewRecorder()

		handler.List(w, authedRequest(req, 1))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
