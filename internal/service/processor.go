package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/cnab-ledger/internal/cnab"
	"github.com/avc/cnab-ledger/internal/domain"
	"github.com/avc/cnab-ledger/internal/repository/postgres"
	"go.uber.org/zap"
)

// Сколько ошибок попадает в короткое сообщение; полный список
// сохраняется отдельно для диагностики
const errorSummaryLimit = 5

const genericErrorMessage = "file processing failed due to an internal error"

// Processor реализует domain.FileProcessor: конечный автомат
// UPLOADED -> PROCESSING -> {PROCESSED | REJECTED}
type Processor struct {
	files        domain.FileRepository
	stores       domain.StoreRepository
	transactions domain.TransactionRepository
	blobs        domain.BlobStore
	notifier     domain.Notifier
	parser       *cnab.FileParser
	logger       *zap.Logger
}

// NewProcessor создает новый Processor
func NewProcessor(
	files domain.FileRepository,
	stores domain.StoreRepository,
	transactions domain.TransactionRepository,
	blobs domain.BlobStore,
	notifier domain.Notifier,
	parser *cnab.FileParser,
	logger *zap.Logger,
) *Processor {
	return &Processor{
		files:        files,
		stores:       stores,
		transactions: transactions,
		blobs:        blobs,
		notifier:     notifier,
		parser:       parser,
		logger:       logger,
	}
}

// Process обрабатывает один файл от начала до конца. Повторный вызов для
// уже обработанного файла — no-op с успешным результатом. Ни одна ошибка
// после захвата статуса PROCESSING не покидает метод без попытки перевести
// файл в конечный статус; если сама запись конечного статуса не удалась,
// метод возвращает ошибку, а файл позже вернет в очередь worker pool
// через RequeueStaleProcessing
func (p *Processor) Process(ctx context.Context, req domain.ProcessRequest) (result *domain.ProcessResult, err error) {
	log := p.logger.With(
		zap.Int64("file_id", req.FileID),
		zap.String("correlation_id", req.CorrelationID),
	)

	file, err := p.files.GetFileByID(ctx, req.FileID)
	if err != nil {
		if errors.Is(err, postgres.ErrFileNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("processor: failed to load file %d: %w", req.FileID, err)
	}

	// Идемпотентность: конечные статусы неизменяемы
	if res, done := terminalResult(file); done {
		log.Info("file already in terminal state", zap.String("status", string(file.Status)))
		return res, nil
	}

	acquired, err := p.files.MarkProcessing(ctx, file.ID)
	if err != nil {
		return nil, fmt.Errorf("processor: failed to mark file %d processing: %w", file.ID, err)
	}
	if !acquired {
		// Переход забрал кто-то другой: перечитываем и решаем заново
		file, err = p.files.GetFileByID(ctx, req.FileID)
		if err != nil {
			return nil, fmt.Errorf("processor: failed to reload file %d: %w", req.FileID, err)
		}
		if res, done := terminalResult(file); done {
			return res, nil
		}
		return nil, ErrFileBusy
	}

	// С этого места файл принадлежит нам; паника или ошибка любого шага
	// обязана завершиться конечным статусом
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("panic during file processing", zap.Any("panic", rec))
			result, err = p.reject(ctx, log, file, req.CorrelationID, genericErrorMessage, nil)
		}
	}()

	storageKey := req.StorageKey
	if storageKey == "" {
		storageKey = file.StorageKey
	}

	rc, err := p.blobs.Download(ctx, storageKey)
	if err != nil {
		log.Error("failed to download file contents", zap.String("storage_key", storageKey), zap.Error(err))
		return p.reject(ctx, log, file, req.CorrelationID, "failed to download file contents", nil)
	}
	defer rc.Close()

	parsed, err := p.parser.Parse(rc)
	if err != nil {
		log.Error("failed to read file contents", zap.Error(err))
		return p.reject(ctx, log, file, req.CorrelationID, genericErrorMessage, nil)
	}

	if !parsed.Valid {
		log.Info("file rejected by validation", zap.Int("errors", len(parsed.Errors)))
		return p.reject(ctx, log, file, req.CorrelationID, summarize(parsed.Errors), parsed.Errors)
	}

	// Повторная доставка могла успеть записать транзакции до нас
	existing, err := p.transactions.CountByFileID(ctx, file.ID)
	if err != nil {
		log.Error("failed to check existing transactions", zap.Error(err))
		return p.reject(ctx, log, file, req.CorrelationID, genericErrorMessage, nil)
	}
	if existing > 0 {
		log.Info("transactions already exist, skipping insert", zap.Int64("existing", existing))
		return p.complete(ctx, log, file, req.CorrelationID, &domain.BatchResult{})
	}

	batches, err := p.groupByStore(ctx, file.ID, parsed.Records)
	if err != nil {
		log.Error("failed to resolve stores", zap.Error(err))
		return p.reject(ctx, log, file, req.CorrelationID, genericErrorMessage, nil)
	}

	applied, err := p.transactions.ApplyBatch(ctx, file.ID, batches)
	if err != nil {
		if errors.Is(err, postgres.ErrBatchAlreadyApplied) {
			log.Info("batch already applied by a concurrent run")
			return p.complete(ctx, log, file, req.CorrelationID, &domain.BatchResult{})
		}
		log.Error("failed to apply transaction batch", zap.Error(err))
		return p.reject(ctx, log, file, req.CorrelationID, "failed to persist transactions", nil)
	}

	log.Info("file processed",
		zap.Int("transactions", applied.TransactionsInserted),
		zap.Int("stores_created", applied.StoresCreated),
	)

	return p.complete(ctx, log, file, req.CorrelationID, applied)
}

// groupByStore группирует записи по составному ключу (владелец, название)
// и резолвит каждый ключ в существующий или новый магазин. Каждый ключ
// ищется в репозитории не более одного раза за прогон
func (p *Processor) groupByStore(ctx context.Context, fileID int64, records []*cnab.Record) ([]domain.StoreBatch, error) {
	type storeKey struct {
		owner, name string
	}

	index := make(map[storeKey]int)
	var batches []domain.StoreBatch

	for _, rec := range records {
		key := storeKey{owner: rec.StoreOwner, name: rec.StoreName}

		i, ok := index[key]
		if !ok {
			store, err := p.stores.GetStoreByKey(ctx, key.owner, key.name)
			if err != nil {
				if !errors.Is(err, postgres.ErrStoreNotFound) {
					return nil, fmt.Errorf("processor: failed to look up store %q/%q: %w", key.owner, key.name, err)
				}
				// Новый магазин: создается при применении партии
				store = &domain.Store{OwnerName: key.owner, Name: key.name}
			}
			batches = append(batches, domain.StoreBatch{Store: store})
			i = len(batches) - 1
			index[key] = i
		}

		batches[i].Transactions = append(batches[i].Transactions, &domain.Transaction{
			FileID:            fileID,
			Type:              rec.Type,
			AmountCents:       rec.AmountCents,
			SignedAmountCents: rec.SignedAmountCents(),
			OccurredOn:        rec.OccurredOn,
			OccurredAt:        rec.OccurredAt,
			PayerDocument:     rec.PayerDocument,
			CardNumber:        rec.CardNumber,
		})
	}

	return batches, nil
}

// complete переводит файл в PROCESSED и отправляет уведомление.
// Запись конечного статуса идет на контексте, отвязанном от отмены
// вызывающего: обрыв клиента не должен оставить файл в PROCESSING
func (p *Processor) complete(ctx context.Context, log *zap.Logger, file *domain.File, correlationID string, applied *domain.BatchResult) (*domain.ProcessResult, error) {
	ctx = context.WithoutCancel(ctx)

	if err := p.files.MarkProcessed(ctx, file.ID); err != nil {
		log.Error("failed to mark file processed", zap.Error(err))
		return nil, fmt.Errorf("processor: failed to mark file %d processed: %w", file.ID, err)
	}

	p.notify(ctx, log, domain.FileEvent{
		FileID:               file.ID,
		Status:               domain.FileStatusProcessed,
		CorrelationID:        correlationID,
		TransactionsInserted: applied.TransactionsInserted,
	})

	return &domain.ProcessResult{
		Success:              true,
		Status:               domain.FileStatusProcessed,
		TransactionsInserted: applied.TransactionsInserted,
		StoresUpserted:       applied.StoresCreated,
	}, nil
}

// reject переводит файл в REJECTED с коротким сообщением и полным
// списком ошибок, затем отправляет уведомление. Как и complete,
// пишет конечный статус на контексте без отмены
func (p *Processor) reject(ctx context.Context, log *zap.Logger, file *domain.File, correlationID, message string, validationErrors []string) (*domain.ProcessResult, error) {
	ctx = context.WithoutCancel(ctx)

	if err := p.files.MarkRejected(ctx, file.ID, message, validationErrors); err != nil {
		log.Error("failed to mark file rejected", zap.Error(err))
		return nil, fmt.Errorf("processor: failed to mark file %d rejected: %w", file.ID, err)
	}

	p.notify(ctx, log, domain.FileEvent{
		FileID:        file.ID,
		Status:        domain.FileStatusRejected,
		CorrelationID: correlationID,
		ErrorMessage:  message,
	})

	return &domain.ProcessResult{
		Success:          false,
		Status:           domain.FileStatusRejected,
		ErrorMessage:     message,
		ValidationErrors: validationErrors,
	}, nil
}

// notify отправляет событие; сбой уведомления не влияет на итог обработки
func (p *Processor) notify(ctx context.Context, log *zap.Logger, event domain.FileEvent) {
	if err := p.notifier.NotifyFileProcessed(ctx, event); err != nil {
		log.Warn("failed to deliver webhook notification", zap.Error(err))
	}
}

// terminalResult строит результат для файла в конечном статусе
func terminalResult(file *domain.File) (*domain.ProcessResult, bool) {
	switch file.Status {
	case domain.FileStatusProcessed:
		return &domain.ProcessResult{
			Success: true,
			Status:  domain.FileStatusProcessed,
		}, true
	case domain.FileStatusRejected:
		res := &domain.ProcessResult{
			Success:          false,
			Status:           domain.FileStatusRejected,
			ValidationErrors: file.ValidationErrors,
		}
		if file.ErrorMessage != nil {
			res.ErrorMessage = *file.ErrorMessage
		}
		return res, true
	}
	return nil, false
}

// summarize собирает короткое сообщение из первых ошибок
func summarize(errs []string) string {
	if len(errs) > errorSummaryLimit {
		errs = errs[:errorSummaryLimit]
	}
	return strings.Join(errs, "; ")
}
