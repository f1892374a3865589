package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/cnab-ledger/internal/domain"
	"github.com/avc/cnab-ledger/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Файл в PROCESSING дольше этого срока считается брошенным упавшим
// процессом и возвращается в очередь
const defaultStaleAfter = 5 * time.Minute

// PoolConfig содержит настройки worker pool
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
	StaleAfter   time.Duration
}

// Pool представляет пул воркеров для обработки загруженных файлов
type Pool struct {
	workers      int
	queue        chan int64
	fileRepo     domain.FileRepository
	processor    domain.FileProcessor
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration
	staleAfter   time.Duration

	mu     sync.Mutex
	closed bool
}

// NewPool создает новый worker pool
func NewPool(
	cfg PoolConfig,
	fileRepo domain.FileRepository,
	processor domain.FileProcessor,
	logger *zap.Logger,
) *Pool {
	staleAfter := cfg.StaleAfter
	if staleAfter <= 0 {
		staleAfter = defaultStaleAfter
	}

	return &Pool{
		workers:      cfg.Workers,
		queue:        make(chan int64, cfg.QueueSize),
		fileRepo:     fileRepo,
		processor:    processor,
		logger:       logger,
		scanInterval: cfg.ScanInterval,
		staleAfter:   staleAfter,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер необработанных файлов
	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool. Повторный вызов безопасен
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

// Enqueue отправляет файл в очередь без ожидания сканера.
// Возвращает false, если очередь заполнена или pool остановлен.
// Отправка и закрытие канала сериализованы одним мьютексом:
// отправка в закрытый канал невозможна
func (p *Pool) Enqueue(fileID int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}

	select {
	case p.queue <- fileID:
		return true
	default:
		p.logger.Warn("queue is full, file will be picked up by scanner", zap.Int64("file_id", fileID))
		return false
	}
}

// worker обрабатывает файлы из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case fileID, ok := <-p.queue:
			if !ok {
				return
			}
			p.processFile(ctx, fileID)
		}
	}
}

// scanner периодически сканирует файлы в статусе UPLOADED
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanPendingFiles(ctx)
		}
	}
}

// scanPendingFiles возвращает зависшие PROCESSING файлы в UPLOADED
// и отправляет необработанные файлы в очередь
func (p *Pool) scanPendingFiles(ctx context.Context) {
	requeued, err := p.fileRepo.RequeueStaleProcessing(ctx, p.staleAfter)
	if err != nil {
		p.logger.Error("failed to requeue stale processing files", zap.Error(err))
	} else if requeued > 0 {
		p.logger.Warn("requeued stale processing files", zap.Int64("count", requeued))
	}

	files, err := p.fileRepo.GetPendingFiles(ctx)
	if err != nil {
		p.logger.Error("failed to get pending files", zap.Error(err))
		return
	}

	for _, file := range files {
		if !p.Enqueue(file.ID) {
			// Очередь заполнена или pool остановлен, файл попадет в следующий скан
			return
		}
	}
}

// processFile обрабатывает один файл
func (p *Pool) processFile(ctx context.Context, fileID int64) {
	correlationID := uuid.NewString()

	p.logger.Debug("processing file",
		zap.Int64("file_id", fileID),
		zap.String("correlation_id", correlationID),
	)

	result, err := p.processor.Process(ctx, domain.ProcessRequest{
		FileID:        fileID,
		CorrelationID: correlationID,
	})
	if err != nil {
		// Файл уже взят другим воркером: не ошибка, а штатная гонка
		if errors.Is(err, service.ErrFileBusy) {
			p.logger.Debug("file is busy, skipping", zap.Int64("file_id", fileID))
			return
		}

		p.logger.Error("failed to process file",
			zap.Int64("file_id", fileID),
			zap.String("correlation_id", correlationID),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("file processing finished",
		zap.Int64("file_id", fileID),
		zap.String("correlation_id", correlationID),
		zap.String("status", string(result.Status)),
		zap.Int("transactions", result.TransactionsInserted),
	)
}
