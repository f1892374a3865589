package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc/cnab-ledger/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// ErrCircuitOpen возвращается, когда breaker разомкнут и запрос не отправлялся
var ErrCircuitOpen = errors.New("notifier: circuit breaker is open")

const (
	defaultFailureThreshold = 5
	defaultCooldown         = 30 * time.Second
	requestTimeout          = 10 * time.Second
)

// WebhookNotifier отправляет события обработки файлов на внешний URL
type WebhookNotifier struct {
	url     string
	client  *retryablehttp.Client
	breaker *CircuitBreaker
	logger  *zap.Logger
}

// NewWebhookNotifier создает notifier с ретраями и circuit breaker
func NewWebhookNotifier(url string, logger *zap.Logger) *WebhookNotifier {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = requestTimeout
	client.Logger = nil // Логируем сами через zap

	return &WebhookNotifier{
		url:     url,
		client:  client,
		breaker: NewCircuitBreaker(defaultFailureThreshold, defaultCooldown),
		logger:  logger,
	}
}

// NotifyFileProcessed отправляет событие о конечном статусе файла
func (n *WebhookNotifier) NotifyFileProcessed(ctx context.Context, event domain.FileEvent) error {
	if !n.breaker.Allow() {
		return ErrCircuitOpen
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("notifier: failed to marshal event for file %d: %w", event.FileID, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, "POST", n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notifier: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.breaker.Failure()
		return fmt.Errorf("notifier: failed to deliver event for file %d: %w", event.FileID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.breaker.Failure()
		return fmt.Errorf("notifier: unexpected status code %d for file %d", resp.StatusCode, event.FileID)
	}

	n.breaker.Success()
	n.logger.Debug("webhook delivered",
		zap.Int64("file_id", event.FileID),
		zap.String("status", string(event.Status)),
	)

	return nil
}

// NoopNotifier используется, когда webhook не сконфигурирован
type NoopNotifier struct{}

// NotifyFileProcessed ничего не делает
func (NoopNotifier) NotifyFileProcessed(context.Context, domain.FileEvent) error {
	return nil
}
