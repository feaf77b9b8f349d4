package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/wildfire_dashboard/internal/config"
	"github.com/sirupsen/logrus"
)

// ScarWorker - доставляет события анализа на WEBHOOK_URL
type ScarWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(time.Duration)
}

// NewScarWorker создает новый ScarWorker
func NewScarWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *ScarWorker {
	return &ScarWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: time.Sleep,
	}
}

// Start запускает горутину обработки очереди
func (w *ScarWorker) Start(ctx context.Context) {
	w.logger.Info("Starting scar webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping scar webhook worker.")
				return
			default:
				// BRPOP блокируется до появления события; 0 - без таймаута
				result, err := w.redisClient.BRPop(ctx, 0, webhookQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop scar event from Redis")
					w.sleep(w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event ScarEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal scar event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

// deliver отправляет событие с экспоненциальной задержкой между попытками.
// Возвращает true при успешной доставке.
func (w *ScarWorker) deliver(ctx context.Context, event ScarEvent, rawPayload string) bool {
	log := w.logger.WithField("analysis_id", event.AnalysisID).WithField("area_ha", event.AreaHectares)
	log.Debug("Processing scar event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	baseDelay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		delivered, err := w.send(ctx, rawPayload)
		if delivered {
			log.Info("Webhook delivered successfully.")
			return true
		}
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
		}
		if i < maxRetries-1 {
			w.sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
		}
	}

	log.Errorf("Failed to deliver webhook for event after %d retries.", maxRetries)
	return false
}

func (w *ScarWorker) send(ctx context.Context, rawPayload string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return true, nil
	}
	return false, &statusError{code: resp.StatusCode}
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "webhook endpoint responded with " + http.StatusText(e.code)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
