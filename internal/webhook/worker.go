package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_risk_system/internal/config"
)

// Время блокировки BRPOP, после которого цикл проверяет отмену контекста
const popTimeout = 5 * time.Second

const signatureHeader = "X-Webhook-Signature"

// Worker забирает оповещения из очереди Redis и доставляет их на WEBHOOK_URL
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	clock       clockwork.Clock
	httpClient  *http.Client
}

func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config, clock clockwork.Clock) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		clock:       clock,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Run обрабатывает очередь до отмены контекста
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Starting flood alert worker...")
	defer w.logger.Info("Stopping flood alert worker.")

	for {
		if ctx.Err() != nil {
			return
		}

		result, err := w.redisClient.BRPop(ctx, popTimeout, alertQueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			w.logger.WithError(err).Error("Failed to pop flood alert event from Redis")
			if !w.sleep(ctx, w.cfg.WebhookTimeout) {
				return
			}
			continue
		}

		// result[0] - ключ, result[1] - значение
		payload := []byte(result[1])
		var event FloodAlertEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			w.logger.WithError(err).Error("Failed to unmarshal flood alert event from Redis")
			continue
		}

		w.Deliver(ctx, event, payload)
	}
}

// Deliver отправляет событие с экспоненциальной задержкой между попытками
func (w *Worker) Deliver(ctx context.Context, event FloodAlertEvent, rawPayload []byte) bool {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"district":   event.District,
		"risk_score": event.RiskScore,
	})
	log.Debug("Processing flood alert event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping alert delivery.")
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.send(ctx, rawPayload)
		if err == nil {
			log.Info("Flood alert delivered successfully.")
			return true
		}

		retriesLeft := maxRetries - 1 - i
		log.WithError(err).Warnf("Flood alert delivery failed. Retries left: %d", retriesLeft)
		if retriesLeft == 0 {
			break
		}
		if !w.sleep(ctx, delay) {
			return false
		}
		delay *= 2
	}

	log.Errorf("Failed to deliver flood alert after %d attempts.", maxRetries)
	return false
}

func (w *Worker) send(ctx context.Context, rawPayload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(rawPayload))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Подпись добавляется только если задан WEBHOOK_SECRET
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	return nil
}

func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-w.clock.After(d):
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
