package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	alertQueueKey = "flood_alert_events"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// FloodAlertEvent - оповещение о районе с высоким уровнем риска
type FloodAlertEvent struct {
	ID           uuid.UUID `json:"id"`
	Location     string    `json:"location"`
	District     string    `json:"district"`
	RiskScore    int       `json:"risk_score"`
	Rainfall     float64   `json:"rainfall"`
	ForecastRain float64   `json:"forecast_rain"`
	WaterLevel   float64   `json:"water_level"`
	Comment      string    `json:"comment"`
	Timestamp    time.Time `json:"timestamp"`
}

// AlertPublisher - интерфейс для публикации оповещений
type AlertPublisher interface {
	Publish(ctx context.Context, event FloodAlertEvent) error
}

// RedisAlertPublisher кладет оповещения в очередь Redis, откуда их забирает Worker
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event FloodAlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal flood alert event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish flood alert event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда Redis недоступен
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, FloodAlertEvent) error { return nil }
