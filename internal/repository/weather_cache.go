package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WeatherCache хранит разобранные ответы КМА в Redis
type WeatherCache struct {
	redisClient *redis.Client
}

func NewWeatherCache(redisClient *redis.Client) *WeatherCache {
	return &WeatherCache{
		redisClient: redisClient,
	}
}

// Get пытается получить значение из Redis; (false, nil) означает промах
func (c *WeatherCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get weather data from cache: %w", err)
	}

	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal weather data from cache: %w", err)
	}
	return true, nil
}

// Set сохраняет значение в Redis с заданным сроком жизни
func (c *WeatherCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal weather data for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set weather data in cache: %w", err)
	}
	return nil
}
