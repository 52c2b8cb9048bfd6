package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultWeatherBaseURL = "http://apis.data.go.kr/1360000/VilageFcstInfoService_2.0"

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// District store (необязательно)
	DatabaseURL      string        `env:"DATABASE_URL"`
	DirectoryTimeout time.Duration `env:"DIRECTORY_TIMEOUT" envDefault:"3s"`
	MigrationsPath   string        `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis Config, пустой адрес отключает кэш и очередь оповещений
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// KMA weather API
	WeatherAPIKey          string        `env:"WEATHER_API_KEY"`
	WeatherBaseURL         string        `env:"WEATHER_BASE_URL"`
	WeatherTimezone        string        `env:"WEATHER_TIMEZONE" envDefault:"Asia/Seoul"`
	WeatherCurrentTimeout  time.Duration `env:"WEATHER_CURRENT_TIMEOUT" envDefault:"4s"`
	WeatherForecastTimeout time.Duration `env:"WEATHER_FORECAST_TIMEOUT" envDefault:"5s"`
	WeatherCacheTTL        time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"10m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		DirectoryTimeout:       getEnvAsDuration("DIRECTORY_TIMEOUT", 3*time.Second),
		MigrationsPath:         getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		WeatherAPIKey:          os.Getenv("WEATHER_API_KEY"),
		WeatherBaseURL:         getEnv("WEATHER_BASE_URL", defaultWeatherBaseURL),
		WeatherTimezone:        getEnv("WEATHER_TIMEZONE", "Asia/Seoul"),
		WeatherCurrentTimeout:  getEnvAsDuration("WEATHER_CURRENT_TIMEOUT", 4*time.Second),
		WeatherForecastTimeout: getEnvAsDuration("WEATHER_FORECAST_TIMEOUT", 5*time.Second),
		WeatherCacheTTL:        getEnvAsDuration("WEATHER_CACHE_TTL", 10*time.Minute),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		APIKeys:                getEnvAsList("API_KEYS"),
		CORSAllowedOrigins:     getEnvAsList("CORS_ALLOWED_ORIGINS"),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.WeatherAPIKey == "" {
		return fmt.Errorf("WEATHER_API_KEY environment variable is required")
	}
	if c.WeatherBaseURL == "" {
		return fmt.Errorf("WEATHER_BASE_URL must not be empty")
	}
	// Каждый исходящий вызов обязан быть ограничен по времени
	timeouts := map[string]time.Duration{
		"DIRECTORY_TIMEOUT":        c.DirectoryTimeout,
		"WEATHER_CURRENT_TIMEOUT":  c.WeatherCurrentTimeout,
		"WEATHER_FORECAST_TIMEOUT": c.WeatherForecastTimeout,
		"WEBHOOK_TIMEOUT":          c.WebhookTimeout,
	}
	for name, d := range timeouts {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, d)
		}
	}
	if c.WebhookMaxRetries < 1 {
		return fmt.Errorf("WEBHOOK_MAX_RETRIES must be at least 1, got %d", c.WebhookMaxRetries)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список значений, разделенных запятыми
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
