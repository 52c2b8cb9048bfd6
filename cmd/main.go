package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/directory"
	v1 "github.com/shenikar/flood_risk_system/internal/handler/http/v1"
	"github.com/shenikar/flood_risk_system/internal/observability"
	"github.com/shenikar/flood_risk_system/internal/repository"
	"github.com/shenikar/flood_risk_system/internal/service"
	"github.com/shenikar/flood_risk_system/internal/weather"
	"github.com/shenikar/flood_risk_system/internal/webhook"
	"github.com/shenikar/flood_risk_system/pkg/logger"
	"github.com/shenikar/flood_risk_system/pkg/postgres"
	redisclient "github.com/shenikar/flood_risk_system/pkg/redis"

	_ "github.com/shenikar/flood_risk_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Flood Risk System API
// @version 1.0
// @description Flood risk prediction for Korean districts based on KMA rainfall observations and forecasts.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()

	// Хранилище районов необязательно: без него работает встроенная таблица
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.WithError(err).Warn("Database migrations failed, district directory may fall back to the built-in table")
		}
	} else {
		log.Warn("DATABASE_URL is not set, using the built-in district table")
	}

	// Подключение к PostgreSQL выполняется лениво при первом запросе и укладывается в DIRECTORY_TIMEOUT
	dbHandle := postgres.NewHandle(cfg.DatabaseURL, cfg.DirectoryTimeout)
	defer dbHandle.Close()

	// Redis необязателен: без него нет кэша погоды и оповещений
	var (
		weatherCache   weather.Cache
		alertPublisher webhook.AlertPublisher = webhook.NopPublisher{}
	)
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Warn("Redis is unavailable, weather cache and flood alerts are disabled")
		} else {
			defer redisClient.Close()
			log.Info("Successfully connected to Redis")

			weatherCache = repository.NewWeatherCache(redisClient)
			alertPublisher = webhook.NewRedisAlertPublisher(redisClient)

			// Инициализация и запуск воркера оповещений
			alertWorker := webhook.NewWorker(redisClient, log, cfg, clock)
			go alertWorker.Run(ctx)
		}
	}

	// Инициализация репозиториев и справочника
	districtRepo := repository.NewDistrictRepository(dbHandle, log)
	districtDirectory := directory.NewDirectory(districtRepo, cfg.DirectoryTimeout, metrics, log)
	resolver := directory.NewSubstringResolver(districtDirectory)

	weatherClient := weather.NewClient(cfg, clock, metrics, log)
	if weatherCache != nil {
		weatherClient.WithCache(weatherCache, cfg.WeatherCacheTTL)
	}

	// Инициализация сервисов
	floodService := service.NewFloodRiskService(resolver, weatherClient, alertPublisher, clock, metrics, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(floodService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.CORSMiddleware(cfg.CORSAllowedOrigins))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	handler.RegisterLegacyRoutes(router)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер оповещений
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
