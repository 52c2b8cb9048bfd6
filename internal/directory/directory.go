package directory

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/observability"
	"github.com/shenikar/flood_risk_system/pkg/postgres"
)

//go:generate mockgen -source=directory.go -destination=mocks/mock_directory.go -package=mocks

// DocumentStore - удаленное хранилище документов районов (коллекция cities)
type DocumentStore interface {
	ListDistricts(ctx context.Context) ([]models.District, error)
}

// Directory отдает упорядоченный список районов: из хранилища, а при любой проблеме - из встроенной таблицы.
// Переход на встроенную таблицу действует только для текущего запроса.
type Directory struct {
	store   DocumentStore
	timeout time.Duration
	logger  *logrus.Logger
	metrics *observability.Metrics
}

// NewDirectory создает справочник; store может быть nil, если хранилище не настроено
func NewDirectory(store DocumentStore, timeout time.Duration, metrics *observability.Metrics, logger *logrus.Logger) *Directory {
	return &Directory{
		store:   store,
		timeout: timeout,
		logger:  logger,
		metrics: metrics,
	}
}

// Lookup никогда не возвращает ошибку и пустой список
func (d *Directory) Lookup(ctx context.Context) []models.District {
	if d.store == nil {
		return d.fallback(reasonNotConfigured, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	districts, err := d.store.ListDistricts(ctx)
	if err != nil {
		return d.fallback(fallbackReason(err), err)
	}
	if len(districts) == 0 {
		return d.fallback("empty", nil)
	}
	return districts
}

const reasonNotConfigured = "not_configured"

func (d *Directory) fallback(reason string, err error) []models.District {
	log := d.logger.WithFields(logrus.Fields{
		"component": "directory",
		"reason":    reason,
	})
	if err != nil {
		log = log.WithError(err)
	}
	// Отсутствие DATABASE_URL - штатный режим, о нем уже сказано при старте
	if reason == reasonNotConfigured {
		log.Debug("District store not configured, using embedded district table")
	} else {
		log.Warn("District store unavailable, using embedded district table")
	}
	d.metrics.Degradations.WithLabelValues("directory", reason).Inc()
	return FallbackDistricts()
}

func fallbackReason(err error) string {
	var unavailable *postgres.UnavailableError
	switch {
	case errors.Is(err, postgres.ErrNotConfigured):
		return reasonNotConfigured
	case errors.As(err, &unavailable):
		return "unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
