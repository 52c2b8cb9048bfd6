package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/flood_risk_system/internal/directory"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/observability"
	"github.com/shenikar/flood_risk_system/internal/risk"
	"github.com/shenikar/flood_risk_system/internal/weather"
	"github.com/shenikar/flood_risk_system/internal/webhook"
)

//go:generate mockgen -source=flood.go -destination=mocks/mock_flood.go -package=mocks

// DistrictResolver сопоставляет свободный текст адреса с районом справочника
type DistrictResolver interface {
	Resolve(ctx context.Context, text string) (models.District, bool)
	Districts(ctx context.Context) []models.District
}

// WeatherGateway - источник текущих наблюдений и прогноза для ячейки сетки
type WeatherGateway interface {
	Current(ctx context.Context, nx, ny int) (models.WeatherObservation, error)
	Forecast(ctx context.Context, nx, ny int) (models.ForecastSummary, error)
}

// FloodRiskService определяет контракт бизнес-логики оценки риска подтопления
type FloodRiskService interface {
	PredictFloodRisk(ctx context.Context, location string, lat, lon float64) *models.RiskAssessment
	ListDistricts(ctx context.Context) []models.District
}

type floodRiskService struct {
	resolver  DistrictResolver
	weather   WeatherGateway
	publisher webhook.AlertPublisher
	clock     clockwork.Clock
	metrics   *observability.Metrics
	logger    *logrus.Logger
}

func NewFloodRiskService(
	resolver DistrictResolver,
	weather WeatherGateway,
	publisher webhook.AlertPublisher,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	logger *logrus.Logger,
) FloodRiskService {
	return &floodRiskService{
		resolver:  resolver,
		weather:   weather,
		publisher: publisher,
		clock:     clock,
		metrics:   metrics,
		logger:    logger,
	}
}

// PredictFloodRisk всегда возвращает оценку: любой сбой по пути заменяется нулевым значением
func (s *floodRiskService) PredictFloodRisk(ctx context.Context, location string, lat, lon float64) *models.RiskAssessment {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "flood",
		"method":   "PredictFloodRisk",
		"location": location,
		"lat":      lat,
		"lon":      lon,
	})
	log.Info("Predicting flood risk")

	district, ok := s.resolver.Resolve(ctx, location)
	if !ok {
		log.Warn("No district matched the location, using default district")
		s.metrics.Degradations.WithLabelValues("resolver", "no_match").Inc()
		district = directory.DefaultDistrict
	}
	log = log.WithFields(logrus.Fields{
		"district": district.Name,
		"nx":       district.GridX,
		"ny":       district.GridY,
	})

	var (
		current  models.WeatherObservation
		forecast models.ForecastSummary
	)
	// Ошибки не возвращаются из горутин: каждая деградирует самостоятельно
	var g errgroup.Group
	g.Go(func() error {
		obs, err := s.weather.Current(ctx, district.GridX, district.GridY)
		if err != nil {
			s.degradeWeather(log, weather.ProductCurrent, err)
			return nil
		}
		current = obs
		return nil
	})
	g.Go(func() error {
		summary, err := s.weather.Forecast(ctx, district.GridX, district.GridY)
		if err != nil {
			s.degradeWeather(log, weather.ProductForecast, err)
			return nil
		}
		forecast = summary
		return nil
	})
	_ = g.Wait()

	currentRain := nonNegative(current.RainfallMM)
	forecastRain := nonNegative(forecast.MaxRainfallMM)
	baseDepth := nonNegative(district.BaseDepth)

	score := risk.Score(currentRain, forecastRain, baseDepth)
	advisory := risk.Compose(location, score, currentRain, forecastRain, current.TemperatureC)

	assessment := &models.RiskAssessment{
		Location:         location,
		District:         district,
		Score:            score,
		WaterLevel:       risk.WaterLevel(currentRain, forecastRain, baseDepth),
		CurrentRainfall:  currentRain,
		ForecastRainfall: forecastRain,
		WindSpeed:        current.WindSpeedMS,
		Temperature:      current.TemperatureC,
		Tier:             advisory.Tier,
		Advisory:         advisory.Text,
	}

	s.metrics.Predictions.Inc()
	s.metrics.RiskScore.Observe(float64(score))

	if assessment.Tier == models.TierSevere {
		s.publishAlert(ctx, log, assessment)
	}

	log.WithFields(logrus.Fields{
		"score": score,
		"tier":  assessment.Tier,
	}).Info("Flood risk predicted")
	return assessment
}

// ListDistricts отдает справочник в порядке поиска
func (s *floodRiskService) ListDistricts(ctx context.Context) []models.District {
	return s.resolver.Districts(ctx)
}

func (s *floodRiskService) degradeWeather(log *logrus.Entry, product weather.Product, err error) {
	reason := weather.Reason(err)
	log.WithError(err).WithFields(logrus.Fields{
		"product": product,
		"reason":  reason,
	}).Warn("Weather data unavailable, using zero values")
	s.metrics.Degradations.WithLabelValues(string(product), reason).Inc()
}

func (s *floodRiskService) publishAlert(ctx context.Context, log *logrus.Entry, a *models.RiskAssessment) {
	event := webhook.FloodAlertEvent{
		ID:           uuid.New(),
		Location:     a.Location,
		District:     a.District.Name,
		RiskScore:    a.Score,
		Rainfall:     a.CurrentRainfall,
		ForecastRain: a.ForecastRainfall,
		WaterLevel:   a.WaterLevel,
		Comment:      a.Advisory,
		Timestamp:    s.clock.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish flood alert")
		s.metrics.Degradations.WithLabelValues("alert", "publish").Inc()
		return
	}
	s.metrics.AlertsPublished.Inc()
	log.WithField("event_id", event.ID).Info("Flood alert published")
}

// nonNegative также отбрасывает NaN
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
