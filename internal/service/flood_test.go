package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/flood_risk_system/internal/directory"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/observability"
	"github.com/shenikar/flood_risk_system/internal/service/mocks"
	"github.com/shenikar/flood_risk_system/internal/weather"
	"github.com/shenikar/flood_risk_system/internal/webhook"
	webhook_mocks "github.com/shenikar/flood_risk_system/internal/webhook/mocks"
)

var gangnam = models.District{Name: "강남구", Latitude: 37.5172, Longitude: 127.0474, GridX: 61, GridY: 126, BaseDepth: 0.5}

type testDeps struct {
	resolver  *mocks.MockDistrictResolver
	weather   *mocks.MockWeatherGateway
	publisher *webhook_mocks.MockAlertPublisher
	metrics   *observability.Metrics
	clock     *clockwork.FakeClock
}

// newTestFloodRiskService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestFloodRiskService(t *testing.T) (FloodRiskService, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		resolver:  mocks.NewMockDistrictResolver(ctrl),
		weather:   mocks.NewMockWeatherGateway(ctrl),
		publisher: webhook_mocks.NewMockAlertPublisher(ctrl),
		metrics:   observability.NewMetricsForTesting(),
		clock:     clockwork.NewFakeClockAt(time.Date(2026, 7, 15, 5, 44, 0, 0, time.UTC)),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewFloodRiskService(deps.resolver, deps.weather, deps.publisher, deps.clock, deps.metrics, logger)
	return service, deps
}

func TestPredictFloodRisk_Warning(t *testing.T) {
	// Подготовка
	service, deps := newTestFloodRiskService(t)
	ctx := context.Background()
	location := "서울특별시 강남구 역삼동"

	// Ожидания
	deps.resolver.EXPECT().Resolve(ctx, location).Return(gangnam, true)
	deps.weather.EXPECT().Current(ctx, 61, 126).
		Return(models.WeatherObservation{RainfallMM: 40, TemperatureC: 23.4, WindSpeedMS: 5.2}, nil)
	deps.weather.EXPECT().Forecast(ctx, 61, 126).
		Return(models.ForecastSummary{MaxRainfallMM: 60}, nil)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	assessment := service.PredictFloodRisk(ctx, location, 37.5, 127.03)

	// Проверки
	require.NotNil(t, assessment)
	assert.Equal(t, 71, assessment.Score)
	assert.InDelta(t, 1.2, assessment.WaterLevel, 1e-9)
	assert.Equal(t, models.TierWarning, assessment.Tier)
	assert.Equal(t, gangnam, assessment.District)
	assert.InDelta(t, 40, assessment.CurrentRainfall, 1e-9)
	assert.InDelta(t, 60, assessment.ForecastRainfall, 1e-9)
	assert.InDelta(t, 5.2, assessment.WindSpeed, 1e-9)
	assert.InDelta(t, 23.4, assessment.Temperature, 1e-9)
	assert.Contains(t, assessment.Advisory, location)
	assert.Contains(t, assessment.Advisory, "60.0mm")

	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.Predictions))
	assert.Equal(t, 0, testutil.CollectAndCount(deps.metrics.Degradations))
}

func TestPredictFloodRisk_SeverePublishesAlert(t *testing.T) {
	service, deps := newTestFloodRiskService(t)
	ctx := context.Background()
	lowland := models.District{Name: "저지대구", GridX: 58, GridY: 125, BaseDepth: 5}

	deps.resolver.EXPECT().Resolve(ctx, "저지대구 1동").Return(lowland, true)
	deps.weather.EXPECT().Current(ctx, 58, 125).Return(models.WeatherObservation{RainfallMM: 80}, nil)
	deps.weather.EXPECT().Forecast(ctx, 58, 125).Return(models.ForecastSummary{MaxRainfallMM: 120}, nil)

	var published webhook.FloodAlertEvent
	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.FloodAlertEvent) error {
			published = event
			return nil
		}).
		Times(1)

	assessment := service.PredictFloodRisk(ctx, "저지대구 1동", 0, 0)

	assert.Equal(t, 85, assessment.Score)
	assert.Equal(t, models.TierSevere, assessment.Tier)

	assert.NotEmpty(t, published.ID)
	assert.Equal(t, "저지대구 1동", published.Location)
	assert.Equal(t, "저지대구", published.District)
	assert.Equal(t, 85, published.RiskScore)
	assert.InDelta(t, 80, published.Rainfall, 1e-9)
	assert.InDelta(t, 120, published.ForecastRain, 1e-9)
	assert.InDelta(t, assessment.WaterLevel, published.WaterLevel, 1e-9)
	assert.Equal(t, assessment.Advisory, published.Comment)
	assert.Equal(t, deps.clock.Now().UTC(), published.Timestamp)
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.AlertsPublished))
}

func TestPredictFloodRisk_PublishErrorIsNotFatal(t *testing.T) {
	service, deps := newTestFloodRiskService(t)
	ctx := context.Background()
	lowland := models.District{Name: "저지대구", GridX: 58, GridY: 125, BaseDepth: 5}

	deps.resolver.EXPECT().Resolve(ctx, gomock.Any()).Return(lowland, true)
	deps.weather.EXPECT().Current(ctx, 58, 125).Return(models.WeatherObservation{RainfallMM: 80}, nil)
	deps.weather.EXPECT().Forecast(ctx, 58, 125).Return(models.ForecastSummary{MaxRainfallMM: 120}, nil)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis: connection refused"))

	assessment := service.PredictFloodRisk(ctx, "저지대구", 0, 0)

	require.NotNil(t, assessment)
	assert.Equal(t, models.TierSevere, assessment.Tier)
	assert.Equal(t, 0.0, testutil.ToFloat64(deps.metrics.AlertsPublished))
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.Degradations.WithLabelValues("alert", "publish")))
}

func TestPredictFloodRisk_CurrentFailureDegradesToZero(t *testing.T) {
	service, deps := newTestFloodRiskService(t)
	ctx := context.Background()

	deps.resolver.EXPECT().Resolve(ctx, gomock.Any()).Return(gangnam, true)
	deps.weather.EXPECT().Current(ctx, 61, 126).
		Return(models.WeatherObservation{}, &weather.Error{Product: weather.ProductCurrent, Kind: weather.KindTimeout, Err: context.DeadlineExceeded})
	deps.weather.EXPECT().Forecast(ctx, 61, 126).Return(models.ForecastSummary{MaxRainfallMM: 60}, nil)

	assessment := service.PredictFloodRisk(ctx, "강남구", 0, 0)

	assert.Equal(t, 29, assessment.Score)
	assert.Zero(t, assessment.CurrentRainfall)
	assert.Zero(t, assessment.Temperature)
	assert.Zero(t, assessment.WindSpeed)
	assert.Equal(t, models.TierWarning, assessment.Tier)
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.Degradations.WithLabelValues("current", "timeout")))
}

func TestPredictFloodRisk_AllUpstreamsFail(t *testing.T) {
	service, deps := newTestFloodRiskService(t)
	ctx := context.Background()

	deps.resolver.EXPECT().Resolve(ctx, gomock.Any()).Return(gangnam, true)
	deps.weather.EXPECT().Current(ctx, 61, 126).
		Return(models.WeatherObservation{}, &weather.Error{Product: weather.ProductCurrent, Kind: weather.KindStatus, Err: errors.New("status 503")})
	deps.weather.EXPECT().Forecast(ctx, 61, 126).
		Return(models.ForecastSummary{}, &weather.Error{Product: weather.ProductForecast, Kind: weather.KindUpstream, Err: errors.New("result code 03")})

	assessment := service.PredictFloodRisk(ctx, "강남구", 0, 0)

	assert.Equal(t, 1, assessment.Score)
	assert.InDelta(t, 0.5, assessment.WaterLevel, 1e-9)
	assert.Equal(t, models.TierClear, assessment.Tier)
	assert.Contains(t, assessment.Advisory, "0.0°C")
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.Degradations.WithLabelValues("current", "status")))
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.Degradations.WithLabelValues("forecast", "upstream")))
}

func TestPredictFloodRisk_UnknownLocationUsesDefaultDistrict(t *testing.T) {
	service, deps := newTestFloodRiskService(t)
	ctx := context.Background()

	deps.resolver.EXPECT().Resolve(ctx, "Atlantis").Return(models.District{}, false)
	deps.weather.EXPECT().
		Current(ctx, directory.DefaultDistrict.GridX, directory.DefaultDistrict.GridY).
		Return(models.WeatherObservation{RainfallMM: 2.5, TemperatureC: 21}, nil)
	deps.weather.EXPECT().
		Forecast(ctx, directory.DefaultDistrict.GridX, directory.DefaultDistrict.GridY).
		Return(models.ForecastSummary{MaxRainfallMM: 10}, nil)

	assessment := service.PredictFloodRisk(ctx, "Atlantis", 0, 0)

	assert.Equal(t, directory.DefaultDistrict, assessment.District)
	assert.Equal(t, models.TierRaining, assessment.Tier)
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.Degradations.WithLabelValues("resolver", "no_match")))
}

func TestPredictFloodRisk_ClampsNegativeRainfall(t *testing.T) {
	service, deps := newTestFloodRiskService(t)
	ctx := context.Background()

	deps.resolver.EXPECT().Resolve(ctx, gomock.Any()).Return(gangnam, true)
	deps.weather.EXPECT().Current(ctx, 61, 126).Return(models.WeatherObservation{RainfallMM: -3, TemperatureC: 18}, nil)
	deps.weather.EXPECT().Forecast(ctx, 61, 126).Return(models.ForecastSummary{MaxRainfallMM: -1}, nil)

	assessment := service.PredictFloodRisk(ctx, "강남구", 0, 0)

	assert.Equal(t, 1, assessment.Score)
	assert.Zero(t, assessment.CurrentRainfall)
	assert.Zero(t, assessment.ForecastRainfall)
	assert.InDelta(t, 0.5, assessment.WaterLevel, 1e-9)
	assert.Equal(t, models.TierClear, assessment.Tier)
}

func TestListDistricts(t *testing.T) {
	service, deps := newTestFloodRiskService(t)
	ctx := context.Background()
	districts := directory.FallbackDistricts()

	deps.resolver.EXPECT().Districts(ctx).Return(districts)

	assert.Equal(t, districts, service.ListDistricts(ctx))
}
