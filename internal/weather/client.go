package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/shenikar/flood_risk_system/internal/observability"
)

const (
	currentEndpoint  = "getUltraSrtNcst"
	forecastEndpoint = "getVilageFcst"

	// Наблюдения возвращают 8 категорий, прогноз - ~12 категорий на каждый час горизонта
	currentRows  = 10
	forecastRows = 300
)

// Cache - кэш разобранных ответов КМА
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Client ходит в VilageFcstInfoService_2.0 за текущими наблюдениями и краткосрочным прогнозом
type Client struct {
	baseURL         string
	serviceKey      string
	currentTimeout  time.Duration
	forecastTimeout time.Duration
	location        *time.Location
	clock           clockwork.Clock
	httpClient      *http.Client
	logger          *logrus.Logger
	metrics         *observability.Metrics

	cache    Cache
	cacheTTL time.Duration
}

// NewClient создает клиента КМА. Если часовой пояс не загружается, используется фиксированный KST.
func NewClient(cfg *config.Config, clock clockwork.Clock, metrics *observability.Metrics, logger *logrus.Logger) *Client {
	loc, err := time.LoadLocation(cfg.WeatherTimezone)
	if err != nil {
		logger.WithError(err).WithField("timezone", cfg.WeatherTimezone).Warn("Failed to load weather timezone, using fixed KST offset")
		loc = time.FixedZone("KST", 9*60*60)
	}

	return &Client{
		baseURL:         cfg.WeatherBaseURL,
		serviceKey:      cfg.WeatherAPIKey,
		currentTimeout:  cfg.WeatherCurrentTimeout,
		forecastTimeout: cfg.WeatherForecastTimeout,
		location:        loc,
		clock:           clock,
		// Таймауты задаются контекстом отдельно для каждого продукта
		httpClient: &http.Client{},
		logger:     logger,
		metrics:    metrics,
	}
}

// WithCache включает сквозное кэширование успешных ответов
func (c *Client) WithCache(cache Cache, ttl time.Duration) *Client {
	c.cache = cache
	c.cacheTTL = ttl
	return c
}

// Current возвращает текущие наблюдения для ячейки сетки (nx, ny)
func (c *Client) Current(ctx context.Context, nx, ny int) (models.WeatherObservation, error) {
	base := CurrentBaseTime(c.now())
	key := cacheKey(ProductCurrent, base, nx, ny)

	var cached models.WeatherObservation
	if c.fromCache(ctx, ProductCurrent, key, &cached) {
		return cached, nil
	}

	items, err := c.fetch(ctx, ProductCurrent, currentEndpoint, currentRows, c.currentTimeout, base, nx, ny)
	if err != nil {
		return models.WeatherObservation{}, err
	}

	obs, err := parseObservation(items)
	if err != nil {
		return models.WeatherObservation{}, newError(ProductCurrent, KindParse, err)
	}

	c.toCache(ctx, key, obs)
	return obs, nil
}

// Forecast возвращает пиковое значение PCP по всем временным слотам прогноза
func (c *Client) Forecast(ctx context.Context, nx, ny int) (models.ForecastSummary, error) {
	base := ForecastBaseTime(c.now())
	key := cacheKey(ProductForecast, base, nx, ny)

	var cached models.ForecastSummary
	if c.fromCache(ctx, ProductForecast, key, &cached) {
		return cached, nil
	}

	items, err := c.fetch(ctx, ProductForecast, forecastEndpoint, forecastRows, c.forecastTimeout, base, nx, ny)
	if err != nil {
		return models.ForecastSummary{}, err
	}

	summary, err := parseForecast(items)
	if err != nil {
		return models.ForecastSummary{}, newError(ProductForecast, KindParse, err)
	}

	c.toCache(ctx, key, summary)
	return summary, nil
}

func (c *Client) now() time.Time {
	return c.clock.Now().In(c.location)
}

func (c *Client) fetch(ctx context.Context, product Product, endpoint string, rows int, timeout time.Duration, base BaseTime, nx, ny int) ([]kmaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	params := url.Values{
		"serviceKey": {c.serviceKey},
		"pageNo":     {"1"},
		"numOfRows":  {strconv.Itoa(rows)},
		"dataType":   {"JSON"},
		"base_date":  {base.Date},
		"base_time":  {base.Time},
		"nx":         {strconv.Itoa(nx)},
		"ny":         {strconv.Itoa(ny)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, newError(product, KindTransport, fmt.Errorf("create request: %w", err))
	}

	c.logger.WithFields(logrus.Fields{
		"product":   product,
		"base_date": base.Date,
		"base_time": base.Time,
		"nx":        nx,
		"ny":        ny,
	}).Debug("Requesting KMA weather data")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(string(product)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, newError(product, classify(err), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, newError(product, KindStatus, fmt.Errorf("status %d: %s", resp.StatusCode, body))
	}

	var payload kmaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if kind := classify(err); kind == KindTimeout {
			return nil, newError(product, kind, err)
		}
		return nil, newError(product, KindDecode, fmt.Errorf("decode response: %w", err))
	}

	header := payload.Response.Header
	if header.ResultCode != resultCodeOK {
		return nil, newError(product, KindUpstream, fmt.Errorf("result code %q: %s", header.ResultCode, header.ResultMsg))
	}

	items := payload.Response.Body.Items.Item
	if len(items) == 0 {
		return nil, newError(product, KindUpstream, errors.New("empty item list"))
	}
	return items, nil
}

func classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindTransport
}

func cacheKey(product Product, base BaseTime, nx, ny int) string {
	return fmt.Sprintf("kma:%s:%s%s:%d:%d", product, base.Date, base.Time, nx, ny)
}

// fromCache: ошибка кэша трактуется как промах
func (c *Client) fromCache(ctx context.Context, product Product, key string, dst any) bool {
	if c.cache == nil {
		return false
	}

	hit, err := c.cache.Get(ctx, key, dst)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Weather cache lookup failed")
		c.metrics.Degradations.WithLabelValues("cache", "get").Inc()
		hit = false
	}

	result := "miss"
	if hit {
		result = "hit"
	}
	c.metrics.CacheLookups.WithLabelValues(string(product), result).Inc()
	return hit
}

func (c *Client) toCache(ctx context.Context, key string, value any) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, value, c.cacheTTL); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to store weather data in cache")
		c.metrics.Degradations.WithLabelValues("cache", "set").Inc()
	}
}
