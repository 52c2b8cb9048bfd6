package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "flood_risk"

// Metrics - коллекторы Prometheus для конвейера оценки риска
type Metrics struct {
	Predictions      prometheus.Counter
	Degradations     *prometheus.CounterVec   // метки: component={directory,resolver,current,forecast,cache,alert}, reason
	UpstreamDuration *prometheus.HistogramVec // метки: product={current,forecast}
	CacheLookups     *prometheus.CounterVec   // метки: product, result={hit,miss}
	RiskScore        prometheus.Histogram
	AlertsPublished  prometheus.Counter
}

// NewMetrics создает метрики и регистрирует их в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Predictions,
		m.Degradations,
		m.UpstreamDuration,
		m.CacheLookups,
		m.RiskScore,
		m.AlertsPublished,
	)
	return m
}

// NewMetricsForTesting создает метрики без регистрации, чтобы в тестах можно было создавать сколько угодно экземпляров
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Predictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Total flood risk predictions served.",
		}),
		Degradations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degradations_total",
			Help:      "Pipeline steps that fell back to a default value, by component and reason.",
		}, []string{"component", "reason"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "KMA API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 4, 5},
		}, []string{"product"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_cache_lookups_total",
			Help:      "Weather cache lookups by product and result.",
		}, []string{"product", "result"}),
		RiskScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "risk_score",
			Help:      "Distribution of computed risk scores.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 99},
		}),
		AlertsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_published_total",
			Help:      "Severe flood alerts queued for webhook delivery.",
		}),
	}
}
