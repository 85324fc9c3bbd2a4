package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/leonardotrapani/chromagen/internal/harmony"
)

// metrics live on a per-server registry so tests can build several servers.
type metrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	palettes  *prometheus.CounterVec
	fallbacks prometheus.Counter
}

func newMetrics(cache *harmony.Cache) *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &metrics{
		registry: reg,

		// requests counts API requests by route and status
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chromagen_http_requests_total",
			Help: "Total API requests by route and status",
		}, []string{"route", "status"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chromagen_http_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30},
		}, []string{"route"}),

		palettes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chromagen_palettes_generated_total",
			Help: "Total palettes generated by harmony rule and mood",
		}, []string{"harmony", "mood"}),

		fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "chromagen_resolver_failures_total",
			Help: "Total prompt resolutions that fell back to the default seed",
		}),
	}

	factory.NewCounterFunc(prometheus.CounterOpts{
		Name: "chromagen_cache_hits_total",
		Help: "Total harmony cache hits",
	}, func() float64 {
		hits, _ := cache.Stats()
		return float64(hits)
	})
	factory.NewCounterFunc(prometheus.CounterOpts{
		Name: "chromagen_cache_misses_total",
		Help: "Total harmony cache misses",
	}, func() float64 {
		_, misses := cache.Stats()
		return float64(misses)
	})
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "chromagen_cache_entries",
		Help: "Palettes currently held in the harmony cache",
	}, func() float64 {
		return float64(cache.Len())
	})

	return m
}

// observePalette keeps label cardinality bounded: model output can name any
// rule or mood.
func (m *metrics) observePalette(spec harmony.Spec) {
	rule, mood := "other", "other"
	if spec.Harmony.Known() {
		rule = string(spec.Harmony)
	}
	if spec.Mood.Known() {
		mood = string(spec.Mood)
	}
	m.palettes.WithLabelValues(rule, mood).Inc()
}
