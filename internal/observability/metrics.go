package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for feed loading and the map API.
type Metrics struct {
	FeedFetches       *prometheus.CounterVec   // labels: overlay, outcome={success,error}
	FeedFetchDuration *prometheus.HistogramVec // labels: overlay
	FeaturesRendered  *prometheus.CounterVec   // labels: overlay
	FeaturesSkipped   *prometheus.CounterVec   // labels: overlay
	EventSubscribers  prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FeedFetches,
		m.FeedFetchDuration,
		m.FeaturesRendered,
		m.FeaturesSkipped,
		m.EventSubscribers,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as
// many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FeedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_map",
			Name:      "feed_fetches_total",
			Help:      "Feed fetches by overlay and outcome.",
		}, []string{"overlay", "outcome"}),
		FeedFetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quake_map",
			Name:      "feed_fetch_duration_seconds",
			Help:      "Time to fetch and decode a feed.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"overlay"}),
		FeaturesRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_map",
			Name:      "features_rendered_total",
			Help:      "Layers added to each overlay group.",
		}, []string{"overlay"}),
		FeaturesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_map",
			Name:      "features_skipped_total",
			Help:      "Malformed feed features skipped per overlay.",
		}, []string{"overlay"}),
		EventSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake_map",
			Name:      "event_subscribers",
			Help:      "Open overlay event streams.",
		}),
	}
}
