package loader

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "discoverytools"

// Fetch outcomes recorded in the fetches_total "outcome" label.
const (
	OutcomeSuccess    = "success"
	OutcomeHTTPError  = "http_error"
	OutcomeError      = "error"
	OutcomeParseError = "parse_error"
)

// Metrics holds the Prometheus metrics recorded by a Loader.
// A nil *Metrics records nothing.
type Metrics struct {
	Fetches       *prometheus.CounterVec
	CacheLookups  *prometheus.CounterVec
	FetchDuration prometheus.Histogram
}

// NewMetrics creates the loader metrics and registers them with reg.
// A nil reg creates unregistered metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Fetches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "loader",
			Name:      "fetches_total",
			Help:      "Total number of discovery document fetches by API and outcome",
		}, []string{"api", "outcome"}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "loader",
			Name:      "cache_lookups_total",
			Help:      "Total number of schema cache lookups by result (hit or miss)",
		}, []string{"result"}),
		FetchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "loader",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of discovery document fetch, parse and normalization",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}),
	}
}

func (m *Metrics) observeLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) observeFetch(api, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Fetches.WithLabelValues(api, outcome).Inc()
	m.FetchDuration.Observe(elapsed.Seconds())
}
