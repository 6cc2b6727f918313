package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments exposed by the /metrics endpoint.
// Each server owns its own registry so tests can create instances freely
// without colliding on the global default.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	comparisonsTotal prometheus.Counter
	mismatchesTotal  prometheus.Counter
	failuresTotal    *prometheus.CounterVec
	engineDuration   *prometheus.HistogramVec
	activeRequests   prometheus.Gauge
}

// NewMetrics creates and registers the server's Prometheus instruments.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		comparisonsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datakit_comparisons_total",
			Help: "Number of engine comparisons performed.",
		}),
		mismatchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datakit_mismatches_total",
			Help: "Number of comparisons where the engines disagreed beyond tolerance.",
		}),
		failuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "datakit_failures_total",
			Help: "Number of failed requests, by failure kind.",
		}, []string{"kind"}),
		engineDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "datakit_engine_duration_seconds",
			Help:    "Wall-clock duration of a single engine computation.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"engine"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "datakit_active_requests",
			Help: "Number of requests currently being served.",
		}),
	}

	registry.MustRegister(
		m.comparisonsTotal,
		m.mismatchesTotal,
		m.failuresTotal,
		m.engineDuration,
		m.activeRequests,
	)

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Handler returns the HTTP handler serving the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler { return m.handler }

// ObserveComparison records a completed comparison and its engine timings.
func (m *Metrics) ObserveComparison(scalarTime, vectorizedTime time.Duration, areEqual bool) {
	m.comparisonsTotal.Inc()
	if !areEqual {
		m.mismatchesTotal.Inc()
	}
	m.engineDuration.WithLabelValues("scalar").Observe(scalarTime.Seconds())
	m.engineDuration.WithLabelValues("vectorized").Observe(vectorizedTime.Seconds())
}

// ObserveFailure records a failed request by kind ("parse", "validation",
// "internal").
func (m *Metrics) ObserveFailure(kind string) {
	m.failuresTotal.WithLabelValues(kind).Inc()
}

// IncrementActiveRequests marks the start of a request.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests marks the end of a request.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }
