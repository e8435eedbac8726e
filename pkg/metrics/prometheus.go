// Package metrics provides Prometheus metrics for the CrewSync backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace string
	registry  prometheus.Registerer

	// Recommendation pipeline metrics
	recommendationsTotal    prometheus.Counter
	recommendationsEmpty    prometheus.Counter
	recommendationLatency   prometheus.Histogram
	recommendationsReturned prometheus.Histogram

	// Roster metrics
	rosterSize      prometheus.Gauge
	availableCrew   prometheus.Gauge
	standbyPoolSize prometheus.Gauge

	// Assignment metrics
	assignmentsTotal  prometheus.Counter
	assignmentErrors  prometheus.Counter
	rebuildDurationMS prometheus.Histogram
	rebuildCount      prometheus.Counter

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
	errorsByType        *prometheus.CounterVec

	// System performance metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithPrometheusRegistry sets the registry metrics are registered against.
func WithPrometheusRegistry(reg prometheus.Registerer) Option {
	return func(m *Manager) {
		if reg != nil {
			m.registry = reg
		}
	}
}

// WithNamespace sets the metric namespace prefix.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "crewsync",
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.recommendationsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "recommendations_total",
		Help:      "Total number of recommendation requests served",
	})
	m.recommendationsEmpty = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "recommendations_empty_total",
		Help:      "Recommendation requests where no candidate survived filtering",
	})
	m.recommendationLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "recommendation_latency_ms",
		Help:      "Recommendation pipeline latency in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100},
	})
	m.recommendationsReturned = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "recommendations_returned",
		Help:      "Number of candidates returned per recommendation request",
		Buckets:   []float64{0, 1, 2, 3, 5, 10, 20},
	})

	m.rosterSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "roster_size",
		Help:      "Number of crew members in the active roster snapshot",
	})
	m.availableCrew = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "available_crew",
		Help:      "Number of crew members currently available",
	})
	m.standbyPoolSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "standby_pool_size",
		Help:      "Number of crew members in the standby pool",
	})

	m.assignmentsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "assignments_total",
		Help:      "Total number of successful crew assignments",
	})
	m.assignmentErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "assignment_errors_total",
		Help:      "Crew assignment attempts rejected or failed",
	})
	m.rebuildDurationMS = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "engine_rebuild_duration_ms",
		Help:      "Duration of roster re-index and engine swap in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500},
	})
	m.rebuildCount = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "engine_rebuild_total",
		Help:      "Total number of engine rebuilds",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"endpoint", "method", "status_code"})
	m.errorsByEndpoint = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "errors_by_endpoint_total",
		Help:      "HTTP errors by endpoint, method and error type",
	}, []string{"endpoint", "method", "error_type"})
	m.errorsByType = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "errors_by_type_total",
		Help:      "Errors by type and severity",
	}, []string{"error_type", "severity"})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_memory_bytes",
		Help:      "Current allocated memory in bytes",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
	m.systemGCPauseTime = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "system_gc_pause_ms",
		Help:      "Average GC pause time in milliseconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	})
}

// Package-level helpers against the global manager.

// RecordRecommendation records one served recommendation request.
func RecordRecommendation(returned int, latencyMS float64) {
	globalManager.recommendationsTotal.Inc()
	globalManager.recommendationLatency.Observe(latencyMS)
	globalManager.recommendationsReturned.Observe(float64(returned))
	if returned == 0 {
		globalManager.recommendationsEmpty.Inc()
	}
}

// UpdateRosterSize sets the active roster size gauge.
func UpdateRosterSize(n int) {
	globalManager.rosterSize.Set(float64(n))
}

// UpdateAvailableCrew sets the available crew gauge.
func UpdateAvailableCrew(n int) {
	globalManager.availableCrew.Set(float64(n))
}

// UpdateStandbyPoolSize sets the standby pool gauge.
func UpdateStandbyPoolSize(n int) {
	globalManager.standbyPoolSize.Set(float64(n))
}

// RecordAssignment records a successful crew assignment.
func RecordAssignment() {
	globalManager.assignmentsTotal.Inc()
}

// RecordAssignmentError records a rejected or failed assignment attempt.
func RecordAssignmentError() {
	globalManager.assignmentErrors.Inc()
}

// RecordEngineRebuild records one roster re-index and engine swap.
func RecordEngineRebuild(durationMS float64) {
	globalManager.rebuildCount.Inc()
	globalManager.rebuildDurationMS.Observe(durationMS)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMS float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMS)
}

// RecordErrorByEndpoint records an HTTP error against its endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType records an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorsByType.WithLabelValues(errorType, severity).Inc()
}

// UpdateSystemMemoryUsage sets the allocated-memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records an average GC pause observation.
func RecordSystemGCPauseTime(pauseMS float64) {
	globalManager.systemGCPauseTime.Observe(pauseMS)
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
