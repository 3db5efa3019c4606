package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides Prometheus metrics for the facet toolkit.
type Metrics struct {
	config MetricsConfig

	// Document metrics
	documentsLoaded *prometheus.CounterVec
	loadDuration    *prometheus.HistogramVec
	loadErrors      *prometheus.CounterVec

	// Comparison metrics
	comparisons     *prometheus.CounterVec
	compareDuration prometheus.Histogram
	changesFound    prometheus.Histogram

	// Value operation metrics
	valueOperations   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec

	// Watch metrics
	watchReloads  *prometheus.CounterVec
	activeWatches prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates a new metrics collector with the given configuration.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	if !cfg.Enabled {
		// Return a no-op metrics instance
		return &Metrics{config: cfg}, nil
	}

	namespace := cfg.Namespace
	buckets := cfg.DefaultHistogramBuckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	// Create a new registry
	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,

		// Document metrics
		documentsLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "documents_loaded_total",
				Help:      "Total number of documents loaded and parsed",
			},
			[]string{"format"},
		),
		loadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "document_load_duration_seconds",
				Help:      "Duration of document load and parse in seconds",
				Buckets:   buckets,
			},
			[]string{"format"},
		),
		loadErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "document_load_errors_total",
				Help:      "Total number of document load failures",
			},
			[]string{"format"},
		),

		// Comparison metrics
		comparisons: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "comparisons_total",
				Help:      "Total number of structural comparisons",
			},
			[]string{"result"},
		),
		compareDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "compare_duration_seconds",
				Help:      "Duration of structural comparisons in seconds",
				Buckets:   buckets,
			},
		),
		changesFound: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "changes_found",
				Help:      "Number of changes reported per diff",
				Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
			},
		),

		// Value operation metrics
		valueOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "value_operations_total",
				Help:      "Total number of structural value operations",
			},
			[]string{"operation"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "value_operation_duration_seconds",
				Help:      "Duration of structural value operations in seconds",
				Buckets:   buckets,
			},
			[]string{"operation"},
		),

		// Watch metrics
		watchReloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "watch_reloads_total",
				Help:      "Total number of watch-triggered reloads",
			},
			[]string{"status"},
		),
		activeWatches: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_watches",
				Help:      "Current number of watched documents",
			},
		),
	}

	// Register all metrics
	registry.MustRegister(
		m.documentsLoaded,
		m.loadDuration,
		m.loadErrors,
		m.comparisons,
		m.compareDuration,
		m.changesFound,
		m.valueOperations,
		m.operationDuration,
		m.watchReloads,
		m.activeWatches,
	)

	return m, nil
}

// Document Metrics

// RecordDocumentLoaded records a successful document load with its duration.
func (m *Metrics) RecordDocumentLoaded(format string, duration time.Duration) {
	if m.documentsLoaded == nil {
		return
	}
	m.documentsLoaded.WithLabelValues(format).Inc()
	m.loadDuration.WithLabelValues(format).Observe(duration.Seconds())
}

// RecordLoadError records a failed document load.
func (m *Metrics) RecordLoadError(format string) {
	if m.loadErrors == nil {
		return
	}
	m.loadErrors.WithLabelValues(format).Inc()
}

// Comparison Metrics

// RecordComparison records a structural comparison with its outcome and duration.
func (m *Metrics) RecordComparison(equal bool, changes int, duration time.Duration) {
	if m.comparisons == nil {
		return
	}
	result := "equal"
	if !equal {
		result = "different"
	}
	m.comparisons.WithLabelValues(result).Inc()
	m.compareDuration.Observe(duration.Seconds())
	m.changesFound.Observe(float64(changes))
}

// Value Operation Metrics

// RecordValueOperation records a structural value operation with its duration.
func (m *Metrics) RecordValueOperation(operation string, duration time.Duration) {
	if m.valueOperations == nil {
		return
	}
	m.valueOperations.WithLabelValues(operation).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// Watch Metrics

// RecordWatchReload records a watch-triggered reload.
func (m *Metrics) RecordWatchReload(status string) {
	if m.watchReloads == nil {
		return
	}
	m.watchReloads.WithLabelValues(status).Inc()
}

// SetActiveWatches sets the current number of watched documents.
func (m *Metrics) SetActiveWatches(count float64) {
	if m.activeWatches == nil {
		return
	}
	m.activeWatches.Set(count)
}

// Timer provides a convenient way to time operations.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the elapsed time since the timer was created.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ObserveDuration is a helper to time an operation and record it.
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(t.Duration().Seconds())
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// StartMetricsServer starts an HTTP server to expose metrics.
func (m *Metrics) StartMetricsServer() error {
	if !m.config.Enabled {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(m.config.Path, m.Handler())

	server := &http.Server{
		Addr:              m.config.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			// Log error but don't fail the application
			fmt.Printf("metrics server error: %v\n", err)
		}
	}()

	return nil
}
