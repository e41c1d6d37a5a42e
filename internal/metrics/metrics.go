// Package metrics provides Prometheus metrics collection for the cargo service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PackRunsTotal counts packing runs by container and outcome.
	PackRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargo_pack_runs_total",
			Help: "Total number of packing runs",
		},
		[]string{"container", "status"},
	)

	// PackRunDuration tracks packing run duration.
	PackRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cargo_pack_run_duration_seconds",
			Help:    "Packing run duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	// UnitsTotal counts placed and unpacked units.
	UnitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargo_units_total",
			Help: "Total number of units processed by outcome",
		},
		[]string{"outcome"},
	)

	// Utilization tracks the volume and weight utilization of packing results.
	Utilization = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cargo_utilization_percent",
			Help:    "Container utilization percentage of packing results",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
		[]string{"kind"},
	)

	// SnapOperationsTotal counts snap requests by which axes snapped.
	SnapOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargo_snap_operations_total",
			Help: "Total number of snap operations",
		},
		[]string{"snapped"},
	)

	// ManualEditsTotal counts manual placement edits.
	ManualEditsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargo_manual_edits_total",
			Help: "Total number of manual placement edits",
		},
		[]string{"operation", "status"},
	)

	// ReportsTotal counts generated documents by format.
	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargo_reports_total",
			Help: "Total number of generated load plan documents",
		},
		[]string{"format", "status"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// PanicsTotal counts handler panics recovered by route.
	PanicsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Total number of recovered handler panics",
		},
		[]string{"path"},
	)

	// AuditEntriesTotal counts access and audit entries by outcome.
	AuditEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargo_audit_entries_total",
			Help: "Total number of log entries handed to the audit writer by outcome",
		},
		[]string{"outcome"},
	)

	// IdempotencyTotal counts Idempotency-Key lookups by result.
	IdempotencyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_idempotency_total",
			Help: "Total number of idempotent requests by result",
		},
		[]string{"result"},
	)

	// RateLimitedTotal counts throttled requests by limiter scope.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by a rate limiter",
		},
		[]string{"scope"},
	)

	// CircuitBreakerState reports breaker state: 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordPackRun records metrics for a completed packing run.
func RecordPackRun(container string, duration time.Duration, placed, unpacked int, volumePct, weightPct float64) {
	PackRunDuration.Observe(duration.Seconds())
	PackRunsTotal.WithLabelValues(container, "success").Inc()
	UnitsTotal.WithLabelValues("placed").Add(float64(placed))
	UnitsTotal.WithLabelValues("unpacked").Add(float64(unpacked))
	Utilization.WithLabelValues("volume").Observe(volumePct)
	Utilization.WithLabelValues("weight").Observe(weightPct)
}

// RecordPackRunError records a packing run that was rejected.
func RecordPackRunError(container string) {
	PackRunsTotal.WithLabelValues(container, "error").Inc()
}

// RecordSnap records a snap operation.
func RecordSnap(x, y, z bool) {
	label := ""
	for _, axis := range []struct {
		on   bool
		name string
	}{{x, "x"}, {y, "y"}, {z, "z"}} {
		if axis.on {
			label += axis.name
		}
	}
	if label == "" {
		label = "none"
	}
	SnapOperationsTotal.WithLabelValues(label).Inc()
}

// RecordManualEdit records a manual placement edit.
func RecordManualEdit(operation, status string) {
	ManualEditsTotal.WithLabelValues(operation, status).Inc()
}

// RecordReport records a generated document.
func RecordReport(format, status string) {
	ReportsTotal.WithLabelValues(format, status).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState publishes the numeric state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordPanic records a recovered panic on path.
func RecordPanic(path string) {
	PanicsTotal.WithLabelValues(path).Inc()
}

// RecordAuditEntries records n log entries with the given outcome.
func RecordAuditEntries(outcome string, n int) {
	AuditEntriesTotal.WithLabelValues(outcome).Add(float64(n))
}

// RecordIdempotency records an idempotency lookup result.
func RecordIdempotency(result string) {
	IdempotencyTotal.WithLabelValues(result).Inc()
}

// RecordRateLimited records a throttled request.
func RecordRateLimited(scope string) {
	RateLimitedTotal.WithLabelValues(scope).Inc()
}
