// Package metrics provides Prometheus metrics collection for the quote optimizer.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration is labelled by method, route template and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "HTTP requests currently being served",
		},
	)

	// OptimizationsTotal counts optimizations by cache result (hit, miss, bypass) and outcome.
	OptimizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optimizations_total",
			Help: "Total number of per-item optimizations",
		},
		[]string{"cache", "outcome"},
	)

	// OptimizationDuration tracks allocator run time.
	OptimizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "optimization_duration_seconds",
			Help:    "Per-item optimization duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)

	// OptimizationOffers tracks how many offers each optimization receives.
	OptimizationOffers = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "optimization_offers",
			Help:    "Number of offers per optimization",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 500},
		},
	)

	// ViolationsTotal counts reported constraint violations by kind.
	ViolationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optimization_violations_total",
			Help: "Total number of constraint violations reported",
		},
		[]string{"kind"},
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

	// WorkerQueueDepth is the number of jobs waiting for a worker.
	WorkerQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Jobs waiting in the optimization queue",
		},
	)

	// WorkerJobsInFlight is the number of jobs currently running.
	WorkerJobsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_jobs_in_flight",
			Help: "Optimization jobs currently running",
		},
	)

	// WorkerJobsTotal counts jobs by terminal status (succeeded, failed, rejected).
	WorkerJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_total",
			Help: "Total number of optimization jobs by status",
		},
		[]string{"status"},
	)

	// AuditEntriesTotal counts async audit log entries by result (written, failed, dropped).
	AuditEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_log_entries_total",
			Help: "Audit log entries by write result",
		},
		[]string{"result"},
	)

	// CircuitBreakerState exposes breaker state: 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

// unmatchedRoute labels requests no route matched, keeping scanner traffic
// from minting a series per URL.
const unmatchedRoute = "unmatched"

// PrometheusMiddleware records request counts, latency and in-flight requests
// labelled by route template.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		HTTPRequestsInFlight.Inc()
		start := time.Now()

		c.Next()

		HTTPRequestsInFlight.Dec()
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		labels := prometheus.Labels{
			"method":      c.Request.Method,
			"path":        route,
			"status_code": strconv.Itoa(c.Writer.Status()),
		}
		HTTPRequestDuration.With(labels).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.With(labels).Inc()
	}
}

// RecordOptimization records one optimization. Duration and offer count are
// only observed for runs that actually executed the allocator.
func RecordOptimization(cacheResult, outcome string, offers int, duration time.Duration) {
	if cacheResult != "hit" {
		OptimizationDuration.Observe(duration.Seconds())
		OptimizationOffers.Observe(float64(offers))
	}
	OptimizationsTotal.WithLabelValues(cacheResult, outcome).Inc()
}

// RecordViolation counts one violation of the given kind.
func RecordViolation(kind string) {
	ViolationsTotal.WithLabelValues(kind).Inc()
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

// RecordWorkerJob counts a job reaching the given status.
func RecordWorkerJob(status string) {
	WorkerJobsTotal.WithLabelValues(status).Inc()
}

// SetCircuitBreakerState publishes the numeric state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordAuditEntries adds n audit entries with the given result.
func RecordAuditEntries(result string, n int) {
	AuditEntriesTotal.WithLabelValues(result).Add(float64(n))
}
