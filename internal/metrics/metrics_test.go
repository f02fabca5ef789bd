package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.POST("/api/optimize", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cost": 870})
	})
	router.GET("/api/runs/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	tests := []struct {
		name       string
		method     string
		target     string
		wantLabels []string
	}{
		{
			name:       "optimization",
			method:     http.MethodPost,
			target:     "/api/optimize",
			wantLabels: []string{http.MethodPost, "/api/optimize", "200"},
		},
		{
			name:       "run ids collapse into the route template",
			method:     http.MethodGet,
			target:     "/api/runs/r-123",
			wantLabels: []string{http.MethodGet, "/api/runs/:id", "404"},
		},
		{
			name:       "unknown paths share one series",
			method:     http.MethodGet,
			target:     "/wp-login.php",
			wantLabels: []string{http.MethodGet, unmatchedRoute, "404"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := HTTPRequestTotal.WithLabelValues(tt.wantLabels...)
			before := testutil.ToFloat64(counter)

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
			assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
		})
	}
}

func TestRecordOptimization(t *testing.T) {
	before := testutil.ToFloat64(OptimizationsTotal.WithLabelValues("miss", "satisfied"))

	RecordOptimization("miss", "satisfied", 3, 2*time.Millisecond)

	after := testutil.ToFloat64(OptimizationsTotal.WithLabelValues("miss", "satisfied"))
	assert.Equal(t, before+1, after)
}

func TestRecordViolation(t *testing.T) {
	before := testutil.ToFloat64(ViolationsTotal.WithLabelValues("moq"))

	RecordViolation("moq")
	RecordViolation("moq")

	assert.Equal(t, before+2, testutil.ToFloat64(ViolationsTotal.WithLabelValues("moq")))
}

func TestRecordCacheOperation(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))

	RecordCacheOperation("get", "hit")

	assert.Equal(t, before+1, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit")))
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(50, 100)

	assert.Equal(t, 50.0, testutil.ToFloat64(CacheSize))
	assert.Equal(t, 100.0, testutil.ToFloat64(CacheCapacity))
}

func TestRecordWorkerJob(t *testing.T) {
	before := testutil.ToFloat64(WorkerJobsTotal.WithLabelValues("failed"))

	RecordWorkerJob("failed")

	assert.Equal(t, before+1, testutil.ToFloat64(WorkerJobsTotal.WithLabelValues("failed")))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("runs", 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("runs")))

	SetCircuitBreakerState("runs", 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("runs")))
}

func TestRecordAuditEntries(t *testing.T) {
	before := testutil.ToFloat64(AuditEntriesTotal.WithLabelValues("written"))

	RecordAuditEntries("written", 50)

	assert.Equal(t, before+50, testutil.ToFloat64(AuditEntriesTotal.WithLabelValues("written")))
}
