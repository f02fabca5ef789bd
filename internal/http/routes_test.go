package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/mocks"
	"github.com/guttosm/quote-optimizer/internal/repository"
	"github.com/guttosm/quote-optimizer/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewOptimizeRoutes(t *testing.T) {
	optimizer := mocks.NewMockOptimizer(t)
	handler := NewHandler(optimizer, nil)

	t.Run("without pool and history", func(t *testing.T) {
		routes := NewOptimizeRoutes(handler, nil, nil)

		assert.Equal(t, handler, routes.handler)
		assert.Nil(t, routes.jobs)
		assert.Nil(t, routes.runs)
	})

	t.Run("with pool and history", func(t *testing.T) {
		pool := worker.NewPool(optimizer, worker.DefaultConfig())
		t.Cleanup(pool.Stop)

		routes := NewOptimizeRoutes(handler, pool, mocks.NewMockRunService(t))

		assert.NotNil(t, routes.jobs)
		assert.NotNil(t, routes.runs)
	})
}

func TestOptimizeRoutes_RegisterRoutes(t *testing.T) {
	optimizer := mocks.NewMockOptimizer(t)
	pool := worker.NewPool(optimizer, worker.DefaultConfig())
	t.Cleanup(pool.Stop)

	tests := []struct {
		name       string
		pool       *worker.Pool
		withRuns   bool
		method     string
		path       string
		registered bool
	}{
		{"optimize always registered", nil, false, http.MethodPost, "/api/optimize", true},
		{"submit job with pool", pool, false, http.MethodPost, "/api/optimize/jobs", true},
		{"job status with pool", pool, false, http.MethodGet, "/api/optimize/jobs/x", true},
		{"job events with pool", pool, false, http.MethodGet, "/api/optimize/jobs/x/events", true},
		{"submit job without pool", nil, false, http.MethodPost, "/api/optimize/jobs", false},
		{"job events without pool", nil, false, http.MethodGet, "/api/optimize/jobs/x/events", false},
		{"runs with history", nil, true, http.MethodGet, "/api/runs/x", true},
		{"runs without history", nil, false, http.MethodGet, "/api/runs", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := mocks.NewMockRunService(t)
			var routes *OptimizeRoutes
			if tt.withRuns {
				runs.EXPECT().Get(mock.Anything, "x").Return(nil, repository.ErrRunNotFound)
				routes = NewOptimizeRoutes(NewHandler(optimizer, nil), tt.pool, runs)
			} else {
				routes = NewOptimizeRoutes(NewHandler(optimizer, nil), tt.pool, nil)
			}

			router := gin.New()
			routes.RegisterRoutes(router.Group("/api"), &RouterConfig{RequestTimeout: time.Second})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// gin answers unknown routes with a plain text 404.
			unrouted := w.Code == http.StatusNotFound && w.Body.String() == "404 page not found"
			assert.Equal(t, tt.registered, !unrouted)
		})
	}
}
