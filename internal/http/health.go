package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/circuitbreaker"
	"github.com/guttosm/quote-optimizer/internal/logger"
	"golang.org/x/sync/errgroup"
)

const (
	defaultProbeTimeout = 2 * time.Second
	maxConcurrentProbes = 4
)

// HealthChecker is a dependency probed by the readiness endpoint, such as
// the run history store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CheckFunc adapts a function to HealthChecker.
type CheckFunc func(ctx context.Context) error

// HealthCheck calls f.
func (f CheckFunc) HealthCheck(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	probeTimeout    time.Duration
}

// NewHealthHandler creates a HealthHandler with no dependencies registered.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		probeTimeout:    defaultProbeTimeout,
	}
}

// RegisterChecker adds a dependency probe reported under name.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker reports cb under name+"_circuit". An open circuit
// makes the service not ready.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[name] = cb
}

// Register mounts /healthz and /readyz.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is serving requests.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Probes the history store and reports circuit breaker states. Any failure answers 503.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.probeTimeout)
	defer cancel()

	var mu sync.Mutex
	checks := make(map[string]string, len(h.checkers)+len(h.circuitBreakers))
	ready := true

	var g errgroup.Group
	g.SetLimit(maxConcurrentProbes)
	for name, checker := range h.checkers {
		g.Go(func() error {
			err := checker.HealthCheck(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log := logger.Logger()
				log.Warn().Err(err).Str("check", name).Msg("Readiness probe failed")
				checks[name] = err.Error()
				ready = false
				return nil
			}
			checks[name] = "ok"
			return nil
		})
	}
	_ = g.Wait()

	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy {
			ready = false
		}
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	status, state := http.StatusOK, "ok"
	if !ready {
		status, state = http.StatusServiceUnavailable, "degraded"
	}
	c.JSON(status, gin.H{"status": state, "checks": checks})
}
