package app

import (
	"github.com/guttosm/quote-optimizer/config"
	"github.com/guttosm/quote-optimizer/internal/circuitbreaker"
	"github.com/guttosm/quote-optimizer/internal/http"
	"github.com/guttosm/quote-optimizer/internal/service"
	"github.com/guttosm/quote-optimizer/internal/worker"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
// pool, history and dbComponents may be nil.
func InitializeRouter(
	optimizer service.Optimizer,
	pool *worker.Pool,
	history *HistoryComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var runService service.RunService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}
	if history != nil && history.RunService != nil {
		runService = history.RunService
	}

	healthHandler := newReadiness(history, dbComponents)

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		Pool:              pool,
		RunService:        runService,
	}

	return &RouterComponents{
		Handler:       http.NewHandler(optimizer, runService),
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// newReadiness registers every dependency /readyz reports on: the history
// store probe and the MongoDB circuit breakers.
func newReadiness(history *HistoryComponents, db *DatabaseComponents) *http.HealthHandler {
	h := http.NewHealthHandler()
	if history != nil && history.Store != nil {
		h.RegisterChecker("history_"+history.Driver, history.Store)
	}
	if db == nil {
		return h
	}
	for name, cb := range map[string]*circuitbreaker.CircuitBreaker{
		"mongodb_logs": db.LogsCircuitBreaker,
		"mongodb_runs": db.RunsCircuitBreaker,
	} {
		if cb != nil {
			h.RegisterCircuitBreaker(name, cb)
		}
	}
	return h
}
