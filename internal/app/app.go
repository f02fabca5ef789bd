// Package app wires configuration, storage, workers and the HTTP router into a runnable service.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/config"
	"github.com/guttosm/quote-optimizer/internal/http"
	"github.com/guttosm/quote-optimizer/internal/middleware"
	"github.com/guttosm/quote-optimizer/internal/service"
	"github.com/guttosm/quote-optimizer/internal/worker"
	"github.com/rs/zerolog/log"
)

// App holds the wired application and the components that need shutting down.
type App struct {
	Router    *gin.Engine
	Optimizer *service.OptimizerService
	Pool      *worker.Pool
	History   *HistoryComponents
	Database  *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	serviceComponents := InitializeServices(cfg.Cache)

	// Optional: nil when MongoDB is disabled or unreachable
	dbComponents := InitializeDatabase(cfg.Database)
	if dbComponents != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	history := InitializeHistory(cfg, dbComponents)
	pool := InitializeWorkerPool(cfg.Worker, serviceComponents.Optimizer, history.RunService)

	routerComponents := InitializeRouter(serviceComponents.Optimizer, pool, history, dbComponents, cfg)

	return &App{
		Router:    http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Optimizer: serviceComponents.Optimizer,
		Pool:      pool,
		History:   history,
		Database:  dbComponents,
	}
}

// Close drains the worker pool, pending run writes and the audit log, then
// releases the stores. Call it after the HTTP server has stopped.
func (a *App) Close(ctx context.Context) {
	if a.Pool != nil {
		a.Pool.Stop()
	}
	if err := a.History.Drain(ctx); err != nil {
		log.Warn().Err(err).Msg("Gave up waiting for run history writes")
	}
	middleware.StopAsyncLogger()
	if a.Optimizer != nil {
		a.Optimizer.Stop()
	}
	if err := a.History.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close run history")
	}
	if err := a.Database.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}
