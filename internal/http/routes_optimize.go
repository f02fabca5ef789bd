package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/middleware"
	"github.com/guttosm/quote-optimizer/internal/service"
	"github.com/guttosm/quote-optimizer/internal/worker"
)

// RouteGroup is a set of routes mounted under a shared prefix.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// OptimizeRoutes registers the optimization, job and history routes.
type OptimizeRoutes struct {
	handler *Handler
	jobs    *JobsHandler
	runs    *RunsHandler
}

var _ RouteGroup = (*OptimizeRoutes)(nil)

// NewOptimizeRoutes creates the route group. Job routes need a pool and
// history routes a run service; either may be nil.
func NewOptimizeRoutes(handler *Handler, pool *worker.Pool, runService service.RunService) *OptimizeRoutes {
	r := &OptimizeRoutes{handler: handler}
	if pool != nil {
		r.jobs = NewJobsHandler(pool)
	}
	if runService != nil {
		r.runs = NewRunsHandler(runService)
	}
	return r
}

// RegisterRoutes registers the routes on rg. The event stream is registered
// outside the request timeout. The audit log listing needs cfg.LoggingService.
func (r *OptimizeRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	bounded := rg.Group("")
	if cfg.RequestTimeout > 0 {
		bounded.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	bounded.POST("/optimize", r.handler.Optimize)

	if r.jobs != nil {
		bounded.POST("/optimize/jobs", r.jobs.Submit)
		bounded.GET("/optimize/jobs/:id", r.jobs.Status)
		rg.GET("/optimize/jobs/:id/events", r.jobs.Events)
	}

	if r.runs != nil {
		bounded.GET("/runs", r.runs.List)
		bounded.GET("/runs/:id", r.runs.Get)
	}

	if cfg.LoggingService != nil {
		bounded.GET("/audit-logs", NewAuditHandler(cfg.LoggingService).List)
	}
}
