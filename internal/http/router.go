// Package http exposes the quote optimizer over a gin HTTP API.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/i18n"
	"github.com/guttosm/quote-optimizer/internal/metrics"
	"github.com/guttosm/quote-optimizer/internal/middleware"
	"github.com/guttosm/quote-optimizer/internal/service"
	"github.com/guttosm/quote-optimizer/internal/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// loggingServiceKey holds the audit log sink in the gin context.
const loggingServiceKey = "logging_service"

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	APIKeys           map[string]bool
	EnableAuth        bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService
	// Pool backs the job endpoints; they are not registered when nil.
	Pool *worker.Pool
	// RunService backs the history endpoints; they are not registered when nil.
	RunService service.RunService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    30 * time.Second,
		EnableIdempotency: true,
	}
}

// NewRouter creates and configures the Gin router for the quote optimizer.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	configureGlobalMiddleware(router, &cfg)
	router.NoRoute(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
	})
	router.NoMethod(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusMethodNotAllowed, i18n.ErrKeyMethodNotAllowed, nil)
	})
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	if handler != nil {
		NewOptimizeRoutes(handler, cfg.Pool, cfg.RunService).RegisterRoutes(api, &cfg)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService, "/healthz", "/readyz", "/metrics"),
		middleware.ErrorHandler(),
	)

	router.Use(func(c *gin.Context) {
		if cfg.LoggingService != nil {
			c.Set(loggingServiceKey, cfg.LoggingService)
		}
		c.Next()
	})
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group. Authentication
// runs first so rate limiting and idempotency can key on the API client.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		api.Use(limiter.ClientRateLimit())
	}

	if cfg.EnableIdempotency {
		api.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
}
