package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultAllowedOrigins are the local UI dev servers.
var DefaultAllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

// CORS returns a middleware allowing the quoting UI origins to call the API.
// A "*" entry allows any origin without credentials.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		allowedOrigins = DefaultAllowedOrigins
	}

	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Accept-Language", "Cache-Control", "Authorization",
			APIKeyHeader, IdempotencyKeyHeader, RequestIDHeader,
		},
		ExposeHeaders: []string{RequestIDHeader, IdempotencyReplayedHeader, "Retry-After"},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range allowedOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
	}
	cfg.AllowOrigins = allowedOrigins
	cfg.AllowCredentials = true
	return cors.New(cfg)
}
