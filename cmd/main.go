// Package main is the entry point for the quote-optimizer API server.
//
// @title           Quote Optimizer API
// @version         1.0.0
// @description     API for allocating a purchase quantity across supplier offers.
//
//	Offers are visited cheapest first under MOQ, step, capacity, share and budget
//	constraints. Unmet constraints are reported as violations instead of errors.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/quote-optimizer
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Optimize
// @tag.description Synchronous per-item optimization
//
// @tag.name        Jobs
// @tag.description Background optimizations with progress streaming
//
// @tag.name        History
// @tag.description Recorded optimization runs
//
// @tag.name        Audit
// @tag.description Stored request and audit trail
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/guttosm/quote-optimizer/docs" // swagger docs

	"github.com/guttosm/quote-optimizer/config"
	"github.com/guttosm/quote-optimizer/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port)

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := server.Run(stopCtx)
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	application.Close(ctx)
	cancel()

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
