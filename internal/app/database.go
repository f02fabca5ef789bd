package app

import (
	"context"

	"github.com/guttosm/quote-optimizer/config"
	"github.com/guttosm/quote-optimizer/internal/circuitbreaker"
	"github.com/guttosm/quote-optimizer/internal/repository"
	"github.com/guttosm/quote-optimizer/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	LoggingService     service.LoggingService
	RunsRepo           repository.RunsRepositoryInterface
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
	RunsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ttlDays := max(int(cfg.LogsTTL.Hours()/24), 1)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Int("ttl_days", ttlDays).Msg("Failed to set logs TTL index")
	}

	logsCB := newCircuitBreaker(cfg, "mongodb-logs")
	runsCB := newCircuitBreaker(cfg, "mongodb-runs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	runsRepo := repository.NewRunsRepositoryWithCircuitBreaker(repository.NewRunsRepository(db), runsCB)

	return &DatabaseComponents{
		DB:                 db,
		LoggingService:     service.NewLoggingService(logsRepo),
		RunsRepo:           runsRepo,
		LogsCircuitBreaker: logsCB,
		RunsCircuitBreaker: runsCB,
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
	})
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
