package app

import (
	"context"

	"github.com/guttosm/quote-optimizer/config"
	"github.com/guttosm/quote-optimizer/internal/repository"
	"github.com/guttosm/quote-optimizer/internal/service"
	"github.com/rs/zerolog/log"
)

// HistoryComponents holds the run history selected by HISTORY_DRIVER.
type HistoryComponents struct {
	Driver     string
	RunService *service.RunServiceImpl
	// Store backs the readiness probe; nil when history is disabled.
	Store repository.HealthChecker

	sqlite *repository.SQLiteRunsRepository
}

// InitializeHistory selects the run history store. A store that cannot be
// opened disables history instead of failing startup.
func InitializeHistory(cfg config.Config, db *DatabaseComponents) *HistoryComponents {
	driver := cfg.HistoryDriver()

	switch driver {
	case config.HistoryDriverMongo:
		if db == nil {
			log.Warn().Msg("Mongo run history requested but MongoDB is unavailable - history disabled")
			return disabledHistory()
		}
		log.Info().Str("driver", driver).Msg("Run history enabled")
		return &HistoryComponents{
			Driver:     driver,
			RunService: service.NewRunService(db.RunsRepo),
			Store:      db.DB,
		}

	case config.HistoryDriverSQLite:
		repo, err := repository.NewSQLiteRunsRepository(cfg.History.SQLitePath)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.History.SQLitePath).Msg("Failed to open SQLite run history - history disabled")
			return disabledHistory()
		}
		log.Info().Str("driver", driver).Str("path", cfg.History.SQLitePath).Msg("Run history enabled")
		return &HistoryComponents{
			Driver:     driver,
			RunService: service.NewRunService(repo),
			Store:      repo,
			sqlite:     repo,
		}

	case config.HistoryDriverNone:
		return disabledHistory()

	default:
		log.Warn().Str("driver", driver).Msg("Unknown history driver - history disabled")
		return disabledHistory()
	}
}

func disabledHistory() *HistoryComponents {
	return &HistoryComponents{
		Driver:     config.HistoryDriverNone,
		RunService: service.NewRunService(nil),
	}
}

// Drain waits for background run writes so none is lost when the store closes.
func (h *HistoryComponents) Drain(ctx context.Context) error {
	if h == nil || h.RunService == nil {
		return nil
	}
	return h.RunService.Wait(ctx)
}

// Close releases the SQLite handle. The Mongo store is closed with the database.
func (h *HistoryComponents) Close() error {
	if h == nil || h.sqlite == nil {
		return nil
	}
	return h.sqlite.Close()
}
