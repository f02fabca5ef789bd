package app

import (
	"github.com/guttosm/quote-optimizer/config"
	"github.com/guttosm/quote-optimizer/internal/logger"
)

// InitializeLogger initializes the global logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
