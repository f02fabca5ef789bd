package app

import (
	"github.com/guttosm/quote-optimizer/config"
	"github.com/guttosm/quote-optimizer/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Optimizer *service.OptimizerService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.CacheConfig) *ServiceComponents {
	return &ServiceComponents{
		Optimizer: service.NewOptimizerService(optimizerOptions(cfg)...),
	}
}

// optimizerOptions maps the cache configuration onto optimizer options.
func optimizerOptions(cfg config.CacheConfig) []service.OptimizerOption {
	switch {
	case cfg.Size <= 0:
		return []service.OptimizerOption{service.WithoutCache()}
	case cfg.Shards > 1:
		return []service.OptimizerOption{service.WithShardedCache(cfg.Size, cfg.TTL, cfg.Shards)}
	default:
		return []service.OptimizerOption{service.WithCache(cfg.Size, cfg.TTL)}
	}
}
