package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/metrics"
	"github.com/guttosm/quote-optimizer/internal/service/cache"
	"github.com/rs/zerolog/log"
)

// Default memoization settings: the last 50 distinct inputs are kept.
const (
	DefaultCacheCapacity = 50
	DefaultCacheTTL      = 10 * time.Minute
)

// Optimizer runs per-item optimizations.
type Optimizer interface {
	// Optimize allocates the input quantity across its offers.
	Optimize(input model.OptimizeInput) model.OptimizeResult
	// OptimizeWithProgress is Optimize reporting per-offer progress. A
	// memoized result reports 100 once.
	OptimizeWithProgress(input model.OptimizeInput, progress ProgressFunc) model.OptimizeResult
}

// OptimizerService wraps OptimizePerItem with memoization, metrics and logging.
type OptimizerService struct {
	cache    cache.CacheWithMetrics
	newCache func() cache.CacheWithMetrics
}

// OptimizerOption configures an OptimizerService.
type OptimizerOption func(*OptimizerService)

// WithCache memoizes up to capacity results for ttl.
func WithCache(capacity int, ttl time.Duration) OptimizerOption {
	return func(s *OptimizerService) {
		s.newCache = func() cache.CacheWithMetrics { return newTTLCache(capacity, ttl) }
	}
}

// WithShardedCache memoizes results in a sharded cache, for high concurrency.
func WithShardedCache(capacity int, ttl time.Duration, shards int) OptimizerOption {
	return func(s *OptimizerService) {
		s.newCache = func() cache.CacheWithMetrics { return NewShardedCache(capacity, ttl, shards) }
	}
}

// WithoutCache disables memoization.
func WithoutCache() OptimizerOption {
	return func(s *OptimizerService) {
		s.newCache = nil
	}
}

// NewOptimizerService creates the service. Without options it memoizes
// DefaultCacheCapacity results for DefaultCacheTTL.
func NewOptimizerService(opts ...OptimizerOption) *OptimizerService {
	s := &OptimizerService{}
	WithCache(DefaultCacheCapacity, DefaultCacheTTL)(s)
	for _, opt := range opts {
		opt(s)
	}
	// Only the selected cache is built and starts its cleanup goroutine.
	if s.newCache != nil {
		s.cache = s.newCache()
	}
	return s
}

var _ Optimizer = (*OptimizerService)(nil)

// Optimize implements Optimizer.
func (s *OptimizerService) Optimize(input model.OptimizeInput) model.OptimizeResult {
	return s.OptimizeWithProgress(input, nil)
}

// OptimizeWithProgress implements Optimizer.
func (s *OptimizerService) OptimizeWithProgress(input model.OptimizeInput, progress ProgressFunc) model.OptimizeResult {
	key, cacheable := s.cacheKey(input)
	if cacheable {
		if result, ok := s.cache.Get(key); ok {
			if progress != nil {
				progress(100)
			}
			metrics.RecordOptimization("hit", outcome(input, result), len(input.Offers), 0)
			return result
		}
	}

	start := time.Now()
	result := OptimizePerItem(input, progress)
	elapsed := time.Since(start)

	cacheResult := "bypass"
	if cacheable {
		cacheResult = "miss"
		s.cache.Set(key, result)
		m := s.cache.Metrics()
		metrics.UpdateCacheMetrics(m.Size, m.Capacity)
	}

	metrics.RecordOptimization(cacheResult, outcome(input, result), len(input.Offers), elapsed)
	for _, v := range result.Violations {
		metrics.RecordViolation(ViolationKind(v))
	}

	log.Debug().
		Float64("quantity", input.Quantity).
		Int("offers", len(input.Offers)).
		Bool("budget", input.HasBudget()).
		Float64("cost", result.Cost).
		Int("violations", len(result.Violations)).
		Dur("duration", elapsed).
		Msg("Optimization computed")

	return result
}

// InvalidateCache drops every memoized result.
func (s *OptimizerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// CacheMetrics reports memoization counters. Zero when caching is disabled.
func (s *OptimizerService) CacheMetrics() cache.Metrics {
	if s.cache == nil {
		return cache.Metrics{}
	}
	return s.cache.Metrics()
}

// Stop releases the cache's background goroutines.
func (s *OptimizerService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// cacheKey fingerprints the JSON encoding of input. Inputs that cannot be
// encoded (NaN or Inf values) are not memoized.
func (s *OptimizerService) cacheKey(input model.OptimizeInput) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	raw, err := json.Marshal(input)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), true
}

func outcome(input model.OptimizeInput, result model.OptimizeResult) string {
	if result.Satisfied(input.Quantity) {
		return "satisfied"
	}
	return "shortfall"
}
