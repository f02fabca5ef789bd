// Package cache declares the memoization contract used by the optimizer service.
package cache

import "github.com/guttosm/quote-optimizer/internal/domain/model"

// Cache stores optimization results keyed by a fingerprint of their input.
type Cache interface {
	Get(key string) (model.OptimizeResult, bool)
	Set(key string, value model.OptimizeResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance counters.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
