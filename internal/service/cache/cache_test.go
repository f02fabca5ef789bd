//go:build !integration

package cache

import (
	"testing"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestCacheInterface(t *testing.T) {
	var c Cache = &mockCache{}

	result, found := c.Get("k")
	assert.False(t, found)
	assert.Equal(t, model.OptimizeResult{}, result)

	c.Set("k", model.NewOptimizeResult())
	c.Invalidate("k")
	c.Clear()
	c.Stop()
}

func TestCacheWithMetricsInterface(t *testing.T) {
	var c CacheWithMetrics = &mockCacheWithMetrics{}

	c.Set("k", model.NewOptimizeResult())
	assert.Equal(t, Metrics{}, c.Metrics())
	c.Stop()
}

type mockCache struct{}

func (m *mockCache) Get(string) (model.OptimizeResult, bool) { return model.OptimizeResult{}, false }
func (m *mockCache) Set(string, model.OptimizeResult)        {}
func (m *mockCache) Invalidate(string)                       {}
func (m *mockCache) Clear()                                  {}
func (m *mockCache) Stop()                                   {}

type mockCacheWithMetrics struct {
	mockCache
}

func (m *mockCacheWithMetrics) Metrics() Metrics {
	return Metrics{}
}
