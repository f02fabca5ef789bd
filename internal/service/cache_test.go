package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/service/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	mu sync.Mutex
	t  time.Time
}

func (m *manualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.t
}

func (m *manualClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.t = m.t.Add(d)
	m.mu.Unlock()
}

func newClockedCache(t *testing.T, capacity int, ttl time.Duration) (*ttlCache, *manualClock) {
	t.Helper()
	clock := &manualClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := newTTLCacheWithClock(capacity, ttl, clock.Now)
	t.Cleanup(c.Stop)
	return c, clock
}

func resultWithCost(cost float64) model.OptimizeResult {
	r := model.NewOptimizeResult()
	r.Cost = cost
	return r
}

func TestTTLCache_Expiry(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		want    bool
	}{
		{name: "fresh entry", advance: 0, want: true},
		{name: "just before the ttl", advance: time.Minute - time.Nanosecond, want: true},
		{name: "exactly at the ttl", advance: time.Minute, want: false},
		{name: "long after the ttl", advance: time.Hour, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newClockedCache(t, 10, time.Minute)
			c.Set("q", model.OptimizeResult{Allocation: map[string]float64{"a": 10}, Cost: 80, Violations: []string{}})

			clock.Advance(tt.advance)
			got, ok := c.Get("q")

			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, model.OptimizeResult{Allocation: map[string]float64{"a": 10}, Cost: 80, Violations: []string{}}, got)
				return
			}
			assert.Equal(t, 0, c.Metrics().Size, "expired entries are dropped on read")
		})
	}
}

func TestTTLCache_SetRefreshesExpiry(t *testing.T) {
	c, clock := newClockedCache(t, 10, time.Minute)

	c.Set("q", resultWithCost(250))
	clock.Advance(50 * time.Second)
	c.Set("q", resultWithCost(500))
	clock.Advance(50 * time.Second)

	got, ok := c.Get("q")
	require.True(t, ok)
	assert.Equal(t, 500.0, got.Cost)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_ReturnsCopies(t *testing.T) {
	c, _ := newClockedCache(t, 10, time.Minute)

	stored := model.OptimizeResult{
		Allocation: map[string]float64{"x": 10},
		Violations: []string{ViolationCapacity},
	}
	c.Set("k", stored)
	stored.Allocation["x"] = 999

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 10.0, got.Allocation["x"])

	got.Violations[0] = "changed"
	again, _ := c.Get("k")
	assert.Equal(t, ViolationCapacity, again.Violations[0])
}

func TestTTLCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newClockedCache(t, 3, time.Minute)

	for _, key := range []string{"1", "2", "3"} {
		c.Set(key, resultWithCost(1))
	}
	c.Get("1")
	c.Set("4", resultWithCost(4))

	for key, want := range map[string]bool{"1": true, "2": false, "3": true, "4": true} {
		_, ok := c.Get(key)
		assert.Equal(t, want, ok, key)
	}
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_Metrics(t *testing.T) {
	c, _ := newClockedCache(t, 10, time.Minute)

	c.Set("a", resultWithCost(1))
	c.Get("a")
	c.Get("b")
	c.Set("b", resultWithCost(2))

	assert.Equal(t, cache.Metrics{Hits: 1, Misses: 1, Size: 2, Capacity: 10}, c.Metrics())
}

func TestTTLCache_DropExpired(t *testing.T) {
	c, clock := newClockedCache(t, 10, time.Minute)

	c.Set("old-1", resultWithCost(1))
	c.Set("old-2", resultWithCost(2))
	clock.Advance(45 * time.Second)
	c.Set("new", resultWithCost(3))
	clock.Advance(30 * time.Second)

	assert.Equal(t, 2, c.dropExpired())
	assert.Equal(t, 1, c.Metrics().Size)
	_, ok := c.Get("new")
	assert.True(t, ok)
}

func TestTTLCache_InvalidateAndClear(t *testing.T) {
	c, _ := newClockedCache(t, 10, time.Minute)

	c.Set("a", resultWithCost(1))
	c.Set("b", resultWithCost(2))

	c.Invalidate("a")
	c.Invalidate("never-set")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()
	assert.Equal(t, cache.Metrics{Capacity: 10}, c.Metrics())
}

func TestTTLCache_StopTwice(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	assert.NotPanics(t, func() {
		c.Stop()
		c.Stop()
	})
}

func TestTTLCache_MinimumCapacity(t *testing.T) {
	c, _ := newClockedCache(t, 0, time.Minute)
	c.Set("a", resultWithCost(1))
	c.Set("b", resultWithCost(2))

	assert.Equal(t, 1, c.Metrics().Size)
	assert.Equal(t, 1, c.Metrics().Capacity)
}

func TestTTLCache_ImplementsInterface(t *testing.T) {
	var _ cache.Cache = (*ttlCache)(nil)
	var _ cache.CacheWithMetrics = (*ttlCache)(nil)
	var _ cache.CacheWithMetrics = (*ShardedCache)(nil)
}

func TestTTLCache_Concurrency(t *testing.T) {
	c := newTTLCache(100, time.Minute)
	defer c.Stop()

	var wg sync.WaitGroup
	for worker := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 10 {
				key := fmt.Sprintf("%d-%d", worker, j)
				c.Set(key, resultWithCost(float64(j)))
				c.Get(key)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, c.Metrics().Size)
}
