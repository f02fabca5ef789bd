// Package service contains the business logic of the quote optimizer.
package service

import (
	"container/list"
	"hash/maphash"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/metrics"
	"github.com/guttosm/quote-optimizer/internal/service/cache"
)

const (
	defaultShards   = 16
	janitorInterval = time.Minute
)

// ShardedCache spreads memoized results over LRU shards so concurrent
// optimizations rarely contend on the same lock.
type ShardedCache struct {
	seed      maphash.Seed
	shards    []*ttlCache
	shardMask uint32
}

// NewShardedCache splits capacity across numShards shards, rounded up to a
// power of two. Per-shard capacity is rounded up, so the total is at least
// capacity and can exceed it by less than one entry per shard.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = defaultShards
	}
	n := 1
	for n < numShards {
		n <<= 1
	}

	sc := &ShardedCache{
		seed:      maphash.MakeSeed(),
		shards:    make([]*ttlCache, n),
		shardMask: uint32(n - 1),
	}
	for i := range sc.shards {
		sc.shards[i] = newTTLCache(max((capacity+n-1)/n, 1), ttl)
	}
	return sc
}

func (sc *ShardedCache) shard(key string) *ttlCache {
	return sc.shards[uint32(maphash.String(sc.seed, key))&sc.shardMask]
}

func (sc *ShardedCache) Get(key string) (model.OptimizeResult, bool) {
	return sc.shard(key).Get(key)
}

func (sc *ShardedCache) Set(key string, value model.OptimizeResult) {
	sc.shard(key).Set(key, value)
}

func (sc *ShardedCache) Invalidate(key string) {
	sc.shard(key).Invalidate(key)
}

func (sc *ShardedCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics sums the counters of every shard.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is an LRU cache whose entries also expire ttl after their last Set.
// Results are cloned on the way in and out, so callers never share an
// allocation map or violation slice with the cache.
type ttlCache struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	order *list.List // front is most recently used
	items map[string]*list.Element

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64

	stop     chan struct{}
	stopOnce sync.Once
}

type cacheEntry struct {
	key       string
	value     model.OptimizeResult
	expiresAt time.Time
}

func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	return newTTLCacheWithClock(capacity, ttl, time.Now)
}

// newTTLCacheWithClock starts a janitor that drops expired entries every
// janitorInterval until Stop.
func newTTLCacheWithClock(capacity int, ttl time.Duration, now func() time.Time) *ttlCache {
	c := &ttlCache{
		capacity: max(capacity, 1),
		ttl:      ttl,
		now:      now,
		order:    list.New(),
		items:    make(map[string]*list.Element),
		stop:     make(chan struct{}),
	}
	go c.janitor()
	return c
}

func (c *ttlCache) Get(key string) (model.OptimizeResult, bool) {
	c.mu.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "miss")
		return model.OptimizeResult{}, false
	}

	entry := elem.Value.(*cacheEntry)
	if !c.now().Before(entry.expiresAt) {
		c.remove(elem)
		c.mu.Unlock()
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "expired")
		return model.OptimizeResult{}, false
	}

	c.order.MoveToFront(elem)
	value := cloneResult(entry.value)
	c.mu.Unlock()

	c.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	return value, true
}

// Set stores a copy of value and evicts the least recently used entry when
// the cache is over capacity.
func (c *ttlCache) Set(key string, value model.OptimizeResult) {
	value = cloneResult(value)

	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.value, entry.expiresAt = value, expiresAt
		c.order.MoveToFront(elem)
		return
	}

	c.items[key] = c.order.PushFront(&cacheEntry{key: key, value: value, expiresAt: expiresAt})
	metrics.RecordCacheOperation("set", "success")

	if c.order.Len() > c.capacity {
		c.remove(c.order.Back())
		c.evictions.Add(1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
}

func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.remove(elem)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear drops every entry and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	c.order.Init()
	c.items = make(map[string]*list.Element)
	c.mu.Unlock()

	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	metrics.RecordCacheOperation("clear", "success")
}

// Stop ends the janitor. Safe to call more than once.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	size := c.order.Len()
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      size,
		Capacity:  c.capacity,
	}
}

func (c *ttlCache) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.dropExpired()
		case <-c.stop:
			return
		}
	}
}

// dropExpired walks from the least recently used end and removes every
// expired entry.
func (c *ttlCache) dropExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	dropped := 0
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if !now.Before(elem.Value.(*cacheEntry).expiresAt) {
			c.remove(elem)
			dropped++
		}
		elem = prev
	}
	return dropped
}

// remove must be called with mu held.
func (c *ttlCache) remove(elem *list.Element) {
	c.order.Remove(elem)
	delete(c.items, elem.Value.(*cacheEntry).key)
}

func cloneResult(r model.OptimizeResult) model.OptimizeResult {
	out := model.OptimizeResult{
		Allocation: make(map[string]float64, len(r.Allocation)),
		Cost:       r.Cost,
		Violations: make([]string, len(r.Violations)),
	}
	for k, v := range r.Allocation {
		out.Allocation[k] = v
	}
	copy(out.Violations, r.Violations)
	return out
}
