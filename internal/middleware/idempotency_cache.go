package middleware

import (
	"sync"
	"time"
)

type claimState int

const (
	claimAcquired claimState = iota
	claimReplay
	claimInFlight
	claimMismatch
)

// idempotencyRecord is created when a request claims a key. response stays
// nil until the handler succeeds.
type idempotencyRecord struct {
	fingerprint string
	response    *cachedResponse
	createdAt   time.Time
}

// idempotencyCache tracks claimed keys and their stored responses until they
// are ttl old.
type idempotencyCache struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	mu      sync.Mutex
	records map[string]*idempotencyRecord

	stop     chan struct{}
	stopOnce sync.Once
}

func newIdempotencyCache(ttl time.Duration, maxEntries int) *idempotencyCache {
	return newIdempotencyCacheWithClock(ttl, maxEntries, time.Now)
}

func newIdempotencyCacheWithClock(ttl time.Duration, maxEntries int, now func() time.Time) *idempotencyCache {
	c := &idempotencyCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        now,
		records:    make(map[string]*idempotencyRecord),
		stop:       make(chan struct{}),
	}
	go c.janitor()
	return c
}

// claim reserves key for a request whose body hashes to fingerprint. A full
// cache with nothing expired still acquires, but stores nothing.
func (c *idempotencyCache) claim(key, fingerprint string) (claimState, *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if rec, ok := c.records[key]; ok {
		switch {
		case c.expired(rec, now):
			delete(c.records, key)
		case rec.fingerprint != fingerprint:
			return claimMismatch, nil
		case rec.response == nil:
			return claimInFlight, nil
		default:
			return claimReplay, rec.response
		}
	}

	if c.maxEntries > 0 && len(c.records) >= c.maxEntries {
		c.dropExpiredLocked(now)
		if len(c.records) >= c.maxEntries {
			return claimAcquired, nil
		}
	}
	c.records[key] = &idempotencyRecord{fingerprint: fingerprint, createdAt: now}
	return claimAcquired, nil
}

// complete stores resp for a claimed key. The ttl restarts.
func (c *idempotencyCache) complete(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if rec, ok := c.records[key]; ok && rec.response == nil {
		rec.response = resp
		rec.createdAt = c.now()
	}
}

// release forgets a claim that never completed, so the key can be retried.
func (c *idempotencyCache) release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if rec, ok := c.records[key]; ok && rec.response == nil {
		delete(c.records, key)
	}
}

func (c *idempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *idempotencyCache) expired(rec *idempotencyRecord, now time.Time) bool {
	return now.Sub(rec.createdAt) >= c.ttl
}

func (c *idempotencyCache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.dropExpiredLocked(c.now())
			c.mu.Unlock()
		case <-c.stop:
			return
		}
	}
}

func (c *idempotencyCache) dropExpiredLocked(now time.Time) {
	for key, rec := range c.records {
		if c.expired(rec, now) {
			delete(c.records, key)
		}
	}
}
