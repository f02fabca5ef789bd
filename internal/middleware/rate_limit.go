package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/i18n"
	"golang.org/x/time/rate"
)

const defaultNumShards = 16

// bucket is the token bucket of one caller.
type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterShard struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

// ShardedRateLimiter gives every caller a token bucket holding requests
// tokens and refilling them evenly over window. Buckets are spread over
// shards to keep lock contention low under concurrent optimize calls.
type ShardedRateLimiter struct {
	shards   []*rateLimiterShard
	requests int
	window   time.Duration
	refill   rate.Limit
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// RateLimiter is an alias for ShardedRateLimiter.
type RateLimiter = ShardedRateLimiter

// NewRateLimiter allows requests per window for each caller.
func NewRateLimiter(requests int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(requests, window, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with an explicit shard count.
func NewShardedRateLimiter(requests int, window time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	if window <= 0 {
		window = time.Minute
	}

	rl := &ShardedRateLimiter{
		shards:   make([]*rateLimiterShard, numShards),
		requests: requests,
		window:   window,
		refill:   rate.Limit(float64(requests) / window.Seconds()),
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &rateLimiterShard{buckets: make(map[string]*bucket)}
	}

	go rl.evictLoop()
	return rl
}

func (rl *ShardedRateLimiter) shard(id string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// take consumes a token for id. When none is left it reports how long until
// the next one without consuming it.
func (rl *ShardedRateLimiter) take(id string) (allowed bool, remaining int, retryAfter time.Duration) {
	s := rl.shard(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := rl.now()
	b, ok := s.buckets[id]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rl.refill, rl.requests)}
		s.buckets[id] = b
	}
	b.lastSeen = now

	if b.limiter.AllowN(now, 1) {
		return true, int(math.Floor(b.limiter.TokensAt(now))), 0
	}

	r := b.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	r.CancelAt(now)
	return false, 0, delay
}

// RateLimit limits requests per client IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return rl.limitBy(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	})
}

// ClientRateLimit limits requests per API client. Requests that passed
// APIKeyAuth are counted by key fingerprint, the rest by IP.
func (rl *ShardedRateLimiter) ClientRateLimit() gin.HandlerFunc {
	return rl.limitBy(clientIdentifier)
}

func (rl *ShardedRateLimiter) limitBy(identify func(*gin.Context) string) gin.HandlerFunc {
	limit := strconv.Itoa(rl.requests)

	return func(c *gin.Context) {
		allowed, remaining, retryAfter := rl.take(identify(c))

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if allowed {
			c.Next()
			return
		}

		seconds := int(math.Ceil(retryAfter.Seconds()))
		if seconds < 1 {
			seconds = 1
		}
		c.Header("Retry-After", strconv.Itoa(seconds))
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.NewError(dto.ErrCodeRateLimit, i18n.Message(c, i18n.ErrKeyRateLimitExceeded)).WithRequestID(GetRequestID(c)))
	}
}

func clientIdentifier(c *gin.Context) string {
	if clientID := GetClientID(c); clientID != "" {
		return "client:" + clientID
	}
	return "ip:" + c.ClientIP()
}

func (rl *ShardedRateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stopCh:
			return
		}
	}
}

// evictIdle drops buckets unused for a full window; they are full again.
func (rl *ShardedRateLimiter) evictIdle() {
	now := rl.now()
	for _, s := range rl.shards {
		s.mu.Lock()
		for id, b := range s.buckets {
			if now.Sub(b.lastSeen) >= rl.window {
				delete(s.buckets, id)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the eviction goroutine.
func (rl *ShardedRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked callers, total and per shard.
func (rl *ShardedRateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, s := range rl.shards {
		s.mu.Lock()
		perShard[i] = len(s.buckets)
		s.mu.Unlock()
		total += perShard[i]
	}
	return total, perShard
}
