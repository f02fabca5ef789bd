package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIdempotencyCache(t *testing.T, maxEntries int) (*idempotencyCache, *time.Time) {
	t.Helper()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := newIdempotencyCacheWithClock(time.Minute, maxEntries, func() time.Time { return now })
	t.Cleanup(c.Stop)
	return c, &now
}

func TestIdempotencyCache_Claim(t *testing.T) {
	stored := &cachedResponse{StatusCode: 202, ContentType: "application/json", Body: []byte(`{"job_id":"j-1"}`)}

	tests := []struct {
		name        string
		setup       func(*idempotencyCache, *time.Time)
		fingerprint string
		wantState   claimState
		wantResp    *cachedResponse
	}{
		{
			name:        "unknown key is acquired",
			setup:       func(*idempotencyCache, *time.Time) {},
			fingerprint: "body-a",
			wantState:   claimAcquired,
		},
		{
			name: "pending claim is in flight",
			setup: func(c *idempotencyCache, _ *time.Time) {
				c.claim("k", "body-a")
			},
			fingerprint: "body-a",
			wantState:   claimInFlight,
		},
		{
			name: "completed claim is replayed",
			setup: func(c *idempotencyCache, _ *time.Time) {
				c.claim("k", "body-a")
				c.complete("k", stored)
			},
			fingerprint: "body-a",
			wantState:   claimReplay,
			wantResp:    stored,
		},
		{
			name: "other body is a mismatch",
			setup: func(c *idempotencyCache, _ *time.Time) {
				c.claim("k", "body-a")
				c.complete("k", stored)
			},
			fingerprint: "body-b",
			wantState:   claimMismatch,
		},
		{
			name: "released claim is acquired again",
			setup: func(c *idempotencyCache, _ *time.Time) {
				c.claim("k", "body-a")
				c.release("k")
			},
			fingerprint: "body-b",
			wantState:   claimAcquired,
		},
		{
			name: "expired response is acquired again",
			setup: func(c *idempotencyCache, now *time.Time) {
				c.claim("k", "body-a")
				c.complete("k", stored)
				*now = now.Add(time.Minute)
			},
			fingerprint: "body-b",
			wantState:   claimAcquired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, now := newTestIdempotencyCache(t, 10)
			tt.setup(c, now)

			state, resp := c.claim("k", tt.fingerprint)

			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantResp, resp)
		})
	}
}

func TestIdempotencyCache_ReleaseKeepsCompleted(t *testing.T) {
	c, _ := newTestIdempotencyCache(t, 10)

	c.claim("k", "body")
	c.complete("k", &cachedResponse{StatusCode: 200})
	c.release("k")

	state, resp := c.claim("k", "body")
	assert.Equal(t, claimReplay, state)
	require.NotNil(t, resp)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestIdempotencyCache_Full(t *testing.T) {
	c, now := newTestIdempotencyCache(t, 2)

	c.claim("a", "x")
	*now = now.Add(30 * time.Second)
	c.claim("b", "x")

	state, _ := c.claim("c", "x")
	assert.Equal(t, claimAcquired, state)
	assert.NotContains(t, c.records, "c", "full cache does not track new keys")

	*now = now.Add(45 * time.Second)
	c.claim("c", "x")
	assert.Contains(t, c.records, "c")
	assert.NotContains(t, c.records, "a")
	assert.Contains(t, c.records, "b")
}

func TestIdempotencyCache_StopTwice(t *testing.T) {
	c := newIdempotencyCache(time.Minute, 10)
	assert.NotPanics(t, func() {
		c.Stop()
		c.Stop()
	})
}
