// Package circuitbreaker guards calls to the history and audit stores so that
// a failing database cannot slow down optimizations.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/guttosm/quote-optimizer/internal/metrics"
	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned while the circuit rejects calls: when it is open,
// or half-open with a probe already in flight.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed lets calls through.
	StateClosed State = iota
	// StateOpen rejects calls until the timeout elapses.
	StateOpen
	// StateHalfOpen lets calls through on probation.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// gaugeValue orders states by severity for the state gauge.
func (s State) gaugeValue() int {
	switch s {
	case StateHalfOpen:
		return 1
	case StateOpen:
		return 2
	default:
		return 0
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive half-open successes that closes it.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before admitting a probe.
	Timeout time.Duration
	// Name labels logs and metrics.
	Name string
	// IsFailure classifies errors returned by the guarded call; other errors
	// leave the counters untouched. Nil counts every error except
	// context.Canceled.
	IsFailure func(error) bool
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

func defaultIsFailure(err error) bool {
	return !errors.Is(err, context.Canceled)
}

// CircuitBreaker is a consecutive-failure breaker. While half-open it lets a
// single probe through at a time.
type CircuitBreaker struct {
	config    Config
	isFailure func(error) bool
	now       func() time.Time

	mu              sync.RWMutex
	state           State
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	probing         bool
}

// New creates a circuit breaker in the closed state.
func New(config Config) *CircuitBreaker {
	cb := &CircuitBreaker{
		config:    config,
		isFailure: config.IsFailure,
		now:       time.Now,
		state:     StateClosed,
	}
	if cb.isFailure == nil {
		cb.isFailure = defaultIsFailure
	}
	metrics.SetCircuitBreakerState(config.Name, StateClosed.gaugeValue())
	return cb
}

// Execute runs fn unless the circuit rejects it. A context that is already
// done short-circuits without touching the counters.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cb.admit(); err != nil {
		return err
	}

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.probing = false
	switch {
	case err == nil:
		cb.onSuccess()
	case cb.isFailure(err):
		cb.onFailure()
	}
	return err
}

func (cb *CircuitBreaker) admit() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.lastFailureTime) < cb.config.Timeout {
			return ErrCircuitOpen
		}
		cb.successCount = 0
		cb.transition(StateHalfOpen)
	case StateHalfOpen:
		if cb.probing {
			return ErrCircuitOpen
		}
	default:
		return nil
	}
	cb.probing = true
	return nil
}

// Call runs fn through cb and returns its value.
func Call[T any](ctx context.Context, cb *CircuitBreaker, fn func() (T, error)) (T, error) {
	var out T
	err := cb.Execute(ctx, func() error {
		v, err := fn()
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

// transition must be called with mu held.
func (cb *CircuitBreaker) transition(to State) {
	if cb.state == to {
		return
	}
	from := cb.state
	cb.state = to
	metrics.SetCircuitBreakerState(cb.config.Name, to.gaugeValue())

	event := log.Info()
	if to == StateOpen {
		event = log.Warn().Int("failure_count", cb.failureCount)
	}
	event.
		Str("circuit_breaker", cb.config.Name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Circuit breaker state changed")
}

func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.transition(StateOpen)
		}
	case StateHalfOpen:
		cb.failureCount = cb.config.FailureThreshold
		cb.transition(StateOpen)
	}
}

func (cb *CircuitBreaker) onSuccess() {
	cb.failureCount = 0

	if cb.state != StateHalfOpen {
		cb.successCount = 0
		return
	}
	cb.successCount++
	if cb.successCount >= cb.config.SuccessThreshold {
		cb.successCount = 0
		cb.transition(StateClosed)
	}
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen reports whether the circuit is open.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Name returns the configured breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// Stats is a point-in-time view of a breaker, served by the readiness probe.
type Stats struct {
	Name         string    `json:"name"`
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	IsHealthy    bool      `json:"healthy"`
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:         cb.config.Name,
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		SuccessCount: cb.successCount,
		LastFailure:  cb.lastFailureTime,
		IsHealthy:    cb.state == StateClosed,
	}
}
