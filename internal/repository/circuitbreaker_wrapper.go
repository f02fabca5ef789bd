package repository

import (
	"context"
	"errors"

	"github.com/guttosm/quote-optimizer/internal/circuitbreaker"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
)

// RunsRepositoryWithCircuitBreaker guards any runs repository with a circuit breaker.
type RunsRepositoryWithCircuitBreaker struct {
	repo           RunsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRunsRepositoryWithCircuitBreaker wraps repo.
func NewRunsRepositoryWithCircuitBreaker(repo RunsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *RunsRepositoryWithCircuitBreaker {
	return &RunsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

var _ RunsRepositoryInterface = (*RunsRepositoryWithCircuitBreaker)(nil)

// Create stores a run. Returns circuitbreaker.ErrCircuitOpen while the store is failing.
func (r *RunsRepositoryWithCircuitBreaker) Create(ctx context.Context, run *model.OptimizationRun) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, run)
	})
}

// Get fetches a run. A missing run does not count as a store failure.
func (r *RunsRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*model.OptimizationRun, error) {
	var notFound bool
	run, err := circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.OptimizationRun, error) {
		run, err := r.repo.Get(ctx, id)
		if errors.Is(err, ErrRunNotFound) {
			notFound = true
			return nil, nil
		}
		return run, err
	})
	if notFound {
		return nil, ErrRunNotFound
	}
	return run, err
}

// List lists runs.
func (r *RunsRepositoryWithCircuitBreaker) List(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]model.OptimizationRun, error) {
		return r.repo.List(ctx, opts)
	})
}

// Count counts runs.
func (r *RunsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.RunQueryOptions) (int64, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RunsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

var _ LogsRepositoryInterface = (*LogsRepositoryWithCircuitBreaker)(nil)

// Create stores a log entry. Dropped silently while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores log entries. Dropped silently while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]*LogEntryDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count counts log entries.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
