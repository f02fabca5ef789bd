package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/guttosm/quote-optimizer/internal/circuitbreaker"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrHistoryDisabled is returned when no history store is configured.
var ErrHistoryDisabled = errors.New("run history is disabled")

// recordTimeout bounds asynchronous history writes.
const recordTimeout = 5 * time.Second

// RunService records and reads optimization runs.
type RunService interface {
	// Record stores run synchronously.
	Record(ctx context.Context, run *model.OptimizationRun) error
	// RecordAsync stores run in the background; failures are logged only.
	RecordAsync(run *model.OptimizationRun)
	// List returns a page of runs and the total matching count.
	List(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, int64, error)
	// Get returns a single run.
	Get(ctx context.Context, id string) (*model.OptimizationRun, error)
}

// RunServiceImpl implements RunService on top of a runs repository.
type RunServiceImpl struct {
	repo    repository.RunsRepositoryInterface
	pending sync.WaitGroup
}

// NewRunService creates a run service. A nil repo yields a service whose
// reads return ErrHistoryDisabled and whose writes are no-ops.
func NewRunService(repo repository.RunsRepositoryInterface) *RunServiceImpl {
	return &RunServiceImpl{repo: repo}
}

var _ RunService = (*RunServiceImpl)(nil)

// NewRun builds the history record of one optimization.
func NewRun(source, requestID string, input model.OptimizeInput, result model.OptimizeResult, elapsed time.Duration) *model.OptimizationRun {
	return &model.OptimizationRun{
		RequestID:  requestID,
		Source:     source,
		Input:      input,
		Result:     result,
		Satisfied:  result.Satisfied(input.Quantity),
		DurationUS: elapsed.Microseconds(),
		CreatedAt:  time.Now().UTC(),
	}
}

// Enabled reports whether a history store is configured.
func (s *RunServiceImpl) Enabled() bool {
	return s.repo != nil
}

// Record implements RunService.
func (s *RunServiceImpl) Record(ctx context.Context, run *model.OptimizationRun) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Create(ctx, run)
}

// RecordAsync implements RunService.
func (s *RunServiceImpl) RecordAsync(run *model.OptimizationRun) {
	if s.repo == nil {
		return
	}
	s.pending.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		err := s.repo.Create(ctx, run)
		switch {
		case err == nil:
		case errors.Is(err, circuitbreaker.ErrCircuitOpen):
			log.Debug().Str("request_id", run.RequestID).Msg("Run history skipped: circuit open")
		default:
			log.Warn().Err(err).Str("request_id", run.RequestID).Str("source", run.Source).Msg("Failed to record optimization run")
		}
	})
}

// Wait blocks until every RecordAsync write has finished or ctx ends. Call
// it before closing the store.
func (s *RunServiceImpl) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List implements RunService.
func (s *RunServiceImpl) List(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, int64, error) {
	if s.repo == nil {
		return nil, 0, ErrHistoryDisabled
	}

	runs, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	if runs == nil {
		runs = []model.OptimizationRun{}
	}
	return runs, total, nil
}

// Get implements RunService.
func (s *RunServiceImpl) Get(ctx context.Context, id string) (*model.OptimizationRun, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.Get(ctx, id)
}
