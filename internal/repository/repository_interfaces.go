package repository

import (
	"context"
	"errors"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
)

// ErrRunNotFound is returned when no run has the requested id.
var ErrRunNotFound = errors.New("run not found")

// RunsRepositoryInterface stores optimization runs. Implemented by the
// MongoDB and SQLite repositories.
type RunsRepositoryInterface interface {
	Create(ctx context.Context, run *model.OptimizationRun) error
	Get(ctx context.Context, id string) (*model.OptimizationRun, error)
	List(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, error)
	Count(ctx context.Context, opts model.RunQueryOptions) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

// HealthChecker is implemented by stores that can report connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
