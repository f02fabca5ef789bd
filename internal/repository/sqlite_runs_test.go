//go:build !integration

package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLiteRunsRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	repo, err := NewSQLiteRunsRepository(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo, path
}

func sampleRun(source string, satisfied bool, createdAt time.Time) *model.OptimizationRun {
	result := model.NewOptimizeResult()
	result.Allocation["a"] = 30
	result.Cost = 240
	if !satisfied {
		result.Violations = append(result.Violations, "Capacidade insuficiente")
	}
	return &model.OptimizationRun{
		RequestID: "req-" + source,
		Source:    source,
		Input: model.OptimizeInput{
			Quantity: 100,
			Offers:   []model.Offer{{ID: "a", Price: 8, Share: model.Ptr(0.3)}},
			Budget:   model.Ptr(1000),
		},
		Result:     result,
		Satisfied:  satisfied,
		DurationUS: 42,
		CreatedAt:  createdAt,
	}
}

func TestSQLiteRunsRepository_CreateAndGet(t *testing.T) {
	repo, _ := newTestSQLite(t)
	ctx := context.Background()

	run := sampleRun(model.SourceCLI, false, time.Time{})
	require.NoError(t, repo.Create(ctx, run))
	assert.NotEmpty(t, run.ID)
	assert.False(t, run.CreatedAt.IsZero())

	got, err := repo.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Input, got.Input)
	assert.Equal(t, run.Result, got.Result)
	assert.Equal(t, run.Source, got.Source)
	assert.Equal(t, run.DurationUS, got.DurationUS)
	assert.False(t, got.Satisfied)
	assert.WithinDuration(t, run.CreatedAt, got.CreatedAt, time.Microsecond)
}

func TestSQLiteRunsRepository_GetMissing(t *testing.T) {
	repo, _ := newTestSQLite(t)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestSQLiteRunsRepository_ListAndCount(t *testing.T) {
	repo, _ := newTestSQLite(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, sampleRun(model.SourceHTTP, true, base)))
	require.NoError(t, repo.Create(ctx, sampleRun(model.SourceCLI, false, base.Add(time.Second))))
	require.NoError(t, repo.Create(ctx, sampleRun(model.SourceCLI, true, base.Add(1500*time.Millisecond))))

	satisfied := true
	tests := []struct {
		name          string
		opts          model.RunQueryOptions
		expectedCount int64
		expectedLen   int
		firstSource   string
	}{
		{name: "all newest first", opts: model.RunQueryOptions{}, expectedCount: 3, expectedLen: 3, firstSource: model.SourceCLI},
		{name: "by source", opts: model.RunQueryOptions{Source: model.SourceHTTP}, expectedCount: 1, expectedLen: 1, firstSource: model.SourceHTTP},
		{name: "by satisfied", opts: model.RunQueryOptions{Satisfied: &satisfied}, expectedCount: 2, expectedLen: 2, firstSource: model.SourceCLI},
		{name: "limit and skip", opts: model.RunQueryOptions{Limit: 1, Skip: 2}, expectedCount: 3, expectedLen: 1, firstSource: model.SourceHTTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := repo.List(ctx, tt.opts)
			require.NoError(t, err)
			require.Len(t, runs, tt.expectedLen)
			assert.Equal(t, tt.firstSource, runs[0].Source)

			count, err := repo.Count(ctx, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
		})
	}
}

func TestSQLiteRunsRepository_EmptyListIsNotNil(t *testing.T) {
	repo, _ := newTestSQLite(t)

	runs, err := repo.List(context.Background(), model.RunQueryOptions{Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestSQLiteRunsRepository_MigrationsIdempotent(t *testing.T) {
	repo, path := newTestSQLite(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, sampleRun(model.SourceCLI, true, time.Time{})))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRunsRepository(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	var applied int
	require.NoError(t, reopened.db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, len(sqliteMigrations), applied)

	count, err := reopened.Count(ctx, model.RunQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, reopened.HealthCheck(ctx))
}
