//go:build integration

package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/guttosm/quote-optimizer/internal/circuitbreaker"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/repository"
	"github.com/guttosm/quote-optimizer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithMongoDB(m))
}

func newAuditService(t *testing.T) LoggingService {
	t.Helper()
	db, err := repository.NewMongoDB(testutil.MongoURI(t), testutil.DatabaseName(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })
	require.NoError(t, db.SetLogsTTL(context.Background(), 30))

	breaker := circuitbreaker.New(circuitbreaker.DefaultConfig())
	return NewLoggingService(repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), breaker))
}

func TestLoggingService_AuditTrail_Integration(t *testing.T) {
	ctx := context.Background()
	svc := newAuditService(t)
	now := time.Now().UTC().Truncate(time.Millisecond)

	optimize := (&model.LogEntry{
		Timestamp:  now.Add(-time.Minute),
		Level:      "info",
		Message:    "optimization completed",
		RequestID:  "quote-100",
		Method:     "POST",
		Path:       "/api/optimize",
		StatusCode: 200,
		ClientID:   "client-a",
		ActionType: model.ActionOptimize,
	}).WithFields(map[string]interface{}{"quantity": 100.0, "cost": 870.0})
	require.NoError(t, svc.CreateLog(ctx, optimize))
	assert.False(t, optimize.ID.IsZero())

	require.NoError(t, svc.CreateLogs(ctx, []*model.LogEntry{
		(&model.LogEntry{Timestamp: now, Level: "info", Message: "job queued", RequestID: "quote-101", ActionType: model.ActionSubmitJob}).
			WithField("job_id", "job-1"),
		{Timestamp: now, Level: "warn", Message: "budget exhausted", RequestID: "quote-102", ActionType: model.ActionOptimize},
	}))

	tests := []struct {
		name      string
		opts      model.LogQueryOptions
		wantCount int64
		check     func(*testing.T, []model.LogEntry)
	}{
		{
			name:      "optimize requests",
			opts:      model.LogQueryOptions{ActionType: model.ActionOptimize},
			wantCount: 2,
		},
		{
			name:      "single request keeps its audit fields",
			opts:      model.LogQueryOptions{RequestID: "quote-100"},
			wantCount: 1,
			check: func(t *testing.T, entries []model.LogEntry) {
				assert.Equal(t, "client-a", entries[0].ClientID)
				assert.Equal(t, 870.0, entries[0].Fields["cost"])
				assert.Equal(t, "/api/optimize", entries[0].Path)
			},
		},
		{
			name:      "job submissions",
			opts:      model.LogQueryOptions{ActionType: model.ActionSubmitJob},
			wantCount: 1,
			check: func(t *testing.T, entries []model.LogEntry) {
				assert.Equal(t, "job-1", entries[0].Fields["job_id"])
			},
		},
		{
			name:      "warnings in the last minute",
			opts:      model.LogQueryOptions{Level: "warn", StartTime: ptrTime(now.Add(-30 * time.Second))},
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := svc.QueryLogs(ctx, tt.opts)
			require.NoError(t, err)
			assert.Len(t, entries, int(tt.wantCount))

			count, err := svc.CountLogs(ctx, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)

			if tt.check != nil {
				tt.check(t, entries)
			}
		})
	}
}

func TestLoggingService_EmptyBatch_Integration(t *testing.T) {
	ctx := context.Background()
	svc := newAuditService(t)

	require.NoError(t, svc.CreateLogs(ctx, nil))
	count, err := svc.CountLogs(ctx, model.LogQueryOptions{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func ptrTime(t time.Time) *time.Time { return &t }
