//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRunsRepository struct {
	mock.Mock
}

func (m *MockRunsRepository) Create(ctx context.Context, run *model.OptimizationRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunsRepository) Get(ctx context.Context, id string) (*model.OptimizationRun, error) {
	args := m.Called(ctx, id)
	run, _ := args.Get(0).(*model.OptimizationRun)
	return run, args.Error(1)
}

func (m *MockRunsRepository) List(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, error) {
	args := m.Called(ctx, opts)
	runs, _ := args.Get(0).([]model.OptimizationRun)
	return runs, args.Error(1)
}

func (m *MockRunsRepository) Count(ctx context.Context, opts model.RunQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func TestNewRun(t *testing.T) {
	input := scenarioInput()
	result := OptimizePerItem(input, nil)

	run := NewRun(model.SourceJob, "req-1", input, result, 1500*time.Microsecond)

	assert.Equal(t, model.SourceJob, run.Source)
	assert.Equal(t, "req-1", run.RequestID)
	assert.True(t, run.Satisfied)
	assert.Equal(t, int64(1500), run.DurationUS)
	assert.False(t, run.CreatedAt.IsZero())
}

func TestRunService_Record(t *testing.T) {
	repo := new(MockRunsRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.OptimizationRun")).Return(nil).Once()

	svc := NewRunService(repo)
	err := svc.Record(context.Background(), &model.OptimizationRun{Source: model.SourceHTTP})

	require.NoError(t, err)
	assert.True(t, svc.Enabled())
	repo.AssertExpectations(t)
}

func TestRunService_RecordAsync(t *testing.T) {
	repo := new(MockRunsRepository)
	done := make(chan struct{})
	repo.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("write failed")).
		Run(func(mock.Arguments) { close(done) }).
		Once()

	NewRunService(repo).RecordAsync(&model.OptimizationRun{Source: model.SourceJob})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("asynchronous record not attempted")
	}
	repo.AssertExpectations(t)
}

func TestRunService_WaitForPendingWrites(t *testing.T) {
	repo := new(MockRunsRepository)
	release := make(chan struct{})
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil).
		Times(3)

	svc := NewRunService(repo)
	for range 3 {
		svc.RecordAsync(&model.OptimizationRun{Source: model.SourceJob})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, svc.Wait(ctx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, svc.Wait(context.Background()))
	repo.AssertNumberOfCalls(t, "Create", 3)
}

func TestRunService_WaitWithoutWrites(t *testing.T) {
	assert.NoError(t, NewRunService(nil).Wait(context.Background()))
	assert.NoError(t, NewRunService(new(MockRunsRepository)).Wait(context.Background()))
}

func TestRunService_List(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockRunsRepository)
		wantLen   int
		wantTotal int64
		wantError bool
	}{
		{
			name: "returns page and total",
			setupMock: func(m *MockRunsRepository) {
				m.On("List", mock.Anything, mock.Anything).Return([]model.OptimizationRun{{ID: "1"}, {ID: "2"}}, nil)
				m.On("Count", mock.Anything, mock.Anything).Return(int64(7), nil)
			},
			wantLen:   2,
			wantTotal: 7,
		},
		{
			name: "nil page becomes empty",
			setupMock: func(m *MockRunsRepository) {
				m.On("List", mock.Anything, mock.Anything).Return(nil, nil)
				m.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
			},
		},
		{
			name: "list error",
			setupMock: func(m *MockRunsRepository) {
				m.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
			wantError: true,
		},
		{
			name: "count error",
			setupMock: func(m *MockRunsRepository) {
				m.On("List", mock.Anything, mock.Anything).Return([]model.OptimizationRun{}, nil)
				m.On("Count", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRunsRepository)
			tt.setupMock(repo)

			runs, total, err := NewRunService(repo).List(context.Background(), model.RunQueryOptions{Limit: 10})

			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, runs)
			assert.Len(t, runs, tt.wantLen)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestRunService_Get(t *testing.T) {
	repo := new(MockRunsRepository)
	repo.On("Get", mock.Anything, "known").Return(&model.OptimizationRun{ID: "known"}, nil)
	repo.On("Get", mock.Anything, "unknown").Return(nil, repository.ErrRunNotFound)
	svc := NewRunService(repo)

	run, err := svc.Get(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, "known", run.ID)

	_, err = svc.Get(context.Background(), "unknown")
	assert.ErrorIs(t, err, repository.ErrRunNotFound)
}

func TestRunService_Disabled(t *testing.T) {
	svc := NewRunService(nil)
	ctx := context.Background()

	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.Record(ctx, &model.OptimizationRun{}))
	svc.RecordAsync(&model.OptimizationRun{})

	_, _, err := svc.List(ctx, model.RunQueryOptions{})
	assert.ErrorIs(t, err, ErrHistoryDisabled)
	_, err = svc.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}
