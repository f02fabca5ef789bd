//go:build !integration

package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/guttosm/quote-optimizer/config"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeHistory(t *testing.T) {
	tests := []struct {
		name        string
		cfg         func(t *testing.T) config.Config
		wantDriver  string
		wantEnabled bool
	}{
		{
			name: "sqlite",
			cfg: func(t *testing.T) config.Config {
				return config.Config{History: config.HistoryConfig{
					Driver:     config.HistoryDriverSQLite,
					SQLitePath: filepath.Join(t.TempDir(), "history.db"),
				}}
			},
			wantDriver:  config.HistoryDriverSQLite,
			wantEnabled: true,
		},
		{
			name: "sqlite with unusable path",
			cfg: func(t *testing.T) config.Config {
				return config.Config{History: config.HistoryConfig{
					Driver:     config.HistoryDriverSQLite,
					SQLitePath: filepath.Join(t.TempDir(), "missing", "dir", "history.db"),
				}}
			},
			wantDriver: config.HistoryDriverNone,
		},
		{
			name: "none",
			cfg: func(t *testing.T) config.Config {
				return config.Config{History: config.HistoryConfig{Driver: config.HistoryDriverNone}}
			},
			wantDriver: config.HistoryDriverNone,
		},
		{
			name: "mongo without a database",
			cfg: func(t *testing.T) config.Config {
				return config.Config{History: config.HistoryConfig{Driver: config.HistoryDriverMongo}}
			},
			wantDriver: config.HistoryDriverNone,
		},
		{
			name: "auto without a database",
			cfg: func(t *testing.T) config.Config {
				return config.Config{}
			},
			wantDriver: config.HistoryDriverNone,
		},
		{
			name: "unknown driver",
			cfg: func(t *testing.T) config.Config {
				return config.Config{History: config.HistoryConfig{Driver: "postgres"}}
			},
			wantDriver: config.HistoryDriverNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := InitializeHistory(tt.cfg(t), nil)
			require.NotNil(t, history)
			t.Cleanup(func() { _ = history.Close() })

			assert.Equal(t, tt.wantDriver, history.Driver)
			require.NotNil(t, history.RunService)

			_, _, err := history.RunService.List(context.Background(), model.RunQueryOptions{Limit: 10})
			if !tt.wantEnabled {
				assert.Nil(t, history.Store)
				assert.ErrorIs(t, err, service.ErrHistoryDisabled)
				return
			}
			assert.NoError(t, err)
			require.NotNil(t, history.Store)
			assert.NoError(t, history.Store.HealthCheck(context.Background()))
		})
	}
}

func TestHistoryComponents_SQLiteRoundTrip(t *testing.T) {
	history := InitializeHistory(config.Config{History: config.HistoryConfig{
		Driver:     config.HistoryDriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "history.db"),
	}}, nil)
	t.Cleanup(func() { _ = history.Close() })

	input := model.OptimizeInput{Quantity: 10, Offers: []model.Offer{{ID: "a", Price: 2}}}
	result := service.OptimizePerItem(input, nil)
	run := service.NewRun(model.SourceCLI, "", input, result, 0)

	ctx := context.Background()
	require.NoError(t, history.RunService.Record(ctx, run))

	got, err := history.RunService.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SourceCLI, got.Source)
	assert.Equal(t, map[string]float64{"a": 10}, got.Result.Allocation)
	assert.True(t, got.Satisfied)
}

func TestHistoryComponents_CloseNil(t *testing.T) {
	var history *HistoryComponents
	assert.NoError(t, history.Close())
	assert.NoError(t, disabledHistory().Close())
}
