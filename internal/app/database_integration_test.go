//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/quote-optimizer/config"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/service"
	"github.com/guttosm/quote-optimizer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func databaseConfig(t *testing.T, uri string) config.DatabaseConfig {
	return config.DatabaseConfig{
		URI:                            uri,
		DatabaseName:                   testutil.DatabaseName(t),
		LogsTTL:                        30 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database names for each subtest
	uri := testutil.MongoURI(t)

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(databaseConfig(t, uri))
		require.NotNil(t, components)
		t.Cleanup(func() { _ = components.Close(ctx) })

		assert.NotNil(t, components.DB)
		assert.NotNil(t, components.RunsRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.RunsCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
	})

	t.Run("initialize with disabled database", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, InitializeDatabase(config.DatabaseConfig{Enabled: false}))
	})

	t.Run("unreachable database", func(t *testing.T) {
		t.Parallel()
		cfg := databaseConfig(t, "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200")
		assert.Nil(t, InitializeDatabase(cfg))
	})

	t.Run("runs repository round trip", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(databaseConfig(t, uri))
		require.NotNil(t, components)
		t.Cleanup(func() { _ = components.Close(ctx) })

		input := model.OptimizeInput{Quantity: 10, Offers: []model.Offer{{ID: "a", Price: 3}}}
		run := service.NewRun(model.SourceHTTP, "req-1", input, service.OptimizePerItem(input, nil), time.Millisecond)
		require.NoError(t, components.RunsRepo.Create(ctx, run))

		got, err := components.RunsRepo.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, "req-1", got.RequestID)
		assert.InDelta(t, 30, got.Result.Cost, 1e-9)
	})

	t.Run("circuit breakers start closed", func(t *testing.T) {
		t.Parallel()
		cfg := databaseConfig(t, uri)
		cfg.CircuitBreakerFailureThreshold = 2
		cfg.CircuitBreakerSuccessThreshold = 1
		cfg.CircuitBreakerTimeout = 100 * time.Millisecond

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)
		t.Cleanup(func() { _ = components.Close(ctx) })

		for _, stats := range []struct {
			state     string
			isHealthy bool
		}{
			{components.RunsCircuitBreaker.GetStats().State, components.RunsCircuitBreaker.GetStats().IsHealthy},
			{components.LogsCircuitBreaker.GetStats().State, components.LogsCircuitBreaker.GetStats().IsHealthy},
		} {
			assert.Equal(t, "closed", stats.state)
			assert.True(t, stats.isHealthy)
		}
	})
}
