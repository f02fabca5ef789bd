package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; viper treats empty values as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for key := range defaults {
		t.Setenv(strings.ToUpper(key), "")
	}
	for _, key := range []string{"CORS_ORIGINS", "SWAGGER_USER", "SWAGGER_PASS", "API_KEYS", "CONFIG_FILE"} {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		clearEnv(t)

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Nil(t, cfg.Server.CORSOrigins)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
		assert.Equal(t, 50, cfg.Cache.Size)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Zero(t, cfg.Cache.Shards)
		assert.False(t, cfg.Auth.Enabled)
		assert.Nil(t, cfg.Auth.APIKeys)
		assert.Equal(t, "quote_optimizer", cfg.Database.DatabaseName)
		assert.Equal(t, 30*24*time.Hour, cfg.Database.LogsTTL)
		assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
		assert.Equal(t, HistoryDriverAuto, cfg.History.Driver)
		assert.Equal(t, "quote_history.db", cfg.History.SQLitePath)
		assert.Equal(t, 4, cfg.Worker.PoolSize)
		assert.Equal(t, 100, cfg.Worker.QueueSize)
		assert.Equal(t, 500*time.Millisecond, cfg.Worker.ProgressInterval)
		assert.Equal(t, 10*time.Minute, cfg.Worker.JobRetention)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT", "50")
		t.Setenv("RATE_WINDOW", "30s")
		t.Setenv("CACHE_SIZE", "500")
		t.Setenv("CACHE_SHARDS", "8")
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("API_KEYS", " key1 , key2 ,")
		t.Setenv("CORS_ORIGINS", "https://app.example.com, *")
		t.Setenv("HISTORY_DRIVER", "SQLite")
		t.Setenv("WORKER_POOL_SIZE", "8")
		t.Setenv("WORKER_PROGRESS_INTERVAL", "1s")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 500, cfg.Cache.Size)
		assert.Equal(t, 8, cfg.Cache.Shards)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, map[string]bool{"key1": true, "key2": true}, cfg.Auth.APIKeys)
		assert.Equal(t, []string{"https://app.example.com", "*"}, cfg.Server.CORSOrigins)
		assert.Equal(t, HistoryDriverSQLite, cfg.History.Driver)
		assert.Equal(t, 8, cfg.Worker.PoolSize)
		assert.Equal(t, time.Second, cfg.Worker.ProgressInterval)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RATE_LIMIT", "invalid")
		t.Setenv("AUTH_ENABLED", "invalid")
		t.Setenv("RATE_WINDOW", "invalid")
		t.Setenv("WORKER_QUEUE_SIZE", "ten")

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 100, cfg.Worker.QueueSize)
	})

	t.Run("reads file named by CONFIG_FILE", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONFIG_FILE", writeConfigFile(t, "port: 7070\nworker_pool_size: 2\n"))

		cfg := Load()

		assert.Equal(t, "7070", cfg.Server.Port)
		assert.Equal(t, 2, cfg.Worker.PoolSize)
	})

	t.Run("missing config file is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("environment overrides file", func(t *testing.T) {
		clearEnv(t)
		path := writeConfigFile(t, strings.Join([]string{
			"port: 7070",
			"cache_size: 10",
			"cache_ttl: 1m",
			"log_pretty: true",
			"history_driver: none",
			"cors_origins: https://a.example.com,https://b.example.com",
		}, "\n"))
		t.Setenv("CACHE_SIZE", "20")

		cfg, err := LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Server.Port)
		assert.Equal(t, 20, cfg.Cache.Size)
		assert.Equal(t, time.Minute, cfg.Cache.TTL)
		assert.True(t, cfg.Log.Pretty)
		assert.Equal(t, HistoryDriverNone, cfg.History.Driver)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSOrigins)
	})

	t.Run("malformed file returns error", func(t *testing.T) {
		clearEnv(t)
		path := writeConfigFile(t, "port: [unterminated\n")

		_, err := LoadFile(path)

		assert.Error(t, err)
	})
}

func TestConfig_HistoryDriver(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		mongo    bool
		expected string
	}{
		{name: "auto with mongo", driver: HistoryDriverAuto, mongo: true, expected: HistoryDriverMongo},
		{name: "auto without mongo", driver: HistoryDriverAuto, expected: HistoryDriverNone},
		{name: "explicit sqlite", driver: HistoryDriverSQLite, mongo: true, expected: HistoryDriverSQLite},
		{name: "explicit none", driver: HistoryDriverNone, mongo: true, expected: HistoryDriverNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				History:  HistoryConfig{Driver: tt.driver},
				Database: DatabaseConfig{Enabled: tt.mongo},
			}
			assert.Equal(t, tt.expected, cfg.HistoryDriver())
		})
	}
}
