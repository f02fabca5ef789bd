// Package config loads the quote optimizer configuration from the
// environment and an optional YAML file named by CONFIG_FILE.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// History drivers.
const (
	HistoryDriverAuto   = ""
	HistoryDriverMongo  = "mongo"
	HistoryDriverSQLite = "sqlite"
	HistoryDriverNone   = "none"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	History  HistoryConfig
	Worker   WorkerConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// CacheConfig configures memoization of optimization results. Size 0
// disables the cache; Shards > 1 selects the sharded variant.
type CacheConfig struct {
	Size   int
	TTL    time.Duration
	Shards int
}

// AuthConfig holds API key authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool

	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// HistoryConfig selects where optimization runs are recorded. The empty
// driver uses MongoDB when it is enabled and records nothing otherwise.
type HistoryConfig struct {
	Driver     string
	SQLitePath string
}

// WorkerConfig sizes the background optimization pool.
type WorkerConfig struct {
	PoolSize         int
	QueueSize        int
	ProgressInterval time.Duration
	JobRetention     time.Duration
}

var defaults = map[string]string{
	"port":                              "8080",
	"rate_limit":                        "100",
	"rate_window":                       "1m",
	"request_timeout":                   "30s",
	"log_level":                         "info",
	"log_pretty":                        "false",
	"cache_size":                        "50",
	"cache_ttl":                         "10m",
	"cache_shards":                      "0",
	"auth_enabled":                      "false",
	"mongodb_uri":                       "mongodb://localhost:27017",
	"mongodb_database":                  "quote_optimizer",
	"mongodb_logs_ttl":                  "720h",
	"mongodb_enabled":                   "false",
	"circuit_breaker_failure_threshold": "5",
	"circuit_breaker_success_threshold": "2",
	"circuit_breaker_timeout":           "30s",
	"history_driver":                    HistoryDriverAuto,
	"history_sqlite_path":               "quote_history.db",
	"worker_pool_size":                  "4",
	"worker_queue_size":                 "100",
	"worker_progress_interval":          "500ms",
	"worker_job_retention":              "10m",
}

// Load reads the configuration from the environment, layered over the YAML
// file named by CONFIG_FILE when set. An unreadable file is logged and ignored.
func Load() Config {
	path := os.Getenv("CONFIG_FILE")
	cfg, err := LoadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Ignoring config file")
		cfg, _ = LoadFile("")
	}
	return cfg
}

// LoadFile is Load with an explicit YAML file. Environment variables take
// precedence over file values; keys are the lower-cased variable names.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	r := reader{v: v}
	return Config{
		Server: ServerConfig{
			Port:           r.str("port"),
			RateLimit:      r.integer("rate_limit"),
			RateWindow:     r.duration("rate_window"),
			RequestTimeout: r.duration("request_timeout"),
			CORSOrigins:    parseList(r.str("cors_origins")),
			SwaggerUser:    r.str("swagger_user"),
			SwaggerPass:    r.str("swagger_pass"),
		},
		Log: LogConfig{
			Level:  r.str("log_level"),
			Pretty: r.boolean("log_pretty"),
		},
		Cache: CacheConfig{
			Size:   r.integer("cache_size"),
			TTL:    r.duration("cache_ttl"),
			Shards: r.integer("cache_shards"),
		},
		Auth: AuthConfig{
			Enabled: r.boolean("auth_enabled"),
			APIKeys: parseAPIKeys(r.str("api_keys")),
		},
		Database: DatabaseConfig{
			URI:                            r.str("mongodb_uri"),
			DatabaseName:                   r.str("mongodb_database"),
			LogsTTL:                        r.duration("mongodb_logs_ttl"),
			Enabled:                        r.boolean("mongodb_enabled"),
			CircuitBreakerFailureThreshold: r.integer("circuit_breaker_failure_threshold"),
			CircuitBreakerSuccessThreshold: r.integer("circuit_breaker_success_threshold"),
			CircuitBreakerTimeout:          r.duration("circuit_breaker_timeout"),
		},
		History: HistoryConfig{
			Driver:     strings.ToLower(r.str("history_driver")),
			SQLitePath: r.str("history_sqlite_path"),
		},
		Worker: WorkerConfig{
			PoolSize:         r.integer("worker_pool_size"),
			QueueSize:        r.integer("worker_queue_size"),
			ProgressInterval: r.duration("worker_progress_interval"),
			JobRetention:     r.duration("worker_job_retention"),
		},
	}, nil
}

// HistoryDriver resolves the automatic driver.
func (c Config) HistoryDriver() string {
	if c.History.Driver != HistoryDriverAuto {
		return c.History.Driver
	}
	if c.Database.Enabled {
		return HistoryDriverMongo
	}
	return HistoryDriverNone
}

// reader parses values as strings so a malformed value falls back to its
// default instead of a zero value.
type reader struct {
	v *viper.Viper
}

func (r reader) str(key string) string {
	return strings.TrimSpace(r.v.GetString(key))
}

func (r reader) fallback(key string) string {
	return defaults[key]
}

func (r reader) integer(key string) int {
	if i, err := strconv.Atoi(r.str(key)); err == nil {
		return i
	}
	i, _ := strconv.Atoi(r.fallback(key))
	return i
}

func (r reader) boolean(key string) bool {
	if b, err := strconv.ParseBool(r.str(key)); err == nil {
		return b
	}
	b, _ := strconv.ParseBool(r.fallback(key))
	return b
}

func (r reader) duration(key string) time.Duration {
	if d, err := time.ParseDuration(r.str(key)); err == nil {
		return d
	}
	d, _ := time.ParseDuration(r.fallback(key))
	return d
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if item := strings.TrimSpace(p); item != "" {
			result = append(result, item)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func parseAPIKeys(s string) map[string]bool {
	keys := parseList(s)
	if keys == nil {
		return nil
	}
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		result[k] = true
	}
	return result
}
