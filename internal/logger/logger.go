// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global logger to write JSON, or console output when
// pretty is set, to stderr. Unknown levels fall back to info.
func Init(level string, pretty bool) {
	InitWithWriter(os.Stderr, level, pretty)
}

// InitWithWriter is Init with an explicit destination. The CLI uses it to keep
// logs off stdout, where results are printed.
func InitWithWriter(w io.Writer, level string, pretty bool) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// ParseLevel maps debug, info, warn, error and disabled to zerolog levels.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// WithContext returns a logger with context fields.
func WithContext(fields map[string]interface{}) zerolog.Logger {
	return log.Logger.With().Fields(fields).Logger()
}

// ForJob returns a logger tagged with a worker job and the request that submitted it.
func ForJob(jobID, requestID string) zerolog.Logger {
	ctx := log.Logger.With().Str("job_id", jobID)
	if requestID != "" {
		ctx = ctx.Str("request_id", requestID)
	}
	return ctx.Logger()
}
