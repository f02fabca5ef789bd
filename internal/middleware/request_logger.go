package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/logger"
	"github.com/guttosm/quote-optimizer/internal/service"
	"github.com/rs/zerolog"
)

const directLogTimeout = 5 * time.Second

// RequestLogger writes one zerolog line per request and, when loggingService
// is set, hands the same entry to the audit store through the async logger.
// skipPaths (probes, metrics) are neither logged nor stored.
func RequestLogger(loggingService service.LoggingService, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		entry := requestEntry(c, start)
		level := levelForStatus(entry.StatusCode)
		entry.Level = level.String()

		log := logger.Logger()
		event := log.WithLevel(level).
			Str("request_id", entry.RequestID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", entry.StatusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("client_id", entry.ClientID)
		if entry.Error != "" {
			event = event.Str("error", entry.Error)
		}
		event.Msg(entry.Message)

		if loggingService == nil {
			return
		}
		if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
			asyncLogger.Log(entry)
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), directLogTimeout)
			defer cancel()
			_ = loggingService.CreateLog(ctx, entry)
		}()
	}
}

func requestEntry(c *gin.Context, start time.Time) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Message:    "HTTP request",
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		StatusCode: c.Writer.Status(),
		Duration:   time.Since(start).Milliseconds(),
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ClientID:   GetClientID(c),
	}
	if route := c.FullPath(); route != "" && route != entry.Path {
		entry.WithField("route", route)
	}
	if last := c.Errors.Last(); last != nil {
		entry.Error = last.Error()
	}
	return entry
}

func levelForStatus(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
