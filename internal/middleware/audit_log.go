package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/service"
)

// AuditLog records an API action, such as an optimization or a job
// submission, in the audit store.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	storeAuditEntry(loggingService, newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed API action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	storeAuditEntry(loggingService, entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ClientID:   GetClientID(c),
		ActionType: actionType,
		Fields:     fields,
	}
}

// storeAuditEntry hands entry to the async logger, or writes it from a
// goroutine when none is running.
func storeAuditEntry(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
