package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit action types recorded by the API.
const (
	ActionOptimize  = "optimize"
	ActionSubmitJob = "submit_job"
)

// LogEntry is a request or audit log record.
// Context-specific data goes in Fields.
type LogEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Level      string             `bson:"level" json:"level"`
	Message    string             `bson:"message" json:"message"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty" json:"method,omitempty"`
	Path       string             `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string             `bson:"error,omitempty" json:"error,omitempty"`
	// ClientID is the fingerprint of the API key that issued the request, if any.
	ClientID   string                 `bson:"client_id,omitempty" json:"client_id,omitempty"`
	ActionType string                 `bson:"action_type,omitempty" json:"action_type,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField sets a single context field, initializing Fields if needed.
func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into the entry.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions filters log queries.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	ActionType string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
