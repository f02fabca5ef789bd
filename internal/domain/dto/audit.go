package dto

import (
	"time"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
)

// AuditLogQuery holds the query parameters of the audit log listing.
type AuditLogQuery struct {
	Limit     int        `form:"limit" binding:"omitempty,gte=1,lte=500"`
	Skip      int        `form:"skip" binding:"omitempty,gte=0"`
	RequestID string     `form:"request_id" binding:"omitempty,max=64"`
	Level     string     `form:"level" binding:"omitempty,oneof=debug info warn error"`
	Action    string     `form:"action" binding:"omitempty,oneof=optimize submit_job"`
	Since     *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Until     *time.Time `form:"until" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (q AuditLogQuery) ToOptions() model.LogQueryOptions {
	limit := q.Limit
	if limit == 0 {
		limit = 50
	}
	return model.LogQueryOptions{
		RequestID:  q.RequestID,
		Level:      q.Level,
		ActionType: q.Action,
		StartTime:  q.Since,
		EndTime:    q.Until,
		Limit:      limit,
		Skip:       q.Skip,
	}
}

// AuditLogListResponse is a page of audit entries, newest first.
type AuditLogListResponse struct {
	Entries []model.LogEntry `json:"entries"`
	Total   int64            `json:"total" example:"120"`
	Limit   int              `json:"limit" example:"50"`
	Skip    int              `json:"skip" example:"0"`
} // @name AuditLogListResponse
