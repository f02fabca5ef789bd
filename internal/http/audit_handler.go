package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/circuitbreaker"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/i18n"
	"github.com/guttosm/quote-optimizer/internal/service"
	"golang.org/x/sync/errgroup"
)

// AuditHandler serves the stored request and audit trail.
type AuditHandler struct {
	logs service.LoggingService
}

func NewAuditHandler(logs service.LoggingService) *AuditHandler {
	return &AuditHandler{logs: logs}
}

// List handles GET /api/audit-logs requests.
//
// @Summary      List audit log entries
// @Description  Returns stored request and audit entries, newest first. Only available when MongoDB is configured.
// @Tags         Audit
// @Produce      json
// @Param        limit query int false "Page size (1-500, default 50)"
// @Param        skip query int false "Entries to skip"
// @Param        request_id query string false "Request id"
// @Param        level query string false "Log level" Enums(debug, info, warn, error)
// @Param        action query string false "Audit action" Enums(optimize, submit_job)
// @Param        since query string false "RFC 3339 lower bound"
// @Param        until query string false "RFC 3339 upper bound"
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditLogListResponse} "Page of entries"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      503 {object} dto.ErrorResponse "Audit store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *gin.Context) {
	var query dto.AuditLogQuery
	if err := NewRequestBuilder(c).BindQuery(&query); err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	opts := query.ToOptions()

	var (
		entries []model.LogEntry
		total   int64
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		entries, err = h.logs.QueryLogs(ctx, opts)
		return err
	})
	g.Go(func() (err error) {
		total, err = h.logs.CountLogs(ctx, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.AuditLogListResponse{
		Entries: entries,
		Total:   total,
		Limit:   opts.Limit,
		Skip:    opts.Skip,
	})
}

func (h *AuditHandler) fail(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)
	switch {
	case errors.Is(err, service.ErrInvalidLogQuery):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyAuditUnavailable, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
