package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/circuitbreaker"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/i18n"
	"github.com/guttosm/quote-optimizer/internal/repository"
	"github.com/guttosm/quote-optimizer/internal/service"
)

// RunsHandler serves the optimization history.
type RunsHandler struct {
	runs service.RunService
}

// NewRunsHandler creates a RunsHandler.
func NewRunsHandler(runs service.RunService) *RunsHandler {
	return &RunsHandler{runs: runs}
}

// List handles GET /api/runs requests.
//
// @Summary      List optimization runs
// @Description  Returns recorded optimizations, newest first.
// @Tags         History
// @Produce      json
// @Param        limit query int false "Page size (1-500, default 50)"
// @Param        skip query int false "Runs to skip"
// @Param        source query string false "Origin of the run" Enums(http, job, cli)
// @Param        satisfied query bool false "Only runs that did or did not cover the quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.RunListResponse} "Page of runs"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      404 {object} dto.ErrorResponse "History disabled"
// @Failure      503 {object} dto.ErrorResponse "History store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/runs [get]
func (h *RunsHandler) List(c *gin.Context) {
	var query dto.RunListQuery
	if err := NewRequestBuilder(c).BindQuery(&query); err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	opts := query.ToOptions()

	runs, total, err := h.runs.List(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.RunListResponse{
		Runs:  runs,
		Total: total,
		Limit: opts.Limit,
		Skip:  opts.Skip,
	})
}

// Get handles GET /api/runs/:id requests.
//
// @Summary      Get an optimization run
// @Tags         History
// @Produce      json
// @Param        id path string true "Run id"
// @Success      200 {object} dto.SuccessResponse{data=model.OptimizationRun} "Run"
// @Failure      404 {object} dto.ErrorResponse "Unknown run or history disabled"
// @Failure      503 {object} dto.ErrorResponse "History store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/runs/{id} [get]
func (h *RunsHandler) Get(c *gin.Context) {
	run, err := h.runs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(run)
}

func (h *RunsHandler) fail(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)
	switch {
	case errors.Is(err, repository.ErrRunNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyRunNotFound, nil)
	case errors.Is(err, service.ErrHistoryDisabled):
		builder.Error(http.StatusNotFound, i18n.ErrKeyHistoryDisabled, nil)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyHistoryUnavailable, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
