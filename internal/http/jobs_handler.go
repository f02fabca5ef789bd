package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/i18n"
	"github.com/guttosm/quote-optimizer/internal/middleware"
	"github.com/guttosm/quote-optimizer/internal/worker"
)

// JobsHandler serves the asynchronous optimization endpoints.
type JobsHandler struct {
	pool *worker.Pool
}

// NewJobsHandler creates a JobsHandler backed by pool.
func NewJobsHandler(pool *worker.Pool) *JobsHandler {
	return &JobsHandler{pool: pool}
}

// Submit handles POST /api/optimize/jobs requests.
//
// @Summary      Submit a background optimization
// @Description  Queues the optimization on the worker pool and returns its job id. Follow progress with the status or events endpoints.
// @Tags         Jobs
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        request body dto.OptimizeRequest true "Quantity, offers and optional budget"
// @Success      202 {object} dto.SuccessResponse{data=dto.JobResponse} "Job accepted"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid quantity or offers"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Queue full"
// @Security     ApiKeyAuth
// @Router       /api/optimize/jobs [post]
func (h *JobsHandler) Submit(c *gin.Context) {
	req, ok := bindOptimizeRequest(c)
	if !ok {
		return
	}
	input := req.ToInput()

	job, err := h.pool.Submit(input, middleware.GetRequestID(c))
	if err != nil {
		if errors.Is(err, worker.ErrQueueFull) || errors.Is(err, worker.ErrPoolStopped) {
			c.Header("Retry-After", "1")
			NewResponseBuilder(c).Error(http.StatusServiceUnavailable, i18n.ErrKeyQueueFull, err)
			return
		}
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	auditOptimization(c, model.ActionSubmitJob, "Optimization job submitted", input)

	c.Header("Location", "/api/optimize/jobs/"+job.ID)
	NewResponseBuilder(c).SuccessAccepted(toJobResponse(job.Snapshot()))
}

// Status handles GET /api/optimize/jobs/:id requests.
//
// @Summary      Get a background optimization
// @Description  Returns the job status, latest progress and, once finished, its result or error message. Finished jobs are kept for a limited time.
// @Tags         Jobs
// @Produce      json
// @Param        id path string true "Job id"
// @Success      200 {object} dto.SuccessResponse{data=dto.JobResponse} "Job status"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired job"
// @Security     ApiKeyAuth
// @Router       /api/optimize/jobs/{id} [get]
func (h *JobsHandler) Status(c *gin.Context) {
	job, ok := h.lookup(c)
	if !ok {
		return
	}
	NewResponseBuilder(c).SuccessOK(toJobResponse(job.Snapshot()))
}

// Events handles GET /api/optimize/jobs/:id/events requests.
//
// @Summary      Stream job events
// @Description  Server-Sent Events stream replaying every event of the job and following new ones: progress events ({type, value}) then exactly one result ({type, result}) or error ({type, message}) event, after which the stream closes.
// @Tags         Jobs
// @Produce      text/event-stream
// @Param        id path string true "Job id"
// @Success      200 {string} string "Event stream"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired job"
// @Security     ApiKeyAuth
// @Router       /api/optimize/jobs/{id}/events [get]
func (h *JobsHandler) Events(c *gin.Context) {
	job, ok := h.lookup(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	events := job.Events(c.Request.Context())
	c.Stream(func(_ io.Writer) bool {
		ev, open := <-events
		if !open {
			return false
		}
		c.SSEvent(ev.Type, ev)
		return !ev.Terminal()
	})
}

func (h *JobsHandler) lookup(c *gin.Context) (*worker.Job, bool) {
	job, ok := h.pool.Get(c.Param("id"))
	if !ok {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyJobNotFound, nil)
		return nil, false
	}
	return job, true
}

func toJobResponse(s worker.Snapshot) dto.JobResponse {
	return dto.JobResponse{
		JobID:       s.ID,
		Status:      string(s.Status),
		Progress:    s.Progress,
		Result:      s.Result,
		Error:       s.Error,
		SubmittedAt: s.SubmittedAt,
		FinishedAt:  s.FinishedAt,
	}
}
