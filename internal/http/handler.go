package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/guttosm/quote-optimizer/internal/i18n"
	"github.com/guttosm/quote-optimizer/internal/middleware"
	"github.com/guttosm/quote-optimizer/internal/service"
)

// Handler serves the synchronous optimization endpoint.
type Handler struct {
	optimizer service.Optimizer
	runs      service.RunService
}

// NewHandler creates a Handler. runs may be nil when history is disabled.
func NewHandler(optimizer service.Optimizer, runs service.RunService) *Handler {
	return &Handler{
		optimizer: optimizer,
		runs:      runs,
	}
}

// Optimize handles POST /api/optimize requests.
//
// @Summary      Optimize a purchase across supplier offers
// @Description  Allocates the quantity cheapest offer first, honouring MOQ, step, capacity, participation share and budget. Unmet constraints are reported as Portuguese messages in violations; they never fail the request. Supports idempotency via Idempotency-Key header.
// @Tags         Optimize
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        request body dto.OptimizeRequest true "Quantity, offers and optional budget"
// @Success      200 {object} model.OptimizeResult "Allocation, cost and violations"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid quantity or offers"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      504 {object} dto.ErrorResponse "Request timeout"
// @Security     ApiKeyAuth
// @Router       /api/optimize [post]
func (h *Handler) Optimize(c *gin.Context) {
	req, ok := bindOptimizeRequest(c)
	if !ok {
		return
	}
	input := req.ToInput()

	auditOptimization(c, model.ActionOptimize, "Optimization requested", input)

	start := time.Now()
	result := h.optimizer.Optimize(input)
	elapsed := time.Since(start)

	if h.runs != nil {
		h.runs.RecordAsync(service.NewRun(model.SourceHTTP, middleware.GetRequestID(c), input, result, elapsed))
	}

	c.JSON(http.StatusOK, result)
}

// bindOptimizeRequest binds and validates the body, answering 400 itself on failure.
func bindOptimizeRequest(c *gin.Context) (*dto.OptimizeRequest, bool) {
	req, err := BuildRequestAndValidate[dto.OptimizeRequest](c)
	if err != nil {
		key, field := validationKey(err)
		var details map[string]string
		if field != "" {
			details = map[string]string{field: i18n.Message(c, key)}
		}
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, key, details, err)
		return nil, false
	}
	return req, true
}

// validationKey maps a bind or validation error to its message key and the
// offending JSON field, when known. Validator errors carry Go field names.
func validationKey(err error) (key, field string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch {
		case strings.Contains(fe.Namespace(), ".Offers["):
			return i18n.ErrKeyValidationOffer, "offers"
		case fe.Field() == "Quantity":
			return i18n.ErrKeyValidationQuantity, "quantity"
		case fe.Field() == "Offers":
			return i18n.ErrKeyValidationOffers, "offers"
		default:
			return i18n.ErrKeyInvalidRequest, strings.ToLower(fe.Field())
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch {
		case typeErr.Field == "quantity":
			return i18n.ErrKeyValidationQuantity, "quantity"
		case typeErr.Field == "offers":
			return i18n.ErrKeyValidationOffers, "offers"
		case strings.HasPrefix(typeErr.Field, "offers."):
			return i18n.ErrKeyValidationOffer, "offers"
		default:
			return i18n.ErrKeyInvalidRequestBody, typeErr.Field
		}
	}

	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		switch verr {
		case dto.ErrInvalidQuantity:
			return i18n.ErrKeyValidationQuantity, verr.Field
		case dto.ErrMissingOffers:
			return i18n.ErrKeyValidationOffers, verr.Field
		default:
			return i18n.ErrKeyValidationOffer, "offers"
		}
	}

	return i18n.ErrKeyInvalidRequestBody, ""
}

// auditOptimization writes an audit entry when a logging service is configured.
func auditOptimization(c *gin.Context, action, message string, input model.OptimizeInput) {
	loggingService, exists := c.Get(loggingServiceKey)
	if !exists {
		return
	}
	ls, ok := loggingService.(service.LoggingService)
	if !ok || ls == nil {
		return
	}
	middleware.AuditLog(ls, c, action, message, map[string]interface{}{
		"quantity":   input.Quantity,
		"offers":     len(input.Offers),
		"has_budget": input.HasBudget(),
	})
}
