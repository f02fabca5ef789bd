// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model and carry the
// binding rules enforced at the API boundary. The optimizer itself never
// validates its input.
package dto

import (
	"github.com/guttosm/quote-optimizer/internal/domain/model"
)

// OfferRequest is a single supplier offer in an optimization request.
//
// @Description Supplier offer with price and purchase constraints
type OfferRequest struct {
	ID       string   `json:"id" yaml:"id" binding:"required" example:"a"`
	Price    float64  `json:"price" yaml:"price" binding:"gte=0" example:"8"`
	MOQ      float64  `json:"moq" yaml:"moq" binding:"gte=0" example:"0"`
	Step     float64  `json:"step" yaml:"step" binding:"gte=0" example:"1"`
	Capacity *float64 `json:"capacity" yaml:"capacity" binding:"omitempty,gte=0" example:"400"`
	Share    *float64 `json:"share" yaml:"share" binding:"omitempty,gte=0,lte=1" example:"0.3"`
} // @name OfferRequest

// OptimizeRequest represents the JSON body of the optimization endpoints.
//
// Quantity and Offers are required. An empty offers array is accepted and
// produces a full shortfall diagnostic.
//
// @Description Request to allocate a quantity across supplier offers
// @Example {"quantity": 100, "offers": [{"id": "a", "price": 8, "share": 0.3}, {"id": "b", "price": 9}]}
type OptimizeRequest struct {
	Quantity float64        `json:"quantity" yaml:"quantity" binding:"required,gt=0" example:"100"`
	Offers   []OfferRequest `json:"offers" yaml:"offers" binding:"required,dive"`
	Budget   *float64       `json:"budget" yaml:"budget" binding:"omitempty,gte=0" example:"1000"`
} // @name OptimizeRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidQuantity is returned when quantity is missing or not positive.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive number",
	}
	// ErrMissingOffers is returned when offers is absent.
	ErrMissingOffers = &ValidationError{
		Field:   "offers",
		Message: "is required",
	}
	// ErrDuplicateOfferID is returned when two offers share an id.
	ErrDuplicateOfferID = &ValidationError{
		Field:   "offers.id",
		Message: "must be unique",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks the rules binding tags cannot express.
func (r *OptimizeRequest) Validate() error {
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if r.Offers == nil {
		return ErrMissingOffers
	}
	seen := make(map[string]struct{}, len(r.Offers))
	for _, o := range r.Offers {
		if _, dup := seen[o.ID]; dup {
			return ErrDuplicateOfferID
		}
		seen[o.ID] = struct{}{}
	}
	return nil
}

// ToInput converts the request into the optimizer input.
func (r *OptimizeRequest) ToInput() model.OptimizeInput {
	offers := make([]model.Offer, len(r.Offers))
	for i, o := range r.Offers {
		offers[i] = model.Offer{
			ID:       o.ID,
			Price:    o.Price,
			MOQ:      o.MOQ,
			Step:     o.Step,
			Capacity: o.Capacity,
			Share:    o.Share,
		}
	}
	return model.OptimizeInput{
		Quantity: r.Quantity,
		Offers:   offers,
		Budget:   r.Budget,
	}
}

// RunListQuery holds the query parameters of the run history listing.
type RunListQuery struct {
	Limit     int    `form:"limit" binding:"omitempty,gte=1,lte=500"`
	Skip      int    `form:"skip" binding:"omitempty,gte=0"`
	Source    string `form:"source" binding:"omitempty,oneof=http job cli"`
	Satisfied *bool  `form:"satisfied"`
}

// ToOptions converts the query into repository options.
func (q RunListQuery) ToOptions() model.RunQueryOptions {
	limit := q.Limit
	if limit == 0 {
		limit = 50
	}
	return model.RunQueryOptions{
		Source:    q.Source,
		Satisfied: q.Satisfied,
		Limit:     limit,
		Skip:      q.Skip,
	}
}
