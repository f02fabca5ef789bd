// Package model defines the core domain entities for the quote optimizer.
package model

import "math"

// Offer is a candidate supply source for one line item.
//
// @Description Supplier offer with price and purchase constraints
type Offer struct {
	// ID identifies the offer within a single optimization call.
	ID string `json:"id" yaml:"id" bson:"id" example:"fornecedor-a"`
	// Price is the unit price.
	Price float64 `json:"price" yaml:"price" bson:"price" example:"8.5"`
	// MOQ is the minimum order quantity; zero means no minimum.
	MOQ float64 `json:"moq,omitempty" yaml:"moq,omitempty" bson:"moq,omitempty" example:"50"`
	// Step is the purchase multiple; zero means 1.
	Step float64 `json:"step,omitempty" yaml:"step,omitempty" bson:"step,omitempty" example:"10"`
	// Capacity is the maximum quantity the offer can supply; nil means unbounded.
	Capacity *float64 `json:"capacity,omitempty" yaml:"capacity,omitempty" bson:"capacity,omitempty" example:"400"`
	// Share is the maximum fraction (0-1) of the total requested quantity; nil means unset.
	Share *float64 `json:"share,omitempty" yaml:"share,omitempty" bson:"share,omitempty" example:"0.3"`
} // @name Offer

// EffectiveStep returns the step used for rounding allocations.
func (o Offer) EffectiveStep() float64 {
	if o.Step <= 0 {
		return 1
	}
	return o.Step
}

// EffectiveCapacity returns the capacity, or +Inf when unbounded.
func (o Offer) EffectiveCapacity() float64 {
	if o.Capacity == nil {
		return math.Inf(1)
	}
	return *o.Capacity
}

// OptimizeInput is the input of a per-item optimization.
type OptimizeInput struct {
	Quantity float64  `json:"quantity" yaml:"quantity" bson:"quantity"`
	Offers   []Offer  `json:"offers" yaml:"offers" bson:"offers"`
	Budget   *float64 `json:"budget,omitempty" yaml:"budget,omitempty" bson:"budget,omitempty"`
}

// HasBudget reports whether a spending limit was supplied.
func (in OptimizeInput) HasBudget() bool {
	return in.Budget != nil
}

// OptimizeResult is the outcome of a per-item optimization.
// Allocation only holds offers that received a positive quantity.
//
// @Description Allocation per offer id, total cost and constraint violations
// @Example {"allocation": {"a": 30, "b": 70}, "cost": 870, "violations": []}
type OptimizeResult struct {
	Allocation map[string]float64 `json:"allocation" bson:"allocation" swaggertype:"object"`
	Cost       float64            `json:"cost" bson:"cost" example:"870"`
	Violations []string           `json:"violations" bson:"violations"`
} // @name OptimizeResult

// NewOptimizeResult returns a result with empty, non-nil collections.
func NewOptimizeResult() OptimizeResult {
	return OptimizeResult{
		Allocation: map[string]float64{},
		Violations: []string{},
	}
}

// Allocated returns the total quantity allocated across all offers.
func (r OptimizeResult) Allocated() float64 {
	var total float64
	for _, qty := range r.Allocation {
		total += qty
	}
	return total
}

// Satisfied reports whether the allocation covers the requested quantity.
func (r OptimizeResult) Satisfied(quantity float64) bool {
	return r.Allocated() >= quantity
}

// Ptr returns a pointer to v. Useful for optional offer fields.
func Ptr(v float64) *float64 {
	return &v
}
