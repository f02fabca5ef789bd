package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
)

// Violation messages are user-facing Portuguese text. Callers match them by
// substring ("degrau", "MOQ", "Capacidade", "Orçamento", "Participação").
const (
	violationStepFormat = "degrau não atendido para fornecedor %s"
	violationMOQFormat  = "MOQ não atendido para fornecedor %s"

	// ViolationCapacity is reported when the summed capacities cannot cover the quantity.
	ViolationCapacity = "Capacidade insuficiente"
	// ViolationBudget is reported when the remaining budget cannot buy one unit of the cheapest offer.
	ViolationBudget = "Orçamento insuficiente"
	// ViolationShare is reported when the summed participation caps cannot cover the quantity.
	ViolationShare = "Participação insuficiente"
)

// Violation kinds, used as metric labels.
const (
	KindStep     = "step"
	KindMOQ      = "moq"
	KindCapacity = "capacity"
	KindBudget   = "budget"
	KindShare    = "share"
	KindUnknown  = "unknown"
)

// ProgressFunc receives completion percentages in [0, 100].
type ProgressFunc func(percent float64)

// StepViolation returns the step (degrau) violation message for an offer.
func StepViolation(offerID string) string {
	return fmt.Sprintf(violationStepFormat, offerID)
}

// MOQViolation returns the minimum order quantity violation message for an offer.
func MOQViolation(offerID string) string {
	return fmt.Sprintf(violationMOQFormat, offerID)
}

// ViolationKind classifies a violation message.
func ViolationKind(message string) string {
	switch {
	case strings.Contains(message, "degrau"):
		return KindStep
	case strings.Contains(message, "MOQ"):
		return KindMOQ
	case message == ViolationCapacity:
		return KindCapacity
	case message == ViolationBudget:
		return KindBudget
	case message == ViolationShare:
		return KindShare
	default:
		return KindUnknown
	}
}

// OptimizePerItem allocates input.Quantity across the offers, cheapest first.
//
// Offers are visited once, in ascending price order (stable for equal prices).
// Each offer receives the largest quantity allowed by the remaining quantity,
// its capacity, its share of the total quantity, the remaining budget and its
// step, provided that quantity reaches its MOQ. Unmet constraints are reported
// in Violations; they never abort the pass. onProgress may be nil.
//
// The function has no state and is safe for concurrent use.
func OptimizePerItem(input model.OptimizeInput, onProgress ProgressFunc) model.OptimizeResult {
	total := input.Quantity
	remainingQty := total
	remainingBudget := math.Inf(1)
	if input.HasBudget() {
		remainingBudget = *input.Budget
	}
	result := model.NewOptimizeResult()

	sorted := make([]model.Offer, len(input.Offers))
	copy(sorted, input.Offers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	for idx, offer := range sorted {
		qty := allocatable(offer, total, remainingQty, remainingBudget, input.HasBudget())

		switch {
		case qty == 0:
			// Also fires when earlier offers exhausted capacity or budget; the
			// message names the step regardless of the actual cause.
			if remainingQty > 0 {
				result.Violations = append(result.Violations, StepViolation(offer.ID))
			}
		case qty < offer.MOQ:
			result.Violations = append(result.Violations, MOQViolation(offer.ID))
		default:
			spend := qty * offer.Price
			result.Allocation[offer.ID] = qty
			remainingQty -= qty
			remainingBudget -= spend
			result.Cost += spend
		}

		if onProgress != nil {
			onProgress(float64(idx+1) / float64(len(sorted)) * 100)
		}
	}

	if remainingQty > 0 {
		result.Violations = append(result.Violations, shortfallViolations(input, remainingBudget)...)
	}

	return result
}

// allocatable returns the largest quantity an offer may receive in the pass.
func allocatable(offer model.Offer, total, remainingQty, remainingBudget float64, hasBudget bool) float64 {
	qty := math.Min(remainingQty, offer.EffectiveCapacity())

	if share := offer.Share; share != nil {
		qty = math.Min(qty, math.Floor(total*(*share)))
	}

	// A free offer is always affordable.
	if hasBudget && offer.Price > 0 {
		qty = math.Min(qty, math.Floor(remainingBudget/offer.Price))
	}

	step := offer.EffectiveStep()
	return math.Floor(qty/step) * step
}

// shortfallViolations runs the three independent diagnostics for an uncovered quantity.
func shortfallViolations(input model.OptimizeInput, remainingBudget float64) []string {
	total := input.Quantity
	var violations []string

	var totalCapacity float64
	for _, o := range input.Offers {
		if o.Capacity != nil {
			totalCapacity += *o.Capacity
		} else {
			totalCapacity += total
		}
	}
	if totalCapacity < total {
		violations = append(violations, ViolationCapacity)
	}

	if input.HasBudget() && remainingBudget < cheapestPrice(input.Offers) {
		violations = append(violations, ViolationBudget)
	}

	var totalShare float64
	for _, o := range input.Offers {
		if o.Share != nil {
			totalShare += *o.Share * total
		} else {
			totalShare += total
		}
	}
	if totalShare < total {
		violations = append(violations, ViolationShare)
	}

	return violations
}

// cheapestPrice returns the lowest offer price, or +Inf when there are no offers.
func cheapestPrice(offers []model.Offer) float64 {
	lowest := math.Inf(1)
	for _, o := range offers {
		if o.Price < lowest {
			lowest = o.Price
		}
	}
	return lowest
}
