package dto

import "github.com/guttosm/quote-optimizer/internal/domain/model"

// RunListResponse is a page of recorded optimization runs.
//
// @Description Page of optimization history
type RunListResponse struct {
	Runs  []model.OptimizationRun `json:"runs"`
	Total int64                   `json:"total" example:"42"`
	Limit int                     `json:"limit" example:"50"`
	Skip  int                     `json:"skip" example:"0"`
} // @name RunListResponse
