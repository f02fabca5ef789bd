package model

import "time"

// Run sources.
const (
	SourceHTTP = "http"
	SourceJob  = "job"
	SourceCLI  = "cli"
)

// OptimizationRun is a recorded optimization: what was asked and what was allocated.
//
// @Description Stored optimization run
type OptimizationRun struct {
	ID         string         `json:"id" example:"4f9d3c1e-8a7b-4c2d-9e1f-0a1b2c3d4e5f"`
	RequestID  string         `json:"request_id,omitempty"`
	Source     string         `json:"source" example:"http"`
	Input      OptimizeInput  `json:"input"`
	Result     OptimizeResult `json:"result"`
	Satisfied  bool           `json:"satisfied"`
	DurationUS int64          `json:"duration_us"`
	CreatedAt  time.Time      `json:"created_at"`
} // @name OptimizationRun

// RunQueryOptions filters run history queries.
type RunQueryOptions struct {
	Source    string
	Satisfied *bool
	Limit     int
	Skip      int
}
