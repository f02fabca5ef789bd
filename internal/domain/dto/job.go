package dto

import (
	"time"

	"github.com/guttosm/quote-optimizer/internal/domain/model"
)

// JobResponse describes the state of an asynchronous optimization job.
//
// @Description Asynchronous optimization job status
type JobResponse struct {
	JobID       string                `json:"job_id" example:"4f9d3c1e-8a7b-4c2d-9e1f-0a1b2c3d4e5f"`
	Status      string                `json:"status" example:"running"`
	Progress    float64               `json:"progress" example:"50"`
	Result      *model.OptimizeResult `json:"result,omitempty"`
	Error       string                `json:"error,omitempty"`
	SubmittedAt time.Time             `json:"submitted_at"`
	FinishedAt  *time.Time            `json:"finished_at,omitempty"`
} // @name JobResponse
