package response

import (
	"time"

	"pintura_xpto/internal/domain/entities"
)

type EstimateResponse struct {
	EstimateID string    `json:"estimate_id"`
	ID         string    `json:"id"`
	JobRef     string    `json:"job_ref"`
	Kind       string    `json:"kind"`
	Total      float64   `json:"total"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		EstimateID: e.ID,
		ID:         e.ID,
		JobRef:     e.JobRef,
		Kind:       string(e.Kind),
		Total:      e.Total,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
