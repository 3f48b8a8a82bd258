package interfaces

import (
	"context"
	"pintura_xpto/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The estimate-service must be able to:
//   - create an estimate when the front-end submits a computed quote
//   - update estimate status by job reference (accept/reject/cancel)
//   - update the estimate total by ID (repricing after the job changed)

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByJobRef(ctx context.Context, jobRef string) (entities.Estimate, error)
	UpdateStatusByJobRef(ctx context.Context, jobRef string, status entities.EstimateStatus) (entities.Estimate, error)
	UpdateTotalByID(ctx context.Context, id string, newTotal float64) (entities.Estimate, error)
}
