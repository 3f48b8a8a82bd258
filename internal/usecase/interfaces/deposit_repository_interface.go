package interfaces

import (
	"context"
	"pintura_xpto/internal/domain/entities"
)

// IDepositRepository abstracts DynamoDB persistence for Deposit.

type IDepositRepository interface {
	Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error)
	GetByID(ctx context.Context, id string) (entities.Deposit, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Deposit, error)
}
