package response

import (
	"time"

	"pintura_xpto/internal/domain/entities"
)

type DepositResponse struct {
	DepositID  string    `json:"deposit_id"`
	ID         string    `json:"id"`
	EstimateID string    `json:"estimate_id"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromDeposit(d entities.Deposit) DepositResponse {
	return DepositResponse{
		DepositID:          d.ID,
		ID:                 d.ID,
		EstimateID:         d.EstimateID,
		Amount:             d.Amount,
		Date:               d.Date,
		Status:             string(d.Status),
		ProviderPayloadRaw: string(d.ProviderPayloadRaw),
		ProviderPayload:    d.ProviderPayload,
	}
}
