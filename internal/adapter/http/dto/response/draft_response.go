package response

import (
	"encoding/json"
	"time"

	"pintura_xpto/internal/domain/entities"
)

type DraftResponse struct {
	Key       string          `json:"key"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FromDraft(d entities.Draft) DraftResponse {
	return DraftResponse{
		Key:       d.Key,
		Kind:      string(d.Kind),
		Payload:   d.Payload,
		UpdatedAt: d.UpdatedAt,
	}
}
