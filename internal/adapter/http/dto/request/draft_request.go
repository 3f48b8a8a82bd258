package request

import (
	"encoding/json"
	"strings"

	"pintura_xpto/internal/domain/entities"
)

// DraftRequest saves the in-progress job state for a customer form. Payload
// is opaque job JSON; the server never interprets it beyond validity.
type DraftRequest struct {
	Kind    string          `json:"kind" binding:"required"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}

func (r DraftRequest) ResolveKind() entities.JobKind {
	return entities.JobKind(strings.TrimSpace(strings.ToLower(r.Kind)))
}
