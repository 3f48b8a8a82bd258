package entities

import (
	"encoding/json"
	"time"
)

// Draft is the in-progress job state the front-end saves between visits.
//
// Storage model (DynamoDB):
//   - PK: draft_key (caller-chosen, fixed string per client)
//
// Payload is the raw job JSON exactly as the client sent it. The pricing
// engine never sees drafts; they exist purely so an unfinished form
// survives a page reload.
type Draft struct {
	Key       string          `json:"key"`
	Kind      JobKind         `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updated_at"`
}
