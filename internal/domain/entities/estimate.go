package entities

import "time"

// EstimateStatus represents the lifecycle of a painting estimate.
//
// Domain notes:
//   - The estimate-service is the source of truth for estimate/deposit state.
//   - Status transitions are driven by customer actions relayed by the
//     front-end (accept/reject) or by the office (cancel).

type EstimateStatus string

const (
	EstimateStatusPending   EstimateStatus = "pending"
	EstimateStatusAccepted  EstimateStatus = "accepted"
	EstimateStatusRejected  EstimateStatus = "rejected"
	EstimateStatusCancelled EstimateStatus = "cancelled"
)

// JobKind discriminates the two pricing pipelines.

type JobKind string

const (
	JobKindInterior JobKind = "interior"
	JobKindExterior JobKind = "exterior"
)

// Estimate is the painting estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_ref-index): job_ref
//
// Monetary representation:
//   - Total is the engine-computed grand total in whole currency units.
//
type Estimate struct {
	ID        string         `json:"id"`
	JobRef    string         `json:"job_ref"`
	Kind      JobKind        `json:"kind"`
	Total     float64        `json:"total"`
	Status    EstimateStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
