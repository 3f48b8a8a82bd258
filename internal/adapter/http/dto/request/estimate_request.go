package request

import (
	"errors"
	"strings"

	"pintura_xpto/internal/domain/entities"
)

var (
	ErrMissingJobPayload   = errors.New("missing job payload")
	ErrAmbiguousJobKind    = errors.New("request carries both interior and exterior jobs")
	ErrUnknownJobKind      = errors.New("unknown job kind")
	ErrKindPayloadMismatch = errors.New("kind does not match the supplied job payload")
)

// EstimateRequest creates or re-prices a persisted estimate. Exactly one of
// Interior/Exterior must be set; Kind is optional and only cross-checked
// against the payload when present.
type EstimateRequest struct {
	JobRef string `json:"job_ref" binding:"required"`
	Kind   string `json:"kind"`

	Interior *InteriorJobRequest `json:"interior"`
	Exterior *ExteriorJobRequest `json:"exterior"`
}

func (r EstimateRequest) ResolveJobRef() string {
	return strings.TrimSpace(r.JobRef)
}

// ResolveKind determines which job payload the request carries.
func (r EstimateRequest) ResolveKind() (entities.JobKind, error) {
	if r.Interior != nil && r.Exterior != nil {
		return "", ErrAmbiguousJobKind
	}

	var resolved entities.JobKind
	switch {
	case r.Interior != nil:
		resolved = entities.JobKindInterior
	case r.Exterior != nil:
		resolved = entities.JobKindExterior
	default:
		return "", ErrMissingJobPayload
	}

	if kind := strings.TrimSpace(r.Kind); kind != "" {
		switch entities.JobKind(kind) {
		case entities.JobKindInterior, entities.JobKindExterior:
			if entities.JobKind(kind) != resolved {
				return "", ErrKindPayloadMismatch
			}
		default:
			return "", ErrUnknownJobKind
		}
	}
	return resolved, nil
}

// EstimateActionRequest drives the accept/reject/cancel transitions.
type EstimateActionRequest struct {
	JobRef string `json:"job_ref" binding:"required"`
}

func (r EstimateActionRequest) ResolveJobRef() string {
	return strings.TrimSpace(r.JobRef)
}
