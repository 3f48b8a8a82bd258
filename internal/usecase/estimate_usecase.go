package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pintura_xpto/internal/domain/entities"
	"pintura_xpto/internal/domain/pricing"
	"pintura_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrEstimateAlreadyExists = errors.New("estimate already exists")
	ErrInvalidJobRef         = errors.New("invalid job_ref")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrKindMismatch          = errors.New("job kind does not match the estimate")
)

// InteriorQuote wraps the engine result with the only time-dependent field
// of the whole service. CalculatedAt is stamped here, never inside the
// engine, so the engine stays bit-identical for identical input.
type InteriorQuote struct {
	Result       pricing.EstimateResult `json:"result"`
	CalculatedAt time.Time              `json:"calculated_at"`
}

// ExteriorQuote is the exterior counterpart of InteriorQuote.
type ExteriorQuote struct {
	Result       pricing.ExteriorEstimateResult `json:"result"`
	CalculatedAt time.Time                      `json:"calculated_at"`
}

// IEstimateUseCase exposes quoting and estimate lifecycle operations.
//
// Quote* are pure pass-throughs to the pricing engine; the front-end calls
// them on every edit. Create/Accept/Reject/Cancel/Reprice manage the
// persisted estimate a customer can act on.

type IEstimateUseCase interface {
	QuoteInterior(job entities.InteriorJob) InteriorQuote
	QuoteExterior(job entities.ExteriorJob) ExteriorQuote

	CreateFromInterior(ctx context.Context, jobRef string, job entities.InteriorJob) (entities.Estimate, error)
	CreateFromExterior(ctx context.Context, jobRef string, job entities.ExteriorJob) (entities.Estimate, error)
	AcceptByJobRef(ctx context.Context, jobRef string) (entities.Estimate, error)
	RejectByJobRef(ctx context.Context, jobRef string) (entities.Estimate, error)
	CancelByJobRef(ctx context.Context, jobRef string) (entities.Estimate, error)
	RepriceInterior(ctx context.Context, estimateID string, job entities.InteriorJob) (entities.Estimate, error)
	RepriceExterior(ctx context.Context, estimateID string, job entities.ExteriorJob) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByJobRef(ctx context.Context, jobRef string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo  interfaces.IEstimateRepository
	rates pricing.RateTable
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, rates: pricing.DefaultRates()}
}

func (u *EstimateUseCase) QuoteInterior(job entities.InteriorJob) InteriorQuote {
	return InteriorQuote{
		Result:       u.rates.ComputeInteriorEstimate(job),
		CalculatedAt: time.Now().UTC(),
	}
}

func (u *EstimateUseCase) QuoteExterior(job entities.ExteriorJob) ExteriorQuote {
	return ExteriorQuote{
		Result:       u.rates.ComputeExteriorEstimate(job),
		CalculatedAt: time.Now().UTC(),
	}
}

func (u *EstimateUseCase) CreateFromInterior(ctx context.Context, jobRef string, job entities.InteriorJob) (entities.Estimate, error) {
	total := u.rates.ComputeInteriorEstimate(job).Total
	return u.create(ctx, jobRef, entities.JobKindInterior, total)
}

func (u *EstimateUseCase) CreateFromExterior(ctx context.Context, jobRef string, job entities.ExteriorJob) (entities.Estimate, error) {
	total := u.rates.ComputeExteriorEstimate(job).Total
	return u.create(ctx, jobRef, entities.JobKindExterior, total)
}

func (u *EstimateUseCase) create(ctx context.Context, jobRef string, kind entities.JobKind, total float64) (entities.Estimate, error) {
	jobRef = strings.TrimSpace(jobRef)
	if jobRef == "" {
		return entities.Estimate{}, ErrInvalidJobRef
	}

	// Enforce: 1 estimate per job reference.
	if existing, err := u.repo.GetByJobRef(ctx, jobRef); err != nil {
		return entities.Estimate{}, err
	} else if existing.ID != "" {
		return entities.Estimate{}, ErrEstimateAlreadyExists
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:        uuid.NewString(),
		JobRef:    jobRef,
		Kind:      kind,
		Total:     total,
		Status:    entities.EstimateStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) AcceptByJobRef(ctx context.Context, jobRef string) (entities.Estimate, error) {
	return u.updateStatusByJobRef(ctx, jobRef, entities.EstimateStatusAccepted)
}

func (u *EstimateUseCase) RejectByJobRef(ctx context.Context, jobRef string) (entities.Estimate, error) {
	return u.updateStatusByJobRef(ctx, jobRef, entities.EstimateStatusRejected)
}

func (u *EstimateUseCase) CancelByJobRef(ctx context.Context, jobRef string) (entities.Estimate, error) {
	return u.updateStatusByJobRef(ctx, jobRef, entities.EstimateStatusCancelled)
}

func (u *EstimateUseCase) updateStatusByJobRef(ctx context.Context, jobRef string, status entities.EstimateStatus) (entities.Estimate, error) {
	jobRef = strings.TrimSpace(jobRef)
	if jobRef == "" {
		return entities.Estimate{}, ErrInvalidJobRef
	}

	updated, err := u.repo.UpdateStatusByJobRef(ctx, jobRef, status)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) RepriceInterior(ctx context.Context, estimateID string, job entities.InteriorJob) (entities.Estimate, error) {
	return u.reprice(ctx, estimateID, entities.JobKindInterior, u.rates.ComputeInteriorEstimate(job).Total)
}

func (u *EstimateUseCase) RepriceExterior(ctx context.Context, estimateID string, job entities.ExteriorJob) (entities.Estimate, error) {
	return u.reprice(ctx, estimateID, entities.JobKindExterior, u.rates.ComputeExteriorEstimate(job).Total)
}

func (u *EstimateUseCase) reprice(ctx context.Context, estimateID string, kind entities.JobKind, newTotal float64) (entities.Estimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	existing, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if existing.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if existing.Kind != kind {
		return entities.Estimate{}, ErrKindMismatch
	}

	updated, err := u.repo.UpdateTotalByID(ctx, estimateID, newTotal)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) GetByJobRef(ctx context.Context, jobRef string) (entities.Estimate, error) {
	jobRef = strings.TrimSpace(jobRef)
	if jobRef == "" {
		return entities.Estimate{}, ErrInvalidJobRef
	}

	e, err := u.repo.GetByJobRef(ctx, jobRef)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}
