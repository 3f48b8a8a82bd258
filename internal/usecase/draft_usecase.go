package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"pintura_xpto/internal/domain/entities"
	"pintura_xpto/internal/usecase/interfaces"
)

var (
	ErrDraftNotFound       = errors.New("draft not found")
	ErrInvalidDraftKey     = errors.New("invalid draft key")
	ErrInvalidDraftPayload = errors.New("invalid draft payload")
)

// IDraftUseCase stores the in-progress job state the front-end keeps while
// a customer fills in the form. The payload is opaque job JSON; any
// debouncing happens on the client.

type IDraftUseCase interface {
	Save(ctx context.Context, key string, kind entities.JobKind, payload json.RawMessage) (entities.Draft, error)
	Get(ctx context.Context, key string) (entities.Draft, error)
	Delete(ctx context.Context, key string) error
}

type DraftUseCase struct {
	repo interfaces.IDraftRepository
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(repo interfaces.IDraftRepository) *DraftUseCase {
	return &DraftUseCase{repo: repo}
}

func (u *DraftUseCase) Save(ctx context.Context, key string, kind entities.JobKind, payload json.RawMessage) (entities.Draft, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.Draft{}, ErrInvalidDraftKey
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return entities.Draft{}, ErrInvalidDraftPayload
	}
	if kind != entities.JobKindInterior && kind != entities.JobKindExterior {
		return entities.Draft{}, ErrInvalidDraftPayload
	}

	d := entities.Draft{
		Key:       key,
		Kind:      kind,
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}
	return u.repo.Put(ctx, d)
}

func (u *DraftUseCase) Get(ctx context.Context, key string) (entities.Draft, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.Draft{}, ErrInvalidDraftKey
	}

	d, err := u.repo.Get(ctx, key)
	if err != nil {
		return entities.Draft{}, err
	}
	if d.Key == "" {
		return entities.Draft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *DraftUseCase) Delete(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidDraftKey
	}
	return u.repo.Delete(ctx, key)
}
