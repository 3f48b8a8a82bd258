package interfaces

import (
	"context"
	"pintura_xpto/internal/domain/entities"
)

// IDraftRepository abstracts the key-value store holding in-progress job
// drafts. Keys are caller-chosen fixed strings; writes replace the previous
// draft unconditionally.

type IDraftRepository interface {
	Put(ctx context.Context, d entities.Draft) (entities.Draft, error)
	Get(ctx context.Context, key string) (entities.Draft, error)
	Delete(ctx context.Context, key string) error
}
