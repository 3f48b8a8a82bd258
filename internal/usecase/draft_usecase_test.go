package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"pintura_xpto/internal/domain/entities"
	mock_interfaces "pintura_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDraftUseCase_Save(t *testing.T) {
	t.Run("invalid key", func(t *testing.T) {
		uc := NewDraftUseCase(nil)
		_, err := uc.Save(context.Background(), "  ", entities.JobKindInterior, json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidDraftKey) {
			t.Fatalf("expected ErrInvalidDraftKey, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewDraftUseCase(nil)
		_, err := uc.Save(context.Background(), "painter-form", entities.JobKindInterior, json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidDraftPayload) {
			t.Fatalf("expected ErrInvalidDraftPayload, got %v", err)
		}
		_, err = uc.Save(context.Background(), "painter-form", entities.JobKindInterior, nil)
		if !errors.Is(err, ErrInvalidDraftPayload) {
			t.Fatalf("expected ErrInvalidDraftPayload for empty payload, got %v", err)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		uc := NewDraftUseCase(nil)
		_, err := uc.Save(context.Background(), "painter-form", entities.JobKind("garden"), json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidDraftPayload) {
			t.Fatalf("expected ErrInvalidDraftPayload, got %v", err)
		}
	})

	t.Run("save success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := NewDraftUseCase(repo)

		var stored entities.Draft
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Draft) (entities.Draft, error) {
				stored = d
				return d, nil
			})

		payload := json.RawMessage(`{"rooms":[]}`)
		got, err := uc.Save(context.Background(), " painter-form ", entities.JobKindInterior, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Key != "painter-form" {
			t.Fatalf("expected trimmed key, got %q", got.Key)
		}
		if stored.UpdatedAt.IsZero() {
			t.Fatalf("expected updated_at to be stamped")
		}
		if string(stored.Payload) != `{"rooms":[]}` {
			t.Fatalf("payload altered: %s", stored.Payload)
		}
	})
}

func TestDraftUseCase_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := NewDraftUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "missing").Return(entities.Draft{}, nil)

		_, err := uc.Get(context.Background(), "missing")
		if !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := NewDraftUseCase(repo)

		want := entities.Draft{Key: "painter-form", Kind: entities.JobKindExterior, Payload: json.RawMessage(`{}`)}
		repo.EXPECT().Get(gomock.Any(), "painter-form").Return(want, nil)

		got, err := uc.Get(context.Background(), "painter-form")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Kind != entities.JobKindExterior {
			t.Fatalf("expected exterior kind, got %s", got.Kind)
		}
	})
}

func TestDraftUseCase_Delete(t *testing.T) {
	t.Run("invalid key", func(t *testing.T) {
		uc := NewDraftUseCase(nil)
		if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidDraftKey) {
			t.Fatalf("expected ErrInvalidDraftKey, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		uc := NewDraftUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "painter-form").Return(nil)

		if err := uc.Delete(context.Background(), "painter-form"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
