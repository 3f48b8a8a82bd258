package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"pintura_xpto/internal/domain/entities"
	mock_interfaces "pintura_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_QuoteInterior(t *testing.T) {
	uc := NewEstimateUseCase(nil)

	t.Run("empty job prices as setup fee only", func(t *testing.T) {
		q := uc.QuoteInterior(entities.InteriorJob{})
		if q.Result.Total != 300 {
			t.Fatalf("expected total 300, got %.0f", q.Result.Total)
		}
		if q.CalculatedAt.IsZero() {
			t.Fatalf("expected calculated_at to be stamped")
		}
	})

	t.Run("engine output is deterministic", func(t *testing.T) {
		job := entities.InteriorJob{
			Rooms:      []entities.Room{{ID: "r1", Name: "Living", Category: entities.RoomCategoryGeneral, Area: 400, PaintWalls: true}},
			ColorCount: 2,
		}
		a := uc.QuoteInterior(job)
		b := uc.QuoteInterior(job)
		if !reflect.DeepEqual(a.Result, b.Result) {
			t.Fatalf("same job produced different results")
		}
	})
}

func TestEstimateUseCase_CreateFromInterior(t *testing.T) {
	t.Run("invalid job ref", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.CreateFromInterior(context.Background(), "   ", entities.InteriorJob{})
		if !errors.Is(err, ErrInvalidJobRef) {
			t.Fatalf("expected ErrInvalidJobRef, got %v", err)
		}
	})

	t.Run("repo get by job ref error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByJobRef(gomock.Any(), "job-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.CreateFromInterior(context.Background(), "job-1", entities.InteriorJob{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByJobRef(gomock.Any(), "job-1").Return(entities.Estimate{ID: "existing"}, nil)

		_, err := uc.CreateFromInterior(context.Background(), "job-1", entities.InteriorJob{})
		if !errors.Is(err, ErrEstimateAlreadyExists) {
			t.Fatalf("expected ErrEstimateAlreadyExists, got %v", err)
		}
	})

	t.Run("create success computes the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByJobRef(gomock.Any(), "job-1").Return(entities.Estimate{}, nil)

		var stored entities.Estimate
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				stored = e
				return e, nil
			})

		job := entities.InteriorJob{
			Rooms:      []entities.Room{{ID: "r1", Category: entities.RoomCategoryGeneral, Area: 500, PaintWalls: true}},
			ColorCount: 1,
		}
		created, err := uc.CreateFromInterior(context.Background(), "job-1", job)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 1400 walls, subtotal under threshold so setup fee 166.
		if created.Total != 1566 {
			t.Fatalf("expected total 1566, got %.0f", created.Total)
		}
		if stored.ID == "" {
			t.Fatalf("expected a generated id")
		}
		if stored.Kind != entities.JobKindInterior {
			t.Fatalf("expected interior kind, got %s", stored.Kind)
		}
		if stored.Status != entities.EstimateStatusPending {
			t.Fatalf("expected pending status, got %s", stored.Status)
		}
		if stored.CreatedAt.IsZero() || !stored.CreatedAt.Equal(stored.UpdatedAt) {
			t.Fatalf("expected matching created/updated timestamps, got %v / %v", stored.CreatedAt, stored.UpdatedAt)
		}
	})
}

func TestEstimateUseCase_CreateFromExterior(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := NewEstimateUseCase(repo)

	repo.EXPECT().GetByJobRef(gomock.Any(), "job-2").Return(entities.Estimate{}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil })

	job := entities.ExteriorJob{HouseArea: 2000, Story: entities.StoryOne, Scope: entities.ScopeFull}
	created, err := uc.CreateFromExterior(context.Background(), "job-2", job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Total != 6800 {
		t.Fatalf("expected total 6800, got %.0f", created.Total)
	}
	if created.Kind != entities.JobKindExterior {
		t.Fatalf("expected exterior kind, got %s", created.Kind)
	}
}

func TestEstimateUseCase_StatusUpdates(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *EstimateUseCase, ctx context.Context) (entities.Estimate, error)
		status entities.EstimateStatus
	}{
		{"accept", func(uc *EstimateUseCase, ctx context.Context) (entities.Estimate, error) {
			return uc.AcceptByJobRef(ctx, "job-1")
		}, entities.EstimateStatusAccepted},
		{"reject", func(uc *EstimateUseCase, ctx context.Context) (entities.Estimate, error) {
			return uc.RejectByJobRef(ctx, "job-1")
		}, entities.EstimateStatusRejected},
		{"cancel", func(uc *EstimateUseCase, ctx context.Context) (entities.Estimate, error) {
			return uc.CancelByJobRef(ctx, "job-1")
		}, entities.EstimateStatusCancelled},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
			uc := NewEstimateUseCase(repo)

			want := entities.Estimate{ID: "e-1", JobRef: "job-1", Status: c.status, UpdatedAt: time.Now().UTC()}
			repo.EXPECT().UpdateStatusByJobRef(gomock.Any(), "job-1", c.status).Return(want, nil)

			got, err := c.call(uc, context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != c.status {
				t.Fatalf("expected status %s, got %s", c.status, got.Status)
			}
		})
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().UpdateStatusByJobRef(gomock.Any(), "job-1", entities.EstimateStatusAccepted).Return(entities.Estimate{}, nil)

		_, err := uc.AcceptByJobRef(context.Background(), "job-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}

func TestEstimateUseCase_Reprice(t *testing.T) {
	t.Run("kind mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", Kind: entities.JobKindExterior}, nil)

		_, err := uc.RepriceInterior(context.Background(), "e-1", entities.InteriorJob{})
		if !errors.Is(err, ErrKindMismatch) {
			t.Fatalf("expected ErrKindMismatch, got %v", err)
		}
	})

	t.Run("reprice interior", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", Kind: entities.JobKindInterior}, nil)
		repo.EXPECT().UpdateTotalByID(gomock.Any(), "e-1", 300.0).Return(entities.Estimate{ID: "e-1", Total: 300}, nil)

		got, err := uc.RepriceInterior(context.Background(), "e-1", entities.InteriorJob{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Total != 300 {
			t.Fatalf("expected total 300, got %.0f", got.Total)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.RepriceInterior(context.Background(), " ", entities.InteriorJob{})
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})
}

func TestEstimateUseCase_Get(t *testing.T) {
	t.Run("by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("by job ref success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		want := entities.Estimate{ID: "e-1", JobRef: "job-1"}
		repo.EXPECT().GetByJobRef(gomock.Any(), "job-1").Return(want, nil)

		got, err := uc.GetByJobRef(context.Background(), " job-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "e-1" {
			t.Fatalf("expected e-1, got %s", got.ID)
		}
	})
}
