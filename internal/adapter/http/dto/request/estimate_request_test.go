package request

import (
	"errors"
	"testing"

	"pintura_xpto/internal/domain/entities"
)

func TestEstimateRequest_ResolveJobRef(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		r := EstimateRequest{JobRef: "  job-1  "}
		if got := r.ResolveJobRef(); got != "job-1" {
			t.Fatalf("expected job-1, got %q", got)
		}
	})

	t.Run("blank resolves empty", func(t *testing.T) {
		r := EstimateRequest{JobRef: "   "}
		if got := r.ResolveJobRef(); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
	})
}

func TestEstimateRequest_ResolveKind(t *testing.T) {
	t.Run("interior payload", func(t *testing.T) {
		r := EstimateRequest{JobRef: "job-1", Interior: &InteriorJobRequest{}}
		kind, err := r.ResolveKind()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kind != entities.JobKindInterior {
			t.Fatalf("expected interior, got %q", kind)
		}
	})

	t.Run("exterior payload", func(t *testing.T) {
		r := EstimateRequest{JobRef: "job-1", Exterior: &ExteriorJobRequest{}}
		kind, err := r.ResolveKind()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kind != entities.JobKindExterior {
			t.Fatalf("expected exterior, got %q", kind)
		}
	})

	t.Run("no payload", func(t *testing.T) {
		r := EstimateRequest{JobRef: "job-1"}
		if _, err := r.ResolveKind(); !errors.Is(err, ErrMissingJobPayload) {
			t.Fatalf("expected ErrMissingJobPayload, got %v", err)
		}
	})

	t.Run("both payloads", func(t *testing.T) {
		r := EstimateRequest{JobRef: "job-1", Interior: &InteriorJobRequest{}, Exterior: &ExteriorJobRequest{}}
		if _, err := r.ResolveKind(); !errors.Is(err, ErrAmbiguousJobKind) {
			t.Fatalf("expected ErrAmbiguousJobKind, got %v", err)
		}
	})

	t.Run("explicit kind matches payload", func(t *testing.T) {
		r := EstimateRequest{JobRef: "job-1", Kind: "interior", Interior: &InteriorJobRequest{}}
		kind, err := r.ResolveKind()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kind != entities.JobKindInterior {
			t.Fatalf("expected interior, got %q", kind)
		}
	})

	t.Run("explicit kind contradicts payload", func(t *testing.T) {
		r := EstimateRequest{JobRef: "job-1", Kind: "exterior", Interior: &InteriorJobRequest{}}
		if _, err := r.ResolveKind(); !errors.Is(err, ErrKindPayloadMismatch) {
			t.Fatalf("expected ErrKindPayloadMismatch, got %v", err)
		}
	})

	t.Run("unknown kind string", func(t *testing.T) {
		r := EstimateRequest{JobRef: "job-1", Kind: "garage", Interior: &InteriorJobRequest{}}
		if _, err := r.ResolveKind(); !errors.Is(err, ErrUnknownJobKind) {
			t.Fatalf("expected ErrUnknownJobKind, got %v", err)
		}
	})
}

func TestInteriorJobRequest_ToDomain(t *testing.T) {
	r := InteriorJobRequest{
		Rooms: []RoomRequest{{
			ID:         "r-1",
			Name:       "Kitchen",
			Category:   "kitchen",
			Area:       200,
			PaintWalls: true,
			TrimMode:   "package",
			Windows:    []WindowRequest{{SizeFactor: 1}, {SizeFactor: 2.5}},
		}},
		ColorCount:   3,
		PremiumPaint: true,
	}

	job := r.ToDomain()
	if len(job.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(job.Rooms))
	}
	room := job.Rooms[0]
	if room.Category != entities.RoomCategoryKitchen {
		t.Fatalf("expected kitchen category, got %q", room.Category)
	}
	if room.TrimMode != entities.TrimModePackage {
		t.Fatalf("expected package trim mode, got %q", room.TrimMode)
	}
	if len(room.Windows) != 2 || room.Windows[1].SizeFactor != 2.5 {
		t.Fatalf("windows not converted: %+v", room.Windows)
	}
	if job.ColorCount != 3 || !job.PremiumPaint {
		t.Fatalf("job-level fields not converted: %+v", job)
	}
}

func TestExteriorJobRequest_ToDomain(t *testing.T) {
	r := ExteriorJobRequest{
		ID:        "job-9",
		HouseArea: 2000,
		Story:     "two_story",
		Sides: ExteriorSidesRequest{
			Back: HouseSideRequest{UnevenGround: true},
			Left: HouseSideRequest{RoofAccess: true},
		},
		Flaking:         "heavy",
		FlakingOverride: 0.75,
		Scope:           "trim_only",
		ShutterCount:    4,
		PaintFrontDoor:  true,
	}

	job := r.ToDomain()
	if job.Story != entities.StoryTwo {
		t.Fatalf("expected two_story, got %q", job.Story)
	}
	if !job.Sides.Back.UnevenGround || !job.Sides.Left.RoofAccess {
		t.Fatalf("sides not converted: %+v", job.Sides)
	}
	if job.Flaking != entities.FlakingHeavy || job.FlakingOverride != 0.75 {
		t.Fatalf("flaking not converted: %+v", job)
	}
	if job.Scope != entities.ScopeTrimOnly {
		t.Fatalf("expected trim_only scope, got %q", job.Scope)
	}
}
