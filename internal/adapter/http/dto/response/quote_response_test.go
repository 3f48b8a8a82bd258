package response

import (
	"testing"
	"time"

	"pintura_xpto/internal/domain/pricing"
	"pintura_xpto/internal/usecase"
)

func TestFromInteriorQuote(t *testing.T) {
	now := time.Now().UTC()
	q := usecase.InteriorQuote{
		Result: pricing.EstimateResult{
			Rooms: []pricing.RoomResult{{
				RoomID:   "r-1",
				RoomName: "Bedroom",
				Items: []pricing.LineItem{{
					Category: pricing.CategoryWalls,
					Name:     "Walls",
					Basis:    "100 sqft x 2.80/sqft",
					Cost:     280,
					RoomID:   "r-1",
					RoomName: "Bedroom",
				}},
				Total: 280,
			}},
			Items: []pricing.LineItem{{
				Category: pricing.CategorySetup,
				Name:     "Setup fee",
				Cost:     295,
			}},
			Subtotal:  280,
			SetupFee:  295,
			Total:     575,
			RoomCount: 1,
		},
		CalculatedAt: now,
	}

	got := FromInteriorQuote(q)
	if len(got.Rooms) != 1 || got.Rooms[0].Total != 280 {
		t.Fatalf("rooms not mapped: %+v", got.Rooms)
	}
	if got.Rooms[0].Items[0].Category != "walls" {
		t.Fatalf("line item category not mapped: %+v", got.Rooms[0].Items)
	}
	if got.Subtotal != 280 || got.SetupFee != 295 || got.Total != 575 {
		t.Fatalf("totals not mapped: %+v", got)
	}
	if !got.CalculatedAt.Equal(now) {
		t.Fatalf("timestamp not mapped: %+v", got)
	}
}

func TestFromExteriorQuote(t *testing.T) {
	now := time.Now().UTC()
	q := usecase.ExteriorQuote{
		Result: pricing.ExteriorEstimateResult{
			JobID: "job-9",
			Items: []pricing.LineItem{{
				Category: pricing.CategoryExteriorBase,
				Name:     "Exterior painting",
				Cost:     4250,
			}},
			Breakdown: pricing.ExteriorBreakdown{
				HeightMultiplier: 1.5,
				TotalMultiplier:  1.5,
				BaseCalculation:  4250,
				AfterCoats:       6800,
				FullTotal:        6800,
				FinalTotal:       6800,
			},
			Total: 6800,
		},
		CalculatedAt: now,
	}

	got := FromExteriorQuote(q)
	if got.JobID != "job-9" || got.Total != 6800 {
		t.Fatalf("quote not mapped: %+v", got)
	}
	if got.Breakdown.HeightMultiplier != 1.5 || got.Breakdown.AfterCoats != 6800 {
		t.Fatalf("breakdown not mapped: %+v", got.Breakdown)
	}
	if len(got.Items) != 1 || got.Items[0].Category != "exterior_base" {
		t.Fatalf("items not mapped: %+v", got.Items)
	}
}
