package pricing

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"pintura_xpto/internal/domain/entities"
)

func wallsRoom(cat entities.RoomCategory, area float64) entities.Room {
	return entities.Room{ID: "r1", Name: "Room 1", Category: cat, Area: area, PaintWalls: true}
}

func TestRateTable_WallCost(t *testing.T) {
	rt := DefaultRates()

	t.Run("category multipliers", func(t *testing.T) {
		cases := []struct {
			cat  entities.RoomCategory
			area float64
			want float64
		}{
			{entities.RoomCategoryGeneral, 100, 280},
			{entities.RoomCategoryKitchen, 100, 310},
			{entities.RoomCategoryBathroom, 100, 410},
			{entities.RoomCategoryGeneral, 500, 1400},
		}
		for _, c := range cases {
			got := rt.WallCost(wallsRoom(c.cat, c.area))
			if got.Cost != c.want {
				t.Fatalf("%s area %.0f: expected %.0f, got %.0f", c.cat, c.area, c.want, got.Cost)
			}
			if got.MinimumApplied {
				t.Fatalf("%s area %.0f: minimum should not apply", c.cat, c.area)
			}
		}
	})

	t.Run("minimum room charge", func(t *testing.T) {
		got := rt.WallCost(wallsRoom(entities.RoomCategoryGeneral, 50))
		if got.Cost != 275 || !got.MinimumApplied {
			t.Fatalf("expected 275 with minimum applied, got %.0f (%v)", got.Cost, got.MinimumApplied)
		}
	})

	t.Run("vaulted adds before the clamp", func(t *testing.T) {
		room := wallsRoom(entities.RoomCategoryGeneral, 100)
		room.VaultedCeiling = true
		if got := rt.WallCost(room); got.Cost != 330 {
			t.Fatalf("expected 330, got %.0f", got.Cost)
		}

		// 80 * 3.3 = 264 is still under the minimum even with the adder.
		small := wallsRoom(entities.RoomCategoryGeneral, 80)
		small.VaultedCeiling = true
		if got := rt.WallCost(small); got.Cost != 275 || !got.MinimumApplied {
			t.Fatalf("expected clamped 275, got %.0f (%v)", got.Cost, got.MinimumApplied)
		}
	})

	t.Run("out of scope or empty", func(t *testing.T) {
		if got := rt.WallCost(entities.Room{Area: 100}); got.Cost != 0 {
			t.Fatalf("walls out of scope should cost 0, got %.0f", got.Cost)
		}
		if got := rt.WallCost(wallsRoom(entities.RoomCategoryGeneral, 0)); got.Cost != 0 {
			t.Fatalf("zero area should cost 0, got %.0f", got.Cost)
		}
		if got := rt.WallCost(wallsRoom(entities.RoomCategoryGeneral, -40)); got.Cost != 0 {
			t.Fatalf("negative area should cost 0, got %.0f", got.Cost)
		}
	})

	t.Run("unknown category prices as general", func(t *testing.T) {
		if got := rt.WallCost(wallsRoom(entities.RoomCategory("sunroom"), 100)); got.Cost != 280 {
			t.Fatalf("expected 280, got %.0f", got.Cost)
		}
	})
}

func TestRateTable_CeilingCost(t *testing.T) {
	rt := DefaultRates()

	room := wallsRoom(entities.RoomCategoryGeneral, 200)
	room.PaintCeiling = true
	if got := rt.CeilingCost(room); got.Cost != 220 {
		t.Fatalf("ceiling with walls: expected 220, got %.0f", got.Cost)
	}

	room.PaintWalls = false
	if got := rt.CeilingCost(room); got.Cost != 300 {
		t.Fatalf("ceiling alone: expected 300, got %.0f", got.Cost)
	}

	room.PaintCeiling = false
	if got := rt.CeilingCost(room); got.Cost != 0 {
		t.Fatalf("ceiling out of scope: expected 0, got %.0f", got.Cost)
	}
}

func TestRateTable_TrimCost(t *testing.T) {
	rt := DefaultRates()

	t.Run("none", func(t *testing.T) {
		room := wallsRoom(entities.RoomCategoryGeneral, 200)
		room.TrimMode = entities.TrimModeNone
		if got := rt.TrimCost(room); got.Cost != 0 {
			t.Fatalf("expected 0, got %.0f", got.Cost)
		}
	})

	t.Run("package by area", func(t *testing.T) {
		room := wallsRoom(entities.RoomCategoryGeneral, 200)
		room.TrimMode = entities.TrimModePackage
		if got := rt.TrimCost(room); got.Cost != 130 {
			t.Fatalf("expected 130, got %.0f", got.Cost)
		}
	})

	t.Run("baseboards rate depends on walls", func(t *testing.T) {
		room := wallsRoom(entities.RoomCategoryGeneral, 200)
		room.TrimMode = entities.TrimModeBaseboards
		room.TrimLinearFeet = 60
		if got := rt.TrimCost(room); got.Cost != 75 {
			t.Fatalf("with walls: expected 75, got %.0f", got.Cost)
		}
		room.PaintWalls = false
		if got := rt.TrimCost(room); got.Cost != 120 {
			t.Fatalf("standalone: expected 120, got %.0f", got.Cost)
		}
	})

	t.Run("stained conversion before rounding", func(t *testing.T) {
		room := wallsRoom(entities.RoomCategoryGeneral, 200)
		room.TrimMode = entities.TrimModeBaseboards
		room.TrimLinearFeet = 60
		room.StainedWoodTrim = true
		// 60 * 1.25 * 1.5 = 112.5, rounded once at the end.
		if got := rt.TrimCost(room); got.Cost != 113 {
			t.Fatalf("expected 113, got %.0f", got.Cost)
		}
	})

	t.Run("stained conversion never turns zero into a charge", func(t *testing.T) {
		room := entities.Room{TrimMode: entities.TrimModeBaseboards, StainedWoodTrim: true}
		if got := rt.TrimCost(room); got.Cost != 0 {
			t.Fatalf("expected 0, got %.0f", got.Cost)
		}
	})
}

func TestRateTable_PerUnitCosts(t *testing.T) {
	rt := DefaultRates()

	t.Run("crown molding", func(t *testing.T) {
		if got := rt.CrownCost(20); got.Cost != 65 {
			t.Fatalf("expected 65, got %.0f", got.Cost)
		}
		if got := rt.CrownCost(-5); got.Cost != 0 {
			t.Fatalf("expected 0, got %.0f", got.Cost)
		}
	})

	t.Run("doors truncate and clamp", func(t *testing.T) {
		if got := rt.DoorCost(4); got.Cost != 180 {
			t.Fatalf("expected 180, got %.0f", got.Cost)
		}
		if got := rt.DoorCost(3.7); got.Cost != 135 {
			t.Fatalf("fractional sides should truncate: expected 135, got %.0f", got.Cost)
		}
		if got := rt.DoorCost(-2); got.Cost != 0 {
			t.Fatalf("negative sides should clamp: expected 0, got %.0f", got.Cost)
		}
	})

	t.Run("windows scale by size factor", func(t *testing.T) {
		got := rt.WindowCost([]entities.Window{{SizeFactor: 1}, {SizeFactor: 0}, {SizeFactor: 2.5}})
		// 35 + 35 (defaulted factor) + 87.5 = 157.5 -> 158
		if got.Cost != 158 {
			t.Fatalf("expected 158, got %.0f", got.Cost)
		}
		if got.StandardCount != 2 || got.LargeCount != 1 {
			t.Fatalf("expected 2 standard / 1 large, got %d / %d", got.StandardCount, got.LargeCount)
		}
	})

	t.Run("closets truncate counts", func(t *testing.T) {
		if got := rt.ClosetCost(2.9, 1); got.Cost != 350 {
			t.Fatalf("expected 350, got %.0f", got.Cost)
		}
		if got := rt.ClosetCost(-1, -1); got.Cost != 0 {
			t.Fatalf("expected 0, got %.0f", got.Cost)
		}
	})

	t.Run("accent walls", func(t *testing.T) {
		if got := rt.AccentWallCost(1, 2); got.Cost != 450 {
			t.Fatalf("expected 450, got %.0f", got.Cost)
		}
	})

	t.Run("scaffolding flat fee", func(t *testing.T) {
		if got := rt.ScaffoldingCost(true); got.Cost != 225 {
			t.Fatalf("expected 225, got %.0f", got.Cost)
		}
		if got := rt.ScaffoldingCost(false); got.Cost != 0 {
			t.Fatalf("expected 0, got %.0f", got.Cost)
		}
	})

	t.Run("wallpaper removal clamps area", func(t *testing.T) {
		if got := rt.WallpaperCost(100); got.Cost != 135 {
			t.Fatalf("expected 135, got %.0f", got.Cost)
		}
		if got := rt.WallpaperCost(-100); got.Cost != 0 {
			t.Fatalf("expected 0, got %.0f", got.Cost)
		}
	})
}

func TestRateTable_AdditionalColorsCost(t *testing.T) {
	rt := DefaultRates()

	cases := []struct {
		colors     int
		wantCost   float64
		wantBilled int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{2, 134, 1},
		{3, 268, 2},
		{-3, 0, 0},
	}
	for _, c := range cases {
		got := rt.AdditionalColorsCost(c.colors)
		if got.Cost != c.wantCost || got.BilledColors != c.wantBilled {
			t.Fatalf("colors %d: expected %.0f/%d, got %.0f/%d", c.colors, c.wantCost, c.wantBilled, got.Cost, got.BilledColors)
		}
	}
}

func TestRateTable_SetupFee(t *testing.T) {
	rt := DefaultRates()

	cases := []struct {
		subtotal float64
		want     float64
	}{
		{0, 300},
		{100, 300},
		{1266, 300},
		{1400, 166},
		{1565, 1},
		{1566, 0},
		{2000, 0},
	}
	for _, c := range cases {
		if got := rt.SetupFee(c.subtotal); got.Cost != c.want {
			t.Fatalf("subtotal %.0f: expected %.0f, got %.0f", c.subtotal, c.want, got.Cost)
		}
	}

	t.Run("monotonically non-increasing", func(t *testing.T) {
		prev := rt.SetupFee(0).Cost
		for s := 10.0; s <= 2000; s += 10 {
			fee := rt.SetupFee(s).Cost
			if fee > prev {
				t.Fatalf("setup fee rose from %.0f to %.0f at subtotal %.0f", prev, fee, s)
			}
			prev = fee
		}
	})
}

func TestRateTable_ComputeRoom(t *testing.T) {
	rt := DefaultRates()

	room := wallsRoom(entities.RoomCategoryGeneral, 100)
	room.PaintCeiling = true
	room.DoorSides = 2

	got := rt.ComputeRoom(room)
	if len(got.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got.Items))
	}
	// 280 walls + 110 ceiling + 90 doors
	if got.Total != 480 {
		t.Fatalf("expected total 480, got %.0f", got.Total)
	}
	for _, it := range got.Items {
		if it.RoomID != "r1" || it.RoomName != "Room 1" {
			t.Fatalf("item %q missing room tag", it.Name)
		}
		if it.Basis == "" {
			t.Fatalf("item %q missing basis", it.Name)
		}
	}
}

func TestRateTable_ComputeInteriorEstimate(t *testing.T) {
	rt := DefaultRates()

	t.Run("adjustment order is colors, deduction, premium, setup", func(t *testing.T) {
		job := entities.InteriorJob{
			Rooms:                 []entities.Room{wallsRoom(entities.RoomCategoryGeneral, 500)},
			ColorCount:            2,
			CustomerSuppliesPaint: true,
			PremiumPaint:          true,
		}
		got := rt.ComputeInteriorEstimate(job)

		// 1400 walls + 134 colors = 1534; deduction -round(153.4) = -153;
		// premium +175 = 1556; setup = 1566 - 1556 = 10.
		if got.Subtotal != 1556 {
			t.Fatalf("expected subtotal 1556, got %.0f", got.Subtotal)
		}
		if got.SetupFee != 10 {
			t.Fatalf("expected setup fee 10, got %.0f", got.SetupFee)
		}
		if got.Total != 1566 {
			t.Fatalf("expected total 1566, got %.0f", got.Total)
		}

		var deduction float64
		for _, it := range got.Items {
			if it.Category == CategoryPaint && it.Cost < 0 {
				deduction = it.Cost
			}
		}
		if deduction != -153 {
			t.Fatalf("expected -153 paint deduction line, got %.0f", deduction)
		}
	})

	t.Run("empty room list", func(t *testing.T) {
		got := rt.ComputeInteriorEstimate(entities.InteriorJob{ColorCount: 1})
		if got.Subtotal != 0 || got.SetupFee != 300 || got.Total != 300 {
			t.Fatalf("expected 0/300/300, got %.0f/%.0f/%.0f", got.Subtotal, got.SetupFee, got.Total)
		}
		if got.RoomCount != 0 {
			t.Fatalf("expected room count 0, got %d", got.RoomCount)
		}
		if len(got.Warnings) == 0 {
			t.Fatalf("expected a warning for the empty room list")
		}
	})

	t.Run("sanity warnings do not change the numbers", func(t *testing.T) {
		plain := entities.InteriorJob{Rooms: []entities.Room{wallsRoom(entities.RoomCategoryGeneral, 500)}, ColorCount: 1}
		noisy := plain
		noisy.Rooms = []entities.Room{plain.Rooms[0]}
		noisy.Rooms[0].DoorSides = 25

		quiet := rt.ComputeInteriorEstimate(plain)
		loud := rt.ComputeInteriorEstimate(noisy)
		if len(loud.Warnings) == 0 {
			t.Fatalf("expected a door count warning")
		}
		// Same walls either way; the doors item is priced normally.
		if loud.Total != quiet.Total+25*45 {
			t.Fatalf("warning altered pricing: %.0f vs %.0f", loud.Total, quiet.Total)
		}

		big := entities.InteriorJob{Rooms: []entities.Room{wallsRoom(entities.RoomCategoryGeneral, 1500)}, ColorCount: 1}
		if got := rt.ComputeInteriorEstimate(big); len(got.Warnings) == 0 {
			t.Fatalf("expected an implausible area warning")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		job := entities.InteriorJob{
			Rooms: []entities.Room{
				wallsRoom(entities.RoomCategoryKitchen, 180),
				wallsRoom(entities.RoomCategoryBathroom, 60),
			},
			ColorCount:   3,
			PremiumPaint: true,
		}
		a := rt.ComputeInteriorEstimate(job)
		b := rt.ComputeInteriorEstimate(job)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("two computations of the same job differ:\n%#v\n%#v", a, b)
		}
	})
}

func TestInteriorItemsSumToTotal(t *testing.T) {
	rt := DefaultRates()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		job := randomInteriorJob(rng)
		got := rt.ComputeInteriorEstimate(job)

		var sum float64
		for _, it := range got.Items {
			sum += it.Cost
		}
		if sum != got.Total {
			t.Fatalf("case %d: items sum %.2f != total %.2f (job %#v)", i, sum, got.Total, job)
		}
		if got.Subtotal+got.SetupFee != got.Total {
			t.Fatalf("case %d: subtotal %.2f + setup %.2f != total %.2f", i, got.Subtotal, got.SetupFee, got.Total)
		}
	}
}

func randomInteriorJob(rng *rand.Rand) entities.InteriorJob {
	cats := []entities.RoomCategory{entities.RoomCategoryGeneral, entities.RoomCategoryKitchen, entities.RoomCategoryBathroom}
	modes := []entities.TrimMode{entities.TrimModeNone, entities.TrimModePackage, entities.TrimModeBaseboards}

	rooms := make([]entities.Room, rng.Intn(5))
	for i := range rooms {
		var windows []entities.Window
		for w := rng.Intn(4); w > 0; w-- {
			windows = append(windows, entities.Window{SizeFactor: rng.Float64() * 3})
		}
		rooms[i] = entities.Room{
			ID:                    "room",
			Name:                  "Room",
			Category:              cats[rng.Intn(len(cats))],
			Area:                  rng.Float64()*600 - 50,
			PaintWalls:            rng.Intn(2) == 0,
			PaintCeiling:          rng.Intn(2) == 0,
			VaultedCeiling:        rng.Intn(3) == 0,
			TrimMode:              modes[rng.Intn(len(modes))],
			TrimLinearFeet:        rng.Float64() * 120,
			StainedWoodTrim:       rng.Intn(3) == 0,
			CrownLinearFeet:       rng.Float64() * 60,
			DoorSides:             rng.Float64()*8 - 1,
			ClosetStandard:        rng.Float64() * 3,
			ClosetWalkIn:          rng.Float64() * 2,
			Windows:               windows,
			AccentWallsInRoom:     rng.Intn(3),
			AccentWallsStandalone: rng.Intn(2),
			NeedsScaffolding:      rng.Intn(4) == 0,
			WallpaperArea:         rng.Float64()*200 - 20,
		}
	}

	return entities.InteriorJob{
		Rooms:                 rooms,
		ColorCount:            rng.Intn(5),
		CustomerSuppliesPaint: rng.Intn(2) == 0,
		PremiumPaint:          rng.Intn(2) == 0,
	}
}

func TestInteriorWarningText(t *testing.T) {
	rt := DefaultRates()
	got := rt.ComputeInteriorEstimate(entities.InteriorJob{})
	if len(got.Warnings) != 1 || !strings.Contains(got.Warnings[0], "no rooms") {
		t.Fatalf("unexpected warnings: %v", got.Warnings)
	}
}
