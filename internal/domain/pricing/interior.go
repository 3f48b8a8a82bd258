package pricing

import (
	"fmt"

	"pintura_xpto/internal/domain/entities"
)

// RoomResult is the priced breakdown of a single room.
type RoomResult struct {
	RoomID   string     `json:"room_id"`
	RoomName string     `json:"room_name"`
	Items    []LineItem `json:"items"`
	Total    float64    `json:"total"`
}

// EstimateResult is the full interior pricing output.
//
// Subtotal is the adjusted subtotal before the setup fee; Total adds the
// setup fee. Warnings are advisory only and never change the numbers.
type EstimateResult struct {
	Rooms     []RoomResult `json:"rooms"`
	Items     []LineItem   `json:"items"`
	Subtotal  float64      `json:"subtotal"`
	SetupFee  float64      `json:"setup_fee"`
	Total     float64      `json:"total"`
	RoomCount int          `json:"room_count"`
	Warnings  []string     `json:"warnings,omitempty"`
}

func (rt RateTable) wallMultiplier(cat entities.RoomCategory) float64 {
	switch cat {
	case entities.RoomCategoryKitchen:
		return rt.Wall.Kitchen
	case entities.RoomCategoryBathroom:
		return rt.Wall.Bathroom
	case entities.RoomCategoryGeneral:
		return rt.Wall.General
	default:
		// Unknown categories price as general rather than erroring; the
		// published sheet only names the three categories.
		return rt.Wall.General
	}
}

// WallCost prices the walls of one room. Cost is zero when walls are out of
// scope or the area is non-positive; otherwise area times the category
// multiplier (plus the vaulted adder), floored at the minimum room charge.
func (rt RateTable) WallCost(room entities.Room) WallCostDetail {
	if !room.PaintWalls || room.Area <= 0 {
		return WallCostDetail{}
	}

	mult := rt.wallMultiplier(room.Category)
	if room.VaultedCeiling {
		mult += rt.Wall.VaultedAdder
	}

	cost := roundCurrency(room.Area * mult)
	if cost < rt.Wall.MinimumRoomCharge {
		return WallCostDetail{
			CostDetail: CostDetail{
				Cost:  rt.Wall.MinimumRoomCharge,
				Basis: fmt.Sprintf("%.0f sqft x %.2f/sqft, raised to %.0f minimum room charge", room.Area, mult, rt.Wall.MinimumRoomCharge),
			},
			MinimumApplied: true,
		}
	}
	return WallCostDetail{
		CostDetail: CostDetail{
			Cost:  cost,
			Basis: fmt.Sprintf("%.0f sqft x %.2f/sqft", room.Area, mult),
		},
	}
}

// CeilingCost prices the ceiling. Painting the ceiling together with the
// walls uses the cheaper combined rate.
func (rt RateTable) CeilingCost(room entities.Room) CostDetail {
	if !room.PaintCeiling || room.Area <= 0 {
		return CostDetail{}
	}

	mult := rt.Ceiling.Alone
	if room.PaintWalls {
		mult = rt.Ceiling.WithWalls
	}
	return CostDetail{
		Cost:  roundCurrency(room.Area * mult),
		Basis: fmt.Sprintf("ceiling %.0f sqft x %.2f/sqft", room.Area, mult),
	}
}

// TrimCost prices trim work by mode. The stained-wood conversion factor
// applies after the mode-specific cost and before rounding.
func (rt RateTable) TrimCost(room entities.Room) CostDetail {
	var (
		cost  float64
		basis string
	)

	switch room.TrimMode {
	case entities.TrimModePackage:
		area := nonNegative(room.Area)
		cost = area * rt.Trim.PackagePerSqFt
		basis = fmt.Sprintf("trim package %.0f sqft x %.2f/sqft", area, rt.Trim.PackagePerSqFt)
	case entities.TrimModeBaseboards:
		feet := nonNegative(room.TrimLinearFeet)
		rate := rt.Trim.BaseboardAlone
		if room.PaintWalls {
			rate = rt.Trim.BaseboardWithWalls
		}
		cost = feet * rate
		basis = fmt.Sprintf("baseboards %.0f lf x %.2f/lf", feet, rate)
	case entities.TrimModeNone:
		return CostDetail{}
	default:
		return CostDetail{}
	}

	if room.StainedWoodTrim && cost > 0 {
		cost *= rt.Trim.StainedConversionFactor
		basis += fmt.Sprintf(", stained wood conversion x %.2f", rt.Trim.StainedConversionFactor)
	}
	if cost <= 0 {
		return CostDetail{}
	}
	return CostDetail{Cost: roundCurrency(cost), Basis: basis}
}

// CrownCost prices crown molding by linear foot.
func (rt RateTable) CrownCost(linearFeet float64) CostDetail {
	if linearFeet <= 0 {
		return CostDetail{}
	}
	return CostDetail{
		Cost:  roundCurrency(linearFeet * rt.Trim.CrownPerLinearFoot),
		Basis: fmt.Sprintf("crown molding %.0f lf x %.2f/lf", linearFeet, rt.Trim.CrownPerLinearFoot),
	}
}

// DoorCost prices door sides. Fractional side counts truncate toward zero,
// negatives clamp to zero.
func (rt RateTable) DoorCost(sides float64) CostDetail {
	n := wholeCount(sides)
	if n == 0 {
		return CostDetail{}
	}
	return CostDetail{
		Cost:  roundCurrency(n * rt.Unit.DoorPerSide),
		Basis: fmt.Sprintf("%.0f door sides x %.0f", n, rt.Unit.DoorPerSide),
	}
}

// WindowCost sums the window list, scaling the base rate by each window's
// size factor. A missing or non-positive factor means 1.0. Factors >= 2
// count as large for display grouping.
func (rt RateTable) WindowCost(windows []entities.Window) WindowCostDetail {
	if len(windows) == 0 {
		return WindowCostDetail{}
	}

	var (
		total    float64
		standard int
		large    int
	)
	for _, w := range windows {
		factor := w.SizeFactor
		if factor <= 0 {
			factor = 1
		}
		total += rt.Unit.WindowBase * factor
		if factor >= 2 {
			large++
		} else {
			standard++
		}
	}

	return WindowCostDetail{
		CostDetail: CostDetail{
			Cost:  roundCurrency(total),
			Basis: fmt.Sprintf("%d standard + %d large windows, base %.0f each", standard, large, rt.Unit.WindowBase),
		},
		StandardCount: standard,
		LargeCount:    large,
	}
}

// ClosetCost prices closets. Counts truncate to integers and clamp
// non-negative.
func (rt RateTable) ClosetCost(standard, walkIn float64) CostDetail {
	std := wholeCount(standard)
	wi := wholeCount(walkIn)
	if std == 0 && wi == 0 {
		return CostDetail{}
	}
	return CostDetail{
		Cost:  roundCurrency(std*rt.Unit.ClosetStandard + wi*rt.Unit.ClosetWalkIn),
		Basis: fmt.Sprintf("%.0f closets x %.0f + %.0f walk-ins x %.0f", std, rt.Unit.ClosetStandard, wi, rt.Unit.ClosetWalkIn),
	}
}

// AccentWallCost prices accent walls inside the room and standalone.
func (rt RateTable) AccentWallCost(inRoom, standalone int) CostDetail {
	if inRoom < 0 {
		inRoom = 0
	}
	if standalone < 0 {
		standalone = 0
	}
	if inRoom == 0 && standalone == 0 {
		return CostDetail{}
	}
	return CostDetail{
		Cost:  roundCurrency(float64(inRoom)*rt.Unit.AccentInRoom + float64(standalone)*rt.Unit.AccentStandalone),
		Basis: fmt.Sprintf("%d accent walls x %.0f + %d standalone x %.0f", inRoom, rt.Unit.AccentInRoom, standalone, rt.Unit.AccentStandalone),
	}
}

// ScaffoldingCost is the flat scaffolding fee when flagged.
func (rt RateTable) ScaffoldingCost(needed bool) CostDetail {
	if !needed {
		return CostDetail{}
	}
	return CostDetail{
		Cost:  roundCurrency(rt.Unit.ScaffoldingFee),
		Basis: fmt.Sprintf("scaffolding flat fee %.0f", rt.Unit.ScaffoldingFee),
	}
}

// WallpaperCost prices wallpaper removal by area, clamped non-negative.
func (rt RateTable) WallpaperCost(area float64) CostDetail {
	area = nonNegative(area)
	if area == 0 {
		return CostDetail{}
	}
	return CostDetail{
		Cost:  roundCurrency(area * rt.Unit.WallpaperPerSqFt),
		Basis: fmt.Sprintf("wallpaper removal %.0f sqft x %.2f/sqft", area, rt.Unit.WallpaperPerSqFt),
	}
}

// AdditionalColorsCost charges per distinct wall color past the first.
// Never negative; zero and one color both cost nothing.
func (rt RateTable) AdditionalColorsCost(colorCount int) ColorsCostDetail {
	billed := colorCount - 1
	if billed < 0 {
		billed = 0
	}
	if billed == 0 {
		return ColorsCostDetail{}
	}
	return ColorsCostDetail{
		CostDetail: CostDetail{
			Cost:  roundCurrency(float64(billed) * rt.Job.AdditionalColorFee),
			Basis: fmt.Sprintf("%d colors beyond the first x %.0f", billed, rt.Job.AdditionalColorFee),
		},
		BilledColors: billed,
	}
}

// SetupFee tops up jobs under the minimum viable size: zero at or above the
// threshold, otherwise the shortfall capped at SetupFeeCap. Monotonically
// non-increasing in the subtotal and never negative.
func (rt RateTable) SetupFee(subtotal float64) CostDetail {
	if subtotal >= rt.Job.SetupFeeThreshold {
		return CostDetail{}
	}
	fee := rt.Job.SetupFeeThreshold - subtotal
	if fee > rt.Job.SetupFeeCap {
		fee = rt.Job.SetupFeeCap
	}
	return CostDetail{
		Cost:  roundCurrency(fee),
		Basis: fmt.Sprintf("small job setup fee, subtotal %.0f below %.0f threshold", subtotal, rt.Job.SetupFeeThreshold),
	}
}

// ComputeRoom assembles every applicable sub-cost of one room into its
// line-item list and total. Zero-cost entries are omitted.
func (rt RateTable) ComputeRoom(room entities.Room) RoomResult {
	res := RoomResult{RoomID: room.ID, RoomName: room.Name}

	add := func(cat Category, name string, d CostDetail) {
		if d.Cost == 0 {
			return
		}
		res.Items = append(res.Items, LineItem{
			Category: cat,
			Name:     name,
			Basis:    d.Basis,
			Cost:     d.Cost,
			RoomID:   room.ID,
			RoomName: room.Name,
		})
		res.Total += d.Cost
	}

	add(CategoryWalls, "Walls", rt.WallCost(room).CostDetail)
	add(CategoryCeiling, "Ceiling", rt.CeilingCost(room))
	add(CategoryTrim, "Trim", rt.TrimCost(room))
	add(CategoryCrown, "Crown molding", rt.CrownCost(room.CrownLinearFeet))
	add(CategoryDoors, "Doors", rt.DoorCost(room.DoorSides))
	add(CategoryWindows, "Windows", rt.WindowCost(room.Windows).CostDetail)
	add(CategoryClosets, "Closets", rt.ClosetCost(room.ClosetStandard, room.ClosetWalkIn))
	add(CategoryAccentWalls, "Accent walls", rt.AccentWallCost(room.AccentWallsInRoom, room.AccentWallsStandalone))
	add(CategoryScaffolding, "Scaffolding", rt.ScaffoldingCost(room.NeedsScaffolding))
	add(CategoryWallpaper, "Wallpaper removal", rt.WallpaperCost(room.WallpaperArea))

	return res
}

// ComputeInteriorEstimate prices the whole interior job.
//
// Job-level adjustments apply in a fixed order: additional colors, then the
// customer-supplied-paint deduction (a percentage of the running subtotal
// before the deduction line is added), then the premium paint upcharge,
// then the setup fee against the fully adjusted subtotal.
func (rt RateTable) ComputeInteriorEstimate(job entities.InteriorJob) EstimateResult {
	res := EstimateResult{RoomCount: len(job.Rooms)}

	for _, room := range job.Rooms {
		rr := rt.ComputeRoom(room)
		res.Rooms = append(res.Rooms, rr)
		res.Items = append(res.Items, rr.Items...)
		res.Subtotal += rr.Total
	}

	res.Warnings = rt.interiorWarnings(job)

	if colors := rt.AdditionalColorsCost(job.ColorCount); colors.Cost > 0 {
		res.Items = append(res.Items, LineItem{
			Category: CategoryColors,
			Name:     "Additional colors",
			Basis:    colors.Basis,
			Cost:     colors.Cost,
		})
		res.Subtotal += colors.Cost
	}

	if job.CustomerSuppliesPaint {
		deduction := -roundCurrency(res.Subtotal * rt.Job.CustomerPaintDeduction)
		if deduction != 0 {
			res.Items = append(res.Items, LineItem{
				Category: CategoryPaint,
				Name:     "Customer-supplied paint",
				Basis:    fmt.Sprintf("%.0f%% off subtotal %.0f", rt.Job.CustomerPaintDeduction*100, res.Subtotal),
				Cost:     deduction,
			})
			res.Subtotal += deduction
		}
	}

	if job.PremiumPaint {
		fee := roundCurrency(rt.Job.PremiumPaintFee)
		res.Items = append(res.Items, LineItem{
			Category: CategoryPaint,
			Name:     "Premium paint",
			Basis:    fmt.Sprintf("premium paint flat upcharge %.0f", fee),
			Cost:     fee,
		})
		res.Subtotal += fee
	}

	if setup := rt.SetupFee(res.Subtotal); setup.Cost > 0 {
		res.Items = append(res.Items, LineItem{
			Category: CategorySetup,
			Name:     "Setup fee",
			Basis:    setup.Basis,
			Cost:     setup.Cost,
		})
		res.SetupFee = setup.Cost
	}

	res.Total = res.Subtotal + res.SetupFee
	return res
}

func (rt RateTable) interiorWarnings(job entities.InteriorJob) []string {
	var warnings []string
	if len(job.Rooms) == 0 {
		warnings = append(warnings, "job has no rooms")
	}
	for _, room := range job.Rooms {
		if room.Area > rt.Sanity.RoomArea {
			warnings = append(warnings, fmt.Sprintf("room %q area %.0f sqft looks implausibly large", room.Name, room.Area))
		}
		if room.DoorSides > rt.Sanity.DoorSides {
			warnings = append(warnings, fmt.Sprintf("room %q has %.0f door sides, check the count", room.Name, room.DoorSides))
		}
	}
	return warnings
}
