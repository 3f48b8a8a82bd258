package pricing

import (
	"fmt"

	"pintura_xpto/internal/domain/entities"
)

// ExteriorBreakdown exposes the intermediate values of the exterior master
// formula. Multipliers keep full precision; the four named checkpoints
// (BaseCalculation, AfterCoats, FullTotal, FinalTotal) are each rounded to
// whole currency at the point they are computed, not at the end.
type ExteriorBreakdown struct {
	HeightMultiplier     float64 `json:"height_multiplier"`
	DifficultyAdjustment float64 `json:"difficulty_adjustment"`
	FlakingAdjustment    float64 `json:"flaking_adjustment"`
	TotalMultiplier      float64 `json:"total_multiplier"`

	BaseCalculation float64 `json:"base_calculation"`
	AfterCoats      float64 `json:"after_coats"`
	AddOns          float64 `json:"add_ons"`
	FullTotal       float64 `json:"full_total"`
	FinalTotal      float64 `json:"final_total"`
}

// ExteriorEstimateResult is the full exterior pricing output. Items are
// derived by subtracting adjacent checkpoints, so they always sum exactly
// to Total.
type ExteriorEstimateResult struct {
	JobID     string            `json:"job_id,omitempty"`
	Items     []LineItem        `json:"items"`
	Breakdown ExteriorBreakdown `json:"breakdown"`
	Total     float64           `json:"total"`
}

// HeightMultiplier looks up the story multiplier. Unknown categories price
// as one story, the lowest rate.
func (rt RateTable) HeightMultiplier(story entities.StoryCategory) float64 {
	switch story {
	case entities.StoryOne:
		return rt.Exterior.Height.OneStory
	case entities.StoryOneAndHalf:
		return rt.Exterior.Height.OneAndHalfStory
	case entities.StoryTwo:
		return rt.Exterior.Height.TwoStory
	case entities.StoryThree:
		return rt.Exterior.Height.ThreeStory
	default:
		return rt.Exterior.Height.OneStory
	}
}

// DifficultyAdjustment sums the per-side difficulty adders across all four
// sides: one adder per flagged condition, two conditions per side, so the
// range is 0 to 8 x PerSideDifficulty.
func (rt RateTable) DifficultyAdjustment(sides entities.ExteriorSides) float64 {
	var total float64
	for _, side := range []entities.HouseSide{sides.Front, sides.Back, sides.Left, sides.Right} {
		if side.UnevenGround {
			total += rt.Exterior.PerSideDifficulty
		}
		if side.RoofAccess {
			total += rt.Exterior.PerSideDifficulty
		}
	}
	return total
}

// FlakingAdjustment maps severity to a multiplier adjustment. Heavy uses
// the caller-supplied override clamped into [HeavyMin, HeavyMax]; an
// omitted (zero) override lands on HeavyMin via the clamp.
func (rt RateTable) FlakingAdjustment(severity entities.FlakingSeverity, override float64) float64 {
	switch severity {
	case entities.FlakingLight:
		return 0
	case entities.FlakingMedium:
		return rt.Exterior.Flaking.Medium
	case entities.FlakingHeavy:
		return clamp(override, rt.Exterior.Flaking.HeavyMin, rt.Exterior.Flaking.HeavyMax)
	default:
		return 0
	}
}

// ScopeMultiplier is 1.0 for full jobs and the partial multiplier for
// trim-only and siding-only jobs.
func (rt RateTable) ScopeMultiplier(scope entities.JobScope) float64 {
	switch scope {
	case entities.ScopeTrimOnly, entities.ScopeSidingOnly:
		return rt.Exterior.PartialScopeMultiplier
	case entities.ScopeFull:
		return 1.0
	default:
		return 1.0
	}
}

// ComputeExteriorEstimate prices a house exterior with the master formula:
//
//	totalMultiplier = height + difficulty + flaking
//	base            = round(totalMultiplier x area + baseFee)
//	afterCoats      = round(base x coatMultiplier)
//	fullTotal       = round(afterCoats + addOns)
//	finalTotal      = round(fullTotal x scopeMultiplier)
func (rt RateTable) ComputeExteriorEstimate(job entities.ExteriorJob) ExteriorEstimateResult {
	area := nonNegative(job.HouseArea)

	b := ExteriorBreakdown{
		HeightMultiplier:     rt.HeightMultiplier(job.Story),
		DifficultyAdjustment: rt.DifficultyAdjustment(job.Sides),
		FlakingAdjustment:    rt.FlakingAdjustment(job.Flaking, job.FlakingOverride),
	}
	b.TotalMultiplier = b.HeightMultiplier + b.DifficultyAdjustment + b.FlakingAdjustment
	b.BaseCalculation = roundCurrency(b.TotalMultiplier*area + rt.Exterior.BaseFee)
	b.AfterCoats = roundCurrency(b.BaseCalculation * rt.Exterior.CoatMultiplier)

	addOnItems := rt.exteriorAddOns(job)
	for _, it := range addOnItems {
		b.AddOns += it.Cost
	}
	b.FullTotal = roundCurrency(b.AfterCoats + b.AddOns)

	scope := rt.ScopeMultiplier(job.Scope)
	b.FinalTotal = roundCurrency(b.FullTotal * scope)

	items := []LineItem{{
		Category: CategoryExteriorBase,
		Name:     "Exterior painting",
		Basis:    fmt.Sprintf("%.2f multiplier x %.0f sqft + %.0f base fee", b.TotalMultiplier, area, rt.Exterior.BaseFee),
		Cost:     b.BaseCalculation,
	}}

	// Display items between checkpoints come from checkpoint differences,
	// never from recomputation, so the list sums exactly to the total.
	if coats := b.AfterCoats - b.BaseCalculation; coats != 0 {
		items = append(items, LineItem{
			Category: CategoryExteriorCoats,
			Name:     "Second coat",
			Basis:    fmt.Sprintf("base %.0f x %.2f coat multiplier", b.BaseCalculation, rt.Exterior.CoatMultiplier),
			Cost:     coats,
		})
	}
	items = append(items, addOnItems...)
	if scopeAdj := b.FinalTotal - b.FullTotal; scopeAdj != 0 {
		items = append(items, LineItem{
			Category: CategoryExteriorScope,
			Name:     "Partial scope adjustment",
			Basis:    fmt.Sprintf("full total %.0f x %.2f scope multiplier", b.FullTotal, scope),
			Cost:     scopeAdj,
		})
	}

	return ExteriorEstimateResult{
		JobID:     job.ID,
		Items:     items,
		Breakdown: b,
		Total:     b.FinalTotal,
	}
}

func (rt RateTable) exteriorAddOns(job entities.ExteriorJob) []LineItem {
	var items []LineItem
	add := func(name string, count int, rate float64) {
		if count <= 0 {
			return
		}
		items = append(items, LineItem{
			Category: CategoryExteriorAddOn,
			Name:     name,
			Basis:    fmt.Sprintf("%d x %.0f", count, rate),
			Cost:     roundCurrency(float64(count) * rate),
		})
	}

	add("Shutters", job.ShutterCount, rt.Exterior.ShutterRate)
	if job.PaintFrontDoor {
		add("Front door", 1, rt.Exterior.FrontDoorRate)
	}
	add("1-car garage doors", job.GarageOneCar, rt.Exterior.GarageOneCar)
	add("2-car garage doors", job.GarageTwoCar, rt.Exterior.GarageTwoCar)
	return items
}
