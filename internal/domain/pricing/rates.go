// Package pricing implements the painting rate table and the two pricing
// engines (interior rooms, house exterior).
//
// Every function here is a pure transform: same input, same output, no I/O,
// no shared mutable state. Out-of-range numeric input is clamped or
// truncated, never rejected. All monetary outputs are rounded to whole
// currency units at the point they are computed; multipliers keep full
// decimal precision until that rounding step.
package pricing

// WallRates are the per-square-foot wall rates by room category.
type WallRates struct {
	General  float64
	Kitchen  float64
	Bathroom float64

	// VaultedAdder is added to the category rate when the ceiling is vaulted.
	VaultedAdder float64

	// MinimumRoomCharge is the floor for any room with walls in scope.
	MinimumRoomCharge float64
}

// CeilingRates are per-square-foot ceiling rates. Painting a ceiling alone
// costs more than painting it along with the walls.
type CeilingRates struct {
	WithWalls float64
	Alone     float64
}

// TrimRates cover the three trim modes plus the stained-wood conversion.
type TrimRates struct {
	PackagePerSqFt     float64
	BaseboardWithWalls float64
	BaseboardAlone     float64

	// StainedConversionFactor multiplies any positive trim cost when
	// stained wood is being converted to painted trim.
	StainedConversionFactor float64

	CrownPerLinearFoot float64
}

// UnitRates are flat per-unit prices for countable room features.
type UnitRates struct {
	DoorPerSide      float64
	WindowBase       float64
	ClosetStandard   float64
	ClosetWalkIn     float64
	AccentInRoom     float64
	AccentStandalone float64
	WallpaperPerSqFt float64
	ScaffoldingFee   float64
}

// JobRates are job-level interior adjustments.
type JobRates struct {
	// AdditionalColorFee is charged per distinct wall color past the first.
	AdditionalColorFee float64

	// CustomerPaintDeduction is the fraction removed from the running
	// subtotal when the customer supplies the paint.
	CustomerPaintDeduction float64

	PremiumPaintFee float64

	// SetupFeeThreshold and SetupFeeCap define the small-job top-up: jobs
	// under the threshold pay the shortfall, capped.
	SetupFeeThreshold float64
	SetupFeeCap       float64
}

// HeightMultipliers are the exterior per-square-foot multipliers by story
// category.
type HeightMultipliers struct {
	OneStory        float64
	OneAndHalfStory float64
	TwoStory        float64
	ThreeStory      float64
}

// FlakingRates drive the paint-prep adjustment. Heavy flaking uses a
// caller-supplied override clamped into [HeavyMin, HeavyMax].
type FlakingRates struct {
	Medium   float64
	HeavyMin float64
	HeavyMax float64
}

// ExteriorRates is the nested exterior sub-table.
type ExteriorRates struct {
	Height  HeightMultipliers
	Flaking FlakingRates

	// PerSideDifficulty is added to the total multiplier once per flagged
	// difficulty (uneven ground, roof access) on each of the four sides.
	PerSideDifficulty float64

	BaseFee        float64
	CoatMultiplier float64

	// PartialScopeMultiplier discounts trim-only and siding-only jobs.
	PartialScopeMultiplier float64

	ShutterRate   float64
	FrontDoorRate float64
	GarageOneCar  float64
	GarageTwoCar  float64
}

// SanityThresholds trigger advisory warnings, never price changes.
type SanityThresholds struct {
	RoomArea  float64
	DoorSides float64
}

// RateTable is the published rate sheet. It is frozen at startup:
// DefaultRates returns a copy and nothing in this package ever writes to
// the package-level value, so the table is safe for unlimited concurrent
// readers.
type RateTable struct {
	Wall     WallRates
	Ceiling  CeilingRates
	Trim     TrimRates
	Unit     UnitRates
	Job      JobRates
	Exterior ExteriorRates
	Sanity   SanityThresholds
}

var defaultRates = RateTable{
	Wall: WallRates{
		General:           2.80,
		Kitchen:           3.10,
		Bathroom:          4.10,
		VaultedAdder:      0.50,
		MinimumRoomCharge: 275,
	},
	Ceiling: CeilingRates{
		WithWalls: 1.10,
		Alone:     1.50,
	},
	Trim: TrimRates{
		PackagePerSqFt:          0.65,
		BaseboardWithWalls:      1.25,
		BaseboardAlone:          2.00,
		StainedConversionFactor: 1.50,
		CrownPerLinearFoot:      3.25,
	},
	Unit: UnitRates{
		DoorPerSide:      45,
		WindowBase:       35,
		ClosetStandard:   95,
		ClosetWalkIn:     160,
		AccentInRoom:     120,
		AccentStandalone: 165,
		WallpaperPerSqFt: 1.35,
		ScaffoldingFee:   225,
	},
	Job: JobRates{
		AdditionalColorFee:     134,
		CustomerPaintDeduction: 0.10,
		PremiumPaintFee:        175,
		SetupFeeThreshold:      1566,
		SetupFeeCap:            300,
	},
	Exterior: ExteriorRates{
		Height: HeightMultipliers{
			OneStory:        1.50,
			OneAndHalfStory: 1.625,
			TwoStory:        1.75,
			ThreeStory:      2.00,
		},
		Flaking: FlakingRates{
			Medium:   0.25,
			HeavyMin: 0.50,
			HeavyMax: 1.00,
		},
		PerSideDifficulty:      0.25,
		BaseFee:                1250,
		CoatMultiplier:         1.60,
		PartialScopeMultiplier: 0.60,
		ShutterRate:            40,
		FrontDoorRate:          75,
		GarageOneCar:           125,
		GarageTwoCar:           195,
	},
	Sanity: SanityThresholds{
		RoomArea:  1000,
		DoorSides: 20,
	},
}

// DefaultRates returns the published rate table. The returned value is a
// copy; mutating it has no effect on other callers.
func DefaultRates() RateTable {
	return defaultRates
}
