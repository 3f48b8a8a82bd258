package entities

// RoomCategory classifies an interior room for wall pricing.
// Kitchens and bathrooms carry higher per-square-foot rates.

type RoomCategory string

const (
	RoomCategoryGeneral  RoomCategory = "general"
	RoomCategoryKitchen  RoomCategory = "kitchen"
	RoomCategoryBathroom RoomCategory = "bathroom"
)

// TrimMode selects how trim work is priced for a room.

type TrimMode string

const (
	TrimModeNone       TrimMode = "none"
	TrimModePackage    TrimMode = "package"
	TrimModeBaseboards TrimMode = "baseboards"
)

// Window describes a single window opening. SizeFactor scales the base
// window rate; values <= 0 are treated as 1.0 by the engine.
type Window struct {
	SizeFactor float64 `json:"size_factor"`
}

// Room is a single interior room within an interior job.
//
// Counts are float64 on purpose: they arrive from free-form numeric inputs
// and the engine truncates/clamps them rather than rejecting them.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Category RoomCategory `json:"category"`
	Area     float64      `json:"area"`

	PaintWalls     bool `json:"paint_walls"`
	PaintCeiling   bool `json:"paint_ceiling"`
	VaultedCeiling bool `json:"vaulted_ceiling"`

	TrimMode        TrimMode `json:"trim_mode"`
	TrimLinearFeet  float64  `json:"trim_linear_feet"`
	StainedWoodTrim bool     `json:"stained_wood_trim"`
	CrownLinearFeet float64  `json:"crown_linear_feet"`

	DoorSides      float64  `json:"door_sides"`
	ClosetStandard float64  `json:"closet_standard"`
	ClosetWalkIn   float64  `json:"closet_walk_in"`
	Windows        []Window `json:"windows"`

	AccentWallsInRoom     int `json:"accent_walls_in_room"`
	AccentWallsStandalone int `json:"accent_walls_standalone"`

	NeedsScaffolding bool    `json:"needs_scaffolding"`
	WallpaperArea    float64 `json:"wallpaper_area"`
}

// InteriorJob is the full input of the interior pricing pipeline.
// Room order is display order only; pricing does not depend on it.
type InteriorJob struct {
	Rooms []Room `json:"rooms"`

	ColorCount            int  `json:"color_count"`
	CustomerSuppliesPaint bool `json:"customer_supplies_paint"`
	PremiumPaint          bool `json:"premium_paint"`
}

// StoryCategory classifies house height for exterior pricing.

type StoryCategory string

const (
	StoryOne        StoryCategory = "one_story"
	StoryOneAndHalf StoryCategory = "one_and_half_story"
	StoryTwo        StoryCategory = "two_story"
	StoryThree      StoryCategory = "three_story"
)

// FlakingSeverity classifies how much paint-prep an exterior needs.

type FlakingSeverity string

const (
	FlakingLight  FlakingSeverity = "light"
	FlakingMedium FlakingSeverity = "medium"
	FlakingHeavy  FlakingSeverity = "heavy"
)

// JobScope selects how much of the exterior is painted.

type JobScope string

const (
	ScopeFull       JobScope = "full"
	ScopeTrimOnly   JobScope = "trim_only"
	ScopeSidingOnly JobScope = "siding_only"
)

// HouseSide carries the two independent difficulty flags of one side.
type HouseSide struct {
	UnevenGround bool `json:"uneven_ground"`
	RoofAccess   bool `json:"roof_access"`
}

// ExteriorSides names the four sides of the house.
type ExteriorSides struct {
	Front HouseSide `json:"front"`
	Back  HouseSide `json:"back"`
	Left  HouseSide `json:"left"`
	Right HouseSide `json:"right"`
}

// ExteriorJob is the full input of the exterior pricing pipeline.
type ExteriorJob struct {
	ID        string        `json:"id"`
	HouseArea float64       `json:"house_area"`
	Story     StoryCategory `json:"story"`
	Sides     ExteriorSides `json:"sides"`

	Flaking         FlakingSeverity `json:"flaking"`
	FlakingOverride float64         `json:"flaking_override"`

	Scope JobScope `json:"scope"`

	ShutterCount   int    `json:"shutter_count"`
	PaintFrontDoor bool   `json:"paint_front_door"`
	GarageOneCar   int    `json:"garage_one_car"`
	GarageTwoCar   int    `json:"garage_two_car"`
	Notes          string `json:"notes"`
}
