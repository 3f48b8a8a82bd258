package request

import (
	"pintura_xpto/internal/domain/entities"
)

type HouseSideRequest struct {
	UnevenGround bool `json:"uneven_ground"`
	RoofAccess   bool `json:"roof_access"`
}

type ExteriorSidesRequest struct {
	Front HouseSideRequest `json:"front"`
	Back  HouseSideRequest `json:"back"`
	Left  HouseSideRequest `json:"left"`
	Right HouseSideRequest `json:"right"`
}

// ExteriorJobRequest mirrors the exterior job payload. Story, flaking and
// scope strings pass through; the engine defaults unknown values.
type ExteriorJobRequest struct {
	ID        string               `json:"id"`
	HouseArea float64              `json:"house_area"`
	Story     string               `json:"story"`
	Sides     ExteriorSidesRequest `json:"sides"`

	Flaking         string  `json:"flaking"`
	FlakingOverride float64 `json:"flaking_override"`

	Scope string `json:"scope"`

	ShutterCount   int    `json:"shutter_count"`
	PaintFrontDoor bool   `json:"paint_front_door"`
	GarageOneCar   int    `json:"garage_one_car"`
	GarageTwoCar   int    `json:"garage_two_car"`
	Notes          string `json:"notes"`
}

func (s HouseSideRequest) toDomain() entities.HouseSide {
	return entities.HouseSide{UnevenGround: s.UnevenGround, RoofAccess: s.RoofAccess}
}

func (r ExteriorJobRequest) ToDomain() entities.ExteriorJob {
	return entities.ExteriorJob{
		ID:        r.ID,
		HouseArea: r.HouseArea,
		Story:     entities.StoryCategory(r.Story),
		Sides: entities.ExteriorSides{
			Front: r.Sides.Front.toDomain(),
			Back:  r.Sides.Back.toDomain(),
			Left:  r.Sides.Left.toDomain(),
			Right: r.Sides.Right.toDomain(),
		},

		Flaking:         entities.FlakingSeverity(r.Flaking),
		FlakingOverride: r.FlakingOverride,

		Scope: entities.JobScope(r.Scope),

		ShutterCount:   r.ShutterCount,
		PaintFrontDoor: r.PaintFrontDoor,
		GarageOneCar:   r.GarageOneCar,
		GarageTwoCar:   r.GarageTwoCar,
		Notes:          r.Notes,
	}
}
