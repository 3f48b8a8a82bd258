package request

import (
	"pintura_xpto/internal/domain/entities"
)

type WindowRequest struct {
	SizeFactor float64 `json:"size_factor"`
}

type RoomRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Category string  `json:"category"`
	Area     float64 `json:"area"`

	PaintWalls     bool `json:"paint_walls"`
	PaintCeiling   bool `json:"paint_ceiling"`
	VaultedCeiling bool `json:"vaulted_ceiling"`

	TrimMode        string  `json:"trim_mode"`
	TrimLinearFeet  float64 `json:"trim_linear_feet"`
	StainedWoodTrim bool    `json:"stained_wood_trim"`
	CrownLinearFeet float64 `json:"crown_linear_feet"`

	DoorSides      float64         `json:"door_sides"`
	ClosetStandard float64         `json:"closet_standard"`
	ClosetWalkIn   float64         `json:"closet_walk_in"`
	Windows        []WindowRequest `json:"windows"`

	AccentWallsInRoom     int `json:"accent_walls_in_room"`
	AccentWallsStandalone int `json:"accent_walls_standalone"`

	NeedsScaffolding bool    `json:"needs_scaffolding"`
	WallpaperArea    float64 `json:"wallpaper_area"`
}

// InteriorJobRequest mirrors the interior job payload the front-end keeps
// while the customer fills in the form. Unknown category and trim strings
// pass through unchanged; the engine resolves them with its own defaults.
type InteriorJobRequest struct {
	Rooms []RoomRequest `json:"rooms"`

	ColorCount            int  `json:"color_count"`
	CustomerSuppliesPaint bool `json:"customer_supplies_paint"`
	PremiumPaint          bool `json:"premium_paint"`
}

func (r RoomRequest) ToDomain() entities.Room {
	windows := make([]entities.Window, 0, len(r.Windows))
	for _, w := range r.Windows {
		windows = append(windows, entities.Window{SizeFactor: w.SizeFactor})
	}

	return entities.Room{
		ID:   r.ID,
		Name: r.Name,

		Category: entities.RoomCategory(r.Category),
		Area:     r.Area,

		PaintWalls:     r.PaintWalls,
		PaintCeiling:   r.PaintCeiling,
		VaultedCeiling: r.VaultedCeiling,

		TrimMode:        entities.TrimMode(r.TrimMode),
		TrimLinearFeet:  r.TrimLinearFeet,
		StainedWoodTrim: r.StainedWoodTrim,
		CrownLinearFeet: r.CrownLinearFeet,

		DoorSides:      r.DoorSides,
		ClosetStandard: r.ClosetStandard,
		ClosetWalkIn:   r.ClosetWalkIn,
		Windows:        windows,

		AccentWallsInRoom:     r.AccentWallsInRoom,
		AccentWallsStandalone: r.AccentWallsStandalone,

		NeedsScaffolding: r.NeedsScaffolding,
		WallpaperArea:    r.WallpaperArea,
	}
}

func (r InteriorJobRequest) ToDomain() entities.InteriorJob {
	rooms := make([]entities.Room, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, room.ToDomain())
	}
	return entities.InteriorJob{
		Rooms:                 rooms,
		ColorCount:            r.ColorCount,
		CustomerSuppliesPaint: r.CustomerSuppliesPaint,
		PremiumPaint:          r.PremiumPaint,
	}
}
