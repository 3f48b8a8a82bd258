package pricing

// Category tags a line item for display grouping. The set is closed; every
// switch over it carries all members.
type Category string

const (
	CategoryWalls       Category = "walls"
	CategoryCeiling     Category = "ceiling"
	CategoryTrim        Category = "trim"
	CategoryCrown       Category = "crown_molding"
	CategoryDoors       Category = "doors"
	CategoryWindows     Category = "windows"
	CategoryClosets     Category = "closets"
	CategoryAccentWalls Category = "accent_walls"
	CategoryScaffolding Category = "scaffolding"
	CategoryWallpaper   Category = "wallpaper_removal"
	CategoryColors      Category = "additional_colors"
	CategoryPaint       Category = "paint"
	CategorySetup       Category = "setup_fee"

	CategoryExteriorBase  Category = "exterior_base"
	CategoryExteriorCoats Category = "exterior_coats"
	CategoryExteriorAddOn Category = "exterior_addon"
	CategoryExteriorScope Category = "exterior_scope"
)

// LineItem is one displayed cost entry. Cost is signed: deductions are
// negative. RoomID/RoomName are empty for job-level items.
type LineItem struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`

	// Basis explains the arithmetic behind Cost. It is cosmetic: the
	// number is computed first and formatted second, never parsed back.
	Basis string `json:"basis"`

	Cost float64 `json:"cost"`

	RoomID   string `json:"room_id,omitempty"`
	RoomName string `json:"room_name,omitempty"`
}

// CostDetail is the common result of the named sub-calculations.
type CostDetail struct {
	Cost  float64 `json:"cost"`
	Basis string  `json:"basis"`
}

// WallCostDetail reports whether the minimum room charge kicked in.
type WallCostDetail struct {
	CostDetail
	MinimumApplied bool `json:"minimum_applied"`
}

// WindowCostDetail groups windows for display: size factor >= 2 counts as
// large, everything else as standard.
type WindowCostDetail struct {
	CostDetail
	StandardCount int `json:"standard_count"`
	LargeCount    int `json:"large_count"`
}

// ColorsCostDetail reports how many extra colors were billed.
type ColorsCostDetail struct {
	CostDetail
	BilledColors int `json:"billed_colors"`
}
