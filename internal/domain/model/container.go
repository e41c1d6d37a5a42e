package model

// DefaultContainerID is the preset selected when a request names no container.
const DefaultContainerID = "40ft-hc"

// ContainerSpec describes the inner dimensions (cm) and payload limit (kg) of a container.
//
// @Description Container inner dimensions and payload limit
type ContainerSpec struct {
	ID        string  `json:"id" bson:"_id" example:"40ft-hc"`
	Name      string  `json:"name" bson:"name" example:"40ft High Cube"`
	Length    float64 `json:"length" bson:"length" example:"1203"`
	Width     float64 `json:"width" bson:"width" example:"235"`
	Height    float64 `json:"height" bson:"height" example:"269"`
	MaxWeight float64 `json:"max_weight" bson:"max_weight" example:"28560"`
	Color     string  `json:"color,omitempty" bson:"color,omitempty" example:"#06b6d4"`
	Preset    bool    `json:"preset" bson:"-"`
} // @name ContainerSpec

// Volume returns the container capacity in m³.
func (c ContainerSpec) Volume() float64 {
	return c.Length * c.Width * c.Height / 1e6
}

// Presets returns the built-in ISO container catalog.
// A fresh slice is returned on each call.
func Presets() []ContainerSpec {
	return []ContainerSpec{
		{ID: "20ft", Name: "20ft Standard", Length: 589, Width: 235, Height: 239, MaxWeight: 28200, Color: "#3b82f6", Preset: true},
		{ID: "40ft", Name: "40ft Standard", Length: 1203, Width: 235, Height: 239, MaxWeight: 28800, Color: "#8b5cf6", Preset: true},
		{ID: "40ft-hc", Name: "40ft High Cube", Length: 1203, Width: 235, Height: 269, MaxWeight: 28560, Color: "#06b6d4", Preset: true},
	}
}

// Preset looks up a built-in container by ID.
func Preset(id string) (ContainerSpec, bool) {
	for _, c := range Presets() {
		if c.ID == id {
			return c, true
		}
	}
	return ContainerSpec{}, false
}

// ConstraintInfo is display metadata for a constraint.
//
// @Description Constraint label, description and badge color
type ConstraintInfo struct {
	Type        Constraint `json:"type" example:"fragile"`
	Label       string     `json:"label" example:"Fragile"`
	Description string     `json:"description" example:"Maximum 20kg load can be placed on top"`
	Color       string     `json:"color" example:"#ec4899"`
} // @name ConstraintInfo

var constraintColors = map[Constraint]string{
	ConstraintMustBeOnTop:    "#f59e0b",
	ConstraintMustBeOnBottom: "#ef4444",
	ConstraintFragile:        "#ec4899",
	ConstraintNoRotate:       "#6366f1",
	ConstraintHeavyBottom:    "#14b8a6",
}

// Color returns the badge color for the constraint.
func (c Constraint) Color() string {
	return constraintColors[c]
}

// ItemPalette is the color rotation assigned to items that declare none.
var ItemPalette = []string{
	"#ef4444", "#f97316", "#f59e0b", "#eab308", "#84cc16",
	"#22c55e", "#10b981", "#14b8a6", "#06b6d4", "#0ea5e9",
	"#3b82f6", "#6366f1", "#8b5cf6", "#a855f7", "#d946ef",
	"#ec4899", "#f43f5e",
}

// PaletteColor returns the palette color for the n-th item.
func PaletteColor(n int) string {
	if n < 0 {
		n = -n
	}
	return ItemPalette[n%len(ItemPalette)]
}
