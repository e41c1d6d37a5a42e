// Package model defines the core domain entities for the cargo service.
package model

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Constraint is a placement rule attached to an item spec.
type Constraint string

const (
	// ConstraintMustBeOnTop forbids any cargo above the item's footprint.
	ConstraintMustBeOnTop Constraint = "must_be_on_top"
	// ConstraintMustBeOnBottom raises the item's loading priority by 1000.
	ConstraintMustBeOnBottom Constraint = "must_be_on_bottom"
	// ConstraintFragile limits the weight stacked above the item.
	ConstraintFragile Constraint = "fragile"
	// ConstraintNoRotate locks the item to its declared orientation.
	ConstraintNoRotate Constraint = "no_rotate"
	// ConstraintHeavyBottom raises the item's loading priority by 500.
	ConstraintHeavyBottom Constraint = "heavy_bottom"
)

// AllConstraints lists every known constraint in display order.
var AllConstraints = []Constraint{
	ConstraintMustBeOnTop,
	ConstraintMustBeOnBottom,
	ConstraintFragile,
	ConstraintNoRotate,
	ConstraintHeavyBottom,
}

// Valid reports whether c is a known constraint tag.
func (c Constraint) Valid() bool {
	return slices.Contains(AllConstraints, c)
}

// ItemSpec describes a kind of cargo item and how many of it to load.
//
// @Description Cargo item specification (dimensions in cm, weight in kg)
type ItemSpec struct {
	ID          string       `json:"id" bson:"id" example:"crate"`
	Name        string       `json:"name" bson:"name" example:"Wooden crate"`
	Length      float64      `json:"length" bson:"length" example:"120"`
	Width       float64      `json:"width" bson:"width" example:"80"`
	Height      float64      `json:"height" bson:"height" example:"100"`
	Weight      float64      `json:"weight" bson:"weight" example:"250"`
	Quantity    int          `json:"quantity" bson:"quantity" example:"4"`
	Constraints []Constraint `json:"constraints,omitempty" bson:"constraints,omitempty"`
	Color       string       `json:"color,omitempty" bson:"color,omitempty" example:"#ef4444"`
} // @name ItemSpec

// Has reports whether the spec carries constraint c.
func (s ItemSpec) Has(c Constraint) bool {
	return slices.Contains(s.Constraints, c)
}

// Volume returns L*W*H in cm³.
func (s ItemSpec) Volume() float64 {
	return s.Length * s.Width * s.Height
}

// Problems maps each invalid field of s to a message. It returns nil for a well-formed spec.
func (s ItemSpec) Problems() map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(s.ID) == "" {
		problems["id"] = "is required"
	}
	for _, d := range []struct {
		field string
		value float64
	}{{"length", s.Length}, {"width", s.Width}, {"height", s.Height}} {
		if !(d.value > 0) || math.IsInf(d.value, 1) {
			problems[d.field] = "must be a positive number"
		}
	}
	if !(s.Weight >= 0) || math.IsInf(s.Weight, 1) {
		problems["weight"] = "must not be negative"
	}
	if s.Quantity < 1 {
		problems["quantity"] = "must be at least 1"
	}
	for _, c := range s.Constraints {
		if !c.Valid() {
			problems["constraints"] = fmt.Sprintf("unknown constraint %q", c)
			break
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

// UnitItem is a single instance of an ItemSpec.
//
// @Description One unit of an item spec; ID is "{base_id}-{index}"
type UnitItem struct {
	ItemSpec `bson:",inline"`
	BaseID   string `json:"base_id" bson:"base_id" example:"crate"`
	Index    int    `json:"index" bson:"index" example:"0"`
} // @name UnitItem

// Position is the minimum corner of a placed box, in cm.
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	Z float64 `json:"z" bson:"z"`
} // @name Position

// Dimensions are the extents of a placed box along x, y and z.
type Dimensions struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Depth  float64 `json:"depth" bson:"depth"`
} // @name Dimensions

// Volume returns width*height*depth in cm³.
func (d Dimensions) Volume() float64 {
	return d.Width * d.Height * d.Depth
}

// PlacedItem is a unit bound to a position and orientation inside a container.
//
// @Description Unit item placed at a position with rotated dimensions
type PlacedItem struct {
	Item       UnitItem   `json:"item" bson:"item"`
	Position   Position   `json:"position" bson:"position"`
	Dimensions Dimensions `json:"dimensions" bson:"dimensions"`
} // @name PlacedItem

// Top returns the y coordinate of the item's upper face.
func (p PlacedItem) Top() float64 {
	return p.Position.Y + p.Dimensions.Height
}

// PackingResult is the outcome of a packing run or a manual edit.
//
// @Description Placements, unplaced units and utilization statistics
type PackingResult struct {
	Placed            []PlacedItem `json:"placed" bson:"placed"`
	Unpacked          []UnitItem   `json:"unpacked" bson:"unpacked"`
	TotalVolume       float64      `json:"total_volume" bson:"total_volume" example:"33.08"`
	UsedVolume        float64      `json:"used_volume" bson:"used_volume" example:"12.5"`
	TotalWeight       float64      `json:"total_weight" bson:"total_weight" example:"4200"`
	VolumeUtilization float64      `json:"volume_utilization" bson:"volume_utilization" example:"37.8"`
	WeightUtilization float64      `json:"weight_utilization" bson:"weight_utilization" example:"14.7"`
} // @name PackingResult

// SnapResult is a snapped position, which axes were snapped and whether the
// box at that position overlaps another placement.
//
// @Description Snapped drag position
type SnapResult struct {
	Position
	SnappedX bool `json:"snapped_x"`
	SnappedY bool `json:"snapped_y"`
	SnappedZ bool `json:"snapped_z"`
	Overlaps bool `json:"overlaps"`
} // @name SnapResult
