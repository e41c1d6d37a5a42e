package packing

import (
	"math"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

// SnapThreshold is the distance (cm) within which a face snaps to a wall or neighbor.
const SnapThreshold = 15.0

func near(a, b float64) bool {
	return math.Abs(a-b) < SnapThreshold
}

// Snap aligns a dragged item at pos with dims to the container walls and to other
// placed items, then clamps it inside the container. placed[selfIndex] is the item
// being moved and is ignored. Overlaps with other placements are flagged, not
// resolved.
//
// dims must fit the container on every axis; a larger box is clamped to the
// origin and still sticks out.
func Snap(pos model.Position, dims model.Dimensions, c model.ContainerSpec, placed []model.PlacedItem, selfIndex int) model.SnapResult {
	r := model.SnapResult{Position: pos}

	switch {
	case near(pos.X, 0):
		r.X, r.SnappedX = 0, true
	case near(pos.X+dims.Width, c.Length):
		r.X, r.SnappedX = c.Length-dims.Width, true
	}
	switch {
	case near(pos.Z, 0):
		r.Z, r.SnappedZ = 0, true
	case near(pos.Z+dims.Depth, c.Width):
		r.Z, r.SnappedZ = c.Width-dims.Depth, true
	}
	if near(pos.Y, 0) {
		r.Y, r.SnappedY = 0, true
	}

	for i, other := range placed {
		if i == selfIndex {
			continue
		}
		o := BoxOf(other)
		if !r.SnappedX {
			r.X, r.SnappedX = alignAxis(r.X, dims.Width, o.X, o.X+o.Width)
		}
		if !r.SnappedZ {
			r.Z, r.SnappedZ = alignAxis(r.Z, dims.Depth, o.Z, o.Z+o.Depth)
		}
		if !r.SnappedY {
			r.Y, r.SnappedY = stack(r.Y, dims.Height, o.Y, o.Top())
		}
	}

	r.X = clamp(r.X, c.Length-dims.Width)
	r.Y = clamp(r.Y, c.Height-dims.Height)
	r.Z = clamp(r.Z, c.Width-dims.Depth)

	b := BoxAt(r.Position, dims)
	for i, other := range placed {
		if i != selfIndex && b.Overlaps(BoxOf(other)) {
			r.Overlaps = true
			break
		}
	}
	return r
}

// alignAxis tries, in order: touching the neighbor's far face, touching its near
// face, flush near faces, flush far faces.
func alignAxis(lo, size, oLo, oHi float64) (float64, bool) {
	hi := lo + size
	switch {
	case near(lo, oHi):
		return oHi, true
	case near(hi, oLo):
		return oLo - size, true
	case near(lo, oLo):
		return oLo, true
	case near(hi, oHi):
		return oHi - size, true
	}
	return lo, false
}

// stack rests the item on the neighbor's top or hangs it under its bottom.
func stack(y, height, oBottom, oTop float64) (float64, bool) {
	switch {
	case near(y, oTop):
		return oTop, true
	case near(y+height, oBottom):
		return oBottom - height, true
	}
	return y, false
}

func clamp(v, hi float64) float64 {
	return math.Max(0, math.Min(v, hi))
}
