package packing

import "github.com/guttosm/cargo-service/internal/domain/model"

// Box is an axis-aligned box: origin plus extents along x (Width), y (Height) and z (Depth).
type Box struct {
	X, Y, Z              float64
	Width, Height, Depth float64
}

// Volume returns the box volume in cm³.
func (b Box) Volume() float64 {
	return b.Width * b.Height * b.Depth
}

// Top returns the y coordinate of the upper face.
func (b Box) Top() float64 {
	return b.Y + b.Height
}

// Overlaps reports whether b and o share positive volume.
func (b Box) Overlaps(o Box) bool {
	return b.overlapsX(o) && b.overlapsY(o) && b.overlapsZ(o)
}

// OverlapsXZ reports whether the horizontal footprints of b and o share positive area.
func (b Box) OverlapsXZ(o Box) bool {
	return b.overlapsX(o) && b.overlapsZ(o)
}

// Above reports whether o sits at or above b's top face within b's footprint.
func (b Box) Above(o Box) bool {
	return o.Y >= b.Top() && b.OverlapsXZ(o)
}

// Fits reports whether dimensions d fit inside b on every axis.
func (b Box) Fits(d model.Dimensions) bool {
	return d.Width <= b.Width && d.Height <= b.Height && d.Depth <= b.Depth
}

// Within reports whether b lies fully inside the container.
func (b Box) Within(c model.ContainerSpec) bool {
	return b.X >= 0 && b.Y >= 0 && b.Z >= 0 &&
		b.X+b.Width <= c.Length &&
		b.Y+b.Height <= c.Height &&
		b.Z+b.Depth <= c.Width
}

func (b Box) overlapsX(o Box) bool { return overlaps(b.X, b.X+b.Width, o.X, o.X+o.Width) }
func (b Box) overlapsY(o Box) bool { return overlaps(b.Y, b.Y+b.Height, o.Y, o.Y+o.Height) }
func (b Box) overlapsZ(o Box) bool { return overlaps(b.Z, b.Z+b.Depth, o.Z, o.Z+o.Depth) }

func overlaps(aMin, aMax, bMin, bMax float64) bool {
	return aMin < bMax && bMin < aMax
}

// BoxAt builds the box occupied by dimensions d at position p.
func BoxAt(p model.Position, d model.Dimensions) Box {
	return Box{X: p.X, Y: p.Y, Z: p.Z, Width: d.Width, Height: d.Height, Depth: d.Depth}
}

// BoxOf returns the box occupied by a placed item.
func BoxOf(p model.PlacedItem) Box {
	return BoxAt(p.Position, p.Dimensions)
}

// ContainerBox spans the whole container: x along length, y along height, z along width.
func ContainerBox(c model.ContainerSpec) Box {
	return Box{Width: c.Length, Height: c.Height, Depth: c.Width}
}
