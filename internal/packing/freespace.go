package packing

import (
	"cmp"
	"slices"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

// MinFreeSpaceExtent is the smallest extent (cm) a residual free box may have on any axis.
const MinFreeSpaceExtent = 5.0

// FreeSpace tracks the unoccupied sub-volumes of a container as an over-covering
// list of boxes, ordered by (y, z, x).
type FreeSpace struct {
	boxes   []Box
	scratch []Box
}

// NewFreeSpace returns a tracker holding one box spanning the container.
func NewFreeSpace(c model.ContainerSpec) *FreeSpace {
	return &FreeSpace{boxes: []Box{ContainerBox(c)}}
}

// Boxes returns the current free boxes. The slice is owned by the tracker.
func (f *FreeSpace) Boxes() []Box {
	return f.boxes
}

// Len returns the number of free boxes.
func (f *FreeSpace) Len() int {
	return len(f.boxes)
}

// Split carves occupied out of every overlapping free box, replacing each with
// up to five residuals, then drops undersized boxes and re-sorts.
func (f *FreeSpace) Split(occupied Box) {
	next := f.scratch[:0]
	for _, s := range f.boxes {
		if !s.Overlaps(occupied) {
			next = append(next, s)
			continue
		}
		next = appendResiduals(next, s, occupied)
	}

	kept := next[:0]
	for _, b := range next {
		if b.Width >= MinFreeSpaceExtent && b.Height >= MinFreeSpaceExtent && b.Depth >= MinFreeSpaceExtent {
			kept = append(kept, b)
		}
	}

	slices.SortStableFunc(kept, func(a, b Box) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Z, b.Z); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})

	f.scratch = f.boxes
	f.boxes = kept
}

func appendResiduals(dst []Box, s, o Box) []Box {
	sRight, oRight := s.X+s.Width, o.X+o.Width
	sTop, oTop := s.Y+s.Height, o.Y+o.Height
	sBack, oBack := s.Z+s.Depth, o.Z+o.Depth

	if oRight < sRight {
		dst = append(dst, Box{X: oRight, Y: s.Y, Z: s.Z, Width: sRight - oRight, Height: s.Height, Depth: s.Depth})
	}
	if o.X > s.X {
		dst = append(dst, Box{X: s.X, Y: s.Y, Z: s.Z, Width: o.X - s.X, Height: s.Height, Depth: s.Depth})
	}
	if oTop < sTop {
		dst = append(dst, Box{X: s.X, Y: oTop, Z: s.Z, Width: s.Width, Height: sTop - oTop, Depth: s.Depth})
	}
	if oBack < sBack {
		dst = append(dst, Box{X: s.X, Y: s.Y, Z: oBack, Width: s.Width, Height: s.Height, Depth: sBack - oBack})
	}
	if o.Z > s.Z {
		dst = append(dst, Box{X: s.X, Y: s.Y, Z: s.Z, Width: s.Width, Height: s.Height, Depth: o.Z - s.Z})
	}
	return dst
}
