package packing

import (
	"errors"
	"fmt"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

var (
	// ErrOutOfBounds is reported when a placed box leaves the container.
	ErrOutOfBounds = errors.New("placement outside container bounds")
	// ErrOverlap is reported when two placed boxes share volume.
	ErrOverlap = errors.New("placements overlap")
	// ErrOverweight is reported when the placed weight exceeds the container limit.
	ErrOverweight = errors.New("container weight limit exceeded")
	// ErrTopCovered is reported when a must_be_on_top item has cargo above it.
	ErrTopCovered = errors.New("must_be_on_top item is covered")
	// ErrFragileOverloaded is reported when a fragile item carries too much weight.
	ErrFragileOverloaded = errors.New("fragile item overloaded")
	// ErrRotated is reported when a no_rotate item is not in its declared orientation.
	ErrRotated = errors.New("no_rotate item rotated")
)

// RepairTopClearance demotes every must_be_on_top item that has cargo above its
// footprint. Items are examined in placement order against the set as it stands,
// so an earlier demotion can clear a later item. Placements are tracked by
// position, so repeated IDs are handled. Inputs are not modified.
func RepairTopClearance(placed []model.PlacedItem, unpacked []model.UnitItem) ([]model.PlacedItem, []model.UnitItem) {
	out := append([]model.UnitItem(nil), unpacked...)
	removed := make([]bool, len(placed))

	for i, top := range placed {
		if top.Item.Has(model.ConstraintMustBeOnTop) && covered(i, placed, removed) {
			removed[i] = true
			out = append(out, top.Item)
		}
	}

	kept := make([]model.PlacedItem, 0, len(placed))
	for i, p := range placed {
		if !removed[i] {
			kept = append(kept, p)
		}
	}
	return kept, out
}

func covered(idx int, placed []model.PlacedItem, removed []bool) bool {
	b := BoxOf(placed[idx])
	for i, other := range placed {
		if i != idx && (removed == nil || !removed[i]) && b.Above(BoxOf(other)) {
			return true
		}
	}
	return false
}

// Verify checks a packing result against the loading invariants and returns every
// violation joined into one error, or nil.
func Verify(r model.PackingResult, c model.ContainerSpec) error {
	var errs []error
	var weight float64

	for i, p := range r.Placed {
		b := BoxOf(p)
		weight += p.Item.Weight

		if !b.Within(c) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrOutOfBounds, p.Item.ID))
		}
		for _, q := range r.Placed[i+1:] {
			if b.Overlaps(BoxOf(q)) {
				errs = append(errs, fmt.Errorf("%w: %s and %s", ErrOverlap, p.Item.ID, q.Item.ID))
			}
		}
		if p.Item.Has(model.ConstraintMustBeOnTop) && covered(i, r.Placed, nil) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrTopCovered, p.Item.ID))
		}
		if p.Item.Has(model.ConstraintFragile) {
			if load := LoadAbove(b, others(r.Placed, i)); load > FragileLoadLimit {
				errs = append(errs, fmt.Errorf("%w: %s carries %.1f kg", ErrFragileOverloaded, p.Item.ID, load))
			}
		}
		if p.Item.Has(model.ConstraintNoRotate) {
			want := Rotations(p.Item.ItemSpec)[0]
			if p.Dimensions != want {
				errs = append(errs, fmt.Errorf("%w: %s", ErrRotated, p.Item.ID))
			}
		}
	}

	if weight > c.MaxWeight {
		errs = append(errs, fmt.Errorf("%w: %.1f > %.1f kg", ErrOverweight, weight, c.MaxWeight))
	}
	return errors.Join(errs...)
}

func others(placed []model.PlacedItem, skip int) []model.PlacedItem {
	out := make([]model.PlacedItem, 0, len(placed))
	out = append(out, placed[:skip]...)
	return append(out, placed[skip+1:]...)
}
