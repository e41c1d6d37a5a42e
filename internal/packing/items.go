package packing

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

const (
	bottomPriority      = 1000
	heavyBottomPriority = 500

	maxPrealloc = 1 << 16
)

// Expand turns each spec of quantity N into N unit items with IDs "{id}-{i}".
func Expand(specs []model.ItemSpec) []model.UnitItem {
	units := make([]model.UnitItem, 0, capacityHint(specs))
	for _, s := range specs {
		for i := 0; i < s.Quantity; i++ {
			unit := s
			unit.ID = fmt.Sprintf("%s-%d", s.ID, i)
			unit.Quantity = 1
			unit.Constraints = slices.Clone(s.Constraints)
			units = append(units, model.UnitItem{ItemSpec: unit, BaseID: s.ID, Index: i})
		}
	}
	return units
}

// capacityHint sums the quantities without overflowing, capped at maxPrealloc.
func capacityHint(specs []model.ItemSpec) int {
	total := 0
	for _, s := range specs {
		q := max(s.Quantity, 0)
		if q > math.MaxInt-total {
			return maxPrealloc
		}
		total += q
	}
	return min(total, maxPrealloc)
}

// Priority scores a unit for loading order. Higher loads first.
func Priority(u model.UnitItem) float64 {
	p := u.Weight
	if u.Has(model.ConstraintMustBeOnBottom) {
		p += bottomPriority
	}
	if u.Has(model.ConstraintHeavyBottom) {
		p += heavyBottomPriority
	}
	return p
}

// Order expands specs and sorts the units by priority, then volume, both descending.
// Remaining ties keep expansion order.
func Order(specs []model.ItemSpec) []model.UnitItem {
	units := Expand(specs)
	slices.SortStableFunc(units, func(a, b model.UnitItem) int {
		if c := cmp.Compare(Priority(b), Priority(a)); c != 0 {
			return c
		}
		return cmp.Compare(b.Volume(), a.Volume())
	})
	return units
}
