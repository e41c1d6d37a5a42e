// Package packing implements the greedy best-fit 3D container loading engine.
//
// All entry points are pure: they read their arguments and return fresh values.
// Container axes are x along length, y along height and z along width, with the
// origin at the near-bottom-left corner.
package packing

import "github.com/guttosm/cargo-service/internal/domain/model"

// FragileLoadLimit is the maximum combined weight (kg) allowed above a fragile item.
const FragileLoadLimit = 20.0

type candidate struct {
	space Box
	dims  model.Dimensions
}

type packer struct {
	container model.ContainerSpec
	spaces    *FreeSpace
	placed    []model.PlacedItem
	unpacked  []model.UnitItem
	weight    float64
}

// Pack places items into the container and reports what did not fit.
// Identical input always yields an identical result.
func Pack(items []model.ItemSpec, container model.ContainerSpec) model.PackingResult {
	units := Order(items)
	p := &packer{
		container: container,
		spaces:    NewFreeSpace(container),
		placed:    make([]model.PlacedItem, 0, len(units)),
		unpacked:  make([]model.UnitItem, 0),
	}

	for _, u := range units {
		p.place(u)
	}

	placed, unpacked := RepairTopClearance(p.placed, p.unpacked)
	return Recompute(placed, unpacked, container)
}

func (p *packer) place(u model.UnitItem) {
	if p.weight+u.Weight > p.container.MaxWeight {
		p.unpacked = append(p.unpacked, u)
		return
	}

	best, ok := p.search(u)
	if !ok {
		p.unpacked = append(p.unpacked, u)
		return
	}

	pos := model.Position{X: best.space.X, Y: best.space.Y, Z: best.space.Z}
	p.placed = append(p.placed, model.PlacedItem{Item: u, Position: pos, Dimensions: best.dims})
	p.weight += u.Weight
	p.spaces.Split(BoxAt(pos, best.dims))
}

// search picks the admissible (space, rotation) pair in the smallest free space.
// The first pair in space order wins ties.
func (p *packer) search(u model.UnitItem) (candidate, bool) {
	rotations := Rotations(u.ItemSpec)
	fragile := u.Has(model.ConstraintFragile)

	var best candidate
	found := false
	for _, space := range p.spaces.Boxes() {
		if found && space.Volume() >= best.space.Volume() {
			continue
		}
		for _, dims := range rotations {
			if !space.Fits(dims) {
				continue
			}
			footprint := Box{X: space.X, Y: space.Y, Z: space.Z, Width: dims.Width, Height: dims.Height, Depth: dims.Depth}
			if fragile && LoadAbove(footprint, p.placed) > FragileLoadLimit {
				continue
			}
			if overloadsFragile(footprint, u.Weight, p.placed) {
				continue
			}
			best = candidate{space: space, dims: dims}
			found = true
			break
		}
	}
	return best, found
}

// LoadAbove sums the weight of placed items at or above b's top face within its footprint.
func LoadAbove(b Box, placed []model.PlacedItem) float64 {
	var load float64
	for _, other := range placed {
		if b.Above(BoxOf(other)) {
			load += other.Item.Weight
		}
	}
	return load
}

// overloadsFragile reports whether putting weight at b would push any fragile
// item beneath it past the load limit.
func overloadsFragile(b Box, weight float64, placed []model.PlacedItem) bool {
	for _, below := range placed {
		if !below.Item.Has(model.ConstraintFragile) {
			continue
		}
		under := BoxOf(below)
		if !under.Above(b) {
			continue
		}
		if LoadAbove(under, placed)+weight > FragileLoadLimit {
			return true
		}
	}
	return false
}
