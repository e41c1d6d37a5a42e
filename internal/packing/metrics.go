package packing

import "github.com/guttosm/cargo-service/internal/domain/model"

const cm3PerM3 = 1e6

// Recompute builds a PackingResult for the given placements, summing volume and
// weight from scratch. Zero capacities yield 0% utilization.
func Recompute(placed []model.PlacedItem, unpacked []model.UnitItem, c model.ContainerSpec) model.PackingResult {
	if placed == nil {
		placed = []model.PlacedItem{}
	}
	if unpacked == nil {
		unpacked = []model.UnitItem{}
	}

	var used, weight float64
	for _, p := range placed {
		used += p.Dimensions.Volume() / cm3PerM3
		weight += p.Item.Weight
	}

	r := model.PackingResult{
		Placed:      placed,
		Unpacked:    unpacked,
		TotalVolume: c.Volume(),
		UsedVolume:  used,
		TotalWeight: weight,
	}
	if r.TotalVolume > 0 {
		r.VolumeUtilization = used / r.TotalVolume * 100
	}
	if c.MaxWeight > 0 {
		r.WeightUtilization = weight / c.MaxWeight * 100
	}
	return r
}
