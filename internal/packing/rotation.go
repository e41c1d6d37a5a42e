package packing

import "github.com/guttosm/cargo-service/internal/domain/model"

// permutations maps (length, width, height) indices onto (x, y, z).
// The first entry is the declared orientation.
var permutations = [6][3]int{
	{0, 2, 1},
	{1, 2, 0},
	{0, 1, 2},
	{2, 1, 0},
	{1, 0, 2},
	{2, 0, 1},
}

// Rotations returns the distinct axis-aligned orientations admissible for spec.
func Rotations(spec model.ItemSpec) []model.Dimensions {
	src := [3]float64{spec.Length, spec.Width, spec.Height}
	if spec.Has(model.ConstraintNoRotate) {
		return []model.Dimensions{orient(src, permutations[0])}
	}

	out := make([]model.Dimensions, 0, len(permutations))
	for _, perm := range permutations {
		d := orient(src, perm)
		dup := false
		for _, seen := range out {
			if seen == d {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, d)
		}
	}
	return out
}

func orient(src [3]float64, perm [3]int) model.Dimensions {
	return model.Dimensions{Width: src[perm[0]], Height: src[perm[1]], Depth: src[perm[2]]}
}
