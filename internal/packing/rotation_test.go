package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

func TestRotations(t *testing.T) {
	tests := []struct {
		name     string
		spec     model.ItemSpec
		expected []model.Dimensions
	}{
		{
			name: "distinct dimensions give six orientations",
			spec: model.ItemSpec{Length: 10, Width: 20, Height: 30},
			expected: []model.Dimensions{
				{Width: 10, Height: 30, Depth: 20},
				{Width: 20, Height: 30, Depth: 10},
				{Width: 10, Height: 20, Depth: 30},
				{Width: 30, Height: 20, Depth: 10},
				{Width: 20, Height: 10, Depth: 30},
				{Width: 30, Height: 10, Depth: 20},
			},
		},
		{
			name:     "cube collapses to one",
			spec:     model.ItemSpec{Length: 50, Width: 50, Height: 50},
			expected: []model.Dimensions{{Width: 50, Height: 50, Depth: 50}},
		},
		{
			name: "two equal sides give three",
			spec: model.ItemSpec{Length: 40, Width: 40, Height: 10},
			expected: []model.Dimensions{
				{Width: 40, Height: 10, Depth: 40},
				{Width: 40, Height: 40, Depth: 10},
				{Width: 10, Height: 40, Depth: 40},
			},
		},
		{
			name: "no_rotate keeps declared orientation",
			spec: model.ItemSpec{Length: 10, Width: 20, Height: 30,
				Constraints: []model.Constraint{model.ConstraintNoRotate}},
			expected: []model.Dimensions{{Width: 10, Height: 30, Depth: 20}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Rotations(tt.spec))
		})
	}
}
