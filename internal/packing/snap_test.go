package packing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

func placedAt(id string, pos model.Position, dims model.Dimensions) model.PlacedItem {
	return model.PlacedItem{Item: unit(id, 10, nil), Position: pos, Dimensions: dims}
}

func TestSnap(t *testing.T) {
	cubeDims := model.Dimensions{Width: 50, Height: 50, Depth: 50}
	neighbor := placedAt("n", model.Position{X: 200}, model.Dimensions{Width: 100, Height: 100, Depth: 100})

	tests := []struct {
		name      string
		pos       model.Position
		placed    []model.PlacedItem
		selfIndex int
		expected  model.SnapResult
	}{
		{
			name:     "near walls and floor",
			pos:      model.Position{X: 10, Y: 5, Z: 100},
			expected: model.SnapResult{Position: model.Position{X: 0, Y: 0, Z: 100}, SnappedX: true, SnappedY: true},
		},
		{
			name:     "far walls",
			pos:      model.Position{X: 530, Y: 120, Z: 180},
			expected: model.SnapResult{Position: model.Position{X: 539, Y: 120, Z: 185}, SnappedX: true, SnappedZ: true},
		},
		{
			name:      "adjacent, flush and stacked on neighbor",
			pos:       model.Position{X: 305, Y: 108, Z: 60},
			placed:    []model.PlacedItem{neighbor, placedAt("self", model.Position{}, cubeDims)},
			selfIndex: 1,
			expected: model.SnapResult{
				Position: model.Position{X: 300, Y: 100, Z: 50},
				SnappedX: true, SnappedY: true, SnappedZ: true,
			},
		},
		{
			name:      "right face to neighbor left face",
			pos:       model.Position{X: 140, Y: 60, Z: 150},
			placed:    []model.PlacedItem{neighbor},
			selfIndex: -1,
			expected:  model.SnapResult{Position: model.Position{X: 150, Y: 60, Z: 150}, SnappedX: true},
		},
		{
			name:      "top face under neighbor bottom",
			pos:       model.Position{X: 400, Y: 40, Z: 150},
			placed:    []model.PlacedItem{placedAt("shelf", model.Position{X: 400, Y: 100, Z: 150}, cubeDims)},
			selfIndex: -1,
			expected: model.SnapResult{
				Position: model.Position{X: 400, Y: 50, Z: 150},
				SnappedX: true, SnappedY: true, SnappedZ: true,
			},
		},
		{
			name:      "self is ignored",
			pos:       model.Position{X: 200, Y: 100, Z: 100},
			placed:    []model.PlacedItem{placedAt("self", model.Position{X: 200, Y: 100, Z: 100}, cubeDims)},
			selfIndex: 0,
			expected:  model.SnapResult{Position: model.Position{X: 200, Y: 100, Z: 100}},
		},
		{
			name:      "overlap is flagged, not resolved",
			pos:       model.Position{X: 230, Y: 40, Z: 30},
			placed:    []model.PlacedItem{neighbor},
			selfIndex: -1,
			expected:  model.SnapResult{Position: model.Position{X: 230, Y: 40, Z: 30}, Overlaps: true},
		},
		{
			name:      "overlap with self is ignored",
			pos:       model.Position{X: 230, Y: 40, Z: 30},
			placed:    []model.PlacedItem{placedAt("self", model.Position{X: 230, Y: 40, Z: 30}, cubeDims)},
			selfIndex: 0,
			expected:  model.SnapResult{Position: model.Position{X: 230, Y: 40, Z: 30}},
		},
		{
			name:     "clamped into container",
			pos:      model.Position{X: -100, Y: 500, Z: 1000},
			expected: model.SnapResult{Position: model.Position{X: 0, Y: 189, Z: 185}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snap(tt.pos, cubeDims, twentyFoot, tt.placed, tt.selfIndex)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSnap_FirstNeighborWins(t *testing.T) {
	dims := model.Dimensions{Width: 50, Height: 50, Depth: 50}
	placed := []model.PlacedItem{
		placedAt("a", model.Position{X: 100, Y: 0, Z: 100}, model.Dimensions{Width: 100, Height: 60, Depth: 100}),
		placedAt("b", model.Position{X: 104, Y: 0, Z: 100}, model.Dimensions{Width: 100, Height: 64, Depth: 100}),
	}

	got := Snap(model.Position{X: 210, Y: 70, Z: 120}, dims, twentyFoot, placed, -1)

	assert.Equal(t, 200.0, got.X)
	assert.Equal(t, 60.0, got.Y)
}

func TestSnap_StaysInsideContainer(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	placed := []model.PlacedItem{
		placedAt("a", model.Position{X: 100}, model.Dimensions{Width: 120, Height: 80, Depth: 90}),
		placedAt("b", model.Position{X: 400, Z: 100}, model.Dimensions{Width: 60, Height: 200, Depth: 60}),
	}

	for i := 0; i < 500; i++ {
		dims := model.Dimensions{
			Width:  float64(10 + rng.Intn(200)),
			Height: float64(10 + rng.Intn(200)),
			Depth:  float64(10 + rng.Intn(200)),
		}
		pos := model.Position{
			X: rng.Float64()*1000 - 200,
			Y: rng.Float64()*600 - 200,
			Z: rng.Float64()*600 - 200,
		}

		got := Snap(pos, dims, twentyFoot, placed, -1)

		assert.True(t, BoxAt(got.Position, dims).Within(twentyFoot), "pos %+v dims %+v -> %+v", pos, dims, got)
	}
}
