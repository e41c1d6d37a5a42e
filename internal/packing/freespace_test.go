package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

func TestNewFreeSpace(t *testing.T) {
	f := NewFreeSpace(twentyFoot)

	require.Equal(t, 1, f.Len())
	assert.Equal(t, Box{Width: 589, Height: 239, Depth: 235}, f.Boxes()[0])
}

func TestFreeSpace_SplitFiveResiduals(t *testing.T) {
	f := NewFreeSpace(cube(100, 100, 100))

	f.Split(Box{X: 10, Y: 0, Z: 10, Width: 20, Height: 30, Depth: 40})

	assert.Equal(t, []Box{
		{X: 0, Y: 0, Z: 0, Width: 10, Height: 100, Depth: 100},
		{X: 0, Y: 0, Z: 0, Width: 100, Height: 100, Depth: 10},
		{X: 30, Y: 0, Z: 0, Width: 70, Height: 100, Depth: 100},
		{X: 0, Y: 0, Z: 50, Width: 100, Height: 100, Depth: 50},
		{X: 0, Y: 30, Z: 0, Width: 100, Height: 70, Depth: 100},
	}, f.Boxes())
}

func TestFreeSpace_SplitAtOrigin(t *testing.T) {
	f := NewFreeSpace(cube(100, 100, 100))

	f.Split(Box{Width: 40, Height: 50, Depth: 60})

	assert.Equal(t, []Box{
		{X: 40, Y: 0, Z: 0, Width: 60, Height: 100, Depth: 100},
		{X: 0, Y: 0, Z: 60, Width: 100, Height: 100, Depth: 40},
		{X: 0, Y: 50, Z: 0, Width: 100, Height: 50, Depth: 100},
	}, f.Boxes())
}

func TestFreeSpace_DropsUndersizedResiduals(t *testing.T) {
	tests := []struct {
		name     string
		occupied Box
		expected int
	}{
		{name: "sliver below minimum dropped", occupied: Box{Width: 97, Height: 100, Depth: 100}, expected: 0},
		{name: "residual at minimum kept", occupied: Box{Width: 95, Height: 100, Depth: 100}, expected: 1},
		{name: "full container leaves nothing", occupied: Box{Width: 100, Height: 100, Depth: 100}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFreeSpace(cube(100, 100, 100))
			f.Split(tt.occupied)
			assert.Equal(t, tt.expected, f.Len())
		})
	}
}

func TestFreeSpace_KeepsDisjointSpaces(t *testing.T) {
	f := NewFreeSpace(cube(100, 100, 100))
	f.Split(Box{Width: 50, Height: 100, Depth: 100})
	require.Equal(t, []Box{{X: 50, Width: 50, Height: 100, Depth: 100}}, f.Boxes())

	f.Split(Box{Width: 10, Height: 10, Depth: 10})

	assert.Equal(t, []Box{{X: 50, Width: 50, Height: 100, Depth: 100}}, f.Boxes())
}

func TestFreeSpace_ResidualsAvoidOccupied(t *testing.T) {
	c := model.ContainerSpec{Length: 300, Width: 200, Height: 150}
	f := NewFreeSpace(c)
	occupied := []Box{
		{Width: 100, Height: 50, Depth: 80},
		{X: 100, Width: 60, Height: 70, Depth: 200},
		{Y: 50, Width: 100, Height: 40, Depth: 80},
	}

	for _, o := range occupied {
		f.Split(o)
	}

	for _, s := range f.Boxes() {
		assert.True(t, s.Within(c), "%+v", s)
		for _, o := range occupied {
			assert.False(t, s.Overlaps(o), "%+v overlaps %+v", s, o)
		}
	}
}
