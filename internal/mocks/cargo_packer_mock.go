// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

type MockCargoPacker struct {
	mock.Mock
}

func (m *MockCargoPacker) Pack(items []model.ItemSpec, container model.ContainerSpec) (model.PackingResult, error) {
	args := m.Called(items, container)
	return args.Get(0).(model.PackingResult), args.Error(1)
}

func (m *MockCargoPacker) Snap(pos model.Position, dims model.Dimensions, container model.ContainerSpec, placed []model.PlacedItem, selfIndex int) model.SnapResult {
	args := m.Called(pos, dims, container, placed, selfIndex)
	return args.Get(0).(model.SnapResult)
}

func (m *MockCargoPacker) Reposition(current model.PackingResult, container model.ContainerSpec, index int, pos model.Position, snap bool) (model.PackingResult, error) {
	args := m.Called(current, container, index, pos, snap)
	return args.Get(0).(model.PackingResult), args.Error(1)
}

func (m *MockCargoPacker) AddPlaced(current model.PackingResult, container model.ContainerSpec, item model.PlacedItem) model.PackingResult {
	args := m.Called(current, container, item)
	return args.Get(0).(model.PackingResult)
}

func (m *MockCargoPacker) RemovePlaced(current model.PackingResult, container model.ContainerSpec, index int) (model.PackingResult, model.UnitItem, error) {
	args := m.Called(current, container, index)
	return args.Get(0).(model.PackingResult), args.Get(1).(model.UnitItem), args.Error(2)
}

func (m *MockCargoPacker) InvalidateCache() {
	m.Called()
}
