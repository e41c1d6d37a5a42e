// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

type MockContainerService struct {
	mock.Mock
}

func (m *MockContainerService) List(ctx context.Context) ([]model.ContainerSpec, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContainerSpec), args.Error(1)
}

func (m *MockContainerService) Get(ctx context.Context, id string) (model.ContainerSpec, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.ContainerSpec), args.Error(1)
}

func (m *MockContainerService) Resolve(ctx context.Context, id string, inline *model.ContainerSpec) (model.ContainerSpec, error) {
	args := m.Called(ctx, id, inline)
	return args.Get(0).(model.ContainerSpec), args.Error(1)
}

func (m *MockContainerService) Create(ctx context.Context, spec model.ContainerSpec, by string) (model.ContainerSpec, error) {
	args := m.Called(ctx, spec, by)
	return args.Get(0).(model.ContainerSpec), args.Error(1)
}

func (m *MockContainerService) Upsert(ctx context.Context, spec model.ContainerSpec, by string) (model.ContainerSpec, error) {
	args := m.Called(ctx, spec, by)
	return args.Get(0).(model.ContainerSpec), args.Error(1)
}

func (m *MockContainerService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContainerService) DefaultID() string {
	args := m.Called()
	return args.String(0)
}
