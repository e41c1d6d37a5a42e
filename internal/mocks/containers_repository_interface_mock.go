// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/repository"
)

type MockContainersRepositoryInterface struct {
	mock.Mock
}

func (m *MockContainersRepositoryInterface) Get(ctx context.Context, id string) (*repository.ContainerDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ContainerDocument), args.Error(1)
}

func (m *MockContainersRepositoryInterface) List(ctx context.Context) ([]repository.ContainerDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ContainerDocument), args.Error(1)
}

func (m *MockContainersRepositoryInterface) Upsert(ctx context.Context, spec model.ContainerSpec, updatedBy string) (*repository.ContainerDocument, error) {
	args := m.Called(ctx, spec, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ContainerDocument), args.Error(1)
}

func (m *MockContainersRepositoryInterface) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
