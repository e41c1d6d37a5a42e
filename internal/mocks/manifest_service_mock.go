// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/repository"
)

type MockManifestService struct {
	mock.Mock
}

func (m *MockManifestService) Save(ctx context.Context, name, containerID string, items []model.ItemSpec, by string) (*repository.ManifestDocument, error) {
	args := m.Called(ctx, name, containerID, items, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ManifestDocument), args.Error(1)
}

func (m *MockManifestService) Get(ctx context.Context, id string) (*repository.ManifestDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ManifestDocument), args.Error(1)
}

func (m *MockManifestService) List(ctx context.Context, limit int) ([]repository.ManifestDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ManifestDocument), args.Error(1)
}

func (m *MockManifestService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
