// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/cargo-service/internal/repository"
)

type MockManifestsRepositoryInterface struct {
	mock.Mock
}

func (m *MockManifestsRepositoryInterface) Create(ctx context.Context, doc *repository.ManifestDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockManifestsRepositoryInterface) Get(ctx context.Context, id primitive.ObjectID) (*repository.ManifestDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ManifestDocument), args.Error(1)
}

func (m *MockManifestsRepositoryInterface) List(ctx context.Context, limit int) ([]repository.ManifestDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ManifestDocument), args.Error(1)
}

func (m *MockManifestsRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
