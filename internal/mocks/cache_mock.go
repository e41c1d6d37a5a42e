// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

// MockCache is a testify mock of cache.Cache.
type MockCache struct {
	mock.Mock
}

// NewMockCache creates a MockCache whose expectations are asserted on test cleanup.
func NewMockCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCache {
	m := &MockCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCache) Get(key string) (model.PackingResult, bool) {
	args := m.Called(key)
	return args.Get(0).(model.PackingResult), args.Bool(1)
}

func (m *MockCache) Set(key string, value model.PackingResult) {
	m.Called(key, value)
}

func (m *MockCache) Invalidate(key string) {
	m.Called(key)
}

func (m *MockCache) Clear() {
	m.Called()
}

func (m *MockCache) Stop() {
	m.Called()
}
