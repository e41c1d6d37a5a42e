// Code generated manually. DO NOT EDIT.

package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/cargo-service/internal/domain/dto"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(subject string, scopes []string, ttl time.Duration) (*dto.TokenResponse, error) {
	args := m.Called(subject, scopes, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*dto.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}
