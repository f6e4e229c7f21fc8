package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lorewright/internal/repository"
)

// MockTokenRepository is a mock type for the repository.TokenRepository type
type MockTokenRepository struct {
	mock.Mock
}

// SetToken provides a mock function with given fields: ctx, userID, accessUUID, ttl
func (_m *MockTokenRepository) SetToken(ctx context.Context, userID uuid.UUID, accessUUID string, ttl time.Duration) error {
	ret := _m.Called(ctx, userID, accessUUID, ttl)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string, time.Duration) error); ok {
		r0 = rf(ctx, userID, accessUUID, ttl)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetUserIDByAccessUUID provides a mock function with given fields: ctx, accessUUID
func (_m *MockTokenRepository) GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error) {
	ret := _m.Called(ctx, accessUUID)

	var r0 uuid.UUID
	if rf, ok := ret.Get(0).(func(context.Context, string) uuid.UUID); ok {
		r0 = rf(ctx, accessUUID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(uuid.UUID)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, accessUUID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteToken provides a mock function with given fields: ctx, accessUUID
func (_m *MockTokenRepository) DeleteToken(ctx context.Context, accessUUID string) error {
	ret := _m.Called(ctx, accessUUID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, accessUUID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockTokenRepository creates a new instance of MockTokenRepository. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockTokenRepository(t interface {
	mock.TestingT
	Helper()
}) *MockTokenRepository {
	m := &MockTokenRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.TokenRepository = (*MockTokenRepository)(nil)
