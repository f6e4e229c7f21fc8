package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lorewright/internal/model"
	"lorewright/internal/service"
)

// MockAuthService is a mock type for the service.AuthService type
type MockAuthService struct {
	mock.Mock
}

// Register provides a mock function with given fields: ctx, creation
func (_m *MockAuthService) Register(ctx context.Context, creation model.UserCreation) (*model.User, error) {
	ret := _m.Called(ctx, creation)

	var r0 *model.User
	if rf, ok := ret.Get(0).(func(context.Context, model.UserCreation) *model.User); ok {
		r0 = rf(ctx, creation)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.User)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.UserCreation) error); ok {
		r1 = rf(ctx, creation)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Login provides a mock function with given fields: ctx, username, password
func (_m *MockAuthService) Login(ctx context.Context, username string, password string) (*model.UserToken, error) {
	ret := _m.Called(ctx, username, password)

	var r0 *model.UserToken
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *model.UserToken); ok {
		r0 = rf(ctx, username, password)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.UserToken)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, username, password)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// VerifyAccessToken provides a mock function with given fields: ctx, tokenString
func (_m *MockAuthService) VerifyAccessToken(ctx context.Context, tokenString string) (*service.Claims, error) {
	ret := _m.Called(ctx, tokenString)

	var r0 *service.Claims
	if rf, ok := ret.Get(0).(func(context.Context, string) *service.Claims); ok {
		r0 = rf(ctx, tokenString)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.Claims)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, tokenString)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Signout provides a mock function with given fields: ctx, accessUUID
func (_m *MockAuthService) Signout(ctx context.Context, accessUUID string) error {
	ret := _m.Called(ctx, accessUUID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, accessUUID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Me provides a mock function with given fields: ctx, claims
func (_m *MockAuthService) Me(ctx context.Context, claims *service.Claims) (*model.User, error) {
	ret := _m.Called(ctx, claims)

	var r0 *model.User
	if rf, ok := ret.Get(0).(func(context.Context, *service.Claims) *model.User); ok {
		r0 = rf(ctx, claims)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.User)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *service.Claims) error); ok {
		r1 = rf(ctx, claims)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockAuthService creates a new instance of MockAuthService. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockAuthService(t interface {
	mock.TestingT
	Helper()
}) *MockAuthService {
	m := &MockAuthService{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.AuthService = (*MockAuthService)(nil)
