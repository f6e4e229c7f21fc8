package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lorewright/internal/llm"
)

// MockImageModel is a mock type for the llm.ImageModel type
type MockImageModel struct {
	mock.Mock
}

// GenerateImage provides a mock function with given fields: ctx, prompt
func (_m *MockImageModel) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	ret := _m.Called(ctx, prompt)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context, string) []byte); ok {
		r0 = rf(ctx, prompt)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, prompt)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockImageModel creates a new instance of MockImageModel. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockImageModel(t interface {
	mock.TestingT
	Helper()
}) *MockImageModel {
	m := &MockImageModel{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ llm.ImageModel = (*MockImageModel)(nil)
