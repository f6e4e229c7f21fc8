package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lorewright/internal/llm"
)

// MockChatModel is a mock type for the llm.ChatModel type
type MockChatModel struct {
	mock.Mock
}

// Complete provides a mock function with given fields: ctx, prompt
func (_m *MockChatModel) Complete(ctx context.Context, prompt string) (string, error) {
	ret := _m.Called(ctx, prompt)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, prompt)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
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

// NewMockChatModel creates a new instance of MockChatModel. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockChatModel(t interface {
	mock.TestingT
	Helper()
}) *MockChatModel {
	m := &MockChatModel{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ llm.ChatModel = (*MockChatModel)(nil)
