package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lorewright/internal/handler"
	"lorewright/internal/model"
)

// MockCharacterGenerator is a mock type for the handler.CharacterGenerator type
type MockCharacterGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, creation
func (_m *MockCharacterGenerator) Generate(ctx context.Context, creation model.CharacterCreation) (model.Character, error) {
	ret := _m.Called(ctx, creation)

	var r0 model.Character
	if rf, ok := ret.Get(0).(func(context.Context, model.CharacterCreation) model.Character); ok {
		r0 = rf(ctx, creation)
	} else {
		r0 = ret.Get(0).(model.Character)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.CharacterCreation) error); ok {
		r1 = rf(ctx, creation)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockCharacterGenerator creates a new instance of MockCharacterGenerator. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockCharacterGenerator(t interface {
	mock.TestingT
	Helper()
}) *MockCharacterGenerator {
	m := &MockCharacterGenerator{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

// MockWorldGenerator is a mock type for the handler.WorldGenerator type
type MockWorldGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, creation
func (_m *MockWorldGenerator) Generate(ctx context.Context, creation model.WorldCreation) (model.World, error) {
	ret := _m.Called(ctx, creation)

	var r0 model.World
	if rf, ok := ret.Get(0).(func(context.Context, model.WorldCreation) model.World); ok {
		r0 = rf(ctx, creation)
	} else {
		r0 = ret.Get(0).(model.World)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.WorldCreation) error); ok {
		r1 = rf(ctx, creation)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockWorldGenerator creates a new instance of MockWorldGenerator. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockWorldGenerator(t interface {
	mock.TestingT
	Helper()
}) *MockWorldGenerator {
	m := &MockWorldGenerator{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

// MockCampaignGenerator is a mock type for the handler.CampaignGenerator type
type MockCampaignGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, creation
func (_m *MockCampaignGenerator) Generate(ctx context.Context, creation model.CampaignCreation) (model.Campaign, error) {
	ret := _m.Called(ctx, creation)

	var r0 model.Campaign
	if rf, ok := ret.Get(0).(func(context.Context, model.CampaignCreation) model.Campaign); ok {
		r0 = rf(ctx, creation)
	} else {
		r0 = ret.Get(0).(model.Campaign)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.CampaignCreation) error); ok {
		r1 = rf(ctx, creation)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockCampaignGenerator creates a new instance of MockCampaignGenerator. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockCampaignGenerator(t interface {
	mock.TestingT
	Helper()
}) *MockCampaignGenerator {
	m := &MockCampaignGenerator{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var (
	_ handler.CharacterGenerator = (*MockCharacterGenerator)(nil)
	_ handler.WorldGenerator     = (*MockWorldGenerator)(nil)
	_ handler.CampaignGenerator  = (*MockCampaignGenerator)(nil)
)
