package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lorewright/internal/generator"
	"lorewright/internal/vectorstore"
)

// MockStore is a mock type for the generator.Store type
type MockStore struct {
	mock.Mock
}

// Add provides a mock function with given fields: ctx, collection, doc
func (_m *MockStore) Add(ctx context.Context, collection string, doc vectorstore.Document) error {
	ret := _m.Called(ctx, collection, doc)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, vectorstore.Document) error); ok {
		r0 = rf(ctx, collection, doc)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SearchSimilar provides a mock function with given fields: ctx, collection, query, k
func (_m *MockStore) SearchSimilar(ctx context.Context, collection string, query string, k int) ([]vectorstore.Match, error) {
	ret := _m.Called(ctx, collection, query, k)

	var r0 []vectorstore.Match
	if rf, ok := ret.Get(0).(func(context.Context, string, string, int) []vectorstore.Match); ok {
		r0 = rf(ctx, collection, query, k)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]vectorstore.Match)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string, int) error); ok {
		r1 = rf(ctx, collection, query, k)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, collection, id
func (_m *MockStore) GetByID(ctx context.Context, collection string, id string) (vectorstore.Document, error) {
	ret := _m.Called(ctx, collection, id)

	var r0 vectorstore.Document
	if rf, ok := ret.Get(0).(func(context.Context, string, string) vectorstore.Document); ok {
		r0 = rf(ctx, collection, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(vectorstore.Document)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, collection, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetAllWorlds provides a mock function with given fields: ctx
func (_m *MockStore) GetAllWorlds(ctx context.Context) ([]vectorstore.Document, error) {
	ret := _m.Called(ctx)

	var r0 []vectorstore.Document
	if rf, ok := ret.Get(0).(func(context.Context) []vectorstore.Document); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]vectorstore.Document)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockStore creates a new instance of MockStore. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockStore(t interface {
	mock.TestingT
	Helper()
}) *MockStore {
	m := &MockStore{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ generator.Store = (*MockStore)(nil)
