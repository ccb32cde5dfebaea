package mocks

import (
	"context"

	"curador/internal/model"
	"curador/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockObjectRepository struct {
	mock.Mock
}

func (m *MockObjectRepository) Create(ctx context.Context, obj *model.Object) (*model.Object, error) {
	args := m.Called(ctx, obj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if f, ok := args.Get(0).(func(context.Context, *model.Object) *model.Object); ok {
		return f(ctx, obj), args.Error(1)
	}
	return args.Get(0).(*model.Object), args.Error(1)
}

func (m *MockObjectRepository) FindByID(ctx context.Context, id int64) (*model.Object, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Object), args.Error(1)
}

func (m *MockObjectRepository) List(ctx context.Context, f model.ObjectFilter, pq repository.PageQuery) ([]model.Object, error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Object), args.Error(1)
}

func (m *MockObjectRepository) Update(ctx context.Context, obj *model.Object) (*model.Object, error) {
	args := m.Called(ctx, obj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if f, ok := args.Get(0).(func(context.Context, *model.Object) *model.Object); ok {
		return f(ctx, obj), args.Error(1)
	}
	return args.Get(0).(*model.Object), args.Error(1)
}

func (m *MockObjectRepository) Delete(ctx context.Context, id int64) (*model.Object, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Object), args.Error(1)
}
