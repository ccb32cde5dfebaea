package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"curador/internal/model"
	"curador/internal/service"
	"curador/internal/storage"
)

type MockObjectService struct {
	mock.Mock
}

func (m *MockObjectService) Ingest(ctx context.Context, req service.IngestRequest) (*service.IngestResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.IngestResult), args.Error(1)
}

func (m *MockObjectService) Create(ctx context.Context, in model.ObjectCreate) (*model.Object, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Object), args.Error(1)
}

func (m *MockObjectService) List(ctx context.Context, f model.ObjectFilter, limit, offset int) ([]model.Object, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Object), args.Error(1)
}

func (m *MockObjectService) Get(ctx context.Context, id int64) (*model.Object, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Object), args.Error(1)
}

func (m *MockObjectService) Update(ctx context.Context, id int64, in model.ObjectUpdate) (*model.Object, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Object), args.Error(1)
}

func (m *MockObjectService) Delete(ctx context.Context, id int64) (*model.Object, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Object), args.Error(1)
}

func (m *MockObjectService) OpenImage(ctx context.Context, id int64) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
