package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClassifier is a testify mock for vision.Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, image []byte, mimeType string) (string, error) {
	args := m.Called(ctx, image, mimeType)
	return args.String(0), args.Error(1)
}

func (m *MockClassifier) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClassifier) Model() string {
	args := m.Called()
	return args.String(0)
}
