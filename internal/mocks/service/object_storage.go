package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockObjectStorage is a mock of service.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

// NewMockObjectStorage creates a mock whose expectations are asserted when the test ends.
func NewMockObjectStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockObjectStorage {
	m := &MockObjectStorage{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockObjectStorage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)

	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)

	return args.Error(0)
}
