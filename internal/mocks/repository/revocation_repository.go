package repository

import (
	"context"
	"time"

	"uploader/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockRevocationRepository is a mock of repository.RevocationRepository.
type MockRevocationRepository struct {
	mock.Mock
}

// NewMockRevocationRepository creates a mock whose expectations are asserted when the test ends.
func NewMockRevocationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRevocationRepository {
	m := &MockRevocationRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRevocationRepository) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

func (m *MockRevocationRepository) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	args := m.Called(ctx, tokenHash)

	return args.Bool(0), args.Error(1)
}

func (m *MockRevocationRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	deleted, _ := args.Get(0).(int64)

	return deleted, args.Error(1)
}
