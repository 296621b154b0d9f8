package repository

import (
	"context"

	"uploader/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockImageRepository is a mock of repository.ImageRepository.
type MockImageRepository struct {
	mock.Mock
}

// NewMockImageRepository creates a mock whose expectations are asserted when the test ends.
func NewMockImageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageRepository {
	m := &MockImageRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockImageRepository) Create(ctx context.Context, image *entity.Image) error {
	args := m.Called(ctx, image)

	return args.Error(0)
}

func (m *MockImageRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	args := m.Called(ctx, id)
	image, _ := args.Get(0).(*entity.Image)

	return image, args.Error(1)
}

func (m *MockImageRepository) FindByUserID(ctx context.Context, userID uint64) ([]*entity.Image, error) {
	args := m.Called(ctx, userID)
	images, _ := args.Get(0).([]*entity.Image)

	return images, args.Error(1)
}
