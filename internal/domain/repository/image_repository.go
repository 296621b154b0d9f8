package repository

import (
	"context"
	"errors"

	"uploader/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrImageNotFound is returned when no image matches the lookup.
var ErrImageNotFound = errors.New("image not found")

// ImageRepository persists uploaded image metadata.
type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
	FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Image, error)
	FindByUserID(ctx context.Context, userID uint64) ([]*entity.Image, error)
}
