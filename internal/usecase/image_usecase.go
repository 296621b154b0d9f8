package usecase

import (
	"context"
	"io"

	"uploader/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadImageInput describes a file received from a client.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageUsecase stores images for authenticated users and serves their metadata.
type ImageUsecase interface {
	Upload(ctx context.Context, owner *entity.User, input UploadImageInput) (*entity.Image, error)
	Preview(ctx context.Context, imageID uuid.UUID) (*entity.Image, error)
	ListByUser(ctx context.Context, owner *entity.User) ([]*entity.Image, error)
}
