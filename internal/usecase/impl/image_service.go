package impl

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"uploader/config"
	deliverycontext "uploader/internal/delivery/context"
	"uploader/internal/domain/entity"
	domainerrors "uploader/internal/domain/errors"
	"uploader/internal/domain/repository"
	"uploader/internal/domain/service"
	"uploader/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bytesPerMegabyte uses the decimal definition for reported file sizes.
const bytesPerMegabyte = 1000 * 1000

// imageService implements the ImageUsecase interface.
type imageService struct {
	imageRepo     repository.ImageRepository
	storage       service.ObjectStorage
	maxUploadSize int64
	keyPrefix     string
	clock         func() time.Time
	logger        *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	ImageRepo repository.ImageRepository
	Storage   service.ObjectStorage
	Config    *config.Config
	Logger    *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	return &imageService{
		imageRepo:     params.ImageRepo,
		storage:       params.Storage,
		maxUploadSize: params.Config.Storage.MaxUploadSize,
		keyPrefix:     strings.Trim(params.Config.Storage.KeyPrefix, "/"),
		clock:         time.Now,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Upload stores the file first and records metadata second. If the metadata
// write fails the stored object is removed again.
func (srv *imageService) Upload(ctx context.Context, owner *entity.User, input usecase.UploadImageInput) (*entity.Image, error) {
	if input.Body == nil || input.Size <= 0 {
		return nil, domainerrors.ErrFileRequired
	}
	if input.Size > srv.maxUploadSize {
		return nil, domainerrors.ErrFileTooLarge
	}

	imageID := uuid.New()
	key := srv.objectKey(owner.UUID, imageID, input.Filename)

	url, err := srv.storage.Put(ctx, key, input.ContentType, input.Body)
	if err != nil {
		srv.log(ctx).Error("Failed to store image", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	ownerID := owner.ID
	image := &entity.Image{
		UUID:       imageID,
		Filename:   path.Base(filepath.ToSlash(input.Filename)),
		FileSize:   float64(input.Size) / bytesPerMegabyte,
		URL:        url,
		UserID:     &ownerID,
		UploadTime: srv.clock().UTC(),
	}
	if err := srv.imageRepo.Create(ctx, image); err != nil {
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Error("Failed to remove orphaned image", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to record image")
	}
	srv.log(ctx).Info("Image uploaded", slog.Any("image_uuid", image.UUID), slog.Int64("size", input.Size))

	return image, nil
}

// Preview returns metadata for any image by public identifier.
func (srv *imageService) Preview(ctx context.Context, imageID uuid.UUID) (*entity.Image, error) {
	image, err := srv.imageRepo.FindByUUID(ctx, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return nil, domainerrors.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find image")
	}

	return image, nil
}

// ListByUser returns the owner's images, newest first.
func (srv *imageService) ListByUser(ctx context.Context, owner *entity.User) ([]*entity.Image, error) {
	images, err := srv.imageRepo.FindByUserID(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list images")
	}

	return images, nil
}

// objectKey is <prefix>/<owner uuid>/<image uuid><ext>. The client filename
// only contributes its extension.
func (srv *imageService) objectKey(ownerID, imageID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filepath.ToSlash(filename))))
	name := ownerID.String() + "/" + imageID.String() + ext
	if srv.keyPrefix == "" {
		return name
	}

	return srv.keyPrefix + "/" + name
}
