package postgres

import (
	"context"

	"uploader/internal/domain/entity"
	domainerrors "uploader/internal/domain/errors"
	"uploader/internal/domain/repository"
	"uploader/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

// Create persists image metadata after the file is already in the bucket.
func (repo *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	imageM := fromImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("image owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create image")
	}

	image.ID = imageM.ID

	return nil
}

// FindByUUID retrieves image metadata by its public identifier.
func (repo *imageRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	var imageM model.ImageModel
	err := repo.db.WithContext(ctx).
		Where("uuid = ?", id).
		Take(&imageM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find image by uuid")
	}

	return toImageDomain(&imageM), nil
}

// FindByUserID lists a user's images, newest first.
func (repo *imageRepository) FindByUserID(ctx context.Context, userID uint64) ([]*entity.Image, error) {
	var imageMs []*model.ImageModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("upload_time DESC").
		Find(&imageMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list images")
	}

	images := make([]*entity.Image, 0, len(imageMs))
	for _, imageM := range imageMs {
		images = append(images, toImageDomain(imageM))
	}

	return images, nil
}

func toImageDomain(data *model.ImageModel) *entity.Image {
	return &entity.Image{
		ID:         data.ID,
		UUID:       data.UUID,
		Filename:   data.Filename,
		FileSize:   data.FileSize,
		URL:        data.URL,
		UserID:     data.UserID,
		UploadTime: data.UploadTime,
	}
}

func fromImageDomain(data *entity.Image) *model.ImageModel {
	return &model.ImageModel{
		ID:         data.ID,
		UUID:       data.UUID,
		Filename:   data.Filename,
		FileSize:   data.FileSize,
		URL:        data.URL,
		UserID:     data.UserID,
		UploadTime: data.UploadTime,
	}
}
