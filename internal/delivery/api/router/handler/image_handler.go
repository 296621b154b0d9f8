package handler

import (
	"log/slog"
	"net/http"
	"time"

	"uploader/internal/delivery/api/response"
	deliverycontext "uploader/internal/delivery/context"
	"uploader/internal/domain/entity"
	domainerrors "uploader/internal/domain/errors"
	"uploader/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const uploadFormField = "file"

// ImageResponse describes one stored image.
type ImageResponse struct {
	ImageUUID  string  `json:"image_uuid,omitempty"`
	ImageURL   string  `json:"image_url"`
	Filename   string  `json:"filename"`
	FileSize   float64 `json:"file_size"`
	UploadTime string  `json:"upload_time"`
}

// ImageListResponse is returned by GET /images/.
type ImageListResponse struct {
	Images []ImageResponse `json:"images"`
}

// ImageHandler serves image upload and metadata endpoints.
type ImageHandler struct {
	imageUsecase usecase.ImageUsecase
	logger       *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(imageUsecase usecase.ImageUsecase, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		imageUsecase: imageUsecase,
		logger:       logger,
	}
}

// Upload stores the multipart "file" field for the authenticated user.
func (h *ImageHandler) Upload(c echo.Context) error {
	user, err := deliverycontext.CurrentUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return errors.WithStack(domainerrors.ErrFileRequired)
		}

		return errors.Wrap(domainerrors.ErrFileRequired, err.Error())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(domainerrors.ErrFileRequired, err.Error())
	}
	defer file.Close()

	image, err := h.imageUsecase.Upload(c.Request().Context(), user, usecase.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toImageResponse(image))
}

// Preview returns metadata of a single image. It is public; an unknown or
// malformed id is reported the same way.
func (h *ImageHandler) Preview(c echo.Context) error {
	imageID, err := uuid.Parse(c.Param("image_uuid"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrImageNotFound)
	}

	image, err := h.imageUsecase.Preview(c.Request().Context(), imageID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := toImageResponse(image)
	resp.ImageUUID = ""

	return response.Success(c, http.StatusOK, resp)
}

// List returns the authenticated user's images, newest first.
func (h *ImageHandler) List(c echo.Context) error {
	user, err := deliverycontext.CurrentUser(c)
	if err != nil {
		return err
	}

	images, err := h.imageUsecase.ListByUser(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	out := ImageListResponse{Images: make([]ImageResponse, 0, len(images))}
	for _, image := range images {
		out.Images = append(out.Images, toImageResponse(image))
	}

	return response.Success(c, http.StatusOK, out)
}

func toImageResponse(image *entity.Image) ImageResponse {
	return ImageResponse{
		ImageUUID:  image.UUID.String(),
		ImageURL:   image.URL,
		Filename:   image.Filename,
		FileSize:   image.FileSize,
		UploadTime: image.UploadTime.UTC().Format(time.RFC3339),
	}
}
