package impl

import (
	"io"
	"log/slog"
	"time"

	"uploader/config"
	"uploader/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MinPasswordLength: 8,
			TokenTTL:          time.Hour,
		},
		Storage: &config.StorageConfig{
			MaxUploadSize: 2 * 1000 * 1000,
			KeyPrefix:     "images",
		},
	}
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:           7,
		UUID:         uuid.New(),
		Email:        "u@example.com",
		PasswordHash: "$2a$04$hash",
		IsActive:     true,
	}
}
