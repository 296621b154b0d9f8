package entity

import (
	"time"

	"github.com/google/uuid"
)

// Image is an uploaded file stored in the object bucket.
type Image struct {
	ID         uint64
	UUID       uuid.UUID
	Filename   string
	FileSize   float64 // Megabytes, 1 MB = 1000^2 bytes.
	URL        string
	UserID     *uint64 // Owner; nil for images without an owner.
	UploadTime time.Time
}
