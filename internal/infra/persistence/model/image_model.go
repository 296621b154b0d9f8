package model

import (
	"time"

	"github.com/google/uuid"
)

// ImageModel mirrors the 'images' table. UserID is nullable and set to NULL when the owner is deleted.
type ImageModel struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	UUID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Filename   string    `gorm:"type:varchar(255);not null"`
	FileSize   float64   `gorm:"type:double precision;not null"`
	URL        string    `gorm:"type:text;not null"`
	UserID     *uint64   `gorm:"index"`
	UploadTime time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}
