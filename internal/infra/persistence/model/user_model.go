package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The schema is owned by the goose migrations.
type UserModel struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	UUID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	// No gorm default tag: a default would replace an explicit false on insert.
	IsActive  bool `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Images []ImageModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
