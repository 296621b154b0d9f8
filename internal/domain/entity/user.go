// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account that owns credentials and uploaded images.
// ID is the store-assigned key and never leaves the service; UUID is the
// public identifier carried in tokens and responses.
type User struct {
	ID           uint64    // Store-assigned, immutable internal key.
	UUID         uuid.UUID // Random (v4) public identifier, never derived from ID.
	Email        string    // Login key, unique, compared exactly as stored.
	PasswordHash string    // bcrypt hash with embedded salt; the raw password is never kept.
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
