package model

import "time"

// RevokedTokenModel mirrors the 'revoked_tokens' table, the logout ledger.
type RevokedTokenModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	RevokedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}
