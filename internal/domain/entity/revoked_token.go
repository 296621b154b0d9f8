package entity

import "time"

// RevokedToken is a ledger entry for a session token invalidated before its expiry.
// TokenHash is the hex SHA-256 of the exact token string, so two tokens issued to
// the same user always map to different entries.
type RevokedToken struct {
	ID        uint64
	TokenHash string
	ExpiresAt time.Time // Expiry of the revoked token; entries past it may be pruned.
	RevokedAt time.Time
}
