package repository

import (
	"context"
	"time"

	"uploader/internal/domain/entity"
)

// RevocationRepository is the ledger of tokens invalidated by logout.
type RevocationRepository interface {
	// Revoke records the token. Recording an already revoked token is a no-op.
	Revoke(ctx context.Context, token *entity.RevokedToken) error

	// IsRevoked reports whether a ledger entry exists for the token hash.
	// Implementations must read committed state, never a cached or lagging copy.
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)

	// DeleteExpired removes entries whose token expired before the given time
	// and returns how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
