package usecase

import (
	"context"
	"time"

	"uploader/internal/domain/entity"
)

// AuthUsecase guards protected operations and manages the revocation ledger.
type AuthUsecase interface {
	// Authenticate resolves a bearer token to its user. Checks run in a fixed
	// order: signature and expiry, then revocation, then the user lookup, so a
	// forged token never reaches the database.
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	// Logout revokes the given token. Revoking twice is not an error.
	Logout(ctx context.Context, token string) error

	// IsRevoked reports whether the exact token string has been revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)

	// PruneRevocations drops ledger entries for tokens that expired before now.
	PruneRevocations(ctx context.Context, now time.Time) (int64, error)
}
