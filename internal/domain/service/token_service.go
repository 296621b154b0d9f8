package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Verification failures. They are internal distinctions: the HTTP layer
// collapses both into an unauthenticated response with a reason string.
var (
	// ErrTokenMalformed covers bad signatures, unexpected algorithms,
	// unparsable payloads and missing or non-UUID subjects.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenExpired is returned only for correctly signed tokens whose
	// expiry is at or before the current time.
	ErrTokenExpired = errors.New("token has expired")
)

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue signs a new token for the subject and returns it with its expiry.
	Issue(subject uuid.UUID) (token string, expiresAt time.Time, err error)

	// Verify checks signature and expiry and returns the subject.
	// It never consults the revocation ledger.
	Verify(token string) (subject uuid.UUID, expiresAt time.Time, err error)

	// ExpiresAt reads the expiry claim without verifying the token.
	// ok is false when the token carries no readable expiry.
	ExpiresAt(token string) (expiresAt time.Time, ok bool)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
