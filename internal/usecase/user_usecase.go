// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"uploader/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// UserUsecase defines the credential store operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a user; a taken email fails with ErrUserAlreadyExists.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// VerifyCredentials returns the user only when the password matches an active account.
	// Unknown email, wrong password and inactive account all yield (nil, nil).
	VerifyCredentials(ctx context.Context, email, password string) (*entity.User, error)

	// FindByPublicID and FindByEmail return (nil, nil) when no user matches.
	FindByPublicID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Login verifies the credentials and issues a session token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
