package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "uploader/internal/delivery/context"
	"uploader/internal/domain/entity"
	domainerrors "uploader/internal/domain/errors"
	"uploader/internal/domain/repository"
	"uploader/internal/domain/service"
	"uploader/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo       repository.UserRepository
	revocationRepo repository.RevocationRepository
	tokenService   service.TokenService
	clock          func() time.Time
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	RevocationRepo repository.RevocationRepository
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:       params.UserRepo,
		revocationRepo: params.RevocationRepo,
		tokenService:   params.TokenService,
		clock:          time.Now,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Authenticate resolves a bearer token to an active user.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrTokenRequired
	}

	// 1. Signature and expiry. Nothing below runs for a forged token.
	subject, _, err := srv.tokenService.Verify(token)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			srv.log(ctx).Debug("Rejected expired token")

			return nil, errors.Wrap(domainerrors.ErrTokenExpired, err.Error())
		}
		srv.log(ctx).Warn("Rejected malformed token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	// 2. Revocation ledger.
	revoked, err := srv.IsRevoked(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		srv.log(ctx).Info("Rejected revoked token", slog.Any("user_uuid", subject))

		return nil, domainerrors.ErrTokenRevoked
	}

	// 3. Subject must still resolve to an active user.
	user, err := srv.userRepo.FindByUUID(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Token subject no longer exists", slog.Any("user_uuid", subject))

			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "unknown subject")
		}
		srv.log(ctx).Error("Failed to resolve token subject", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}
	if !user.IsActive {
		srv.log(ctx).Warn("Token subject is inactive", slog.Any("user_uuid", subject))

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "inactive subject")
	}

	return user, nil
}

// Logout records the token in the revocation ledger. The ledger keeps the
// token's own expiry so the entry can be pruned once it is meaningless.
func (srv *authService) Logout(ctx context.Context, token string) error {
	now := srv.clock()
	expiresAt, ok := srv.tokenService.ExpiresAt(token)
	if !ok {
		// Not expected after the guard; keep the entry for one full lifetime.
		expiresAt = now.Add(srv.tokenService.TTL())
	}

	record := &entity.RevokedToken{
		TokenHash: HashToken(token),
		ExpiresAt: expiresAt,
		RevokedAt: now,
	}
	if err := srv.revocationRepo.Revoke(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to revoke token", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke token")
	}
	srv.log(ctx).Info("Token revoked")

	return nil
}

// IsRevoked checks the ledger for the exact token string.
func (srv *authService) IsRevoked(ctx context.Context, token string) (bool, error) {
	revoked, err := srv.revocationRepo.IsRevoked(ctx, HashToken(token))
	if err != nil {
		srv.log(ctx).Error("Failed to check revocation ledger", slog.Any("error", err))

		return false, errors.Wrap(err, "failed to check revocation ledger")
	}

	return revoked, nil
}

// PruneRevocations deletes entries whose token is already past expiry.
func (srv *authService) PruneRevocations(ctx context.Context, now time.Time) (int64, error) {
	deleted, err := srv.revocationRepo.DeleteExpired(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune revocation ledger")
	}
	srv.log(ctx).Info("Pruned revocation ledger", slog.Int64("deleted", deleted))

	return deleted, nil
}

// HashToken is the ledger key for a token: hex SHA-256 of the exact string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
