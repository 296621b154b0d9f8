package impl

import (
	"context"
	"testing"
	"time"

	"uploader/internal/domain/entity"
	domainerrors "uploader/internal/domain/errors"
	"uploader/internal/domain/repository"
	"uploader/internal/domain/service"
	mockRepo "uploader/internal/mocks/repository"
	mockSvc "uploader/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service        *authService
	userRepo       *mockRepo.MockUserRepository
	revocationRepo *mockRepo.MockRevocationRepository
	tokenService   *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	revocationRepo := mockRepo.NewMockRevocationRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv, ok := NewAuthService(AuthServiceParams{
		UserRepo:       userRepo,
		RevocationRepo: revocationRepo,
		TokenService:   tokenService,
		Logger:         newDiscardLogger(),
	}).(*authService)
	require.True(t, ok)

	return authServiceFixtures{
		service:        srv,
		userRepo:       userRepo,
		revocationRepo: revocationRepo,
		tokenService:   tokenService,
	}
}

func assertUnauthenticated(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, want)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPCode())
	assert.Equal(t, want.Message(), appErr.Message())
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.tokenService.On("Verify", "tok").Return(user.UUID, time.Now().Add(time.Hour), nil).Once()
	fx.revocationRepo.On("IsRevoked", ctx, HashToken("tok")).Return(false, nil).Once()
	fx.userRepo.On("FindByUUID", ctx, user.UUID).Return(user, nil).Once()

	got, err := fx.service.Authenticate(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_Authenticate_MissingToken(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Authenticate(context.Background(), "")
	assertUnauthenticated(t, err, domainerrors.ErrTokenRequired)
}

func TestAuthService_Authenticate_MalformedNeverTouchesStores(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("Verify", "garbage").
		Return(uuid.Nil, time.Time{}, errors.Wrap(service.ErrTokenMalformed, "bad signature")).Once()

	_, err := fx.service.Authenticate(ctx, "garbage")
	assertUnauthenticated(t, err, domainerrors.ErrTokenInvalid)
	fx.revocationRepo.AssertNotCalled(t, "IsRevoked", mock.Anything, mock.Anything)
	fx.userRepo.AssertNotCalled(t, "FindByUUID", mock.Anything, mock.Anything)
}

func TestAuthService_Authenticate_Expired(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("Verify", "old").
		Return(uuid.Nil, time.Now().Add(-time.Minute), errors.WithStack(service.ErrTokenExpired)).Once()

	_, err := fx.service.Authenticate(ctx, "old")
	assertUnauthenticated(t, err, domainerrors.ErrTokenExpired)
	fx.revocationRepo.AssertNotCalled(t, "IsRevoked", mock.Anything, mock.Anything)
}

func TestAuthService_Authenticate_Revoked(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	subject := uuid.New()

	fx.tokenService.On("Verify", "tok").Return(subject, time.Now().Add(time.Hour), nil).Once()
	fx.revocationRepo.On("IsRevoked", ctx, HashToken("tok")).Return(true, nil).Once()

	_, err := fx.service.Authenticate(ctx, "tok")
	assertUnauthenticated(t, err, domainerrors.ErrTokenRevoked)
	fx.userRepo.AssertNotCalled(t, "FindByUUID", mock.Anything, mock.Anything)
}

func TestAuthService_Authenticate_UnknownOrInactiveSubject(t *testing.T) {
	ctx := context.Background()
	inactive := newTestUser()
	inactive.IsActive = false

	tests := []struct {
		name string
		user *entity.User
		err  error
	}{
		{name: "unknown subject", err: repository.ErrUserNotFound},
		{name: "inactive subject", user: inactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			subject := uuid.New()

			fx.tokenService.On("Verify", "tok").Return(subject, time.Now().Add(time.Hour), nil).Once()
			fx.revocationRepo.On("IsRevoked", ctx, HashToken("tok")).Return(false, nil).Once()
			fx.userRepo.On("FindByUUID", ctx, subject).Return(tt.user, tt.err).Once()

			_, err := fx.service.Authenticate(ctx, "tok")
			assertUnauthenticated(t, err, domainerrors.ErrTokenInvalid)
		})
	}
}

func TestAuthService_Authenticate_StoreFailureIsNotUnauthenticated(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	subject := uuid.New()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to check revoked token")

	fx.tokenService.On("Verify", "tok").Return(subject, time.Now().Add(time.Hour), nil).Once()
	fx.revocationRepo.On("IsRevoked", ctx, HashToken("tok")).Return(false, dbErr).Once()

	_, err := fx.service.Authenticate(ctx, "tok")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	fx.service.clock = func() time.Time { return now }
	expiresAt := now.Add(45 * time.Minute)

	fx.tokenService.On("ExpiresAt", "tok").Return(expiresAt, true).Once()
	fx.revocationRepo.On("Revoke", ctx, &entity.RevokedToken{
		TokenHash: HashToken("tok"),
		ExpiresAt: expiresAt,
		RevokedAt: now,
	}).Return(nil).Once()

	require.NoError(t, fx.service.Logout(ctx, "tok"))
}

func TestAuthService_Logout_UnreadableExpiryKeepsEntryForOneLifetime(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	fx.service.clock = func() time.Time { return now }

	fx.tokenService.On("ExpiresAt", "tok").Return(time.Time{}, false).Once()
	fx.tokenService.On("TTL").Return(time.Hour).Once()
	fx.revocationRepo.On("Revoke", ctx, mock.MatchedBy(func(r *entity.RevokedToken) bool {
		return r.ExpiresAt.Equal(now.Add(time.Hour))
	})).Return(nil).Once()

	require.NoError(t, fx.service.Logout(ctx, "tok"))
}

func TestAuthService_PruneRevocations(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	now := time.Now()

	fx.revocationRepo.On("DeleteExpired", ctx, now).Return(int64(5), nil).Once()

	deleted, err := fx.service.PruneRevocations(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
}

func TestHashToken(t *testing.T) {
	first := HashToken("a.b.c")
	assert.Len(t, first, 64)
	assert.Equal(t, first, HashToken("a.b.c"))
	assert.NotEqual(t, first, HashToken("a.b.d"))
}
