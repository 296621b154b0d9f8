// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"uploader/config"
	deliverycontext "uploader/internal/delivery/context"
	"uploader/internal/domain/entity"
	domainerrors "uploader/internal/domain/errors"
	"uploader/internal/domain/repository"
	"uploader/internal/domain/service"
	"uploader/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMinPasswordLength = 8

	// maxPasswordBytes is the bcrypt input limit. It counts bytes, not characters.
	maxPasswordBytes = 72
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	minPasswordLength int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	minPasswordLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &userService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Register creates a new active user with a fresh random public identifier.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	if utf8.RuneCountInString(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.
			WithDetails(fmt.Sprintf("password must be at least %d characters", srv.minPasswordLength))
	}
	if len(input.Password) > maxPasswordBytes {
		return nil, domainerrors.ErrValidationFailed.
			WithDetails(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}

	// Friendly path for the common case; the unique index settles races.
	existing, err := srv.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		UUID:         uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Warn("Registration lost a race on email", slog.String("email", input.Email))
		} else {
			srv.log(ctx).Error("Failed to create user", slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to create user")
	}
	srv.log(ctx).Info("User registered", slog.Any("user_uuid", newUser.UUID))

	return newUser, nil
}

// VerifyCredentials never reveals which check failed. An unknown email still
// pays for one bcrypt comparison so its timing matches a wrong password.
func (srv *userService) VerifyCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := srv.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		srv.hasher.CheckDummy(password)

		return nil, nil
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, nil
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Login attempt for inactive user", slog.Any("user_uuid", user.UUID))

		return nil, nil
	}

	return user, nil
}

// FindByPublicID looks a user up by public identifier.
func (srv *userService) FindByPublicID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByUUID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user by uuid")
	}

	return user, nil
}

// FindByEmail looks a user up by exact email.
func (srv *userService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.VerifyCredentials(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Error("Login failed", slog.Any("error", err))

		return nil, err
	}
	if user == nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, expiresAt, err := srv.tokenService.Issue(user.UUID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("user_uuid", user.UUID))

	return &usecase.LoginOutput{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
