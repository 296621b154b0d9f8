// Package middleware contains echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "uploader/internal/delivery/context"
	domainerrors "uploader/internal/domain/errors"
	"uploader/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerScheme = "bearer"

// AuthMiddleware guards routes that need an authenticated user.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// Authenticate rejects the request unless it carries a valid, unrevoked
// bearer token of an active user. The rejection is rendered by the central
// error handler. Handlers read the session with deliverycontext.CurrentUser.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.WithStack(domainerrors.ErrTokenRequired)
		}

		user, err := m.authUsecase.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetSession(c, user, token)

		return next(c)
	}
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>" header.
// The scheme is case-insensitive; anything else counts as no token.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
