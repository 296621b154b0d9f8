package context

import (
	"uploader/internal/domain/entity"
	domainerrors "uploader/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SetSession records the user and raw bearer token that passed the auth guard.
func SetSession(c echo.Context, user *entity.User, token string) {
	c.Set(echoUserKey, user)
	c.Set(echoTokenKey, token)
}

// CurrentUser returns the authenticated user. Outside a guarded route it fails
// with ErrTokenRequired.
func CurrentUser(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(echoUserKey).(*entity.User)
	if !ok || user == nil {
		return nil, errors.WithStack(domainerrors.ErrTokenRequired)
	}

	return user, nil
}

// CurrentToken returns the token that authenticated the request.
func CurrentToken(c echo.Context) (string, error) {
	token, ok := c.Get(echoTokenKey).(string)
	if !ok || token == "" {
		return "", errors.WithStack(domainerrors.ErrTokenRequired)
	}

	return token, nil
}
