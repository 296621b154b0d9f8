package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"uploader/internal/domain/entity"
	domainerrors "uploader/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestAttach(t *testing.T) {
	c := newEchoContext()
	logger := slog.New(slog.DiscardHandler)

	Attach(c, "req-1", logger)

	assert.Equal(t, "req-1", RequestID(c))
	assert.Equal(t, "req-1", RequestIDFrom(c.Request().Context()))
	assert.Same(t, logger, LoggerFrom(c.Request().Context(), nil))
}

func TestOutsideRequest(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)

	assert.Empty(t, RequestIDFrom(context.Background()))
	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))

	_, err := uuid.Parse(RequestID(newEchoContext()))
	assert.NoError(t, err)
}

func TestSession(t *testing.T) {
	c := newEchoContext()

	_, err := CurrentUser(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenRequired)
	_, err = CurrentToken(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenRequired)

	user := &entity.User{ID: 1, UUID: uuid.New()}
	SetSession(c, user, "tok")

	got, err := CurrentUser(c)
	require.NoError(t, err)
	assert.Same(t, user, got)
	token, err := CurrentToken(c)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}
