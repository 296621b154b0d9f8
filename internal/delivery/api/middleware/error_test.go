package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"uploader/internal/delivery/api/response"
	domainerrors "uploader/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "client error keeps details",
			err:         errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("email is required")),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "Input validation failed",
			wantDetails: "email is required",
		},
		{
			name:        "wrapped guard error",
			err:         errors.Wrap(domainerrors.ErrTokenInvalid, "signature is invalid"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "UNAUTHENTICATED",
			wantMessage: "invalid token",
		},
		{
			name:        "database error hides driver text",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("pq: password authentication failed"), "find user"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "STORE_UNAVAILABLE",
			wantMessage: "Internal server error, please try again later",
		},
		{
			name:        "echo http error",
			err:         echo.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "pq:")
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
