// Package context carries per-request values between the echo layer and the services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from and echoed to clients.
const HeaderXRequestID = "X-Request-Id"

type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
)

// echo.Context keys.
const (
	echoRequestIDKey = "request_id"
	echoUserKey      = "current_user"
	echoTokenKey     = "current_token"
)

// Attach stores the request ID on the echo context and puts both the ID and the
// request-scoped logger into the request's context.Context.
func Attach(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoRequestIDKey, requestID)

	ctx := context.WithValue(c.Request().Context(), requestIDKey, requestID)
	ctx = context.WithValue(ctx, loggerKey, logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the ID set by Attach. Responses always carry one, so an
// unset ID yields a fresh UUID.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// RequestIDFrom returns the request ID in ctx, or "" outside a request.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// LoggerFrom returns the request-scoped logger, or fallback outside a request.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
