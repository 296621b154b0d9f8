// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"uploader/internal/delivery/api/response"
	deliverycontext "uploader/internal/delivery/context"
	domainerrors "uploader/internal/domain/errors"
	"uploader/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CredentialsRequest is the body of /register/ and /login/.
// Password length rules are byte based and live in the user usecase.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	UserEmail string `json:"user_email"`
	UserUUID  string `json:"user_uuid"`
	Token     string `json:"token"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	authUsecase usecase.AuthUsecase
	logger      *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUsecase usecase.UserUsecase, authUsecase usecase.AuthUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	input, err := bindCredentials(c)
	if err != nil {
		return err
	}

	if _, err := h.userUsecase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "User created successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	input, err := bindCredentials(c)
	if err != nil {
		return err
	}

	output, err := h.userUsecase.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		UserEmail: output.User.Email,
		UserUUID:  output.User.UUID.String(),
		Token:     output.Token,
	})
}

// Logout revokes the token that authenticated the request.
func (h *UserHandler) Logout(c echo.Context) error {
	token, err := deliverycontext.CurrentToken(c)
	if err != nil {
		return err
	}

	if err := h.authUsecase.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Logged out successfully")
}

func bindCredentials(c echo.Context) (*CredentialsRequest, error) {
	var input CredentialsRequest
	if err := c.Bind(&input); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("request body must be a JSON object with email and password"))
	}
	if err := c.Validate(&input); err != nil {
		return nil, errors.WithStack(err)
	}

	return &input, nil
}
