// Package router wires the API routes to their handlers.
package router

import (
	"uploader/internal/delivery/api/middleware"
	"uploader/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ImageHandler   *handler.ImageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	imageHandler   *handler.ImageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		imageHandler:   params.ImageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	e.POST("/register/", r.userHandler.Register)
	e.POST("/login/", r.userHandler.Login)

	e.GET("/image-preview/:image_uuid", r.imageHandler.Preview)

	// Routes that require a valid session token. The guard is attached per
	// route; a root group middleware would also catch unknown paths.
	auth := r.authMiddleware.Authenticate
	e.POST("/logout/", r.userHandler.Logout, auth)
	e.POST("/upload/", r.imageHandler.Upload, auth)
	e.GET("/images/", r.imageHandler.List, auth)
}
