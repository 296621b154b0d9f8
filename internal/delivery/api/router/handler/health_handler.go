package handler

import (
	"net/http"

	"uploader/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Root answers the landing route so load balancers and humans see a live API.
func Root(c echo.Context) error {
	return response.Message(c, http.StatusOK, "API is running!")
}

// HealthCheck is a liveness check; it does not touch the database.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
