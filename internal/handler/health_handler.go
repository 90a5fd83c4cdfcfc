package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Service metadata reported by the root and health endpoints.
const (
	ServiceName    = "portfolio-api"
	ServiceTitle   = "Robert Chang Portfolio API"
	ServiceVersion = "1.0.0"
)

// Health is the liveness probe. It does not touch the store.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "service": ServiceName})
}

// Root identifies the API.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": ServiceTitle, "version": ServiceVersion})
}
