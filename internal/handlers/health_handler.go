package handlers

import (
	"context"
	"net/http"
	"time"

	"savings-tracker/internal/errors"
	"savings-tracker/internal/repositories"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	store repositories.HealthChecker
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(store repositories.HealthChecker) *HealthCheckHandler {
	return &HealthCheckHandler{store: store}
}

// HealthCheck reports whether the backing store answers a ping
//
// Method: GET /health
// Success Response: 200 {status, time}
// Error Response: 503 SYSTEM_003
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Store connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
