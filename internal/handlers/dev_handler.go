package handlers

import (
	"log/slog"
	"net/http"

	"savings-tracker/internal/dto"
	"savings-tracker/internal/errors"
	"savings-tracker/internal/models"
	"savings-tracker/internal/repositories"
	"savings-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	ledgerRepo repositories.LedgerRepositoryInterface
	generator  services.LedgerGeneratorInterface
	logger     *slog.Logger
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	ledgerRepo repositories.LedgerRepositoryInterface,
	generator services.LedgerGeneratorInterface,
	logger *slog.Logger,
) *DevHandler {
	return &DevHandler{
		ledgerRepo: ledgerRepo,
		generator:  generator,
		logger:     logger,
	}
}

// GenerateTestData fills a month of the caller's ledger with fake entries
//
// Method: POST /dev/generate-test-data
// Authentication: Required
// Environment: Development only
//
// Request body (optional):
//   - month: YYYY-MM, defaults to the current month
//   - count: number of entries (default 30, max 200)
//
// Success Response: 200 OK {month, created}
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.GenerateTestDataRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	month, err := models.ResolveMonth(req.Month)
	if err != nil {
		return SendServiceError(c, err)
	}

	entries, err := h.generator.GenerateMonth(userID, month, req.Count)
	if err != nil {
		return SendServiceError(c, err)
	}

	created := 0
	for _, entry := range entries {
		if err := h.ledgerRepo.RecordEntry(c.Request().Context(), entry); err != nil {
			h.logger.Warn("failed to record generated entry",
				"trace_id", getTraceID(c),
				"error", err)
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, dto.GenerateTestDataResponse{
		Month:   month,
		Created: created,
	})
}
