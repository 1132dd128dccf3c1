package handlers

import (
	"net/http"

	"savings-tracker/internal/dto"
	"savings-tracker/internal/errors"
	"savings-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	MessageIncomeSet  = "Monthly income set successfully."
	MessageEntryAdded = "Entry added successfully."
)

// TrackerHandler serves the ledger and monthly summary endpoints
type TrackerHandler struct {
	trackerService services.TrackerServiceInterface
}

func NewTrackerHandler(trackerService services.TrackerServiceInterface) *TrackerHandler {
	return &TrackerHandler{
		trackerService: trackerService,
	}
}

// GetTracker returns the month summary
//
// Method: GET /tracker?month=YYYY-MM
// Authentication: Required
// The month defaults to the current month.
func (h *TrackerHandler) GetTracker(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.trackerService.ComputeMonthSummary(c.Request().Context(), userID, monthQuery(c))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// SetIncome declares the monthly salary from a month onward
//
// Method: POST /tracker/income
// Authentication: Required
func (h *TrackerHandler) SetIncome(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.IncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if _, err := h.trackerService.SetMonthlyIncome(c.Request().Context(), userID, req.Amount, req.Month); err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: MessageIncomeSet})
}

// AddEntry records an expense or side income
//
// Method: POST /tracker/entry
// Authentication: Required
func (h *TrackerHandler) AddEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.EntryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	entry, err := h.trackerService.RecordEntry(c.Request().Context(), userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.EntryResponse{Message: MessageEntryAdded, Entry: *entry})
}

// GetCategoryTotals lists the month's per-category expense totals
//
// Method: GET /category-totals?month=YYYY-MM
// Authentication: Required
func (h *TrackerHandler) GetCategoryTotals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	totals, err := h.trackerService.GetCategoryTotals(c.Request().Context(), userID, monthQuery(c))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryTotalResponses(totals))
}

// RebuildCategoryTotals recomputes the month's totals from the ledger
//
// Method: POST /category-totals/rebuild?month=YYYY-MM
// Authentication: Required
func (h *TrackerHandler) RebuildCategoryTotals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	totals, err := h.trackerService.RebuildCategoryTotals(c.Request().Context(), userID, monthQuery(c))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryTotalResponses(totals))
}

// monthQuery reads ?month= regardless of the request method. Validation is
// left to the service so that a bad value maps to VALIDATION_007.
func monthQuery(c echo.Context) string {
	var query dto.MonthQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return c.QueryParam("month")
	}
	return query.Month
}
