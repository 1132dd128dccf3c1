package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"savings-tracker/internal/errors"
	"savings-tracker/internal/models"
	"savings-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Handlers answer errors through these helpers only:
//
// 1. SendError - client errors and business rule failures (4xx, 503)
//    - SendError(c, errors.ValidationInvalidMonth)
//    - SendError(c, errors.AuthInvalidCredentials)
//
// 2. SendSystemError / SendDatabaseError - internal failures (500)
//    The cause is logged with the trace ID and never sent to the client.
//
// 3. SendServiceError - maps a service sentinel error to its code and falls
//    back to SendDatabaseError.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError answers SYSTEM_001 and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(err, traceID)
	logInternalError(c, traceID, errorResponse, cause)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDatabaseError answers SYSTEM_002 and logs the internal error
func SendDatabaseError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapDatabaseError(err, traceID)
	logInternalError(c, traceID, errorResponse, cause)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError translates service and model sentinel errors. Anything
// unrecognised is treated as a store failure.
func SendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, models.ErrInvalidMonth):
		return SendError(c, errors.ValidationInvalidMonth)
	case stderrors.Is(err, models.ErrInvalidDate), stderrors.Is(err, models.ErrMonthDateMismatch):
		return SendError(c, errors.ValidationInvalidDate)
	case stderrors.Is(err, models.ErrInvalidEntryKind):
		return SendError(c, errors.LedgerInvalidEntryType)
	case stderrors.Is(err, models.ErrInvalidAmount), stderrors.Is(err, models.ErrNegativeSalary):
		return SendError(c, errors.LedgerInvalidAmount, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrCategoryRequired):
		return SendError(c, errors.LedgerCategoryRequired)
	case stderrors.Is(err, services.ErrInvalidGeneratorCount):
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrUserAlreadyExists):
		return SendError(c, errors.UserAlreadyExists)
	case stderrors.Is(err, services.ErrUserNotFound):
		return SendError(c, errors.UserNotFound)
	case stderrors.Is(err, services.ErrInvalidCredentials):
		return SendError(c, errors.AuthInvalidCredentials)
	case stderrors.Is(err, services.ErrPasswordEmpty),
		stderrors.Is(err, services.ErrPasswordTooShort),
		stderrors.Is(err, services.ErrPasswordTooLong):
		return SendError(c, errors.ValidationWeakPassword, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrAdviceNotConfigured):
		return SendError(c, errors.SystemConfigurationError)
	case stderrors.Is(err, services.ErrUpstreamUnavailable):
		logInternalError(c, getTraceID(c), nil, err)
		return SendError(c, errors.SystemServiceUnavailable)
	default:
		return SendDatabaseError(c, err)
	}
}

func logInternalError(c echo.Context, traceID string, response *errors.ErrorResponse, cause error) {
	if cause == nil {
		return
	}
	code := ""
	if response != nil {
		code = response.Error.Code
	}
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"error_code", code,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", cause.Error(),
	)
}
