package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"

	"savings-tracker/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newJSONContext builds a request context. An empty body sends no content.
func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "handler-trace")
	return c, rec
}

func withUser(c echo.Context, userID uuid.UUID) echo.Context {
	c.Set(UserIDContextKey, userID)
	return c
}

func decodeError(rec *httptest.ResponseRecorder) errors.ErrorResponse {
	var body errors.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

func errorCodeOf(rec *httptest.ResponseRecorder) string {
	return decodeError(rec).Error.Code
}
