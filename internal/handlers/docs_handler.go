package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"

	"savings-tracker/internal/docs"

	"github.com/labstack/echo/v4"
)

// DocsHandler handles API documentation endpoints
type DocsHandler struct {
	scalarHTML  []byte
	scalarETag  string
	openAPI     []byte
	openAPIETag string
}

// NewDocsHandler serves the documents embedded in the binary
func NewDocsHandler() *DocsHandler {
	return newDocsHandler(docs.ScalarHTML, docs.OpenAPI)
}

func newDocsHandler(scalarHTML, openAPI []byte) *DocsHandler {
	return &DocsHandler{
		scalarHTML:  scalarHTML,
		scalarETag:  generateETag(scalarHTML),
		openAPI:     openAPI,
		openAPIETag: generateETag(openAPI),
	}
}

// ServeScalarUI serves the Scalar HTML page
//
// Method: GET /docs
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	if notModified(c, h.scalarETag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOpenAPI serves the OpenAPI document loaded by the Scalar page
//
// Method: GET /docs/openapi.json
func (h *DocsHandler) ServeOpenAPI(c echo.Context) error {
	if len(h.openAPI) == 0 {
		return echo.ErrNotFound
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	if notModified(c, h.openAPIETag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, h.openAPI)
}

// notModified sets the ETag header and reports whether the client already
// holds this version
func notModified(c echo.Context, etag string) bool {
	if etag == "" {
		return false
	}
	c.Response().Header().Set("ETag", etag)
	return c.Request().Header.Get("If-None-Match") == etag
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
