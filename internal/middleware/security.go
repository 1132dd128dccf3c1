package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds security headers to responses
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			h.Set("Content-Security-Policy", contentSecurityPolicy(c.Path()))
			h.Set("Referrer-Policy", "no-referrer")

			// responses carry personal finances and bearer tokens
			h.Set("Cache-Control", "no-store")
			h.Set("Pragma", "no-cache")

			return next(c)
		}
	}
}

// docsCSP lets the Scalar page load its bundle from jsDelivr and fetch the
// OpenAPI document from this origin
const docsCSP = "default-src 'self'; " +
	"script-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; " +
	"style-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; " +
	"font-src 'self' https://cdn.jsdelivr.net data:; " +
	"img-src 'self' data: blob:; " +
	"connect-src 'self'; " +
	"frame-ancestors 'none'"

func contentSecurityPolicy(path string) string {
	if path == "/docs" {
		return docsCSP
	}
	return "default-src 'none'; frame-ancestors 'none'"
}
