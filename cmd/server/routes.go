package main

import (
	"savings-tracker/internal/config"
	"savings-tracker/internal/handlers"
	"savings-tracker/internal/middleware"
	"savings-tracker/internal/repositories"
	"savings-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeDeps struct {
	cfg          *config.Config
	limiter      *middleware.IPRateLimiter
	tokenService services.TokenServiceInterface
	blacklist    repositories.BlacklistedTokenRepositoryInterface
	auth         *handlers.AuthHandler
	tracker      *handlers.TrackerHandler
	advice       *handlers.AdviceHandler
	dev          *handlers.DevHandler
	health       *handlers.HealthCheckHandler
	docs         *handlers.DocsHandler
}

func registerRoutes(e *echo.Echo, d routeDeps) {
	e.GET("/health", d.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/docs", d.docs.ServeScalarUI)
	e.GET("/docs/openapi.json", d.docs.ServeOpenAPI)

	rateLimited := d.limiter.Middleware()
	e.POST("/register", d.auth.Register, rateLimited)
	e.POST("/token", d.auth.Token, rateLimited)

	// per route: group middleware on the root prefix also catches unmatched paths
	requireAuth := middleware.RequireAuth(d.tokenService, d.blacklist)
	e.POST("/logout", d.auth.Logout, requireAuth)
	e.GET("/me", d.auth.Me, requireAuth)

	e.GET("/tracker", d.tracker.GetTracker, requireAuth)
	e.POST("/tracker/income", d.tracker.SetIncome, requireAuth)
	e.POST("/tracker/entry", d.tracker.AddEntry, requireAuth)
	e.GET("/category-totals", d.tracker.GetCategoryTotals, requireAuth)
	e.POST("/category-totals/rebuild", d.tracker.RebuildCategoryTotals, requireAuth)

	e.GET("/financial-advice", d.advice.GetAdvice, requireAuth)

	if d.cfg.IsDevelopment() {
		e.POST("/dev/generate-test-data", d.dev.GenerateTestData, requireAuth)
	}
}
