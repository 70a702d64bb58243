package handler

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"quickhire/internal/infrastructure"
)

// NewRouter wires every route onto a fresh echo instance. Page routes use the
// redirect guard, /api/* the JSON guard; the credential endpoints sit behind
// the per-IP rate limiter.
func NewRouter(
	authHandler *AuthHandler,
	jobHandler *JobHandler,
	pageHandler *PageHandler,
	guard *SessionGuard,
	limiter *infrastructure.RateLimiter,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.POST("/register", authHandler.Register, RateLimit(limiter))
	e.POST("/login", authHandler.Login, RateLimit(limiter))
	e.GET("/logout", authHandler.Logout)

	e.GET("/", pageHandler.Dashboard, guard.Page)
	e.GET("/dashboard", pageHandler.Dashboard, guard.Page)
	e.GET("/login", pageHandler.Login)
	e.GET("/register", pageHandler.Register)
	e.Static("/public", filepath.Join(staticDir, "public"))

	api := e.Group("/api", guard.API)
	api.GET("/me", authHandler.Me)
	api.GET("/jobs", jobHandler.Search)
	api.GET("/jobs/page", jobHandler.Page)
	api.GET("/jobs/saved", jobHandler.SavedJobs)
	api.GET("/jobs/applied", jobHandler.AppliedJobs)
	api.POST("/jobs/:id/save", jobHandler.ToggleSaved)
	api.POST("/jobs/:id/apply", jobHandler.MarkApplied)
	api.GET("/profile", jobHandler.Stats)

	return e
}
