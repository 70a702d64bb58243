package handler

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// PageHandler dispatches the static pages. Markup and assets live in a
// directory owned by the frontend; the server only decides who may see what.
type PageHandler struct {
	staticDir string
}

func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{staticDir: staticDir}
}

// Dashboard serves the dashboard page; the session guard has already run.
func (h *PageHandler) Dashboard(c echo.Context) error {
	return c.File(filepath.Join(h.staticDir, "dashboard.html"))
}

func (h *PageHandler) Login(c echo.Context) error {
	return c.File(filepath.Join(h.staticDir, "login.html"))
}

func (h *PageHandler) Register(c echo.Context) error {
	return c.File(filepath.Join(h.staticDir, "register.html"))
}
