package handler

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// PageHandler delivers the portal's static HTML pages. Rendering is owned by
// the frontend assets under webDir; the handler only passes files through.
type PageHandler struct {
	webDir string
}

func NewPageHandler(webDir string) *PageHandler {
	return &PageHandler{webDir: webDir}
}

func (h *PageHandler) Landing(c echo.Context) error {
	return h.page(c, "landing.html")
}

func (h *PageHandler) Application(c echo.Context) error {
	return h.page(c, "application.html")
}

func (h *PageHandler) EmployeeCorner(c echo.Context) error {
	return h.page(c, "employee_corner.html")
}

func (h *PageHandler) Forms(c echo.Context) error {
	return h.page(c, "forms.html")
}

func (h *PageHandler) Login(c echo.Context) error {
	return h.page(c, "login.html")
}

func (h *PageHandler) page(c echo.Context, name string) error {
	return c.File(filepath.Join(h.webDir, name))
}
