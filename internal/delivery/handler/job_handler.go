package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"quickhire/internal/application/interfaces"
)

type JobHandler struct {
	dashboards interfaces.DashboardService
}

func NewJobHandler(dashboards interfaces.DashboardService) *JobHandler {
	return &JobHandler{dashboards: dashboards}
}

// Search handles GET /api/jobs?query=. Every call re-queries upstream and
// replaces the session's cached job list.
func (h *JobHandler) Search(c echo.Context) error {
	result, err := h.dashboards.Search(c.Request().Context(), sessionToken(c), c.QueryParam("query"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Page handles GET /api/jobs/page?n=, slicing the cached list without an
// upstream round trip. Out-of-range pages return an empty data array.
func (h *JobHandler) Page(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("n"))
	if err != nil || page < 1 {
		page = 1
	}
	result, err := h.dashboards.Page(c.Request().Context(), sessionToken(c), page)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ToggleSaved handles POST /api/jobs/:id/save.
func (h *JobHandler) ToggleSaved(c echo.Context) error {
	result, err := h.dashboards.ToggleSaved(c.Request().Context(), sessionToken(c), c.Param("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// MarkApplied handles POST /api/jobs/:id/apply. Applying is irreversible and
// removes the job from the saved set.
func (h *JobHandler) MarkApplied(c echo.Context) error {
	result, err := h.dashboards.MarkApplied(c.Request().Context(), sessionToken(c), c.Param("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// SavedJobs handles GET /api/jobs/saved: saved ids intersected with the
// current job cache.
func (h *JobHandler) SavedJobs(c echo.Context) error {
	result, err := h.dashboards.SavedJobs(c.Request().Context(), sessionToken(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// AppliedJobs handles GET /api/jobs/applied.
func (h *JobHandler) AppliedJobs(c echo.Context) error {
	result, err := h.dashboards.AppliedJobs(c.Request().Context(), sessionToken(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Stats handles GET /api/profile: profile strength plus dashboard counters.
func (h *JobHandler) Stats(c echo.Context) error {
	result, err := h.dashboards.Stats(c.Request().Context(), sessionToken(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
