package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todoapp/internal/service"
)

// DashboardHandler serves todo statistics.
type DashboardHandler struct {
	dashboard service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get godoc
// @Summary Dashboard summary
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Summary
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	uid, err := ownerID(c)
	if err != nil {
		return err
	}
	summary, err := h.dashboard.Summary(c.Request().Context(), uid)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
