package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/hotel"
)

// DashboardHandler serves the front-desk overview: room counts,
// revenue, active reservation count and the most recent bookings.
type DashboardHandler struct {
	Manager *hotel.Manager
}

// NewDashboardHandler constructs a DashboardHandler.  The manager must
// be non-nil.
func NewDashboardHandler(m *hotel.Manager) *DashboardHandler {
	if m == nil {
		panic("nil manager passed to NewDashboardHandler")
	}
	return &DashboardHandler{Manager: m}
}

// recentLimit caps how many reservations the dashboard shows.
const recentLimit = 5

// Dashboard handles GET /v1/dashboard.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := h.Manager.Summary(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	revenue, err := h.Manager.Revenue(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	active, err := h.Manager.ActiveCount(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	recent, err := h.Manager.Reservations(ctx, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_rooms":         summary.Total,
		"available_rooms":     summary.Available,
		"occupied_rooms":      summary.Occupied,
		"maintenance_rooms":   summary.Maintenance,
		"total_revenue":       revenue,
		"active_reservations": active,
		"recent_reservations": recent,
	})
}
