package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/hotel"
	"github.com/iliyamo/hotel-management/internal/repository"
)

// GuestHandler exposes the guest directory.
type GuestHandler struct {
	Manager *hotel.Manager
}

// NewGuestHandler constructs a GuestHandler.  The manager must be non-nil.
func NewGuestHandler(m *hotel.Manager) *GuestHandler {
	if m == nil {
		panic("nil manager passed to NewGuestHandler")
	}
	return &GuestHandler{Manager: m}
}

// List handles GET /v1/guests, ordered by name.
func (h *GuestHandler) List(c echo.Context) error {
	guests, err := h.Manager.Guests(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"guests": guests})
}

// Get handles GET /v1/guests/:id.
func (h *GuestHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid guest id"})
	}
	g, err := h.Manager.Guest(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "guest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, g)
}
