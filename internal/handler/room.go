package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/hotel"
	"github.com/iliyamo/hotel-management/internal/repository"
)

// RoomHandler exposes room administration and the availability query.
type RoomHandler struct {
	Manager *hotel.Manager
}

// NewRoomHandler constructs a RoomHandler.  The manager must be non-nil.
func NewRoomHandler(m *hotel.Manager) *RoomHandler {
	if m == nil {
		panic("nil manager passed to NewRoomHandler")
	}
	return &RoomHandler{Manager: m}
}

// CreateRoom handles POST /v1/rooms.  Room number, type, price and
// capacity are required; status defaults to available.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var body struct {
		RoomNumber    string  `json:"room_number"`
		RoomType      string  `json:"room_type"`
		PricePerNight float64 `json:"price_per_night"`
		Capacity      uint32  `json:"capacity"`
		Amenities     string  `json:"amenities"`
		Status        string  `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	number := strings.TrimSpace(body.RoomNumber)
	roomType := strings.TrimSpace(body.RoomType)
	if number == "" || roomType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_number and room_type are required"})
	}
	room, err := h.Manager.AddRoom(c.Request().Context(), number, roomType,
		body.PricePerNight, body.Capacity, body.Amenities, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRoomNumber):
			return c.JSON(http.StatusConflict, echo.Map{"error": "room number already exists"})
		case errors.Is(err, hotel.ErrInvalidRoomStatus),
			errors.Is(err, hotel.ErrInvalidPrice),
			errors.Is(err, hotel.ErrInvalidCapacity):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create room"})
	}
	return c.JSON(http.StatusCreated, room)
}

// ListRooms handles GET /v1/rooms.  The optional ?status= query
// parameter filters by exact status.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.Manager.Rooms(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms})
}

// GetRoom handles GET /v1/rooms/:id.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	room, err := h.Manager.Room(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, room)
}

// UpdateRoomStatus handles PATCH /v1/rooms/:id/status.  This is the
// administrative override: it is allowed even while the room has active
// reservations (e.g. to take a room into maintenance).
func (h *RoomHandler) UpdateRoomStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Manager.SetRoomStatus(c.Request().Context(), id, body.Status); err != nil {
		switch {
		case errors.Is(err, hotel.ErrInvalidRoomStatus):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room status"})
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"room_id": id, "status": body.Status})
}

// availableRoom is the wire shape of one availability result.
type availableRoom struct {
	RoomID        uint64  `json:"room_id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      uint32  `json:"capacity"`
}

// Availability handles GET /v1/rooms/available.  Both check_in and
// check_out query parameters are required ISO dates; a missing
// parameter is a client error.
func (h *RoomHandler) Availability(c echo.Context) error {
	checkIn := c.QueryParam("check_in")
	checkOut := c.QueryParam("check_out")
	if checkIn == "" || checkOut == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing check_in or check_out parameters"})
	}
	rooms, err := h.Manager.AvailableRooms(c.Request().Context(), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, hotel.ErrInvalidDateRange) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date format, use YYYY-MM-DD with check_out after check_in"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]availableRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, availableRoom{
			RoomID:        r.ID,
			RoomNumber:    r.RoomNumber,
			RoomType:      r.RoomType,
			PricePerNight: r.PricePerNight,
			Capacity:      r.Capacity,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": out})
}
