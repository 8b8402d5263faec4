package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/hotel"
	"github.com/iliyamo/hotel-management/internal/queue"
	"github.com/iliyamo/hotel-management/internal/repository"
	queue_publisher "github.com/iliyamo/hotel-management/internal/service"
)

// ReservationHandler exposes the booking workflows: reserve, check-in,
// check-out and cancel, plus listing and detail views.  Lifecycle
// changes emit best-effort events to the broker after the database
// write has committed; a broker failure never fails the request.
type ReservationHandler struct {
	Manager *hotel.Manager
}

// NewReservationHandler constructs a ReservationHandler.  The manager
// must be non-nil.
func NewReservationHandler(m *hotel.Manager) *ReservationHandler {
	if m == nil {
		panic("nil manager passed to NewReservationHandler")
	}
	return &ReservationHandler{Manager: m}
}

// Create handles POST /v1/reservations.  It registers or resolves the
// guest by phone, validates availability and books the room.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body struct {
		GuestName string `json:"guest_name"`
		Phone     string `json:"phone"`
		RoomID    uint64 `json:"room_id"`
		CheckIn   string `json:"check_in"`
		CheckOut  string `json:"check_out"`
		Email     string `json:"email"`
		Address   string `json:"address"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.GuestName)
	phone := strings.TrimSpace(body.Phone)
	if name == "" || phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest_name and phone are required"})
	}
	if body.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id is required"})
	}
	ctx := c.Request().Context()
	det, err := h.Manager.Reserve(ctx, name, phone, body.RoomID, body.CheckIn, body.CheckOut, body.Email, body.Address)
	if err != nil {
		switch {
		case errors.Is(err, hotel.ErrInvalidDateRange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid dates, use YYYY-MM-DD with check_out after check_in"})
		case errors.Is(err, hotel.ErrRoomUnavailable):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "room not available for the requested dates"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create reservation"})
	}
	publish(c, queue.EventReservationConfirmed, det, "")
	return c.JSON(http.StatusCreated, det)
}

// List handles GET /v1/reservations with an optional ?status= filter.
func (h *ReservationHandler) List(c echo.Context) error {
	items, err := h.Manager.Reservations(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": items})
}

// Get handles GET /v1/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	id, ok := reservationID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	det, err := h.Manager.Reservation(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, det)
}

// CheckIn handles POST /v1/reservations/:id/checkin.
func (h *ReservationHandler) CheckIn(c echo.Context) error {
	id, ok := reservationID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	det, err := h.Manager.CheckIn(c.Request().Context(), id)
	if err != nil {
		return lifecycleError(c, err)
	}
	publish(c, queue.EventReservationCheckedIn, det, "")
	return c.JSON(http.StatusOK, det)
}

// CheckOut handles POST /v1/reservations/:id/checkout.  The optional
// payment_method body field defaults to cash.
func (h *ReservationHandler) CheckOut(c echo.Context) error {
	id, ok := reservationID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var body struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	det, err := h.Manager.CheckOut(c.Request().Context(), id, body.PaymentMethod)
	if err != nil {
		return lifecycleError(c, err)
	}
	publish(c, queue.EventReservationCheckedOut, det, body.PaymentMethod)
	return c.JSON(http.StatusOK, det)
}

// Cancel handles POST /v1/reservations/:id/cancel.  Only pending and
// confirmed reservations can be cancelled.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, ok := reservationID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	det, err := h.Manager.Cancel(c.Request().Context(), id)
	if err != nil {
		return lifecycleError(c, err)
	}
	publish(c, queue.EventReservationCancelled, det, "")
	return c.JSON(http.StatusOK, det)
}

// Payments handles GET /v1/reservations/:id/payments.
func (h *ReservationHandler) Payments(c echo.Context) error {
	id, ok := reservationID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	items, err := h.Manager.Payments(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"payments": items})
}

// reservationID parses the :id path parameter.
func reservationID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// lifecycleError translates facade sentinels into HTTP responses.
func lifecycleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	case errors.Is(err, hotel.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation status does not permit this operation"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
}

// publish emits a lifecycle event after a successful transition.  The
// publish happens outside the booking transaction and is best-effort.
func publish(c echo.Context, eventType string, det *repository.ReservationDetail, method string) {
	ev := queue.NewReservationEvent(eventType, det)
	ev.PaymentMethod = method
	if err := queue_publisher.PublishReservationEvent(c.Request().Context(), ev); err != nil {
		log.Printf("event publish failed for reservation %d: %v", det.ID, err)
	}
}
