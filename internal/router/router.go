package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/handler"
	"github.com/iliyamo/hotel-management/internal/middleware"
)

// RegisterRoutes wires every endpoint onto the provided Echo instance.
// Read endpoints and the availability query are public; everything that
// mutates state or exposes guest data sits behind the staff JWT with
// the MANAGER role.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler, rooms *handler.RoomHandler,
	reservations *handler.ReservationHandler, guests *handler.GuestHandler,
	dashboard *handler.DashboardHandler, jwtSecret string) {

	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Staff login.
	e.POST("/v1/auth/login", a.Login)

	// Public browse endpoints: room inventory and availability.  The
	// availability endpoint is the JSON API consumed by booking forms.
	e.GET("/v1/rooms", rooms.ListRooms)
	e.GET("/v1/rooms/:id", rooms.GetRoom)
	e.GET("/v1/rooms/available", rooms.Availability)

	// Protected endpoints: front-desk and administrative operations.
	staff := e.Group("/v1")
	staff.Use(middleware.JWTAuth(jwtSecret))
	staff.Use(middleware.RequireRole(handler.RoleManager))

	staff.GET("/dashboard", dashboard.Dashboard)

	staff.POST("/rooms", rooms.CreateRoom)
	staff.PATCH("/rooms/:id/status", rooms.UpdateRoomStatus)

	staff.POST("/reservations", reservations.Create)
	staff.GET("/reservations", reservations.List)
	staff.GET("/reservations/:id", reservations.Get)
	staff.POST("/reservations/:id/checkin", reservations.CheckIn)
	staff.POST("/reservations/:id/checkout", reservations.CheckOut)
	staff.POST("/reservations/:id/cancel", reservations.Cancel)
	staff.GET("/reservations/:id/payments", reservations.Payments)

	staff.GET("/guests", guests.List)
	staff.GET("/guests/:id", guests.Get)
}
