package model

// Room status values as constrained by the rooms.status column.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// Reservation status values as constrained by the reservations.status
// column.  checked_out and cancelled are terminal.
const (
	ReservationStatusPending    = "pending"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked_in"
	ReservationStatusCheckedOut = "checked_out"
	ReservationStatusCancelled  = "cancelled"
)

// PaymentStatusCompleted is the only payment status written by the
// checkout flow.
const PaymentStatusCompleted = "completed"

// ValidRoomStatus reports whether s is one of the three room statuses.
func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}

// ValidReservationStatus reports whether s is a known reservation status.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCheckedIn,
		ReservationStatusCheckedOut, ReservationStatusCancelled:
		return true
	}
	return false
}

// CanCheckIn reports whether a reservation in the given status may be
// checked in.  Only confirmed reservations qualify.
func CanCheckIn(status string) bool { return status == ReservationStatusConfirmed }

// CanCheckOut reports whether a reservation in the given status may be
// checked out.  Only checked_in reservations qualify.
func CanCheckOut(status string) bool { return status == ReservationStatusCheckedIn }

// CanCancel reports whether a reservation in the given status may be
// cancelled.  Once a guest has checked in the stay can no longer be
// cancelled, only checked out.
func CanCancel(status string) bool {
	return status == ReservationStatusPending || status == ReservationStatusConfirmed
}

// TerminalReservationStatus reports whether no further transitions are
// permitted out of the given status.
func TerminalReservationStatus(status string) bool {
	return status == ReservationStatusCheckedOut || status == ReservationStatusCancelled
}

// ActiveReservationStatus reports whether a reservation counts against
// room availability.
func ActiveReservationStatus(status string) bool {
	return status == ReservationStatusConfirmed || status == ReservationStatusCheckedIn
}
