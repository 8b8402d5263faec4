package model

import "time"

// Reservation records a stay booked by a guest for a room over a
// half-open date range [CheckInDate, CheckOutDate).  The total amount
// is computed once at creation (nightly price times nights) and is
// never recomputed afterwards, even if the room price changes.
//
// Fields:
//  ID           – primary key identifier.
//  GuestID      – guest who booked the stay.
//  RoomID       – room being booked.
//  CheckInDate  – first night of the stay.
//  CheckOutDate – day of departure, exclusive.
//  Status       – one of pending, confirmed, checked_in, checked_out,
//                 cancelled.
//  TotalAmount  – fixed price for the whole stay.
//  CreatedAt    – creation timestamp.
type Reservation struct {
	ID           uint64    // reservations.reservation_id
	GuestID      uint64    // reservations.guest_id
	RoomID       uint64    // reservations.room_id
	CheckInDate  time.Time // reservations.check_in_date
	CheckOutDate time.Time // reservations.check_out_date
	Status       string    // reservations.status
	TotalAmount  float64   // reservations.total_amount
	CreatedAt    time.Time // reservations.created_at
}
