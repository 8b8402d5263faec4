// Package repository defines sentinel error values reused across the
// individual repositories.  Higher layers branch on them with errors.Is
// to distinguish expected business failures (duplicate room number,
// unknown identifier) from genuine database errors.
package repository

import "errors"

// ErrRoomNotFound is returned when a room lookup or status update
// references an unknown room id.
var ErrRoomNotFound = errors.New("room not found")

// ErrGuestNotFound is returned when a guest lookup by id or phone
// matches no row.
var ErrGuestNotFound = errors.New("guest not found")

// ErrReservationNotFound is returned when a reservation lookup matches
// no row.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrDuplicateRoomNumber is returned when inserting a room whose number
// already exists.  Room numbers are unique across the hotel.
var ErrDuplicateRoomNumber = errors.New("room number already exists")
