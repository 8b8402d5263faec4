// Package model defines the records stored in the hotel database.
// Structs map one-to-one onto table rows; status enumerations and the
// lifecycle guards live in status.go.
package model

// Room is a row in the `rooms` table.  Rooms are reference data: they
// are created once, their nightly price is fixed at creation, and only
// the status field changes afterwards.
//
// Fields:
//  ID            – primary key identifier.
//  RoomNumber    – unique human-facing room number (e.g. "201").
//  RoomType      – free-text category (Single, Double, Suite, ...).
//  PricePerNight – nightly rate used to compute reservation totals.
//  Capacity      – maximum number of guests.
//  Amenities     – comma-separated amenity list; may be empty.
//  Status        – available, occupied or maintenance.
type Room struct {
	ID            uint64  `json:"room_id"`         // rooms.room_id
	RoomNumber    string  `json:"room_number"`     // rooms.room_number
	RoomType      string  `json:"room_type"`       // rooms.room_type
	PricePerNight float64 `json:"price_per_night"` // rooms.price_per_night
	Capacity      uint32  `json:"capacity"`        // rooms.capacity
	Amenities     string  `json:"amenities"`       // rooms.amenities
	Status        string  `json:"status"`          // rooms.status
}

// RoomSummary holds room counts grouped by status for the dashboard
// and the status summary report.
type RoomSummary struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
}
