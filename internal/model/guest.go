package model

import "time"

// Guest is a row in the `guests` table.  Guests are registered on
// first contact; the phone number is the natural key the booking flow
// uses to resolve returning guests.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – guest's full name.
//  Email     – contact email; may be empty.
//  Phone     – contact phone, used for dedup on repeat bookings.
//  Address   – postal address; may be empty.
//  CreatedAt – timestamp of first registration.
type Guest struct {
	ID        uint64    `json:"guest_id"`   // guests.guest_id
	Name      string    `json:"name"`       // guests.name
	Email     string    `json:"email"`      // guests.email
	Phone     string    `json:"phone"`      // guests.phone
	Address   string    `json:"address"`    // guests.address
	CreatedAt time.Time `json:"created_at"` // guests.created_at
}
