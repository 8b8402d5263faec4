// Package queue defines the reservation lifecycle events exchanged over
// the message broker and the background consumer that records them.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-management/internal/repository"
)

// QueueName is the durable queue carrying all reservation lifecycle
// events.
const QueueName = "reservation.lifecycle"

// Event types published by the booking workflows.
const (
	EventReservationConfirmed  = "reservation.confirmed"
	EventReservationCheckedIn  = "reservation.checked_in"
	EventReservationCheckedOut = "reservation.checked_out"
	EventReservationCancelled  = "reservation.cancelled"
)

// ReservationEvent is published whenever a reservation changes state.
// It carries enough information for downstream consumers to log, notify
// or feed analytics without querying the primary database.
type ReservationEvent struct {
	EventID       string  `json:"event_id"`
	Type          string  `json:"type"`
	ReservationID uint64  `json:"reservation_id"`
	GuestName     string  `json:"guest_name"`
	RoomNumber    string  `json:"room_number"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	OccurredAt    string  `json:"occurred_at"`
}

// NewReservationEvent builds an event of the given type from a
// reservation detail, stamping a fresh event ID and the current time.
func NewReservationEvent(eventType string, det *repository.ReservationDetail) ReservationEvent {
	return ReservationEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		ReservationID: det.ID,
		GuestName:     det.GuestName,
		RoomNumber:    det.RoomNumber,
		CheckInDate:   det.CheckInDate,
		CheckOutDate:  det.CheckOutDate,
		TotalAmount:   det.TotalAmount,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
}
