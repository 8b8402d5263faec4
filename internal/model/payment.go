package model

import "time"

// Payment is a row in the `payments` table.  Exactly one payment is
// recorded per checkout and its amount always equals the reservation's
// total amount.  Payments are append-only and never mutated.
//
// Fields:
//  ID            – primary key identifier.
//  ReservationID – reservation being settled.
//  Amount        – amount paid, equals the reservation total.
//  Method        – free-text method (cash, card, online).
//  Status        – payment status; always completed in current flows.
//  PaidAt        – timestamp of the payment.
type Payment struct {
	ID            uint64    `json:"payment_id"`     // payments.payment_id
	ReservationID uint64    `json:"reservation_id"` // payments.reservation_id
	Amount        float64   `json:"amount"`         // payments.amount
	Method        string    `json:"payment_method"` // payments.payment_method
	Status        string    `json:"payment_status"` // payments.payment_status
	PaidAt        time.Time `json:"payment_date"`   // payments.payment_date
}
