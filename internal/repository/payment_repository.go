package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-management/internal/model"
)

// PaymentRepo provides persistence for payments.  Payments are written
// exactly once per checkout, always in status completed, and are never
// mutated afterwards.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo returns a PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// CreateTx inserts a completed payment within the scope of an existing
// transaction and populates the generated ID and payment timestamp.
// The checkout flow runs this in the same transaction as the
// reservation and room status updates.
func (r *PaymentRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.Payment) error {
	const q = `INSERT INTO payments (reservation_id, amount, payment_method, payment_status)
	           VALUES (?, ?, ?, 'completed')`
	res, err := tx.ExecContext(ctx, q, p.ReservationID, p.Amount, p.Method)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	p.Status = model.PaymentStatusCompleted
	const sel = `SELECT payment_date FROM payments WHERE payment_id = ?`
	return tx.QueryRowContext(ctx, sel, p.ID).Scan(&p.PaidAt)
}

// ListByReservation returns all payments for a reservation ordered by
// payment date.  Under current flows at most one row exists.
func (r *PaymentRepo) ListByReservation(ctx context.Context, reservationID uint64) ([]*model.Payment, error) {
	const q = `SELECT payment_id, reservation_id, amount, payment_method, payment_status, payment_date
	           FROM payments WHERE reservation_id = ? ORDER BY payment_date`
	rows, err := r.db.QueryContext(ctx, q, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Payment, 0)
	for rows.Next() {
		p := new(model.Payment)
		if err := rows.Scan(&p.ID, &p.ReservationID, &p.Amount, &p.Method, &p.Status, &p.PaidAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
