package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/hotel-management/internal/model"
)

// ReservationRepo provides persistence for reservations.  Reservations
// link a guest to a room over a half-open date range and carry the
// lifecycle status.  Status transitions that have side effects on other
// tables run through the ...Tx variants so the caller can commit them
// atomically.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// isoDate is the wire format for check-in/check-out dates.
const isoDate = "2006-01-02"

// ReservationDetail is a reservation joined with the guest's name and
// phone and the room's number, type and nightly price.  It is the shape
// handlers and the CLI render.  Dates are ISO formatted strings.
type ReservationDetail struct {
	ID            uint64  `json:"reservation_id"`
	GuestID       uint64  `json:"guest_id"`
	RoomID        uint64  `json:"room_id"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	CreatedAt     string  `json:"created_at"`
	GuestName     string  `json:"guest_name"`
	GuestPhone    string  `json:"guest_phone"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
}

const detailQuery = `SELECT r.reservation_id, r.guest_id, r.room_id, r.check_in_date, r.check_out_date,
		r.status, r.total_amount, r.created_at,
		g.name, g.phone,
		rm.room_number, rm.room_type, rm.price_per_night
	FROM reservations r
	JOIN guests g ON g.guest_id = r.guest_id
	JOIN rooms rm ON rm.room_id = r.room_id`

// CreateTx inserts a new reservation within the scope of an existing
// transaction and populates the generated ID and creation timestamp on
// the provided record.  The caller must commit or roll back the
// transaction.  Reservations are created directly in status confirmed;
// there is no separate approval step in the booking workflow.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations (guest_id, room_id, check_in_date, check_out_date, total_amount, status)
	           VALUES (?, ?, ?, ?, ?, 'confirmed')`
	result, err := tx.ExecContext(ctx, q, res.GuestID, res.RoomID,
		res.CheckInDate.Format(isoDate), res.CheckOutDate.Format(isoDate), res.TotalAmount)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	res.Status = model.ReservationStatusConfirmed
	// Read the row back to pick up created_at.
	const sel = `SELECT created_at FROM reservations WHERE reservation_id = ?`
	return tx.QueryRowContext(ctx, sel, res.ID).Scan(&res.CreatedAt)
}

// GetByID returns a reservation joined with guest and room details.
// ErrReservationNotFound is returned when no row matches.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*ReservationDetail, error) {
	q := detailQuery + ` WHERE r.reservation_id = ?`
	var (
		det       ReservationDetail
		in, out   time.Time
		createdAt time.Time
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&det.ID, &det.GuestID, &det.RoomID, &in, &out,
		&det.Status, &det.TotalAmount, &createdAt,
		&det.GuestName, &det.GuestPhone,
		&det.RoomNumber, &det.RoomType, &det.PricePerNight,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	det.CheckInDate = in.Format(isoDate)
	det.CheckOutDate = out.Format(isoDate)
	det.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return &det, nil
}

// List returns reservations joined with guest and room details, newest
// first.  When statusFilter is non-empty only reservations with that
// exact status are returned.
func (r *ReservationRepo) List(ctx context.Context, statusFilter string) ([]*ReservationDetail, error) {
	q := detailQuery
	args := make([]interface{}, 0, 1)
	if statusFilter != "" {
		q += ` WHERE r.status = ?`
		args = append(args, statusFilter)
	}
	q += ` ORDER BY r.created_at DESC, r.reservation_id DESC`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*ReservationDetail, 0)
	for rows.Next() {
		var (
			det       ReservationDetail
			in, co    time.Time
			createdAt time.Time
		)
		if err := rows.Scan(
			&det.ID, &det.GuestID, &det.RoomID, &in, &co,
			&det.Status, &det.TotalAmount, &createdAt,
			&det.GuestName, &det.GuestPhone,
			&det.RoomNumber, &det.RoomType, &det.PricePerNight,
		); err != nil {
			return nil, err
		}
		det.CheckInDate = in.Format(isoDate)
		det.CheckOutDate = co.Format(isoDate)
		det.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		out = append(out, &det)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus sets a reservation's status outside of any transaction.
// Used for the cancel transition, which touches no other table.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE reservations SET status = ? WHERE reservation_id = ?`, status, id)
	return err
}

// UpdateStatusTx sets a reservation's status within an existing
// transaction, for transitions coupled to room status or payments.
func (r *ReservationRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error {
	_, err := tx.ExecContext(ctx, `UPDATE reservations SET status = ? WHERE reservation_id = ?`, status, id)
	return err
}

// SumRevenue returns the total amount over all checked-out reservations.
func (r *ReservationRepo) SumRevenue(ctx context.Context) (float64, error) {
	const q = `SELECT COALESCE(SUM(total_amount), 0) FROM reservations WHERE status = 'checked_out'`
	var sum float64
	if err := r.db.QueryRowContext(ctx, q).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// CountActive returns the number of reservations in status confirmed or
// checked_in.
func (r *ReservationRepo) CountActive(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM reservations WHERE status IN ('confirmed', 'checked_in')`
	var n int64
	if err := r.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
