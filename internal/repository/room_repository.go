package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/hotel-management/internal/model"
)

// RoomRepo provides persistence for rooms.  Rooms are reference data:
// inserts and status updates only, no deletes.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = `room_id, room_number, room_type, price_per_night, capacity, amenities, status`

// availableRoomsQuery selects rooms whose status is available and that
// have no active reservation overlapping the requested [check-in,
// check-out) range.  The three sub-cases of the NOT IN predicate
// together implement half-open interval overlap: an existing range that
// covers the query start, one that covers the query end, and one that
// lies fully inside the query range.  A check-out equal to another
// reservation's check-in does not overlap, so back-to-back stays are
// allowed.
const availableRoomsQuery = `SELECT ` + roomColumns + ` FROM rooms r
	WHERE r.status = 'available'
	AND r.room_id NOT IN (
		SELECT room_id FROM reservations
		WHERE status IN ('confirmed', 'checked_in')
		AND (
			(check_in_date <= ? AND check_out_date > ?) OR
			(check_in_date < ? AND check_out_date >= ?) OR
			(check_in_date >= ? AND check_out_date <= ?)
		)
	)
	ORDER BY r.room_number`

// Create inserts a new room and populates its generated ID.  It returns
// ErrDuplicateRoomNumber when the room number collides with an existing
// row (MySQL error 1062 on the unique key).
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	const q = `INSERT INTO rooms (room_number, room_type, price_per_night, capacity, amenities, status)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, room.RoomNumber, room.RoomType, room.PricePerNight,
		room.Capacity, room.Amenities, room.Status)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrDuplicateRoomNumber
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = uint64(id)
	return nil
}

// GetByID retrieves a room by its ID.  It returns ErrRoomNotFound when
// no row matches.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE room_id = ?`
	var room model.Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&room.ID, &room.RoomNumber, &room.RoomType, &room.PricePerNight,
		&room.Capacity, &room.Amenities, &room.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// List returns all rooms ordered by room number.  When statusFilter is
// non-empty only rooms with that exact status are returned.
func (r *RoomRepo) List(ctx context.Context, statusFilter string) ([]*model.Room, error) {
	q := `SELECT ` + roomColumns + ` FROM rooms`
	args := make([]interface{}, 0, 1)
	if statusFilter != "" {
		q += ` WHERE status = ?`
		args = append(args, statusFilter)
	}
	q += ` ORDER BY room_number`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return scanRooms(rows)
}

// ListAvailable returns the rooms bookable for the half-open range
// [checkIn, checkOut), ordered by room number.  Dates are ISO formatted
// strings (YYYY-MM-DD) validated by the caller.
func (r *RoomRepo) ListAvailable(ctx context.Context, checkIn, checkOut string) ([]*model.Room, error) {
	rows, err := r.db.QueryContext(ctx, availableRoomsQuery,
		checkIn, checkIn, checkOut, checkOut, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return scanRooms(rows)
}

// ListAvailableTx is ListAvailable inside an existing transaction.  The
// booking flow re-checks availability in the same transaction that
// inserts the reservation so the check and the write land together.
func (r *RoomRepo) ListAvailableTx(ctx context.Context, tx *sql.Tx, checkIn, checkOut string) ([]*model.Room, error) {
	rows, err := tx.QueryContext(ctx, availableRoomsQuery,
		checkIn, checkIn, checkOut, checkOut, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return scanRooms(rows)
}

// UpdateStatus sets a room's status.  The caller validates that status
// is one of the enumerated values.  ErrRoomNotFound is returned when
// the id is unknown.
func (r *RoomRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	var exists uint64
	err := r.db.QueryRowContext(ctx, `SELECT room_id FROM rooms WHERE room_id = ?`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoomNotFound
		}
		return err
	}
	_, err = r.db.ExecContext(ctx, `UPDATE rooms SET status = ? WHERE room_id = ?`, status, id)
	return err
}

// UpdateStatusTx sets a room's status within an existing transaction.
// Used by the lifecycle transitions that flip the room between
// available and occupied together with the reservation update.
func (r *RoomRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error {
	_, err := tx.ExecContext(ctx, `UPDATE rooms SET status = ? WHERE room_id = ?`, status, id)
	return err
}

// Summary returns room counts grouped by status.
func (r *RoomRepo) Summary(ctx context.Context) (*model.RoomSummary, error) {
	const q = `SELECT COUNT(*),
		COALESCE(SUM(status = 'available'), 0),
		COALESCE(SUM(status = 'occupied'), 0),
		COALESCE(SUM(status = 'maintenance'), 0)
	FROM rooms`
	var s model.RoomSummary
	if err := r.db.QueryRowContext(ctx, q).Scan(&s.Total, &s.Available, &s.Occupied, &s.Maintenance); err != nil {
		return nil, err
	}
	return &s, nil
}

// scanRooms drains a rooms result set into model structs.
func scanRooms(rows *sql.Rows) ([]*model.Room, error) {
	defer rows.Close()
	out := make([]*model.Room, 0)
	for rows.Next() {
		room := new(model.Room)
		if err := rows.Scan(&room.ID, &room.RoomNumber, &room.RoomType, &room.PricePerNight,
			&room.Capacity, &room.Amenities, &room.Status); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
