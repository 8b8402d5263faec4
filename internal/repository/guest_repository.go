package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-management/internal/model"
)

// GuestRepo provides persistence for guests.  Guests are created on
// first contact and never updated or deleted afterwards; the phone
// number acts as the natural dedup key.
type GuestRepo struct {
	db *sql.DB
}

// NewGuestRepo returns a GuestRepo bound to the given database.
func NewGuestRepo(db *sql.DB) *GuestRepo { return &GuestRepo{db: db} }

const guestColumns = `guest_id, name, email, phone, address, created_at`

// Create inserts a new guest and populates the generated ID and the
// database-assigned creation timestamp.
func (r *GuestRepo) Create(ctx context.Context, g *model.Guest) error {
	const q = `INSERT INTO guests (name, email, phone, address) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, g.Name, g.Email, g.Phone, g.Address)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	// Read the row back to pick up created_at.
	const sel = `SELECT created_at FROM guests WHERE guest_id = ?`
	return r.db.QueryRowContext(ctx, sel, g.ID).Scan(&g.CreatedAt)
}

// GetByID retrieves a guest by id.  ErrGuestNotFound is returned when
// no row matches.
func (r *GuestRepo) GetByID(ctx context.Context, id uint64) (*model.Guest, error) {
	const q = `SELECT ` + guestColumns + ` FROM guests WHERE guest_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// GetByPhone retrieves a guest by phone number.  ErrGuestNotFound is
// returned when no guest has registered with that phone.
func (r *GuestRepo) GetByPhone(ctx context.Context, phone string) (*model.Guest, error) {
	const q = `SELECT ` + guestColumns + ` FROM guests WHERE phone = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, phone))
}

// List returns all guests ordered by name.
func (r *GuestRepo) List(ctx context.Context) ([]*model.Guest, error) {
	const q = `SELECT ` + guestColumns + ` FROM guests ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Guest, 0)
	for rows.Next() {
		g := new(model.Guest)
		if err := rows.Scan(&g.ID, &g.Name, &g.Email, &g.Phone, &g.Address, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GuestRepo) scanOne(row *sql.Row) (*model.Guest, error) {
	var g model.Guest
	err := row.Scan(&g.ID, &g.Name, &g.Email, &g.Phone, &g.Address, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return &g, nil
}
