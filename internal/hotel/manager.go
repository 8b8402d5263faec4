// Package hotel implements the booking facade: the workflows that
// compose rooms, guests, reservations and payments into reserve,
// check-in, check-out and cancel operations plus aggregate reporting.
// All business-rule failures surface as sentinel errors; nothing here
// is fatal and every failure is recoverable by retrying with corrected
// input.
package hotel

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-management/internal/cache"
	"github.com/iliyamo/hotel-management/internal/model"
	"github.com/iliyamo/hotel-management/internal/repository"
)

// Sentinel errors for business-rule violations.  Callers branch on
// them with errors.Is; the repository package owns the not-found and
// duplicate-key sentinels.
var (
	// ErrRoomUnavailable is returned when the requested room is not in
	// the available set for the requested date range.
	ErrRoomUnavailable = errors.New("room is not available for the requested dates")
	// ErrInvalidTransition is returned when a lifecycle operation is
	// attempted on a reservation whose status does not permit it.
	ErrInvalidTransition = errors.New("reservation status does not permit this transition")
	// ErrInvalidRoomStatus is returned when a status value outside
	// available/occupied/maintenance is supplied.
	ErrInvalidRoomStatus = errors.New("unknown room status")
	// ErrInvalidPrice is returned when a negative nightly price is supplied.
	ErrInvalidPrice = errors.New("price per night must not be negative")
	// ErrInvalidCapacity is returned when a zero capacity is supplied.
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

// defaultPaymentMethod is used when checkout is requested without an
// explicit payment method.
const defaultPaymentMethod = "cash"

// Manager is the booking facade.  It owns the store handle and the
// per-table repositories and runs every multi-step lifecycle write in a
// single transaction.  The availability re-check inside Reserve runs in
// the same transaction as the insert; across separate connections the
// read-then-write race of the reference behavior remains, which is an
// accepted property of the single-desk deployment.
type Manager struct {
	db           *sql.DB
	rooms        *repository.RoomRepo
	guests       *repository.GuestRepo
	reservations *repository.ReservationRepo
	payments     *repository.PaymentRepo
	avail        *cache.AvailabilityCache // nil disables caching
}

// New constructs a Manager on top of the given store handle.  avail may
// be nil, in which case availability queries always hit the database.
func New(db *sql.DB, avail *cache.AvailabilityCache) *Manager {
	if db == nil {
		panic("nil db passed to hotel.New")
	}
	return &Manager{
		db:           db,
		rooms:        repository.NewRoomRepo(db),
		guests:       repository.NewGuestRepo(db),
		reservations: repository.NewReservationRepo(db),
		payments:     repository.NewPaymentRepo(db),
		avail:        avail,
	}
}

// AddRoom registers a new room.  status defaults to available when
// empty.  It returns repository.ErrDuplicateRoomNumber when the room
// number is taken.
func (m *Manager) AddRoom(ctx context.Context, number, roomType string, price float64, capacity uint32, amenities, status string) (*model.Room, error) {
	if status == "" {
		status = model.RoomStatusAvailable
	}
	if !model.ValidRoomStatus(status) {
		return nil, ErrInvalidRoomStatus
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if capacity == 0 {
		return nil, ErrInvalidCapacity
	}
	room := &model.Room{
		RoomNumber:    number,
		RoomType:      roomType,
		PricePerNight: price,
		Capacity:      capacity,
		Amenities:     amenities,
		Status:        status,
	}
	if err := m.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	m.invalidateAvailability(ctx)
	return room, nil
}

// Room returns a room by id.
func (m *Manager) Room(ctx context.Context, id uint64) (*model.Room, error) {
	return m.rooms.GetByID(ctx, id)
}

// Rooms returns all rooms ordered by room number, optionally filtered
// by exact status.
func (m *Manager) Rooms(ctx context.Context, statusFilter string) ([]*model.Room, error) {
	return m.rooms.List(ctx, statusFilter)
}

// SetRoomStatus is the administrative status override.  It is allowed
// even while the room has active reservations: availability is keyed on
// reservation overlap for rooms already booked, so this acts as a
// deliberate escape hatch (e.g. taking a room into maintenance).
func (m *Manager) SetRoomStatus(ctx context.Context, id uint64, status string) error {
	if !model.ValidRoomStatus(status) {
		return ErrInvalidRoomStatus
	}
	if err := m.rooms.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	m.invalidateAvailability(ctx)
	return nil
}

// RegisterGuest resolves a guest by phone or creates a new record.  The
// operation is idempotent on the phone number: a second registration
// with the same phone returns the existing guest unchanged.
func (m *Manager) RegisterGuest(ctx context.Context, name, phone, email, address string) (*model.Guest, error) {
	existing, err := m.guests.GetByPhone(ctx, phone)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrGuestNotFound) {
		return nil, err
	}
	g := &model.Guest{Name: name, Phone: phone, Email: email, Address: address}
	if err := m.guests.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Guest returns a guest by id.
func (m *Manager) Guest(ctx context.Context, id uint64) (*model.Guest, error) {
	return m.guests.GetByID(ctx, id)
}

// Guests returns all guests ordered by name.
func (m *Manager) Guests(ctx context.Context) ([]*model.Guest, error) {
	return m.guests.List(ctx)
}

// AvailableRooms returns the rooms bookable for [checkIn, checkOut),
// ordered by room number.  Results are served from the availability
// cache when possible.
func (m *Manager) AvailableRooms(ctx context.Context, checkIn, checkOut string) ([]*model.Room, error) {
	if _, _, _, err := parseStayRange(checkIn, checkOut); err != nil {
		return nil, err
	}
	if m.avail != nil {
		if rooms, ok := m.avail.Get(ctx, checkIn, checkOut); ok {
			return rooms, nil
		}
	}
	rooms, err := m.rooms.ListAvailable(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if m.avail != nil {
		m.avail.Set(ctx, checkIn, checkOut, rooms)
	}
	return rooms, nil
}

// Reserve runs the full booking workflow: it validates the date range,
// resolves or registers the guest, re-checks that the requested room is
// in the available set for the range and creates the reservation in
// status confirmed.  The availability check is authoritative: a room id
// outside the available set is rejected even if a caller's earlier
// listing included it.  The total amount is the nightly price times the
// number of nights, fixed at creation.
func (m *Manager) Reserve(ctx context.Context, guestName, phone string, roomID uint64, checkIn, checkOut, email, address string) (*repository.ReservationDetail, error) {
	in, out, nights, err := parseStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	guest, err := m.RegisterGuest(ctx, guestName, phone, email, address)
	if err != nil {
		return nil, err
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	available, err := m.rooms.ListAvailableTx(ctx, tx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	var room *model.Room
	for _, r := range available {
		if r.ID == roomID {
			room = r
			break
		}
	}
	if room == nil {
		return nil, ErrRoomUnavailable
	}

	res := &model.Reservation{
		GuestID:      guest.ID,
		RoomID:       room.ID,
		CheckInDate:  in,
		CheckOutDate: out,
		TotalAmount:  room.PricePerNight * float64(nights),
	}
	if err := m.reservations.CreateTx(ctx, tx, res); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	m.invalidateAvailability(ctx)
	return m.reservations.GetByID(ctx, res.ID)
}

// CheckIn transitions a confirmed reservation to checked_in and marks
// the room occupied.  Both updates commit together.
func (m *Manager) CheckIn(ctx context.Context, id uint64) (*repository.ReservationDetail, error) {
	det, err := m.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !model.CanCheckIn(det.Status) {
		return nil, ErrInvalidTransition
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := m.reservations.UpdateStatusTx(ctx, tx, id, model.ReservationStatusCheckedIn); err != nil {
		return nil, err
	}
	if err := m.rooms.UpdateStatusTx(ctx, tx, det.RoomID, model.RoomStatusOccupied); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	m.invalidateAvailability(ctx)
	det.Status = model.ReservationStatusCheckedIn
	return det, nil
}

// CheckOut transitions a checked_in reservation to checked_out, records
// exactly one completed payment of the reservation's total amount and
// returns the room to available.  method defaults to cash when empty.
func (m *Manager) CheckOut(ctx context.Context, id uint64, method string) (*repository.ReservationDetail, error) {
	if method == "" {
		method = defaultPaymentMethod
	}
	det, err := m.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !model.CanCheckOut(det.Status) {
		return nil, ErrInvalidTransition
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	payment := &model.Payment{
		ReservationID: det.ID,
		Amount:        det.TotalAmount,
		Method:        method,
	}
	if err := m.payments.CreateTx(ctx, tx, payment); err != nil {
		return nil, err
	}
	if err := m.reservations.UpdateStatusTx(ctx, tx, id, model.ReservationStatusCheckedOut); err != nil {
		return nil, err
	}
	if err := m.rooms.UpdateStatusTx(ctx, tx, det.RoomID, model.RoomStatusAvailable); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	m.invalidateAvailability(ctx)
	det.Status = model.ReservationStatusCheckedOut
	return det, nil
}

// Cancel transitions a pending or confirmed reservation to cancelled.
// The room's status is never touched: a cancellable reservation has not
// occupied its room yet.  Checked-in reservations cannot be cancelled,
// only checked out.
func (m *Manager) Cancel(ctx context.Context, id uint64) (*repository.ReservationDetail, error) {
	det, err := m.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !model.CanCancel(det.Status) {
		return nil, ErrInvalidTransition
	}
	if err := m.reservations.UpdateStatus(ctx, id, model.ReservationStatusCancelled); err != nil {
		return nil, err
	}
	m.invalidateAvailability(ctx)
	det.Status = model.ReservationStatusCancelled
	return det, nil
}

// Reservation returns a reservation joined with guest and room details.
func (m *Manager) Reservation(ctx context.Context, id uint64) (*repository.ReservationDetail, error) {
	return m.reservations.GetByID(ctx, id)
}

// Reservations returns reservations newest first, optionally filtered
// by exact status.
func (m *Manager) Reservations(ctx context.Context, statusFilter string) ([]*repository.ReservationDetail, error) {
	return m.reservations.List(ctx, statusFilter)
}

// Payments returns the payments recorded for a reservation.
func (m *Manager) Payments(ctx context.Context, reservationID uint64) ([]*model.Payment, error) {
	return m.payments.ListByReservation(ctx, reservationID)
}

// Summary returns room counts by status.
func (m *Manager) Summary(ctx context.Context) (*model.RoomSummary, error) {
	return m.rooms.Summary(ctx)
}

// Revenue returns the sum of total amounts over checked-out reservations.
func (m *Manager) Revenue(ctx context.Context) (float64, error) {
	return m.reservations.SumRevenue(ctx)
}

// ActiveCount returns the number of confirmed or checked-in reservations.
func (m *Manager) ActiveCount(ctx context.Context) (int64, error) {
	return m.reservations.CountActive(ctx)
}

func (m *Manager) invalidateAvailability(ctx context.Context) {
	if m.avail != nil {
		m.avail.Invalidate(ctx)
	}
}
