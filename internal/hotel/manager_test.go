package hotel

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-management/internal/model"
	"github.com/iliyamo/hotel-management/internal/repository"
)

// newManager wires a Manager onto a sqlmock database with no cache.
func newManager(t *testing.T) (*Manager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, nil), mock
}

var (
	guestByPhoneQuery = regexp.QuoteMeta(`SELECT guest_id, name, email, phone, address, created_at FROM guests WHERE phone = ?`)
	availabilityQuery = regexp.QuoteMeta(`NOT IN (`)
	detailByIDQuery   = regexp.QuoteMeta(`WHERE r.reservation_id = ?`)
)

var guestColumns = []string{"guest_id", "name", "email", "phone", "address", "created_at"}

var roomColumns = []string{"room_id", "room_number", "room_type", "price_per_night", "capacity", "amenities", "status"}

var detailColumns = []string{
	"reservation_id", "guest_id", "room_id", "check_in_date", "check_out_date",
	"status", "total_amount", "created_at",
	"name", "phone", "room_number", "room_type", "price_per_night",
}

func detailRow(mock sqlmock.Sqlmock, id uint64, status string, total float64) *sqlmock.Rows {
	return mock.NewRows(detailColumns).AddRow(
		id, 1, 2,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		status, total, time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC),
		"Alice Smith", "555-0101", "201", "Double", 100.00,
	)
}

func TestRegisterGuestReturnsExisting(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectQuery(guestByPhoneQuery).WithArgs("555-0101").
		WillReturnRows(mock.NewRows(guestColumns).
			AddRow(7, "Alice Smith", "alice@example.com", "555-0101", "", time.Now()))

	g, err := m.RegisterGuest(context.Background(), "Alice Smith", "555-0101", "", "")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), g.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterGuestCreatesWhenUnknown(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectQuery(guestByPhoneQuery).WithArgs("555-0202").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO guests`)).
		WithArgs("Bob Jones", "bob@example.com", "555-0202", "12 Elm St").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT created_at FROM guests WHERE guest_id = ?`)).
		WithArgs(9).
		WillReturnRows(mock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	g, err := m.RegisterGuest(context.Background(), "Bob Jones", "555-0202", "bob@example.com", "12 Elm St")
	require.NoError(t, err)
	assert.Equal(t, uint64(9), g.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveComputesTotalFromNights(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectQuery(guestByPhoneQuery).WithArgs("555-0101").
		WillReturnRows(mock.NewRows(guestColumns).
			AddRow(1, "Alice Smith", "", "555-0101", "", time.Now()))

	mock.ExpectBegin()
	mock.ExpectQuery(availabilityQuery).
		WithArgs("2024-03-01", "2024-03-01", "2024-03-04", "2024-03-04", "2024-03-01", "2024-03-04").
		WillReturnRows(mock.NewRows(roomColumns).
			AddRow(2, "201", "Double", 100.00, 2, "WiFi", "available"))
	// Three nights at 100.00/night.
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reservations`)).
		WithArgs(1, 2, "2024-03-01", "2024-03-04", 300.00).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT created_at FROM reservations WHERE reservation_id = ?`)).
		WithArgs(5).
		WillReturnRows(mock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	mock.ExpectQuery(detailByIDQuery).WithArgs(5).
		WillReturnRows(detailRow(mock, 5, model.ReservationStatusConfirmed, 300.00))

	det, err := m.Reserve(context.Background(), "Alice Smith", "555-0101", 2, "2024-03-01", "2024-03-04", "", "")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), det.ID)
	assert.Equal(t, 300.00, det.TotalAmount)
	assert.Equal(t, model.ReservationStatusConfirmed, det.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveRejectsUnavailableRoom(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectQuery(guestByPhoneQuery).WithArgs("555-0101").
		WillReturnRows(mock.NewRows(guestColumns).
			AddRow(1, "Alice Smith", "", "555-0101", "", time.Now()))

	mock.ExpectBegin()
	// Room 2 is not in the available set; only room 3 is.
	mock.ExpectQuery(availabilityQuery).
		WillReturnRows(mock.NewRows(roomColumns).
			AddRow(3, "301", "Suite", 200.00, 4, "", "available"))
	mock.ExpectRollback()

	_, err := m.Reserve(context.Background(), "Alice Smith", "555-0101", 2, "2024-03-01", "2024-03-04", "", "")
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveRejectsInvalidRangeBeforeAnyWrite(t *testing.T) {
	m, mock := newManager(t)

	_, err := m.Reserve(context.Background(), "Alice Smith", "555-0101", 2, "2024-03-04", "2024-03-01", "", "")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckInOnlyFromConfirmed(t *testing.T) {
	m, mock := newManager(t)

	for _, status := range []string{
		model.ReservationStatusPending,
		model.ReservationStatusCheckedIn,
		model.ReservationStatusCheckedOut,
		model.ReservationStatusCancelled,
	} {
		mock.ExpectQuery(detailByIDQuery).WithArgs(5).
			WillReturnRows(detailRow(mock, 5, status, 300.00))

		_, err := m.CheckIn(context.Background(), 5)
		assert.ErrorIs(t, err, ErrInvalidTransition, "status %s", status)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckInMarksRoomOccupied(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectQuery(detailByIDQuery).WithArgs(5).
		WillReturnRows(detailRow(mock, 5, model.ReservationStatusConfirmed, 300.00))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reservations SET status = ?`)).
		WithArgs(model.ReservationStatusCheckedIn, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE rooms SET status = ?`)).
		WithArgs(model.RoomStatusOccupied, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	det, err := m.CheckIn(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusCheckedIn, det.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckOutRecordsSinglePayment(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectQuery(detailByIDQuery).WithArgs(5).
		WillReturnRows(detailRow(mock, 5, model.ReservationStatusCheckedIn, 560.00))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO payments`)).
		WithArgs(5, 560.00, "card").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT payment_date FROM payments WHERE payment_id = ?`)).
		WithArgs(11).
		WillReturnRows(mock.NewRows([]string{"payment_date"}).AddRow(time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reservations SET status = ?`)).
		WithArgs(model.ReservationStatusCheckedOut, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE rooms SET status = ?`)).
		WithArgs(model.RoomStatusAvailable, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	det, err := m.CheckOut(context.Background(), 5, "card")
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusCheckedOut, det.Status)
	assert.Equal(t, 560.00, det.TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckOutDefaultsToCash(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectQuery(detailByIDQuery).WithArgs(5).
		WillReturnRows(detailRow(mock, 5, model.ReservationStatusCheckedIn, 300.00))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO payments`)).
		WithArgs(5, 300.00, "cash").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT payment_date FROM payments WHERE payment_id = ?`)).
		WithArgs(12).
		WillReturnRows(mock.NewRows([]string{"payment_date"}).AddRow(time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reservations SET status = ?`)).
		WithArgs(model.ReservationStatusCheckedOut, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE rooms SET status = ?`)).
		WithArgs(model.RoomStatusAvailable, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := m.CheckOut(context.Background(), 5, "")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckOutOnlyFromCheckedIn(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectQuery(detailByIDQuery).WithArgs(5).
		WillReturnRows(detailRow(mock, 5, model.ReservationStatusConfirmed, 300.00))

	_, err := m.CheckOut(context.Background(), 5, "card")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelLeavesRoomAlone(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectQuery(detailByIDQuery).WithArgs(5).
		WillReturnRows(detailRow(mock, 5, model.ReservationStatusConfirmed, 300.00))
	// Only the reservation row changes; no room update, no transaction.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reservations SET status = ?`)).
		WithArgs(model.ReservationStatusCancelled, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	det, err := m.Cancel(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusCancelled, det.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelRejectsCheckedIn(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectQuery(detailByIDQuery).WithArgs(5).
		WillReturnRows(detailRow(mock, 5, model.ReservationStatusCheckedIn, 300.00))

	_, err := m.Cancel(context.Background(), 5)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationNotFoundPropagates(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectQuery(detailByIDQuery).WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := m.CheckIn(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddRoomValidation(t *testing.T) {
	m, mock := newManager(t)

	_, err := m.AddRoom(context.Background(), "101", "Single", -1, 1, "", "")
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = m.AddRoom(context.Background(), "101", "Single", 80, 0, "", "")
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = m.AddRoom(context.Background(), "101", "Single", 80, 1, "", "broken")
	assert.ErrorIs(t, err, ErrInvalidRoomStatus)

	assert.NoError(t, mock.ExpectationsWereMet())
}
