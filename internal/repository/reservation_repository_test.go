package repository

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
)

var detailCols = []string{
	"reservation_id", "guest_id", "room_id", "check_in_date", "check_out_date",
	"status", "total_amount", "created_at",
	"name", "phone", "room_number", "room_type", "price_per_night",
}

func TestReservationCreateTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	created := time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reservations`)).
		WithArgs(1, 2, "2024-03-01", "2024-03-04", 300.00).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT created_at FROM reservations WHERE reservation_id = ?`)).
		WithArgs(5).
		WillReturnRows(mock.NewRows([]string{"created_at"}).AddRow(created))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	res := &model.Reservation{
		GuestID:      1,
		RoomID:       2,
		CheckInDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		TotalAmount:  300.00,
	}
	require.NoError(t, repo.CreateTx(context.Background(), tx, res))
	require.NoError(t, tx.Commit())

	assert.Equal(t, uint64(5), res.ID)
	assert.Equal(t, model.ReservationStatusConfirmed, res.Status)
	assert.Equal(t, created, res.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationGetByIDFormatsDates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.reservation_id = ?`)).
		WithArgs(5).
		WillReturnRows(mock.NewRows(detailCols).AddRow(
			5, 1, 2,
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			"confirmed", 300.00, time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC),
			"Alice Smith", "555-0101", "201", "Double", 100.00,
		))

	det, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", det.CheckInDate)
	assert.Equal(t, "2024-03-04", det.CheckOutDate)
	assert.Equal(t, "2024-02-20T10:00:00Z", det.CreatedAt)
	assert.Equal(t, "Alice Smith", det.GuestName)
	assert.Equal(t, "201", det.RoomNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.reservation_id = ?`)).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationListStatusFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.status = ?`)).
		WithArgs("confirmed").
		WillReturnRows(mock.NewRows(detailCols).AddRow(
			5, 1, 2,
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			"confirmed", 300.00, time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC),
			"Alice Smith", "555-0101", "201", "Double", 100.00,
		))

	items, err := repo.List(context.Background(), "confirmed")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint64(5), items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationSumRevenue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`COALESCE(SUM(total_amount), 0)`)).
		WillReturnRows(mock.NewRows([]string{"sum"}).AddRow(860.00))

	sum, err := repo.SumRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 860.00, sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationCountActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM reservations`)).
		WillReturnRows(mock.NewRows([]string{"n"}).AddRow(3))

	n, err := repo.CountActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
