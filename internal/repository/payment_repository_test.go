package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-management/internal/model"
)

func TestPaymentCreateTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	paid := time.Date(2024, 3, 4, 11, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO payments`)).
		WithArgs(5, 560.00, "card").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT payment_date FROM payments WHERE payment_id = ?`)).
		WithArgs(11).
		WillReturnRows(mock.NewRows([]string{"payment_date"}).AddRow(paid))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	p := &model.Payment{ReservationID: 5, Amount: 560.00, Method: "card"}
	require.NoError(t, repo.CreateTx(context.Background(), tx, p))
	require.NoError(t, tx.Commit())

	assert.Equal(t, uint64(11), p.ID)
	assert.Equal(t, model.PaymentStatusCompleted, p.Status)
	assert.Equal(t, paid, p.PaidAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentListByReservation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepo(db)

	cols := []string{"payment_id", "reservation_id", "amount", "payment_method", "payment_status", "payment_date"}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM payments WHERE reservation_id = ?`)).
		WithArgs(5).
		WillReturnRows(mock.NewRows(cols).
			AddRow(11, 5, 560.00, "card", "completed", time.Now()))

	items, err := repo.ListByReservation(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 560.00, items[0].Amount)
	assert.Equal(t, "card", items[0].Method)
	assert.NoError(t, mock.ExpectationsWereMet())
}
