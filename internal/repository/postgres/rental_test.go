package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental-backend/internal/domain"
)

func newRentalMockDB(t *testing.T) (*rentalRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &rentalRepository{db: db}, mock
}

func sampleRental() *domain.Rental {
	now := time.Now()
	return &domain.Rental{
		AccountID:      7,
		CarID:          3,
		Days:           3,
		StartAt:        now,
		ScheduledEndAt: now.AddDate(0, 0, 3),
		Status:         domain.RentalStatusRented,
		FeePolicy:      "BASE",
		MembershipTier: "SILVER",
		Options:        []string{"Blackbox"},
		BaseFee:        decimal.NewFromInt(270000),
		OptionFee:      decimal.NewFromInt(15000),
		Discount:       decimal.Zero,
		Penalty:        decimal.Zero,
		TotalFee:       decimal.NewFromInt(285000),
	}
}

func TestCreateIfCarFree(t *testing.T) {
	repo, mock := newRentalMockDB(t)

	mock.ExpectQuery(`INSERT INTO rentals .+ WHERE NOT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	rental := sampleRental()
	err := repo.CreateIfCarFree(context.Background(), rental)

	require.NoError(t, err)
	assert.Equal(t, int64(42), rental.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfCarFreeGuardRejects(t *testing.T) {
	repo, mock := newRentalMockDB(t)

	// The guard swallows the insert: zero rows back means the car already
	// has an active rental.
	mock.ExpectQuery(`INSERT INTO rentals .+ WHERE NOT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.CreateIfCarFree(context.Background(), sampleRental())
	assert.ErrorIs(t, err, domain.ErrCarAlreadyRented)
}

func TestMarkReturnedIfRented(t *testing.T) {
	repo, mock := newRentalMockDB(t)

	mock.ExpectExec(`UPDATE rentals SET status = 'RETURNED'`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.MarkReturnedIfRented(context.Background(), 42,
		decimal.Zero, decimal.NewFromInt(13500), decimal.NewFromInt(256500), time.Now())

	require.NoError(t, err)
	assert.True(t, updated)
}

func TestMarkReturnedIfRentedAlreadySettled(t *testing.T) {
	repo, mock := newRentalMockDB(t)

	mock.ExpectExec(`UPDATE rentals SET status = 'RETURNED'`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.MarkReturnedIfRented(context.Background(), 42,
		decimal.Zero, decimal.Zero, decimal.Zero, time.Now())

	require.NoError(t, err)
	assert.False(t, updated, "second settle must report no rows matched")
}

func rentalRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "account_id", "car_id", "days", "start_at", "scheduled_end_at", "returned_at", "status",
		"fee_policy", "membership_tier", "options", "base_fee", "option_fee", "discount", "penalty", "total_fee",
		"created_on", "updated_on",
	})
	now := time.Now()
	for _, id := range ids {
		rows.AddRow(id, int32(7), int32(3), int32(3), now, now.AddDate(0, 0, 3), nil, "RENTED",
			"BASE", "SILVER", "{Blackbox}", "270000", "15000", "0", "0", "285000", now, now)
	}
	return rows
}

func TestRentalGetByID(t *testing.T) {
	repo, mock := newRentalMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM rentals WHERE id`).
		WithArgs(int64(42)).
		WillReturnRows(rentalRows(42))

	rental, err := repo.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), rental.ID)
	assert.Equal(t, domain.RentalStatusRented, rental.Status)
	assert.Nil(t, rental.ReturnedAt)
	assert.Equal(t, []string{"Blackbox"}, rental.Options)
	assert.True(t, rental.BaseFee.Equal(decimal.NewFromInt(270000)))
}

func TestRentalGetByIDNotFound(t *testing.T) {
	repo, mock := newRentalMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM rentals WHERE id`).
		WithArgs(int64(404)).
		WillReturnRows(rentalRows())

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrRentalNotFound)
}

func TestGetActiveByCarFree(t *testing.T) {
	repo, mock := newRentalMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM rentals WHERE car_id = \$1 AND status = 'RENTED'`).
		WithArgs(int32(3)).
		WillReturnRows(rentalRows())

	_, err := repo.GetActiveByCar(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrRentalNotFound)
}

func TestListByAccount(t *testing.T) {
	repo, mock := newRentalMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM rentals WHERE account_id`).
		WithArgs(int32(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int32(2)))
	mock.ExpectQuery(`SELECT .+ FROM rentals WHERE account_id .+ LIMIT`).
		WithArgs(int32(7), int32(20), int32(0)).
		WillReturnRows(rentalRows(41, 42))

	rentals, total, err := repo.ListByAccount(context.Background(), 7, 1, 20)

	require.NoError(t, err)
	assert.Equal(t, int32(2), total)
	require.Len(t, rentals, 2)
	assert.Equal(t, int64(41), rentals[0].ID)
}

func TestListOverdue(t *testing.T) {
	repo, mock := newRentalMockDB(t)

	asOf := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM rentals WHERE status = 'RENTED' AND scheduled_end_at`).
		WithArgs(asOf).
		WillReturnRows(rentalRows(42))

	rentals, err := repo.ListOverdue(context.Background(), asOf)

	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, int64(42), rentals[0].ID)
}
