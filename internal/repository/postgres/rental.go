package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const rentalColumns = `id, account_id, car_id, days, start_at, scheduled_end_at, returned_at, status,
	fee_policy, membership_tier, options, base_fee, option_fee, discount, penalty, total_fee, created_on, updated_on`

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// CreateIfCarFree closes the double-booking race with a single guarded
// INSERT: the row is only written when no RENTED rental exists for the car.
func (r *rentalRepository) CreateIfCarFree(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (account_id, car_id, days, start_at, scheduled_end_at, status,
	              fee_policy, membership_tier, options, base_fee, option_fee, discount, penalty, total_fee,
	              created_on, updated_on)
	          SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
	          WHERE NOT EXISTS (SELECT 1 FROM rentals WHERE car_id = $2 AND status = 'RENTED')
	          RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		rt.AccountID, rt.CarID, rt.Days, rt.StartAt, rt.ScheduledEndAt, rt.Status,
		rt.FeePolicy, rt.MembershipTier, pq.Array(rt.Options),
		rt.BaseFee, rt.OptionFee, rt.Discount, rt.Penalty, rt.TotalFee,
		now, now,
	).Scan(&rt.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrCarAlreadyRented
	}
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	return rt, err
}

func (r *rentalRepository) GetActiveByCar(ctx context.Context, carID int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE car_id = $1 AND status = 'RENTED' LIMIT 1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, carID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	return rt, err
}

func (r *rentalRepository) MarkReturnedIfRented(ctx context.Context, id int64, penalty, discount, totalFee decimal.Decimal, returnedAt time.Time) (bool, error) {
	query := `UPDATE rentals SET status = 'RETURNED', returned_at = $1, penalty = $2, discount = $3,
	              total_fee = $4, updated_on = $5
	          WHERE id = $6 AND status = 'RENTED'`
	res, err := r.db.ExecContext(ctx, query, returnedAt, penalty, discount, totalFee, time.Now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *rentalRepository) ListByAccount(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.Rental, int32, error) {
	where := `WHERE account_id = $1`
	return r.listPaged(ctx, where, []interface{}{accountID}, page, pageSize)
}

func (r *rentalRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	where := ""
	args := []interface{}{}
	if status != "" {
		where = `WHERE status = $1`
		args = append(args, status)
	}
	return r.listPaged(ctx, where, args, page, pageSize)
}

func (r *rentalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = 'RENTED' AND scheduled_end_at < $1 ORDER BY scheduled_end_at`
	rows, err := r.db.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) listPaged(ctx context.Context, where string, args []interface{}, page, pageSize int32) ([]domain.Rental, int32, error) {
	countQuery := `SELECT count(*) FROM rentals ` + where
	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	argIdx := len(args) + 1
	query := fmt.Sprintf(`SELECT %s FROM rentals %s ORDER BY created_on DESC LIMIT $%d OFFSET $%d`,
		rentalColumns, where, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, count, rows.Err()
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var returnedAt sql.NullTime
	var createdOn, updatedOn time.Time
	err := row.Scan(
		&rt.ID, &rt.AccountID, &rt.CarID, &rt.Days, &rt.StartAt, &rt.ScheduledEndAt, &returnedAt, &rt.Status,
		&rt.FeePolicy, &rt.MembershipTier, pq.Array(&rt.Options),
		&rt.BaseFee, &rt.OptionFee, &rt.Discount, &rt.Penalty, &rt.TotalFee,
		&createdOn, &updatedOn,
	)
	if err != nil {
		return nil, err
	}
	if returnedAt.Valid {
		t := returnedAt.Time
		rt.ReturnedAt = &t
	}
	rt.CreatedOn = createdOn.Format(time.RFC3339)
	rt.UpdatedOn = updatedOn.Format(time.RFC3339)
	return rt, nil
}
