package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (name, type, status, daily_rate, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now().Format("2006-01-02")
	c.CreatedOn = now
	return r.db.QueryRowContext(ctx, query, c.Name, c.Type, c.Status, c.DailyRate, now).Scan(&c.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	query := `SELECT id, name, type, status, daily_rate, created_on FROM cars WHERE id = $1`
	c, err := scanCar(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCarNotFound
	}
	return c, err
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT id, name, type, status, daily_rate, created_on FROM cars ORDER BY id`
	return r.queryCars(ctx, query)
}

func (r *carRepository) ListAvailable(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT id, name, type, status, daily_rate, created_on FROM cars WHERE status = 'AVAILABLE' ORDER BY id`
	return r.queryCars(ctx, query)
}

func (r *carRepository) UpdateStatus(ctx context.Context, id int32, status domain.CarStatus) error {
	query := `UPDATE cars SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

func (r *carRepository) queryCars(ctx context.Context, query string, args ...interface{}) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *c)
	}
	return cars, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCar(row rowScanner) (*domain.Car, error) {
	c := &domain.Car{}
	var rate decimal.NullDecimal
	var createdOn time.Time
	if err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Status, &rate, &createdOn); err != nil {
		return nil, err
	}
	// A missing or non-positive stored rate falls back to the category
	// default rather than failing the load.
	if rate.Valid && rate.Decimal.IsPositive() {
		c.DailyRate = rate.Decimal
	} else {
		c.DailyRate = c.Type.BaseRate()
	}
	c.CreatedOn = createdOn.Format("2006-01-02")
	return c, nil
}
