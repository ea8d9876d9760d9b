package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	ListAvailable(ctx context.Context) ([]domain.Car, error)
	// UpdateStatus persists the state field only; category and rate are
	// immutable after creation.
	UpdateStatus(ctx context.Context, id int32, status domain.CarStatus) error
	Delete(ctx context.Context, id int32) error
}

type RentalRepository interface {
	// CreateIfCarFree inserts the rental only when the car has no active
	// rental, as a single guarded statement. Returns
	// domain.ErrCarAlreadyRented when the guard rejects the insert.
	CreateIfCarFree(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	// GetActiveByCar returns the RENTED rental for a car, or
	// domain.ErrRentalNotFound when the car is free.
	GetActiveByCar(ctx context.Context, carID int32) (*domain.Rental, error)
	// MarkReturnedIfRented settles the rental with a conditional update
	// (WHERE status='RENTED'); reports false when zero rows matched.
	MarkReturnedIfRented(ctx context.Context, id int64, penalty, discount, totalFee decimal.Decimal, returnedAt time.Time) (bool, error)
	ListByAccount(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.Rental, int32, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	// ListOverdue returns RENTED rentals whose scheduled end is before asOf.
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error)
}

type AccountRepository interface {
	Create(ctx context.Context, acc *domain.Account) error
	GetByID(ctx context.Context, id int32) (*domain.Account, error)
	GetByLoginID(ctx context.Context, loginID string) (*domain.Account, error)
	GetByPhoneNumber(ctx context.Context, phone string) (*domain.Account, error)
	Update(ctx context.Context, acc *domain.Account) error
	UpdateTier(ctx context.Context, id int32, tier domain.MembershipTier) error
	Delete(ctx context.Context, id int32) error
}
