package service

import (
	"context"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
)

type AuthService interface {
	Signup(ctx context.Context, loginID, password, email, name, phone string) (*domain.Account, string, string, error) // account, access, refresh
	Login(ctx context.Context, loginID, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type AccountService interface {
	GetProfile(ctx context.Context, accountID int32) (*domain.Account, error)
	UpdateProfile(ctx context.Context, accountID int32, name, phone, password string) (*domain.Account, error)
	RegisterCard(ctx context.Context, accountID int32, cardNumber string) error
	Withdraw(ctx context.Context, accountID int32) error
}

type CatalogService interface {
	RegisterCar(ctx context.Context, carType, name string, dailyRate decimal.Decimal) (*domain.Car, error)
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	ListCars(ctx context.Context) ([]domain.Car, error)
	ListAvailableCars(ctx context.Context) ([]domain.Car, error)
	RemoveCar(ctx context.Context, id int32) error
}

type RentalService interface {
	Rent(ctx context.Context, accountID, carID, days int32, optionNames []string, policy pricing.FeePolicy) (*domain.Rental, error)
	Return(ctx context.Context, rentalID int64) (*domain.Rental, error)
	GetRental(ctx context.Context, accountID int32, rentalID int64) (*domain.Rental, error)
	ListMyRentals(ctx context.Context, accountID, page, pageSize int32) ([]domain.Rental, int32, error)
}

type AdminService interface {
	CurrentSeason() pricing.FeePolicy
	SetSeason(policy pricing.FeePolicy)
	ListRentalHistory(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
}

type EmailService interface {
	SendRentalReceipt(ctx context.Context, email, name, carName string, rental *domain.Rental) error
	SendReturnReceipt(ctx context.Context, email, name, carName string, rental *domain.Rental) error
	SendOverdueReminder(ctx context.Context, email, name, carName string, daysOverdue int64) error
}
