package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
)

type mockCarRepo struct {
	mock.Mock
}

func (m *mockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	return m.Called(ctx, car).Error(0)
}

func (m *mockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *mockCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *mockCarRepo) ListAvailable(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *mockCarRepo) UpdateStatus(ctx context.Context, id int32, status domain.CarStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockCarRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type mockRentalRepo struct {
	mock.Mock
}

func (m *mockRentalRepo) CreateIfCarFree(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *mockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockRentalRepo) GetActiveByCar(ctx context.Context, carID int32) (*domain.Rental, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockRentalRepo) MarkReturnedIfRented(ctx context.Context, id int64, penalty, discount, totalFee decimal.Decimal, returnedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, penalty, discount, totalFee, returnedAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockRentalRepo) ListByAccount(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, accountID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}

func (m *mockRentalRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}

func (m *mockRentalRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) Create(ctx context.Context, acc *domain.Account) error {
	return m.Called(ctx, acc).Error(0)
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *mockAccountRepo) GetByLoginID(ctx context.Context, loginID string) (*domain.Account, error) {
	args := m.Called(ctx, loginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *mockAccountRepo) GetByPhoneNumber(ctx context.Context, phone string) (*domain.Account, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *mockAccountRepo) Update(ctx context.Context, acc *domain.Account) error {
	return m.Called(ctx, acc).Error(0)
}

func (m *mockAccountRepo) UpdateTier(ctx context.Context, id int32, tier domain.MembershipTier) error {
	return m.Called(ctx, id, tier).Error(0)
}

func (m *mockAccountRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendRentalReceipt(ctx context.Context, email, name, carName string, rental *domain.Rental) error {
	return m.Called(ctx, email, name, carName, rental).Error(0)
}

func (m *mockEmailService) SendReturnReceipt(ctx context.Context, email, name, carName string, rental *domain.Rental) error {
	return m.Called(ctx, email, name, carName, rental).Error(0)
}

func (m *mockEmailService) SendOverdueReminder(ctx context.Context, email, name, carName string, daysOverdue int64) error {
	return m.Called(ctx, email, name, carName, daysOverdue).Error(0)
}
