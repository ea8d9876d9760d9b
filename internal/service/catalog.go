package service

import (
	"context"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type catalogService struct {
	carRepo repository.CarRepository
}

func NewCatalogService(carRepo repository.CarRepository) CatalogService {
	return &catalogService{carRepo: carRepo}
}

// RegisterCar creates a car of the given category. A non-positive rate
// falls back to the category default.
func (s *catalogService) RegisterCar(ctx context.Context, carType, name string, dailyRate decimal.Decimal) (*domain.Car, error) {
	ct, err := domain.ParseCarType(carType)
	if err != nil {
		return nil, err
	}
	car := domain.NewCar(ct, name)
	if dailyRate.IsPositive() {
		car.DailyRate = dailyRate
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *catalogService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *catalogService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *catalogService) ListAvailableCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.ListAvailable(ctx)
}

func (s *catalogService) RemoveCar(ctx context.Context, id int32) error {
	return s.carRepo.Delete(ctx, id)
}
