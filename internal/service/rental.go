package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	carRepo     repository.CarRepository
	accountRepo repository.AccountRepository
	emailSvc    EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	carRepo repository.CarRepository,
	accountRepo repository.AccountRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		carRepo:     carRepo,
		accountRepo: accountRepo,
		emailSvc:    emailSvc,
	}
}

// Rent admits a new rental. The authoritative admission control is the
// guarded insert in the repository; the active-rental lookup and the car
// status check before it are defense in depth.
func (s *rentalService) Rent(ctx context.Context, accountID, carID, days int32, optionNames []string, policy pricing.FeePolicy) (*domain.Rental, error) {
	if days <= 0 {
		return nil, domain.ErrInvalidRentalDays
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	if _, err := s.rentalRepo.GetActiveByCar(ctx, carID); err == nil {
		return nil, domain.ErrCarAlreadyRented
	} else if !errors.Is(err, domain.ErrRentalNotFound) {
		return nil, err
	}
	if car.Status != domain.CarStatusAvailable {
		return nil, domain.ErrCarUnavailable
	}

	baseFee := policy.TotalBaseFee(car, days)
	optionFee := pricing.OptionFee(car, optionNames, days)

	now := time.Now()
	rental := &domain.Rental{
		AccountID:      accountID,
		CarID:          carID,
		Days:           days,
		StartAt:        now,
		ScheduledEndAt: now.AddDate(0, 0, int(days)),
		Status:         domain.RentalStatusRented,
		FeePolicy:      string(policy),
		MembershipTier: string(account.Tier),
		Options:        optionNames,
		BaseFee:        baseFee,
		OptionFee:      optionFee,
		Discount:       decimal.Zero,
		Penalty:        decimal.Zero,
		TotalFee:       baseFee.Add(optionFee),
	}

	if err := s.rentalRepo.CreateIfCarFree(ctx, rental); err != nil {
		return nil, err
	}

	car.Occupy()
	if err := s.carRepo.UpdateStatus(ctx, carID, car.Status); err != nil {
		logger.Warn("Failed to mark car unavailable", "car_id", carID, "error", err)
	}

	if err := s.emailSvc.SendRentalReceipt(ctx, account.Email, account.Name, car.Name, rental); err != nil {
		logger.Warn("Failed to send rental receipt", "rental_id", rental.ID, "error", err)
	}

	return rental, nil
}

// Return settles a rental: overdue penalty from wall-clock time, membership
// discount against the rental-time fee only, then the conditional status
// flip. Tier upgrade and email are best-effort; a missing account is fatal
// because no discount can be computed without it.
func (s *rentalService) Return(ctx context.Context, rentalID int64) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusRented {
		return nil, domain.ErrRentalAlreadyReturned
	}

	car, err := s.carRepo.GetByID(ctx, rental.CarID)
	if err != nil {
		return nil, err
	}
	account, err := s.accountRepo.GetByID(ctx, rental.AccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	penalty := pricing.OverduePenalty(rental.StartAt, rental.Days, car.EffectiveDailyRate(), now)

	// Discount applies to the rental-time fee only; the penalty is added on
	// top of the discounted amount.
	rentalFee := rental.BaseFee.Add(rental.OptionFee)
	discountedAmount := account.Tier.ApplyDiscount(rentalFee)
	discount := rentalFee.Sub(discountedAmount)
	totalFee := discountedAmount.Add(penalty)

	updated, err := s.rentalRepo.MarkReturnedIfRented(ctx, rentalID, penalty, discount, totalFee, now)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domain.ErrRentalAlreadyReturned
	}

	s.upgradeTier(ctx, account)

	car.Release()
	if err := s.carRepo.UpdateStatus(ctx, rental.CarID, car.Status); err != nil {
		logger.Warn("Failed to mark car available", "car_id", rental.CarID, "error", err)
	}

	rental.Status = domain.RentalStatusReturned
	rental.ReturnedAt = &now
	rental.Penalty = penalty
	rental.Discount = discount
	rental.TotalFee = totalFee

	if err := s.emailSvc.SendReturnReceipt(ctx, account.Email, account.Name, car.Name, rental); err != nil {
		logger.Warn("Failed to send return receipt", "rental_id", rentalID, "error", err)
	}

	return rental, nil
}

// upgradeTier moves the account one tier up per completed rental. Already
// being at the top tier is not an error for the return itself.
func (s *rentalService) upgradeTier(ctx context.Context, account *domain.Account) {
	next, err := account.Tier.Next()
	if err != nil {
		logger.Info("Membership upgrade skipped", "account_id", account.ID, "tier", account.Tier, "reason", err)
		return
	}
	if err := s.accountRepo.UpdateTier(ctx, account.ID, next); err != nil {
		logger.Warn("Membership upgrade failed", "account_id", account.ID, "error", err)
		return
	}
	logger.Info("Membership upgraded", "account_id", account.ID, "from", account.Tier, "to", next)
	account.Tier = next
}

func (s *rentalService) GetRental(ctx context.Context, accountID int32, rentalID int64) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.AccountID != accountID {
		return nil, domain.ErrRentalNotFound
	}
	return rental, nil
}

func (s *rentalService) ListMyRentals(ctx context.Context, accountID, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.ListByAccount(ctx, accountID, page, pageSize)
}
