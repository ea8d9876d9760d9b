package service

import (
	"context"
	"sync"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

// adminService holds the current season explicitly rather than as a global;
// the API layer reads it and passes the policy into Rent.
type adminService struct {
	rentalRepo repository.RentalRepository

	mu     sync.RWMutex
	season pricing.FeePolicy
}

func NewAdminService(rentalRepo repository.RentalRepository, defaultSeason pricing.FeePolicy) AdminService {
	return &adminService{
		rentalRepo: rentalRepo,
		season:     defaultSeason,
	}
}

func (s *adminService) CurrentSeason() pricing.FeePolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.season
}

// SetSeason swaps the policy used for new rentals. Existing rentals keep
// the policy tag they recorded at creation.
func (s *adminService) SetSeason(policy pricing.FeePolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.season != policy {
		logger.Info("Season changed", "from", s.season, "to", policy)
	}
	s.season = policy
}

func (s *adminService) ListRentalHistory(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.List(ctx, status, page, pageSize)
}
