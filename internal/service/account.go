package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type accountService struct {
	accountRepo repository.AccountRepository
}

func NewAccountService(accountRepo repository.AccountRepository) AccountService {
	return &accountService{accountRepo: accountRepo}
}

func (s *accountService) GetProfile(ctx context.Context, accountID int32) (*domain.Account, error) {
	return s.accountRepo.GetByID(ctx, accountID)
}

// UpdateProfile changes name, phone number and/or password; empty fields
// are left untouched. A new phone number must not belong to another account.
func (s *accountService) UpdateProfile(ctx context.Context, accountID int32, name, phone, password string) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if phone != "" && phone != account.PhoneNumber {
		if _, err := s.accountRepo.GetByPhoneNumber(ctx, phone); err == nil {
			return nil, domain.ErrPhoneNumberTaken
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		account.PhoneNumber = phone
	}
	if name != "" {
		account.Name = name
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = string(hash)
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) RegisterCard(ctx context.Context, accountID int32, cardNumber string) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	account.CardNumber = cardNumber
	return s.accountRepo.Update(ctx, account)
}

func (s *accountService) Withdraw(ctx context.Context, accountID int32) error {
	return s.accountRepo.Delete(ctx, accountID)
}
