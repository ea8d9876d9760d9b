package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid login id or password")

type authService struct {
	accountRepo repository.AccountRepository
	tokens      security.TokenManager
}

func NewAuthService(accountRepo repository.AccountRepository, tokens security.TokenManager) AuthService {
	return &authService{accountRepo: accountRepo, tokens: tokens}
}

// Signup registers a new account at the entry tier. Login id and phone
// number must both be unused.
func (s *authService) Signup(ctx context.Context, loginID, password, email, name, phone string) (*domain.Account, string, string, error) {
	if _, err := s.accountRepo.GetByLoginID(ctx, loginID); err == nil {
		return nil, "", "", domain.ErrLoginIDTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, "", "", err
	}
	if _, err := s.accountRepo.GetByPhoneNumber(ctx, phone); err == nil {
		return nil, "", "", domain.ErrPhoneNumberTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	account := &domain.Account{
		LoginID:      loginID,
		PasswordHash: string(hash),
		Email:        email,
		Name:         name,
		PhoneNumber:  phone,
		Tier:         domain.TierSilver,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.generateTokens(account)
	return account, access, refresh, err
}

func (s *authService) Login(ctx context.Context, loginID, password string) (string, string, error) {
	account, err := s.accountRepo.GetByLoginID(ctx, loginID)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}
	return s.loginTokens(account)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}
	account, err := s.accountRepo.GetByID(ctx, claims.AccountID)
	if err != nil {
		return "", "", err
	}
	return s.loginTokens(account)
}

func (s *authService) loginTokens(account *domain.Account) (string, string, error) {
	access, refresh, err := s.generateTokens(account)
	return access, refresh, err
}

func (s *authService) generateTokens(account *domain.Account) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(account.ID, account.LoginID, account.IsAdmin)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(account.ID, account.LoginID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
