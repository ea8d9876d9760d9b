package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/security"
)

func newAuthFixture() (*mockAccountRepo, AuthService) {
	accountRepo := new(mockAccountRepo)
	tokens := security.NewTokenManager("test-secret-at-least-32-characters-long", 60, 10080)
	return accountRepo, NewAuthService(accountRepo, tokens)
}

func TestSignup(t *testing.T) {
	accountRepo, svc := newAuthFixture()
	ctx := context.Background()

	accountRepo.On("GetByLoginID", ctx, "alice").Return(nil, domain.ErrAccountNotFound)
	accountRepo.On("GetByPhoneNumber", ctx, "010-1234-5678").Return(nil, domain.ErrAccountNotFound)
	accountRepo.On("Create", ctx, mock.AnythingOfType("*domain.Account")).Return(nil)

	account, access, refresh, err := svc.Signup(ctx, "alice", "s3cret-pass", "alice@example.com", "Alice", "010-1234-5678")
	require.NoError(t, err)

	assert.Equal(t, domain.TierSilver, account.Tier, "new accounts start at the entry tier")
	assert.False(t, account.IsAdmin)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, "s3cret-pass", account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("s3cret-pass")))
}

func TestSignupDuplicateLoginID(t *testing.T) {
	accountRepo, svc := newAuthFixture()
	ctx := context.Background()

	accountRepo.On("GetByLoginID", ctx, "alice").Return(&domain.Account{ID: 1, LoginID: "alice"}, nil)

	_, _, _, err := svc.Signup(ctx, "alice", "pw", "a@example.com", "Alice", "010-0000-0000")
	assert.ErrorIs(t, err, domain.ErrLoginIDTaken)
	accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupDuplicatePhone(t *testing.T) {
	accountRepo, svc := newAuthFixture()
	ctx := context.Background()

	accountRepo.On("GetByLoginID", ctx, "bob").Return(nil, domain.ErrAccountNotFound)
	accountRepo.On("GetByPhoneNumber", ctx, "010-1234-5678").Return(&domain.Account{ID: 2}, nil)

	_, _, _, err := svc.Signup(ctx, "bob", "pw", "b@example.com", "Bob", "010-1234-5678")
	assert.ErrorIs(t, err, domain.ErrPhoneNumberTaken)
}

func TestLogin(t *testing.T) {
	accountRepo, svc := newAuthFixture()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	accountRepo.On("GetByLoginID", ctx, "alice").Return(&domain.Account{
		ID:           7,
		LoginID:      "alice",
		PasswordHash: string(hash),
	}, nil)

	access, refresh, err := svc.Login(ctx, "alice", "right-password")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	_, _, err = svc.Login(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownAccount(t *testing.T) {
	accountRepo, svc := newAuthFixture()
	ctx := context.Background()

	accountRepo.On("GetByLoginID", ctx, "ghost").Return(nil, domain.ErrAccountNotFound)

	_, _, err := svc.Login(ctx, "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "missing accounts look like bad credentials")
}

func TestRefresh(t *testing.T) {
	accountRepo, svc := newAuthFixture()
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret-at-least-32-characters-long", 60, 10080)

	accountRepo.On("GetByID", ctx, int32(7)).Return(&domain.Account{ID: 7, LoginID: "alice"}, nil)

	refresh, err := tokens.GenerateRefreshToken(7, "alice")
	require.NoError(t, err)

	access, newRefresh, err := svc.Refresh(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, newRefresh)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	_, svc := newAuthFixture()
	tokens := security.NewTokenManager("test-secret-at-least-32-characters-long", 60, 10080)

	access, err := tokens.GenerateAccessToken(7, "alice", false)
	require.NoError(t, err)

	_, _, err = svc.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, security.ErrWrongTokenType)
}
