package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const accountColumns = `id, login_id, password_hash, email, name, phone_number, COALESCE(card_number, ''), tier, is_admin, created_on, updated_on`

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (login_id, password_hash, email, name, phone_number, card_number, tier, is_admin, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10) RETURNING id`
	now := time.Now().Format("2006-01-02")
	a.CreatedOn = now
	a.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		a.LoginID, a.PasswordHash, a.Email, a.Name, a.PhoneNumber, a.CardNumber, a.Tier, a.IsAdmin, now, now,
	).Scan(&a.ID)
}

func (r *accountRepository) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *accountRepository) GetByLoginID(ctx context.Context, loginID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE login_id = $1`
	return r.getOne(ctx, query, loginID)
}

func (r *accountRepository) GetByPhoneNumber(ctx context.Context, phone string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE phone_number = $1`
	return r.getOne(ctx, query, phone)
}

func (r *accountRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Account, error) {
	a := &domain.Account{}
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.LoginID, &a.PasswordHash, &a.Email, &a.Name, &a.PhoneNumber, &a.CardNumber,
		&a.Tier, &a.IsAdmin, &createdOn, &updatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	a.UpdatedOn = updatedOn.Format("2006-01-02")
	return a, nil
}

func (r *accountRepository) Update(ctx context.Context, a *domain.Account) error {
	query := `UPDATE accounts SET password_hash=$1, email=$2, name=$3, phone_number=$4, card_number=NULLIF($5, ''), updated_on=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, a.PasswordHash, a.Email, a.Name, a.PhoneNumber, a.CardNumber, time.Now(), a.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) UpdateTier(ctx context.Context, id int32, tier domain.MembershipTier) error {
	query := `UPDATE accounts SET tier=$1, updated_on=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, tier, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
