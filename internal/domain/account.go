package domain

import "github.com/shopspring/decimal"

type MembershipTier string

const (
	TierSilver   MembershipTier = "SILVER"
	TierGold     MembershipTier = "GOLD"
	TierPlatinum MembershipTier = "PLATINUM"
	TierVIP      MembershipTier = "VIP"
)

// Multiplier is the fraction of an amount the member actually pays.
func (t MembershipTier) Multiplier() decimal.Decimal {
	switch t {
	case TierSilver:
		return decimal.RequireFromString("0.95")
	case TierGold:
		return decimal.RequireFromString("0.90")
	case TierPlatinum:
		return decimal.RequireFromString("0.85")
	case TierVIP:
		return decimal.RequireFromString("0.80")
	default:
		return decimal.NewFromInt(1)
	}
}

// ApplyDiscount returns the discounted amount, not the discount itself.
func (t MembershipTier) ApplyDiscount(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(t.Multiplier())
}

// Next returns the tier one step up. VIP is terminal.
func (t MembershipTier) Next() (MembershipTier, error) {
	switch t {
	case TierSilver:
		return TierGold, nil
	case TierGold:
		return TierPlatinum, nil
	case TierPlatinum:
		return TierVIP, nil
	case TierVIP:
		return "", ErrAlreadyTopTier
	default:
		return "", ErrUnknownTier
	}
}

func ParseMembershipTier(s string) (MembershipTier, error) {
	switch MembershipTier(s) {
	case TierSilver, TierGold, TierPlatinum, TierVIP:
		return MembershipTier(s), nil
	default:
		return "", ErrUnknownTier
	}
}

type Account struct {
	ID           int32          `json:"id"`
	LoginID      string         `json:"login_id"`
	PasswordHash string         `json:"-"`
	Email        string         `json:"email"`
	Name         string         `json:"name"`
	PhoneNumber  string         `json:"phone_number"`
	CardNumber   string         `json:"card_number,omitempty"`
	Tier         MembershipTier `json:"tier"`
	IsAdmin      bool           `json:"is_admin"`
	CreatedOn    string         `json:"created_on"`
	UpdatedOn    string         `json:"updated_on"`
}
