package pricing

import (
	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

// FeePolicy is the seasonal rate policy applied to the day-scaled base fee.
// It is persisted on each rental as a plain string tag.
type FeePolicy string

const (
	FeePolicyBase      FeePolicy = "BASE"
	FeePolicyPeak      FeePolicy = "PEAK"
	FeePolicyOffSeason FeePolicy = "OFF_SEASON"
)

func ParseFeePolicy(s string) (FeePolicy, error) {
	switch FeePolicy(s) {
	case FeePolicyBase, FeePolicyPeak, FeePolicyOffSeason:
		return FeePolicy(s), nil
	default:
		return "", domain.ErrUnknownFeePolicy
	}
}

func (p FeePolicy) multiplier() decimal.Decimal {
	switch p {
	case FeePolicyPeak:
		return decimal.RequireFromString("1.2")
	case FeePolicyOffSeason:
		return decimal.RequireFromString("0.9")
	default:
		return decimal.NewFromInt(1)
	}
}

// TotalBaseFee computes the policy-adjusted base fee for a whole rental:
// effective daily rate * days * season multiplier. Day-count validation is
// the caller's responsibility.
func (p FeePolicy) TotalBaseFee(car *domain.Car, days int32) decimal.Decimal {
	base := car.EffectiveDailyRate().Mul(decimal.NewFromInt32(days))
	return base.Mul(p.multiplier())
}
