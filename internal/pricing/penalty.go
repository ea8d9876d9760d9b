package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// overdueRate: 30% of the per-day base rate per overdue day.
var overdueRate = decimal.RequireFromString("0.30")

// OverduePenalty computes the late-return surcharge at time now.
// The scheduled end is startAt + days. Any overage under a full day still
// counts as one day: extraDays is the floor of the overdue duration in days,
// clamped to a minimum of 1 once now is past the scheduled end. The clamp is
// load-bearing; do not replace it with ceiling division.
func OverduePenalty(startAt time.Time, days int32, dailyRate decimal.Decimal, now time.Time) decimal.Decimal {
	scheduledEnd := startAt.AddDate(0, 0, int(days))
	if !now.After(scheduledEnd) {
		return decimal.Zero
	}
	extraDays := int64(now.Sub(scheduledEnd).Hours() / 24)
	if extraDays <= 0 {
		extraDays = 1
	}
	return dailyRate.Mul(decimal.NewFromInt(extraDays)).Mul(overdueRate)
}
