package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

// Per-day surcharges for the fixed option catalog. Unknown names are
// ignored rather than rejected; a name listed twice is charged twice.
var optionRates = map[string]decimal.Decimal{
	"Blackbox":   decimal.NewFromInt(5000),
	"Navigation": decimal.NewFromInt(7000),
	"Sunroof":    decimal.NewFromInt(15000),
}

// OptionNames lists the recognized option names.
func OptionNames() []string {
	return []string{"Blackbox", "Navigation", "Sunroof"}
}

// Quote is a per-day price for a car with a set of options applied.
type Quote struct {
	PerDay      decimal.Decimal
	Description string
}

// BuildQuote stacks the selected option surcharges on top of the car's
// effective daily rate. The description reads "SEDAN + Blackbox + Sunroof".
func BuildQuote(car *domain.Car, optionNames []string) Quote {
	q := Quote{
		PerDay:      car.EffectiveDailyRate(),
		Description: string(car.Type),
	}
	for _, name := range optionNames {
		rate, ok := optionRates[strings.TrimSpace(name)]
		if !ok {
			continue
		}
		q.PerDay = q.PerDay.Add(rate)
		q.Description += " + " + strings.TrimSpace(name)
	}
	return q
}

// OptionFee is the total option cost over the rental period, back-computed
// from the per-day delta and clamped at zero.
func OptionFee(car *domain.Car, optionNames []string, days int32) decimal.Decimal {
	q := BuildQuote(car, optionNames)
	perDay := q.PerDay.Sub(car.EffectiveDailyRate())
	if perDay.IsNegative() {
		perDay = decimal.Zero
	}
	return perDay.Mul(decimal.NewFromInt32(days))
}
