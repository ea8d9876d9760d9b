package domain

import "github.com/shopspring/decimal"

// CarType is the rental category. Each category carries a default daily
// rate used when a car has no rate of its own.
type CarType string

const (
	CarTypeSedan CarType = "SEDAN"
	CarTypeSUV   CarType = "SUV"
	CarTypeBike  CarType = "BIKE"
)

// BaseRate is the category's default daily rate.
func (t CarType) BaseRate() decimal.Decimal {
	switch t {
	case CarTypeSedan:
		return decimal.NewFromInt(90000)
	case CarTypeSUV:
		return decimal.NewFromInt(140000)
	case CarTypeBike:
		return decimal.NewFromInt(230000)
	default:
		return decimal.Zero
	}
}

func ParseCarType(s string) (CarType, error) {
	switch CarType(s) {
	case CarTypeSedan, CarTypeSUV, CarTypeBike:
		return CarType(s), nil
	default:
		return "", ErrUnknownCarType
	}
}

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "AVAILABLE"
	CarStatusUnavailable CarStatus = "UNAVAILABLE"
)

type Car struct {
	ID        int32           `json:"id"`
	Name      string          `json:"name"`
	Type      CarType         `json:"type"`
	Status    CarStatus       `json:"status"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	CreatedOn string          `json:"created_on"`
}

// NewCar builds an AVAILABLE car priced at its category default.
func NewCar(carType CarType, name string) *Car {
	return &Car{
		Name:      name,
		Type:      carType,
		Status:    CarStatusAvailable,
		DailyRate: carType.BaseRate(),
	}
}

// EffectiveDailyRate is the car's own rate, falling back to the category
// default when the stored rate is missing or non-positive.
func (c *Car) EffectiveDailyRate() decimal.Decimal {
	if c.DailyRate.IsPositive() {
		return c.DailyRate
	}
	return c.Type.BaseRate()
}

func (c *Car) Occupy() {
	c.Status = CarStatusUnavailable
}

func (c *Car) Release() {
	c.Status = CarStatusAvailable
}
