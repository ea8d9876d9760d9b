package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCarType(t *testing.T) {
	for _, valid := range []string{"SEDAN", "SUV", "BIKE"} {
		ct, err := ParseCarType(valid)
		require.NoError(t, err)
		assert.Equal(t, CarType(valid), ct)
	}

	_, err := ParseCarType("TRUCK")
	assert.ErrorIs(t, err, ErrUnknownCarType)

	_, err = ParseCarType("sedan")
	assert.ErrorIs(t, err, ErrUnknownCarType)
}

func TestCarTypeBaseRate(t *testing.T) {
	assert.True(t, CarTypeSedan.BaseRate().Equal(decimal.NewFromInt(90000)))
	assert.True(t, CarTypeSUV.BaseRate().Equal(decimal.NewFromInt(140000)))
	assert.True(t, CarTypeBike.BaseRate().Equal(decimal.NewFromInt(230000)))
}

func TestNewCar(t *testing.T) {
	car := NewCar(CarTypeSUV, "Family SUV")

	assert.Equal(t, "Family SUV", car.Name)
	assert.Equal(t, CarTypeSUV, car.Type)
	assert.Equal(t, CarStatusAvailable, car.Status)
	assert.True(t, car.DailyRate.Equal(decimal.NewFromInt(140000)))
}

func TestEffectiveDailyRate(t *testing.T) {
	car := NewCar(CarTypeSedan, "City Sedan")
	assert.True(t, car.EffectiveDailyRate().Equal(decimal.NewFromInt(90000)))

	car.DailyRate = decimal.NewFromInt(120000)
	assert.True(t, car.EffectiveDailyRate().Equal(decimal.NewFromInt(120000)))

	// A missing or zero stored rate falls back to the category default.
	car.DailyRate = decimal.Zero
	assert.True(t, car.EffectiveDailyRate().Equal(decimal.NewFromInt(90000)))

	car.DailyRate = decimal.NewFromInt(-1)
	assert.True(t, car.EffectiveDailyRate().Equal(decimal.NewFromInt(90000)))
}

func TestOccupyRelease(t *testing.T) {
	car := NewCar(CarTypeBike, "Trail Bike")

	car.Occupy()
	assert.Equal(t, CarStatusUnavailable, car.Status)

	car.Release()
	assert.Equal(t, CarStatusAvailable, car.Status)
}
