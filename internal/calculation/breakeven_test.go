package calculation

import (
	"testing"

	"github.com/iulcompare/iulcompare/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test exact year crossover
func TestCalculateCumulativeBreakEven_ExactYear(t *testing.T) {
	// A and B are level exactly at end of year 2 with cumulative 300.
	res, err := CalculateCumulativeBreakEven(series(100, 200), series(150, 150))
	require.NoError(t, err)
	require.NotNil(t, res, "expected crossover")
	assert.Equal(t, 2, res.YearIndex)
	assert.True(t, res.CumulativeAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, res.Fraction.Equal(decimal.NewFromInt(1)))
	assert.True(t, res.Age.Equal(decimal.NewFromInt(67)), "got %s", res.Age)
}

// Test mid-year interpolation crossover
func TestCalculateCumulativeBreakEven_Interpolation(t *testing.T) {
	// After year1: A=100, B=80 (diff=20)
	// Year2: A adds 100, B adds 140 -> A=200, B=220 (diff=-20), so t = 0.5.
	res, err := CalculateCumulativeBreakEven(series(100, 100), series(80, 140))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.YearIndex)
	assert.True(t, res.Fraction.Equal(dec("0.5")), "got %s", res.Fraction)
	assert.True(t, res.CumulativeAmount.Equal(decimal.NewFromInt(150)), "got %s", res.CumulativeAmount)
	assert.True(t, res.Age.Equal(dec("66.5")), "got %s", res.Age)
}

func TestCalculateCumulativeBreakEven_ShorterStreamRunsOut(t *testing.T) {
	// A leads for two years then stops paying; B catches up during year 4.
	res, err := CalculateCumulativeBreakEven(series(300, 300), series(100, 100, 100, 400))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 4, res.YearIndex)
	assert.True(t, res.Fraction.Equal(dec("0.75")), "got %s", res.Fraction)
}

func TestCalculateCumulativeBreakEven_NoCrossover(t *testing.T) {
	res, err := CalculateCumulativeBreakEven(series(200, 200, 200), series(100, 100, 100))
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestCalculateCumulativeBreakEven_FirstYearTieIgnored(t *testing.T) {
	res, err := CalculateCumulativeBreakEven(series(100, 200), series(100, 100))
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestCalculateCumulativeBreakEven_EmptyInput(t *testing.T) {
	_, err := CalculateCumulativeBreakEven(nil, series(1))
	assert.Error(t, err)
}

func TestCalculateIncomeBreakEven_Vehicles(t *testing.T) {
	var r domain.ComparisonResult
	r = r.With(domain.VehicleIUL, domain.VehicleProjection{Income: series(100, 100)})
	r = r.With(domain.VehicleIRA, domain.VehicleProjection{Income: series(80, 140)})

	res, err := CalculateIncomeBreakEven(r, domain.VehicleIUL, domain.VehicleIRA)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, domain.VehicleIUL, res.A)
	assert.Equal(t, domain.VehicleIRA, res.B)

	_, err = CalculateIncomeBreakEven(r, domain.VehicleIUL, "annuity")
	assert.Error(t, err)
}
