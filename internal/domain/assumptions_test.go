package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAssumptionsAreValid(t *testing.T) {
	a := DefaultAssumptions()
	require.NoError(t, a.Validate())
	assert.Equal(t, 18, a.YearsToRetirement())
}

func TestNewAssumptionSet(t *testing.T) {
	d := decimal.RequireFromString
	a, err := NewAssumptionSet(30, d("6000"), d("0.05"), d("0.22"), d("0.12"), d("0.015"))
	require.NoError(t, err)
	assert.Equal(t, 35, a.YearsToRetirement())

	_, err = NewAssumptionSet(30, d("0"), d("0.05"), d("0.22"), d("0.12"), d("0.015"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAssumption))
	assert.Contains(t, err.Error(), "contributionAmount")
}

func TestAssumptionSetValidate(t *testing.T) {
	d := decimal.RequireFromString
	tests := []struct {
		name    string
		mutate  func(*AssumptionSet)
		wantErr string
	}{
		{"age lower bound", func(a *AssumptionSet) { a.Age = 25 }, ""},
		{"age upper bound", func(a *AssumptionSet) { a.Age = 65 }, ""},
		{"age too young", func(a *AssumptionSet) { a.Age = 24 }, "age must be at least 25"},
		{"age too old", func(a *AssumptionSet) { a.Age = 66 }, "age must be at most 65"},
		{"negative contribution", func(a *AssumptionSet) { a.ContributionAmount = d("-1") }, "contributionAmount must be greater than 0"},
		{"return lower bound", func(a *AssumptionSet) { a.ReturnRate = d("0.03") }, ""},
		{"return upper bound", func(a *AssumptionSet) { a.ReturnRate = d("0.12") }, ""},
		{"return too low", func(a *AssumptionSet) { a.ReturnRate = d("0.02") }, "returnRate must be at least 0.03"},
		{"return too high", func(a *AssumptionSet) { a.ReturnRate = d("0.125") }, "returnRate must be at most 0.12"},
		{"working tax too low", func(a *AssumptionSet) { a.TaxRateWorking = d("0.09") }, "taxRateWorking"},
		{"retirement tax too high", func(a *AssumptionSet) { a.TaxRateRetirement = d("0.38") }, "taxRateRetirement"},
		{"fees lower bound", func(a *AssumptionSet) { a.Fees = d("0.005") }, ""},
		{"fees too high", func(a *AssumptionSet) { a.Fees = d("0.031") }, "fees must be at most 0.03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DefaultAssumptions()
			tt.mutate(&a)
			err := a.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAssumption)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAssumptionSetValidate_ReportsEveryField(t *testing.T) {
	err := AssumptionSet{}.Validate()
	require.Error(t, err)
	for _, field := range []string{"age", "contributionAmount", "returnRate", "taxRateWorking", "taxRateRetirement", "fees"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestYearsToRetirementPastRetirementAge(t *testing.T) {
	a := DefaultAssumptions()
	a.Age = 70
	assert.Equal(t, -5, a.YearsToRetirement())
}

func TestDescribe(t *testing.T) {
	lines := DefaultAssumptions().Describe()
	assert.Contains(t, lines, "Current age: 47 (18 years to retirement at 65)")
	assert.Contains(t, lines, "Annual contribution: $12000")
	assert.Contains(t, lines, "Expected return: 7.0% annually")
	assert.Contains(t, lines, "Working tax rate: 24%")
	assert.Contains(t, lines, "Retirement tax rate: 22%")
	assert.Contains(t, lines, "Annual fees: 1.0%")
}
