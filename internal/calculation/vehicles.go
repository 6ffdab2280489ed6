package calculation

import (
	"slices"

	"github.com/iulcompare/iulcompare/internal/domain"
	"github.com/shopspring/decimal"
)

// RetirementYears is the fixed length of the decumulation phase.
const RetirementYears = 25

// balancePrecision is the number of decimal places carried between years.
const balancePrecision = 10

var (
	withdrawalRate    = decimal.RequireFromString("0.04")
	employerMatchRate = decimal.RequireFromString("0.5")
	capitalGainsRate  = decimal.RequireFromString("0.15")
	one               = decimal.NewFromInt(1)
)

// VehicleProjector computes one vehicle's trajectory. Implementations are pure.
type VehicleProjector interface {
	Project(assumptions domain.AssumptionSet, illustration domain.IllustrationData) domain.VehicleProjection
	Vehicle() domain.VehicleID
}

// DefaultProjectors returns the four projectors in display order.
func DefaultProjectors() []VehicleProjector {
	return []VehicleProjector{
		InsuranceProjector{},
		TaxDeferredProjector{},
		EmployerMatchProjector{},
		TaxableProjector{},
	}
}

// TaxDeferredProjector models an IRA: fees drag the return additively and growth is tax-deferred.
type TaxDeferredProjector struct{}

func (TaxDeferredProjector) Vehicle() domain.VehicleID { return domain.VehicleIRA }

func (TaxDeferredProjector) Project(a domain.AssumptionSet, _ domain.IllustrationData) domain.VehicleProjection {
	return projectTaxDeferred(a, a.ContributionAmount)
}

// EmployerMatchProjector models a 401(k) with a 50% employer match on every contribution.
type EmployerMatchProjector struct{}

func (EmployerMatchProjector) Vehicle() domain.VehicleID { return domain.VehicleK401 }

func (EmployerMatchProjector) Project(a domain.AssumptionSet, _ domain.IllustrationData) domain.VehicleProjection {
	deposit := a.ContributionAmount.Add(a.ContributionAmount.Mul(employerMatchRate))
	return projectTaxDeferred(a, deposit)
}

// projectTaxDeferred runs the shared IRA/401(k) recurrence with the given annual deposit.
func projectTaxDeferred(a domain.AssumptionSet, deposit decimal.Decimal) domain.VehicleProjection {
	years := max(a.YearsToRetirement(), 0)
	growth := one.Add(a.ReturnRate).Sub(a.Fees)
	afterTax := one.Sub(a.TaxRateRetirement)

	p := newProjection(years)
	balance := decimal.Zero
	for i := 0; i < years; i++ {
		balance = balance.Mul(growth).Add(deposit).Round(balancePrecision)
		p.Contributions = append(p.Contributions, deposit.Mul(decimal.NewFromInt(int64(i+1))))
		p.Balances = append(p.Balances, balance)
		p.Taxes = append(p.Taxes, decimal.Zero)
	}

	for i := 0; i < RetirementYears; i++ {
		withdrawal := balance.Mul(withdrawalRate)
		p.Income = append(p.Income, withdrawal.Mul(afterTax))
		balance = balance.Mul(growth).Sub(withdrawal).Round(balancePrecision)
		p.Balances = append(p.Balances, balance)
	}
	return p
}

// TaxableProjector models a mutual fund in a brokerage account.
// During accumulation the return is taxed each year and the fee compounds on the
// post-tax balance; during retirement withdrawals pay a flat capital gains rate
// and the fee reverts to an additive drag on the return.
type TaxableProjector struct{}

func (TaxableProjector) Vehicle() domain.VehicleID { return domain.VehicleMutualFund }

func (TaxableProjector) Project(a domain.AssumptionSet, _ domain.IllustrationData) domain.VehicleProjection {
	years := max(a.YearsToRetirement(), 0)
	feeFactor := one.Sub(a.Fees)
	drawGrowth := one.Add(a.ReturnRate).Sub(a.Fees)

	p := newProjection(years)
	balance := decimal.Zero
	for i := 0; i < years; i++ {
		growth := balance.Mul(a.ReturnRate)
		tax := growth.Mul(a.TaxRateWorking)
		balance = balance.Add(a.ContributionAmount).Add(growth).Sub(tax).Mul(feeFactor).Round(balancePrecision)
		p.Contributions = append(p.Contributions, a.ContributionAmount.Mul(decimal.NewFromInt(int64(i+1))))
		p.Balances = append(p.Balances, balance)
		p.Taxes = append(p.Taxes, tax)
	}

	for i := 0; i < RetirementYears; i++ {
		withdrawal := balance.Mul(withdrawalRate)
		p.Income = append(p.Income, withdrawal.Sub(withdrawal.Mul(capitalGainsRate)))
		balance = balance.Mul(drawGrowth).Sub(withdrawal).Round(balancePrecision)
		p.Balances = append(p.Balances, balance)
	}
	return p
}

// InsuranceProjector republishes the illustration's own figures. Growth and
// withdrawals are tax-free, so taxes are zero for every premium year.
type InsuranceProjector struct{}

func (InsuranceProjector) Vehicle() domain.VehicleID { return domain.VehicleIUL }

func (InsuranceProjector) Project(_ domain.AssumptionSet, ill domain.IllustrationData) domain.VehicleProjection {
	taxes := make([]decimal.Decimal, len(ill.Premiums))
	for i := range taxes {
		taxes[i] = decimal.Zero
	}
	return domain.VehicleProjection{
		Contributions:     cloneSeries(ill.Premiums),
		Balances:          cloneSeries(ill.CashValues),
		Taxes:             taxes,
		Income:            cloneSeries(ill.IncomeStream),
		DeathBenefit:      cloneSeries(ill.DeathBenefits),
		AccumulationYears: len(ill.Premiums),
	}
}

func newProjection(years int) domain.VehicleProjection {
	return domain.VehicleProjection{
		Contributions:     make([]decimal.Decimal, 0, years),
		Balances:          make([]decimal.Decimal, 0, years+RetirementYears),
		Taxes:             make([]decimal.Decimal, 0, years),
		Income:            make([]decimal.Decimal, 0, RetirementYears),
		AccumulationYears: years,
	}
}

// cloneSeries copies s so results never alias caller-owned slices. nil stays empty, not nil.
func cloneSeries(s []decimal.Decimal) []decimal.Decimal {
	if s == nil {
		return []decimal.Decimal{}
	}
	return slices.Clone(s)
}
