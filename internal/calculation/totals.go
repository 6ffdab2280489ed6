package calculation

import (
	"github.com/iulcompare/iulcompare/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateTotals derives the summary figures for one projection.
// Every consumer (table, export, API) goes through this routine.
func CalculateTotals(p domain.VehicleProjection) domain.Totals {
	contributions := last(p.Contributions)
	final := last(p.Balances)
	return domain.Totals{
		TotalContributions: contributions,
		FinalBalance:       final,
		TotalTaxes:         sum(p.Taxes),
		TotalIncome:        sum(p.Income),
		NetReturn:          final.Sub(contributions),
	}
}

// CalculateAllTotals returns totals for every vehicle in the result.
func CalculateAllTotals(r domain.ComparisonResult) map[domain.VehicleID]domain.Totals {
	totals := make(map[domain.VehicleID]domain.Totals, len(domain.Vehicles))
	for _, id := range domain.Vehicles {
		p, _ := r.Projection(id)
		totals[id] = CalculateTotals(p)
	}
	return totals
}

func last(s []decimal.Decimal) decimal.Decimal {
	if len(s) == 0 {
		return decimal.Zero
	}
	return s[len(s)-1]
}

func sum(s []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range s {
		total = total.Add(v)
	}
	return total
}
