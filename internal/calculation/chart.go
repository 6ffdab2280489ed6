package calculation

import (
	"github.com/iulcompare/iulcompare/internal/domain"
	"github.com/shopspring/decimal"
)

// BuildChartSeries lines the four balance sequences up by index, starting at baseAge.
// Vehicles with shorter sequences are padded with zero; no age alignment is attempted.
func BuildChartSeries(r domain.ComparisonResult, baseAge int) []domain.ChartPoint {
	n := r.MaxLength()
	points := make([]domain.ChartPoint, 0, n)
	for i := 0; i < n; i++ {
		age := baseAge + i
		balances := make(map[domain.VehicleID]decimal.Decimal, len(domain.Vehicles))
		for _, id := range domain.Vehicles {
			p, _ := r.Projection(id)
			balances[id] = p.BalanceAt(i)
		}
		points = append(points, domain.ChartPoint{
			Age:          age,
			Year:         i + 1,
			IsRetirement: age >= domain.RetirementAge,
			Balances:     balances,
		})
	}
	return points
}
