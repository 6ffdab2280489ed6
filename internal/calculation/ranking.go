package calculation

import (
	"github.com/iulcompare/iulcompare/internal/domain"
	"github.com/shopspring/decimal"
)

// Metric row labels, in table order.
const (
	MetricTotalContributions = "Total Contributions"
	MetricFinalBalance       = "Final Balance"
	MetricNetReturn          = "Net Return"
	MetricTotalTaxes         = "Total Taxes Paid"
	MetricRetirementIncome   = "Retirement Income"
	MetricDeathBenefit       = "Death Benefit"
)

// Metrics lists every row label in display order.
var Metrics = []string{
	MetricTotalContributions,
	MetricFinalBalance,
	MetricNetReturn,
	MetricTotalTaxes,
	MetricRetirementIncome,
	MetricDeathBenefit,
}

// LowerIsBetter reports whether a metric ranks by minimum instead of maximum.
func LowerIsBetter(metric string) bool {
	return metric == MetricTotalTaxes
}

// BuildMetricRows assembles the comparison table and marks the best vehicle(s) on each row.
func BuildMetricRows(r domain.ComparisonResult, totals map[domain.VehicleID]domain.Totals) []domain.MetricRow {
	rows := make([]domain.MetricRow, 0, len(Metrics))
	for _, metric := range Metrics {
		values := make(map[domain.VehicleID]decimal.Decimal, len(domain.Vehicles))
		for _, id := range domain.Vehicles {
			values[id] = metricValue(metric, id, r, totals[id])
		}
		rows = append(rows, domain.MetricRow{
			Metric:  metric,
			Values:  values,
			Winners: RankWinners(values, LowerIsBetter(metric)),
		})
	}
	return rows
}

// metricValue picks the figure shown for a vehicle on a row. Conventional accounts
// have no insurance payout, so their final balance stands in as the death benefit.
func metricValue(metric string, id domain.VehicleID, r domain.ComparisonResult, t domain.Totals) decimal.Decimal {
	switch metric {
	case MetricTotalContributions:
		return t.TotalContributions
	case MetricFinalBalance:
		return t.FinalBalance
	case MetricNetReturn:
		return t.NetReturn
	case MetricTotalTaxes:
		return t.TotalTaxes
	case MetricRetirementIncome:
		return t.TotalIncome
	case MetricDeathBenefit:
		if id == domain.VehicleIUL {
			return last(r.IUL.DeathBenefit)
		}
		return t.FinalBalance
	}
	return decimal.Zero
}

// RankWinners returns every vehicle whose value equals the extreme, in display order.
func RankWinners(values map[domain.VehicleID]decimal.Decimal, lowerIsBetter bool) []domain.VehicleID {
	var best decimal.Decimal
	found := false
	for _, id := range domain.Vehicles {
		v, ok := values[id]
		if !ok {
			continue
		}
		if !found || (lowerIsBetter && v.LessThan(best)) || (!lowerIsBetter && v.GreaterThan(best)) {
			best = v
			found = true
		}
	}
	if !found {
		return nil
	}

	var winners []domain.VehicleID
	for _, id := range domain.Vehicles {
		if v, ok := values[id]; ok && v.Equal(best) {
			winners = append(winners, id)
		}
	}
	return winners
}

// AnalyzeComparison names the vehicle holding the most row wins. Ties go to the
// vehicle listed first.
func AnalyzeComparison(rows []domain.MetricRow) domain.VehicleRecommendation {
	wins := make(map[domain.VehicleID]int, len(domain.Vehicles))
	for _, row := range rows {
		for _, w := range row.Winners {
			wins[w]++
		}
	}
	rec := domain.VehicleRecommendation{Of: len(rows)}
	for _, id := range domain.Vehicles {
		if wins[id] > rec.Wins {
			rec.Vehicle = id
			rec.Wins = wins[id]
		}
	}
	return rec
}
