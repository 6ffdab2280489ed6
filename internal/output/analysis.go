package output

import (
	"github.com/iulcompare/iulcompare/internal/calculation"
	"github.com/iulcompare/iulcompare/internal/domain"
	"github.com/shopspring/decimal"
)

// Highlight summarizes how far the leading vehicle(s) on a metric row sit ahead of the rest.
type Highlight struct {
	Metric   string
	Leaders  []domain.VehicleID
	Value    decimal.Decimal
	RunnerUp domain.VehicleID
	Margin   decimal.Decimal
}

// AnalyzeRows derives one Highlight per table row.
// Extracted from embedded console logic for testability.
func AnalyzeRows(rows []domain.MetricRow) []Highlight {
	out := make([]Highlight, 0, len(rows))
	for _, row := range rows {
		h := Highlight{Metric: row.Metric, Leaders: row.Winners}
		if len(row.Winners) == 0 {
			out = append(out, h)
			continue
		}
		h.Value = row.Values[row.Winners[0]]
		lower := calculation.LowerIsBetter(row.Metric)
		found := false
		var runnerValue decimal.Decimal
		for _, id := range domain.Vehicles {
			v, ok := row.Values[id]
			if !ok || row.IsWinner(id) {
				continue
			}
			if !found || (lower && v.LessThan(runnerValue)) || (!lower && v.GreaterThan(runnerValue)) {
				h.RunnerUp = id
				runnerValue = v
				found = true
			}
		}
		if found {
			h.Margin = h.Value.Sub(runnerValue).Abs()
		}
		out = append(out, h)
	}
	return out
}

// describeHighlight renders a highlight as one sentence.
func describeHighlight(h Highlight) string {
	if len(h.Leaders) == 0 {
		return h.Metric + ": no data"
	}
	leaders := joinLabels(h.Leaders)
	if h.RunnerUp == "" {
		return h.Metric + ": all vehicles tie at " + FormatDollars(h.Value)
	}
	return h.Metric + ": " + leaders + " leads with " + FormatDollars(h.Value) + ", " + FormatDollars(h.Margin) + " ahead of " + h.RunnerUp.Label()
}

func joinLabels(ids []domain.VehicleID) string {
	s := ""
	for i, id := range ids {
		if i > 0 {
			s += " & "
		}
		s += id.Label()
	}
	return s
}
