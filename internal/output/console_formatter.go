package output

import (
	"bytes"
	"fmt"

	"github.com/iulcompare/iulcompare/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.ComparisonReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "IUL COMPARISON SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if report.ClientName != "" {
		fmt.Fprintf(&buf, "Client: %s\n", report.ClientName)
	}
	fmt.Fprintf(&buf, "Age %d, %s per year, %s return\n",
		report.Assumptions.Age,
		FormatDollars(report.Assumptions.ContributionAmount),
		FormatPercentage(report.Assumptions.ReturnRate.Mul(decimalHundred)))
	fmt.Fprintln(&buf)
	writeMetricTable(&buf, report.Rows)
	writeRecommendation(&buf, report.Recommendation)
	return buf.Bytes(), nil
}

// writeMetricTable prints the comparison table, starring the best value on each row.
func writeMetricTable(buf *bytes.Buffer, rows []domain.MetricRow) {
	fmt.Fprintf(buf, "%-22s", "Metric")
	for _, h := range vehicleHeader() {
		fmt.Fprintf(buf, "%16s", h)
	}
	fmt.Fprintln(buf)
	for _, row := range rows {
		fmt.Fprintf(buf, "%-22s", row.Metric)
		for _, id := range domain.Vehicles {
			cell := FormatDollars(row.Values[id])
			if row.IsWinner(id) {
				cell += "*"
			}
			fmt.Fprintf(buf, "%16s", cell)
		}
		fmt.Fprintln(buf)
	}
	fmt.Fprintln(buf, "(* best value on the row)")
}

func writeRecommendation(buf *bytes.Buffer, rec domain.VehicleRecommendation) {
	if rec.Vehicle == "" {
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Recommended: %s (best on %d of %d metrics)\n", rec.Vehicle.Label(), rec.Wins, rec.Of)
}
