package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/iulcompare/iulcompare/internal/calculation"
	"github.com/iulcompare/iulcompare/internal/domain"
	"github.com/iulcompare/iulcompare/pkg/dateutil"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.ComparisonReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED IUL VS RETIREMENT ACCOUNT COMPARISON")
	fmt.Fprintln(&buf, "=================================================================================")
	if report.ClientName != "" {
		fmt.Fprintf(&buf, "Client: %s\n", report.ClientName)
	}
	if report.ID != "" {
		fmt.Fprintf(&buf, "Report: %s (%s)\n", report.ID, report.GeneratedAt.Format("2006-01-02 15:04"))
	}
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Projected retirement year: %d\n", dateutil.RetirementYear(report.GeneratedAt, report.Assumptions.YearsToRetirement()))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range AssumptionLines(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "COMPARISON TABLE")
	fmt.Fprintln(&buf, strings.Repeat("=", 86))
	writeMetricTable(&buf, report.Rows)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "HIGHLIGHTS")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	for _, h := range AnalyzeRows(report.Rows) {
		fmt.Fprintf(&buf, "  %s\n", describeHighlight(h))
	}
	fmt.Fprintln(&buf)

	writeTotals(&buf, report)
	writeIncomeBreakEvens(&buf, report)
	writeBalanceChart(&buf, report.Chart)
	writeRecommendation(&buf, report.Recommendation)
	return buf.Bytes(), nil
}

// writeTotals prints the per-vehicle summary block.
func writeTotals(buf *bytes.Buffer, report *domain.ComparisonReport) {
	if len(report.Totals) == 0 {
		return
	}
	fmt.Fprintln(buf, "VEHICLE TOTALS")
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	for _, id := range domain.Vehicles {
		t, ok := report.Totals[id]
		if !ok {
			continue
		}
		p, _ := report.Result.Projection(id)
		fmt.Fprintf(buf, "%s:\n", id.Label())
		fmt.Fprintf(buf, "  Accumulation years:   %d\n", p.AccumulationYears)
		fmt.Fprintf(buf, "  Contributions:        %s\n", FormatDollars(t.TotalContributions))
		fmt.Fprintf(buf, "  Final balance:        %s\n", FormatDollars(t.FinalBalance))
		fmt.Fprintf(buf, "  Net return:           %s\n", FormatDollars(t.NetReturn))
		fmt.Fprintf(buf, "  Taxes paid:           %s\n", FormatDollars(t.TotalTaxes))
		fmt.Fprintf(buf, "  Retirement income:    %s\n", FormatDollars(t.TotalIncome))
	}
	fmt.Fprintln(buf)
}

// writeIncomeBreakEvens prints where cumulative IUL income draws level with each other vehicle.
func writeIncomeBreakEvens(buf *bytes.Buffer, report *domain.ComparisonReport) {
	lines := IncomeBreakEvenLines(report)
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(buf, "CUMULATIVE INCOME BREAK-EVEN")
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	for _, l := range lines {
		fmt.Fprintf(buf, "  %s\n", l)
	}
	fmt.Fprintln(buf)
}

// IncomeBreakEvenLines describes the IUL income break-even against every other vehicle.
// Pairs without income on both sides are skipped.
func IncomeBreakEvenLines(report *domain.ComparisonReport) []string {
	var lines []string
	for _, id := range domain.Vehicles[1:] {
		be, err := calculation.CalculateIncomeBreakEven(report.Result, domain.VehicleIUL, id)
		if err != nil {
			continue
		}
		pair := domain.VehicleIUL.Label() + " vs " + id.Label()
		if be == nil {
			lines = append(lines, pair+": cumulative income never crosses")
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: level at age %s (%s cumulative)", pair, be.Age.StringFixed(1), FormatDollars(be.CumulativeAmount)))
	}
	return lines
}

// writeBalanceChart prints the chart series as a year-by-year table.
func writeBalanceChart(buf *bytes.Buffer, chart []domain.ChartPoint) {
	if len(chart) == 0 {
		return
	}
	fmt.Fprintln(buf, "YEAR-BY-YEAR BALANCES")
	fmt.Fprintln(buf, strings.Repeat("=", 86))
	fmt.Fprintf(buf, "%-6s%-6s%-10s", "Year", "Age", "Phase")
	for _, h := range vehicleHeader() {
		fmt.Fprintf(buf, "%16s", h)
	}
	fmt.Fprintln(buf)
	for _, pt := range chart {
		phase := "Saving"
		if pt.IsRetirement {
			phase = "Retired"
		}
		fmt.Fprintf(buf, "%-6d%-6d%-10s", pt.Year, pt.Age, phase)
		for _, id := range domain.Vehicles {
			fmt.Fprintf(buf, "%16s", FormatDollars(pt.Balances[id]))
		}
		fmt.Fprintln(buf)
	}
	fmt.Fprintln(buf)
}
