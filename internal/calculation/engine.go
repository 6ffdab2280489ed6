package calculation

import (
	"fmt"

	"github.com/iulcompare/iulcompare/internal/domain"
)

// ComparisonEngine runs every vehicle projector and assembles the comparison.
type ComparisonEngine struct {
	Projectors []VehicleProjector
	Logger     Logger
}

// NewComparisonEngine creates an engine with the four standard vehicles.
func NewComparisonEngine() *ComparisonEngine {
	return &ComparisonEngine{
		Projectors: DefaultProjectors(),
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (ce *ComparisonEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Compare projects every vehicle. It performs no validation: out-of-range
// assumptions are computed as given.
func (ce *ComparisonEngine) Compare(assumptions domain.AssumptionSet, illustration domain.IllustrationData) domain.ComparisonResult {
	var result domain.ComparisonResult
	for _, p := range ce.Projectors {
		result = result.With(p.Vehicle(), p.Project(assumptions, illustration))
	}
	return result
}

// RunComparison validates a scenario file's inputs and builds the full report.
func (ce *ComparisonEngine) RunComparison(config *domain.Configuration) (*domain.ComparisonReport, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	return ce.BuildReport(config.Illustration.ClientName, config.Assumptions, &config.Illustration)
}

// BuildReport runs one comparison for an analyzed illustration.
func (ce *ComparisonEngine) BuildReport(clientName string, assumptions domain.AssumptionSet, illustration *domain.Illustration) (*domain.ComparisonReport, error) {
	if err := assumptions.Validate(); err != nil {
		return nil, err
	}
	if !illustration.Comparable() {
		return nil, fmt.Errorf("%w: %s", domain.ErrIllustrationNotAnalyzed, illustrationName(illustration))
	}

	result := ce.Compare(assumptions, *illustration.ExtractedData)
	totals := CalculateAllTotals(result)
	rows := BuildMetricRows(result, totals)

	report := &domain.ComparisonReport{
		ID:             idFunc(),
		GeneratedAt:    nowFunc(),
		ClientName:     clientName,
		Assumptions:    assumptions,
		Result:         result,
		Totals:         totals,
		Rows:           rows,
		Chart:          BuildChartSeries(result, assumptions.Age),
		Recommendation: AnalyzeComparison(rows),
		Notes:          assumptions.Describe(),
	}

	ce.Logger.Debugf("comparison %s: client=%q years_to_retirement=%d chart_points=%d",
		report.ID, clientName, assumptions.YearsToRetirement(), len(report.Chart))
	for _, id := range domain.Vehicles {
		t := totals[id]
		ce.Logger.Debugf("  %-11s contributions=%s final=%s taxes=%s income=%s",
			id, t.TotalContributions.StringFixed(2), t.FinalBalance.StringFixed(2),
			t.TotalTaxes.StringFixed(2), t.TotalIncome.StringFixed(2))
	}
	return report, nil
}

func illustrationName(i *domain.Illustration) string {
	if i == nil {
		return "<nil>"
	}
	if i.ClientName != "" {
		return fmt.Sprintf("%s (%s)", i.ClientName, i.Status)
	}
	return fmt.Sprintf("%s (%s)", i.ID, i.Status)
}
