package output

import "github.com/iulcompare/iulcompare/internal/domain"

// AssumptionLines returns the assumption notes carried on the report, generating them
// from the assumption set when the report has none.
func AssumptionLines(report *domain.ComparisonReport) []string {
	if len(report.Notes) > 0 {
		return report.Notes
	}
	return report.Assumptions.Describe()
}
