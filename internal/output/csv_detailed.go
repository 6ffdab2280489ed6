package output

import (
	"bytes"
	"encoding/csv"

	"github.com/iulcompare/iulcompare/internal/domain"
)

// CSVDetailedExporter provides the age-indexed balance series, one row per chart point.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.ComparisonReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := append([]string{"Year", "Age", "IsRetirement"}, vehicleHeader()...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, pt := range report.Chart {
		row := []string{
			intToString(pt.Year),
			intToString(pt.Age),
			boolToString(pt.IsRetirement),
		}
		for _, id := range domain.Vehicles {
			row = append(row, pt.Balances[id].StringFixed(2))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
