package output

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/iulcompare/iulcompare/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per metric).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ComparisonReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := append(append([]string{"Metric"}, vehicleHeader()...), "Best")
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range report.Rows {
		record := []string{row.Metric}
		for _, id := range domain.Vehicles {
			record = append(record, row.Values[id].StringFixed(2))
		}
		record = append(record, strings.Join(winnerLabels(row), "; "))
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
