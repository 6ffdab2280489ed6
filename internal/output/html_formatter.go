package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/iulcompare/iulcompare/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with the table and balance chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"dollars": FormatDollars,
	"pct": func(rate decimal.Decimal) string {
		return FormatPercentage(rate.Mul(decimalHundred))
	},
	"label":     func(id domain.VehicleID) string { return id.Label() },
	"highlight": describeHighlight,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the chart payload handed to the page script, one dataset per vehicle.
type chartSeries struct {
	Labels   []int                `json:"labels"`
	Datasets []chartSeriesVehicle `json:"datasets"`
}

type chartSeriesVehicle struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

func buildChartSeries(chart []domain.ChartPoint) chartSeries {
	s := chartSeries{Labels: make([]int, 0, len(chart))}
	for _, pt := range chart {
		s.Labels = append(s.Labels, pt.Age)
	}
	for _, id := range domain.Vehicles {
		ds := chartSeriesVehicle{Label: id.Label(), Data: make([]float64, 0, len(chart))}
		for _, pt := range chart {
			ds.Data = append(ds.Data, pt.Balances[id].Round(2).InexactFloat64())
		}
		s.Datasets = append(s.Datasets, ds)
	}
	return s
}

func (h HTMLFormatter) Format(report *domain.ComparisonReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ComparisonReport
		Vehicles        []domain.VehicleID
		AssumptionLines []string
		Highlights      []Highlight
		BreakEvens      []string
		Series          chartSeries
	}{report, domain.Vehicles, AssumptionLines(report), AnalyzeRows(report.Rows), IncomeBreakEvenLines(report), buildChartSeries(report.Chart)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
