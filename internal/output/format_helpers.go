package output

import (
	"strconv"

	"github.com/iulcompare/iulcompare/internal/domain"
	money "github.com/iulcompare/iulcompare/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatDollars formats a decimal as whole US dollars with thousands separators.
func FormatDollars(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatWhole()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// vehicleHeader returns the table headings in display order.
func vehicleHeader() []string {
	h := make([]string, 0, len(domain.Vehicles))
	for _, id := range domain.Vehicles {
		h = append(h, id.Label())
	}
	return h
}

// winnerLabels joins the labels of a row's winners.
func winnerLabels(row domain.MetricRow) []string {
	out := make([]string, 0, len(row.Winners))
	for _, id := range row.Winners {
		out = append(out, id.Label())
	}
	return out
}

var decimalHundred = decimal.NewFromInt(100)
