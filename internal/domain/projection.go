package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleID identifies one of the compared savings vehicles.
type VehicleID string

const (
	VehicleIUL        VehicleID = "iul"
	VehicleIRA        VehicleID = "ira"
	VehicleK401       VehicleID = "k401"
	VehicleMutualFund VehicleID = "mutualFund"
)

// Vehicles lists every vehicle in display order.
var Vehicles = []VehicleID{VehicleIUL, VehicleIRA, VehicleK401, VehicleMutualFund}

var vehicleLabels = map[VehicleID]string{
	VehicleIUL:        "IUL",
	VehicleIRA:        "IRA",
	VehicleK401:       "401(k)",
	VehicleMutualFund: "Mutual Fund",
}

// Label returns the table heading for the vehicle.
func (v VehicleID) Label() string {
	if l, ok := vehicleLabels[v]; ok {
		return l
	}
	return string(v)
}

// VehicleProjection is the year-by-year trajectory of one vehicle.
type VehicleProjection struct {
	Contributions     []decimal.Decimal `json:"contributions"` // cumulative
	Balances          []decimal.Decimal `json:"balances"`      // end of year, both phases
	Taxes             []decimal.Decimal `json:"taxes"`         // accumulation phase only
	Income            []decimal.Decimal `json:"income"`        // post-tax, decumulation only
	DeathBenefit      []decimal.Decimal `json:"deathBenefit,omitempty"`
	AccumulationYears int               `json:"accumulationYears"`
}

// BalanceAt returns the balance at index i, or zero past the end of the sequence.
func (p VehicleProjection) BalanceAt(i int) decimal.Decimal {
	if i < 0 || i >= len(p.Balances) {
		return decimal.Zero
	}
	return p.Balances[i]
}

// ComparisonResult holds the projection for each vehicle. It is built fresh on every run.
type ComparisonResult struct {
	IUL        VehicleProjection `json:"iul"`
	IRA        VehicleProjection `json:"ira"`
	K401       VehicleProjection `json:"k401"`
	MutualFund VehicleProjection `json:"mutualFund"`
}

// Projection returns the projection for a vehicle.
func (r ComparisonResult) Projection(id VehicleID) (VehicleProjection, bool) {
	switch id {
	case VehicleIUL:
		return r.IUL, true
	case VehicleIRA:
		return r.IRA, true
	case VehicleK401:
		return r.K401, true
	case VehicleMutualFund:
		return r.MutualFund, true
	}
	return VehicleProjection{}, false
}

// With returns a copy of r with the projection for id replaced.
func (r ComparisonResult) With(id VehicleID, p VehicleProjection) ComparisonResult {
	switch id {
	case VehicleIUL:
		r.IUL = p
	case VehicleIRA:
		r.IRA = p
	case VehicleK401:
		r.K401 = p
	case VehicleMutualFund:
		r.MutualFund = p
	}
	return r
}

// MaxLength returns the longest balances sequence across all vehicles.
func (r ComparisonResult) MaxLength() int {
	n := 0
	for _, id := range Vehicles {
		p, _ := r.Projection(id)
		if len(p.Balances) > n {
			n = len(p.Balances)
		}
	}
	return n
}

// Totals summarizes one vehicle's projection.
type Totals struct {
	TotalContributions decimal.Decimal `json:"totalContributions"`
	FinalBalance       decimal.Decimal `json:"finalBalance"`
	TotalTaxes         decimal.Decimal `json:"totalTaxes"`
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	NetReturn          decimal.Decimal `json:"netReturn"`
}

// MetricRow is one line of the comparison table with its best-value vehicles.
type MetricRow struct {
	Metric  string                        `json:"metric"`
	Values  map[VehicleID]decimal.Decimal `json:"values"`
	Winners []VehicleID                   `json:"winners"`
}

// IsWinner reports whether id holds the best value on this row.
func (m MetricRow) IsWinner(id VehicleID) bool {
	for _, w := range m.Winners {
		if w == id {
			return true
		}
	}
	return false
}

// ChartPoint is one age-indexed row of the combined balance chart.
type ChartPoint struct {
	Age          int                           `json:"age"`
	Year         int                           `json:"year"`
	IsRetirement bool                          `json:"isRetirement"`
	Balances     map[VehicleID]decimal.Decimal `json:"balances"`
}

// ComparisonReport is everything presentation layers need for one client and assumption set.
type ComparisonReport struct {
	ID             string                `json:"id"`
	GeneratedAt    time.Time             `json:"generatedAt"`
	ClientName     string                `json:"clientName"`
	Assumptions    AssumptionSet         `json:"assumptions"`
	Result         ComparisonResult      `json:"result"`
	Totals         map[VehicleID]Totals  `json:"totals"`
	Rows           []MetricRow           `json:"rows"`
	Chart          []ChartPoint          `json:"chart"`
	Recommendation VehicleRecommendation `json:"recommendation"`
	Notes          []string              `json:"notes"`
}

// VehicleRecommendation names the vehicle that wins the most metric rows.
type VehicleRecommendation struct {
	Vehicle VehicleID `json:"vehicle"`
	Wins    int       `json:"wins"`
	Of      int       `json:"of"`
}
