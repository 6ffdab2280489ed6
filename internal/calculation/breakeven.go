package calculation

import (
	"fmt"

	"github.com/iulcompare/iulcompare/internal/domain"
	"github.com/shopspring/decimal"
)

// CumulativeBreakEvenResult describes where vehicle A's cumulative retirement income
// draws level with vehicle B's.
type CumulativeBreakEvenResult struct {
	A, B             domain.VehicleID
	YearIndex        int             // 1-based retirement year in which the crossing completes
	Fraction         decimal.Decimal // portion of that year elapsed at the crossing, in [0,1]
	Age              decimal.Decimal // RetirementAge + YearIndex - 1 + Fraction
	CumulativeAmount decimal.Decimal // A's cumulative income at the crossing
}

var breakEvenTolerance = decimal.RequireFromString("0.01")

// CalculateIncomeBreakEven compares the retirement income streams of two vehicles.
// It returns nil, nil when the cumulative totals never cross.
func CalculateIncomeBreakEven(r domain.ComparisonResult, a, b domain.VehicleID) (*CumulativeBreakEvenResult, error) {
	pa, okA := r.Projection(a)
	pb, okB := r.Projection(b)
	if !okA || !okB {
		return nil, fmt.Errorf("unknown vehicle pair %q/%q", a, b)
	}
	res, err := CalculateCumulativeBreakEven(pa.Income, pb.Income)
	if err != nil || res == nil {
		return nil, err
	}
	res.A, res.B = a, b
	return res, nil
}

// CalculateCumulativeBreakEven finds the first crossover of the cumulative sums of
// two yearly income sequences. The shorter sequence contributes zero past its end.
func CalculateCumulativeBreakEven(incomeA, incomeB []decimal.Decimal) (*CumulativeBreakEvenResult, error) {
	if len(incomeA) == 0 || len(incomeB) == 0 {
		return nil, fmt.Errorf("both income sequences are required")
	}
	n := max(len(incomeA), len(incomeB))

	cumA := decimal.Zero
	cumB := decimal.Zero
	for i := 0; i < n; i++ {
		yearA := valueAt(incomeA, i)
		yearB := valueAt(incomeB, i)

		prevDiff := cumA.Sub(cumB)
		cumA = cumA.Add(yearA)
		cumB = cumB.Add(yearB)
		currDiff := cumA.Sub(cumB)

		// An exact tie in the first year is trivial; keep searching.
		if currDiff.Abs().LessThan(breakEvenTolerance) && i > 0 {
			return newBreakEven(i, decimal.NewFromInt(1), cumA), nil
		}

		// Sign change: the crossing happened inside this year.
		if i > 0 && prevDiff.Mul(currDiff).IsNegative() {
			// diff(t) = prevDiff + t*(currDiff - prevDiff); solve diff(t) = 0.
			t := prevDiff.Neg().Div(currDiff.Sub(prevDiff))
			if t.IsNegative() {
				t = decimal.Zero
			} else if t.GreaterThan(decimal.NewFromInt(1)) {
				t = decimal.NewFromInt(1)
			}
			cumAt := cumA.Sub(yearA).Add(yearA.Mul(t))
			return newBreakEven(i, t, cumAt), nil
		}
	}
	return nil, nil
}

func newBreakEven(i int, fraction, cumulative decimal.Decimal) *CumulativeBreakEvenResult {
	return &CumulativeBreakEvenResult{
		YearIndex:        i + 1,
		Fraction:         fraction,
		Age:              decimal.NewFromInt(int64(domain.RetirementAge + i)).Add(fraction),
		CumulativeAmount: cumulative,
	}
}

func valueAt(s []decimal.Decimal, i int) decimal.Decimal {
	if i < len(s) {
		return s[i]
	}
	return decimal.Zero
}
