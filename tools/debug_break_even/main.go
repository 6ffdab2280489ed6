package main

import (
	"fmt"
	"os"

	calc "github.com/iulcompare/iulcompare/internal/calculation"
	"github.com/iulcompare/iulcompare/internal/config"
	"github.com/iulcompare/iulcompare/internal/domain"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <scenario-file>")
		return
	}
	cfg, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	engine := calc.NewComparisonEngine()
	report, err := engine.RunComparison(cfg)
	if err != nil {
		panic(err)
	}

	iul := report.Result.IUL
	fmt.Printf("IUL income years: %d\n", len(iul.Income))
	for _, id := range domain.Vehicles[1:] {
		p, _ := report.Result.Projection(id)
		fmt.Printf("\nIUL vs %s (%d income years)\n", id.Label(), len(p.Income))
		cumA, cumB := 0.0, 0.0
		for i := 0; i < max(len(iul.Income), len(p.Income)); i++ {
			if i < len(iul.Income) {
				cumA += iul.Income[i].InexactFloat64()
			}
			if i < len(p.Income) {
				cumB += p.Income[i].InexactFloat64()
			}
			fmt.Printf("  age %d: cumIUL=%.2f cum%s=%.2f diff=%.2f\n", domain.RetirementAge+i, cumA, id, cumB, cumA-cumB)
		}
		be, err := calc.CalculateIncomeBreakEven(report.Result, domain.VehicleIUL, id)
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			continue
		}
		if be == nil {
			fmt.Println("  no crossover")
			continue
		}
		fmt.Printf("  break-even: year %d fraction %s age %s cumulative %s\n",
			be.YearIndex, be.Fraction.StringFixed(4), be.Age.StringFixed(2), be.CumulativeAmount.StringFixed(2))
	}
}
