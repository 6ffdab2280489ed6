package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RetirementAge is the age at which every vehicle switches from accumulation to decumulation.
const RetirementAge = 65

// ErrInvalidAssumption is returned when an AssumptionSet falls outside its declared domain.
var ErrInvalidAssumption = errors.New("invalid assumption")

// AssumptionSet holds the planning inputs for one comparison run.
// Rates are dimensionless annual rates (0.07 == 7%).
type AssumptionSet struct {
	Age                int             `yaml:"age" json:"age" validate:"gte=25,lte=65"`
	ContributionAmount decimal.Decimal `yaml:"contribution_amount" json:"contributionAmount" validate:"gt=0"`
	ReturnRate         decimal.Decimal `yaml:"return_rate" json:"returnRate" validate:"gte=0.03,lte=0.12"`
	TaxRateWorking     decimal.Decimal `yaml:"tax_rate_working" json:"taxRateWorking" validate:"gte=0.10,lte=0.37"`
	TaxRateRetirement  decimal.Decimal `yaml:"tax_rate_retirement" json:"taxRateRetirement" validate:"gte=0.10,lte=0.37"`
	Fees               decimal.Decimal `yaml:"fees" json:"fees" validate:"gte=0.005,lte=0.03"`
}

// NewAssumptionSet builds and validates an AssumptionSet.
func NewAssumptionSet(age int, contribution, returnRate, taxWorking, taxRetirement, fees decimal.Decimal) (AssumptionSet, error) {
	a := AssumptionSet{
		Age:                age,
		ContributionAmount: contribution,
		ReturnRate:         returnRate,
		TaxRateWorking:     taxWorking,
		TaxRateRetirement:  taxRetirement,
		Fees:               fees,
	}
	if err := a.Validate(); err != nil {
		return AssumptionSet{}, err
	}
	return a, nil
}

// DefaultAssumptions returns the settings panel defaults.
func DefaultAssumptions() AssumptionSet {
	return AssumptionSet{
		Age:                47,
		ContributionAmount: decimal.NewFromInt(12000),
		ReturnRate:         decimal.RequireFromString("0.07"),
		TaxRateWorking:     decimal.RequireFromString("0.24"),
		TaxRateRetirement:  decimal.RequireFromString("0.22"),
		Fees:               decimal.RequireFromString("0.01"),
	}
}

// YearsToRetirement returns the length of the accumulation phase.
// It is negative for ages past retirement; callers loop zero times in that case.
func (a AssumptionSet) YearsToRetirement() int {
	return RetirementAge - a.Age
}

// Validate checks every field against its domain.
func (a AssumptionSet) Validate() error {
	if err := assumptionValidator.Struct(a); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("%w: %s", ErrInvalidAssumption, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidAssumption, err)
	}
	return nil
}

var assumptionValidator = newAssumptionValidator()

func newAssumptionValidator() *validator.Validate {
	v := validator.New()
	// Validate decimals through their float value so numeric range tags apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", e.Field(), e.Param(), e.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", e.Field(), e.Param(), e.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", e.Field(), e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

var hundred = decimal.NewFromInt(100)

// Describe renders the assumptions as report lines.
func (a AssumptionSet) Describe() []string {
	years := max(a.YearsToRetirement(), 0)
	return []string{
		fmt.Sprintf("Current age: %d (%d years to retirement at %d)", a.Age, years, RetirementAge),
		fmt.Sprintf("Annual contribution: $%s", a.ContributionAmount.StringFixed(0)),
		fmt.Sprintf("Expected return: %s%% annually", a.ReturnRate.Mul(hundred).StringFixed(1)),
		fmt.Sprintf("Working tax rate: %s%%", a.TaxRateWorking.Mul(hundred).StringFixed(0)),
		fmt.Sprintf("Retirement tax rate: %s%%", a.TaxRateRetirement.Mul(hundred).StringFixed(0)),
		fmt.Sprintf("Annual fees: %s%%", a.Fees.Mul(hundred).StringFixed(1)),
		"401(k) employer match: 50% of contributions",
		"Retirement withdrawals: 4% of balance annually for 25 years",
		"Taxable account withdrawals: 15% long-term capital gains rate",
	}
}
