package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrIllustrationNotAnalyzed is returned when an illustration has no extracted data to compare.
var ErrIllustrationNotAnalyzed = errors.New("illustration has not been analyzed")

// IllustrationStatus tracks whether document extraction has completed.
type IllustrationStatus string

const (
	StatusPending  IllustrationStatus = "pending"
	StatusAnalyzed IllustrationStatus = "analyzed"
)

// IllustrationData is the per-policy-year data extracted from an insurance illustration.
// Index 0 is policy year 1. The four sequences may have different lengths.
type IllustrationData struct {
	Premiums      []decimal.Decimal `yaml:"premiums" json:"premiums"`
	DeathBenefits []decimal.Decimal `yaml:"death_benefits" json:"deathBenefits"`
	CashValues    []decimal.Decimal `yaml:"cash_values" json:"cashValues"`
	IncomeStream  []decimal.Decimal `yaml:"income_stream" json:"incomeStream"`
}

// Illustration is an uploaded policy illustration and its extraction state.
type Illustration struct {
	ID            string             `yaml:"id" json:"id"`
	ClientName    string             `yaml:"client_name" json:"clientName"`
	UploadDate    string             `yaml:"upload_date,omitempty" json:"uploadDate,omitempty"`
	Status        IllustrationStatus `yaml:"status" json:"status"`
	ExtractedData *IllustrationData  `yaml:"extracted_data,omitempty" json:"extractedData,omitempty"`
}

// Comparable reports whether the illustration can feed a comparison.
func (i *Illustration) Comparable() bool {
	return i != nil && i.Status == StatusAnalyzed && i.ExtractedData != nil
}

// Configuration is the contents of a scenario file: one client's illustration and the assumptions to run.
type Configuration struct {
	Assumptions  AssumptionSet `yaml:"assumptions" json:"assumptions"`
	Illustration Illustration  `yaml:"illustration" json:"illustration"`
}
