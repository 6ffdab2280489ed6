package config

import (
	"fmt"
	"os"

	"github.com/iulcompare/iulcompare/internal/domain"
	"github.com/iulcompare/iulcompare/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates scenario file contents
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := config.Assumptions.Validate(); err != nil {
		return fmt.Errorf("assumptions: %w", err)
	}
	if err := ip.validateIllustration(&config.Illustration); err != nil {
		return fmt.Errorf("illustration: %w", err)
	}
	return nil
}

// validateIllustration checks the record shape only; extracted figures are taken as given.
func (ip *InputParser) validateIllustration(ill *domain.Illustration) error {
	if ill.ClientName == "" {
		return fmt.Errorf("client name is required")
	}
	if ill.UploadDate != "" {
		if _, err := dateutil.ParseDate(ill.UploadDate); err != nil {
			return fmt.Errorf("upload date: %w", err)
		}
	}
	switch ill.Status {
	case domain.StatusAnalyzed:
		if ill.ExtractedData == nil {
			return fmt.Errorf("%w: analyzed illustration has no extracted data", domain.ErrIllustrationNotAnalyzed)
		}
	case domain.StatusPending:
		return fmt.Errorf("%w: %s is still pending extraction", domain.ErrIllustrationNotAnalyzed, ill.ClientName)
	default:
		return fmt.Errorf("status must be 'pending' or 'analyzed', got %q", ill.Status)
	}
	return nil
}

// CreateExampleConfiguration creates an example scenario file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	var data domain.IllustrationData
	for i := int64(0); i < 30; i++ {
		data.Premiums = append(data.Premiums, decimal.NewFromInt(12000+i*200))
		data.DeathBenefits = append(data.DeathBenefits, decimal.NewFromInt(500000+i*5000))
		data.CashValues = append(data.CashValues, decimal.NewFromInt(i*8000+1000))
	}
	for i := int64(0); i < 20; i++ {
		data.IncomeStream = append(data.IncomeStream, decimal.NewFromInt(25000+i*500))
	}

	return &domain.Configuration{
		Assumptions: domain.DefaultAssumptions(),
		Illustration: domain.Illustration{
			ID:            "1",
			ClientName:    "Robert Johnson",
			UploadDate:    "2024-01-15",
			Status:        domain.StatusAnalyzed,
			ExtractedData: &data,
		},
	}
}
