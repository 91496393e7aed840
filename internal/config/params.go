package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Report parameter defaults
const (
	DefaultFiscalYear        = 2024
	DefaultReferenceDate     = "2023-10-01"
	DefaultExpiryHorizonDays = 30

	// ReferenceDateLayout is the format for reference_date values
	ReferenceDateLayout = "2006-01-02"
)

// DefaultTrainings are the trainings of interest for the fiscal-year report
var DefaultTrainings = []string{
	"Electrical Safety for Labs",
	"X-Ray Safety",
	"Laboratory Safety Training",
}

// ReportParams holds the injectable parameters shared by the report
// generators: which fiscal year to list, which trainings matter, and the
// reference date and horizon for the expiry check.
type ReportParams struct {
	FiscalYear        int      `koanf:"fiscal_year"`
	Trainings         []string `koanf:"trainings"`
	ReferenceDate     string   `koanf:"reference_date"`
	ExpiryHorizonDays int      `koanf:"expiry_horizon_days"`
}

// DefaultReportParams returns the built-in parameter set
func DefaultReportParams() *ReportParams {
	trainings := make([]string, len(DefaultTrainings))
	copy(trainings, DefaultTrainings)

	return &ReportParams{
		FiscalYear:        DefaultFiscalYear,
		Trainings:         trainings,
		ReferenceDate:     DefaultReferenceDate,
		ExpiryHorizonDays: DefaultExpiryHorizonDays,
	}
}

// Reference parses the configured reference date
func (p *ReportParams) Reference() (time.Time, error) {
	ref, err := time.Parse(ReferenceDateLayout, p.ReferenceDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse reference_date %q: %w", p.ReferenceDate, err)
	}
	return ref, nil
}

// LoadReportParams builds report parameters by layering, lowest to highest
// precedence: built-in defaults, an optional YAML file, and TRAINING_-prefixed
// environment variables (TRAINING_FISCAL_YEAR -> fiscal_year, ...).
func LoadReportParams(path string) (*ReportParams, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load report parameters from %s: %w", path, err)
		}
	}

	envProvider := env.Provider("TRAINING_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "training_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load report parameters from environment: %w", err)
	}

	params := DefaultReportParams()
	if err := k.UnmarshalWithConf("", params, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report parameters: %w", err)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

// Validate checks the parameter set for values no report can run with
func (p *ReportParams) Validate() error {
	if p.FiscalYear <= 0 {
		return fmt.Errorf("fiscal_year must be positive, got %d", p.FiscalYear)
	}

	if len(p.Trainings) == 0 {
		return fmt.Errorf("trainings must name at least one training of interest")
	}

	if p.ExpiryHorizonDays < 0 {
		return fmt.Errorf("expiry_horizon_days must not be negative, got %d", p.ExpiryHorizonDays)
	}

	if _, err := p.Reference(); err != nil {
		return err
	}

	return nil
}

// ParamsFileFromEnv returns the params file path from TRAINING_PARAMS_FILE,
// or empty when unset.
func ParamsFileFromEnv() string {
	return os.Getenv("TRAINING_PARAMS_FILE")
}
