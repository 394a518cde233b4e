package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario is the on-disk quote configuration shape (YAML), used by the CLI
// and as the base_config of an API compare request.
type Scenario struct {
	// Optional: load a facility definition from a separate YAML. If both
	// FacilityFile and Facility are provided, Facility overrides the file.
	FacilityFile string         `yaml:"facility_file"`
	Facility     FacilityConfig `yaml:"facility"`

	Goal      string          `yaml:"goal"`
	Chemistry string          `yaml:"chemistry"`
	Financial FinancialConfig `yaml:"financial"`
	Risk      *RiskConfig     `yaml:"risk"`
	Strict    bool            `yaml:"strict"`
}

// FacilityConfig describes the site. Inputs carries the raw wizard-style
// field map; its keys go through the resolver's alias tables unchanged.
type FacilityConfig struct {
	Industry string         `yaml:"industry"`
	Inputs   map[string]any `yaml:"inputs"`
}

// FinancialConfig mirrors finance.Inputs field-for-field in YAML form.
type FinancialConfig struct {
	DiscountRate          float64 `yaml:"discount_rate"`
	EscalationRate        float64 `yaml:"escalation_rate"`
	HorizonYears          int     `yaml:"horizon_years"`
	CapexPerKWh           float64 `yaml:"capex_per_kwh"`
	CapexPerKW            float64 `yaml:"capex_per_kw"`
	FixedCost             float64 `yaml:"fixed_cost"`
	OMCostPerKWYear       float64 `yaml:"om_cost_per_kw_year"`
	CyclesPerYear         float64 `yaml:"cycles_per_year"`
	ArbSpreadPerKWh       float64 `yaml:"arb_spread_per_kwh"`
	ElectricityRatePerKWh float64 `yaml:"electricity_rate_per_kwh"`
	DemandChargePerKW     float64 `yaml:"demand_charge_per_kw"`
	DemandReductionShare  float64 `yaml:"demand_reduction_share"`
	SolarOffsetKWhPerYear float64 `yaml:"solar_offset_kwh_per_year"`
	FinanceRate           float64 `yaml:"finance_rate"`
	ReinvestRate          float64 `yaml:"reinvest_rate"`

	PrevailingWage     bool `yaml:"prevailing_wage"`
	EnergyCommunity    bool `yaml:"energy_community"`
	DomesticContent    bool `yaml:"domestic_content"`
	LowIncome          bool `yaml:"low_income"`
	LowIncomeQualified bool `yaml:"low_income_qualified"`
}

// RiskConfig enables the Monte Carlo run.
type RiskConfig struct {
	Iterations int   `yaml:"iterations"`
	Seed       int64 `yaml:"seed"`
	Workers    int   `yaml:"workers"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	s, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadUnchecked loads and merges a scenario without validating it. Useful
// for debugging/printing partial configs.
func LoadUnchecked(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if s.FacilityFile != "" {
		facilityPath := s.FacilityFile
		if !filepath.IsAbs(facilityPath) {
			// Prefer paths relative to the scenario file; fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), facilityPath)
			if _, err := os.Stat(cand); err == nil {
				facilityPath = cand
			}
		}
		loaded, err := loadFacilityFile(facilityPath)
		if err != nil {
			return nil, err
		}
		s.Facility = MergeFacility(loaded, s.Facility)
	}
	return &s, nil
}

func (s *Scenario) Validate() error {
	if s == nil {
		return errors.New("scenario is nil")
	}
	if s.Facility.Industry == "" {
		return errors.New("facility.industry is required")
	}
	if s.Risk != nil && s.Risk.Iterations < 0 {
		return fmt.Errorf("risk.iterations must be >= 0, got %d", s.Risk.Iterations)
	}
	return nil
}

type facilityFileWrapper struct {
	Facility FacilityConfig `yaml:"facility"`
}

func loadFacilityFile(path string) (FacilityConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return FacilityConfig{}, err
	}
	var w facilityFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return FacilityConfig{}, err
	}
	return w.Facility, nil
}

// MergeFacility overlays non-empty fields from override onto base. Input
// maps merge key-by-key so a scenario can tweak a single field of a shared
// facility file.
func MergeFacility(base, override FacilityConfig) FacilityConfig {
	out := base
	if override.Industry != "" {
		out.Industry = override.Industry
	}
	if len(override.Inputs) > 0 {
		merged := make(map[string]any, len(base.Inputs)+len(override.Inputs))
		for k, v := range base.Inputs {
			merged[k] = v
		}
		for k, v := range override.Inputs {
			merged[k] = v
		}
		out.Inputs = merged
	}
	return out
}
