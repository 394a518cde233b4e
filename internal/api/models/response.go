package models

import "github.com/ugobe007/merlin2-sub009/internal/model"

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code plus a human message.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// QuoteResponse wraps a completed quote.
type QuoteResponse struct {
	Status string             `json:"status"`
	Quote  *model.QuoteResult `json:"quote"`
}

// QuoteSummary is the compact financial view used by compare responses.
type QuoteSummary struct {
	PeakLoadKW    float64  `json:"peak_load_kw"`
	PowerKW       float64  `json:"power_kw"`
	EnergyKWh     float64  `json:"energy_kwh"`
	CapexTotal    float64  `json:"capex_total"`
	AnnualSavings float64  `json:"annual_savings"`
	NPV           float64  `json:"npv"`
	IRR           *float64 `json:"irr,omitempty"`
	PaybackYears  *float64 `json:"payback_years,omitempty"`
	ITCRate       float64  `json:"itc_rate"`
	WarningCount  int      `json:"warning_count"`
}

// ComparisonResult is one variation's outcome.
type ComparisonResult struct {
	Name    string       `json:"name"`
	Summary QuoteSummary `json:"summary"`
}

// CompareQuoteResponse is the compare endpoint payload.
type CompareQuoteResponse struct {
	Base       QuoteSummary       `json:"base"`
	Comparison []ComparisonResult `json:"comparison"`
}

// IndustryInfo documents one supported industry for the catalog endpoint.
type IndustryInfo struct {
	Industry    string   `json:"industry"`
	Description string   `json:"description"`
	KeyInputs   []string `json:"key_inputs"`
}

// ChemistryInfo documents one supported chemistry.
type ChemistryInfo struct {
	Chemistry         string  `json:"chemistry"`
	CalendarFadePctYr float64 `json:"calendar_fade_pct_per_year"`
	RatedCycleLife    float64 `json:"rated_cycle_life"`
	WarrantyYear      int     `json:"warranty_year"`
	WarrantyFloorPct  float64 `json:"warranty_floor_pct"`
	TerminalFloorPct  float64 `json:"terminal_floor_pct"`
}
