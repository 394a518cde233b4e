package models

// QuoteRequest is the request body for running a quote.
type QuoteRequest struct {
	Industry  string         `json:"industry" binding:"required"`
	Goal      string         `json:"goal,omitempty"`
	Chemistry string         `json:"chemistry,omitempty"`
	Inputs    map[string]any `json:"inputs,omitempty"`

	Financial *FinancialConfig `json:"financial,omitempty"`
	Risk      *RiskConfig      `json:"risk,omitempty"`
	Options   QuoteOptions     `json:"options,omitempty"`
}

// FinancialConfig overrides financial defaults. Zero fields keep defaults.
type FinancialConfig struct {
	DiscountRate          float64 `json:"discount_rate,omitempty"`
	EscalationRate        float64 `json:"escalation_rate,omitempty"`
	HorizonYears          int     `json:"horizon_years,omitempty"`
	CapexPerKWh           float64 `json:"capex_per_kwh,omitempty"`
	CapexPerKW            float64 `json:"capex_per_kw,omitempty"`
	FixedCost             float64 `json:"fixed_cost,omitempty"`
	OMCostPerKWYear       float64 `json:"om_cost_per_kw_year,omitempty"`
	CyclesPerYear         float64 `json:"cycles_per_year,omitempty"`
	ArbSpreadPerKWh       float64 `json:"arb_spread_per_kwh,omitempty"`
	ElectricityRatePerKWh float64 `json:"electricity_rate_per_kwh,omitempty"`
	DemandChargePerKW     float64 `json:"demand_charge_per_kw,omitempty"`
	DemandReductionShare  float64 `json:"demand_reduction_share,omitempty"`
	SolarOffsetKWhPerYear float64 `json:"solar_offset_kwh_per_year,omitempty"`
	FinanceRate           float64 `json:"finance_rate,omitempty"`
	ReinvestRate          float64 `json:"reinvest_rate,omitempty"`

	PrevailingWage     bool `json:"prevailing_wage,omitempty"`
	EnergyCommunity    bool `json:"energy_community,omitempty"`
	DomesticContent    bool `json:"domestic_content,omitempty"`
	LowIncome          bool `json:"low_income,omitempty"`
	LowIncomeQualified bool `json:"low_income_qualified,omitempty"`
}

// RiskConfig enables Monte Carlo risk analysis on the quote.
type RiskConfig struct {
	Iterations int   `json:"iterations,omitempty"` // default 10000
	Seed       int64 `json:"seed,omitempty"`
	Workers    int   `json:"workers,omitempty"`
}

// QuoteOptions contains optional quote parameters.
type QuoteOptions struct {
	IncludeCashFlows   bool `json:"include_cash_flows,omitempty"`
	IncludeSensitivity bool `json:"include_sensitivity,omitempty"`
	Strict             bool `json:"strict,omitempty"`
}

// CompareQuoteRequest runs a base request plus named variations over the
// same facility.
type CompareQuoteRequest struct {
	Base       QuoteRequest     `json:"base" binding:"required"`
	Variations []QuoteVariation `json:"variations" binding:"required"`
}

// QuoteVariation overrides parts of the base request.
type QuoteVariation struct {
	Name      string           `json:"name" binding:"required"`
	Goal      string           `json:"goal,omitempty"`
	Chemistry string           `json:"chemistry,omitempty"`
	Inputs    map[string]any   `json:"inputs,omitempty"`
	Financial *FinancialConfig `json:"financial,omitempty"`
}
