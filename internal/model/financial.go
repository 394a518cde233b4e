package model

// FinancialResult is the deterministic financial outcome of a quote.
// Pointer fields are nil when the metric is not computable (e.g. the IRR
// root-finder found no sign change); downstream must render "not computable",
// never zero.
// Units: dollars unless noted; rates are fractions (0.30 = 30%).
type FinancialResult struct {
	CapexTotal    float64 `json:"capex_total"`
	AnnualSavings float64 `json:"annual_savings"`

	NPV  float64  `json:"npv"`
	IRR  *float64 `json:"irr,omitempty"`
	MIRR *float64 `json:"mirr,omitempty"`

	PaybackYears           *float64 `json:"payback_years,omitempty"`
	DiscountedPaybackYears *float64 `json:"discounted_payback_years,omitempty"`

	ITCRate         float64 `json:"itc_rate"`
	ITCCreditAmount float64 `json:"itc_credit_amount"`
}

// RiskAnalysis reports Monte Carlo NPV percentiles.
// ValueAtRisk95 is the 5th-percentile loss expressed as a positive dollar
// amount (0 when the 5th percentile is a gain).
type RiskAnalysis struct {
	Iterations          int     `json:"iterations"`
	Seed                int64   `json:"seed"`
	P10NPV              float64 `json:"p10_npv"`
	P50NPV              float64 `json:"p50_npv"`
	P90NPV              float64 `json:"p90_npv"`
	ProbabilityPositive float64 `json:"probability_positive"`
	ValueAtRisk95       float64 `json:"value_at_risk_95"`
}

// SensitivityEntry is one bar of the single-variable tornado: NPV recomputed
// with the named variable swung down/up by its swing fraction, all others at
// base. Entries are ranked by Spread descending.
type SensitivityEntry struct {
	Variable string  `json:"variable"`
	Swing    float64 `json:"swing"`
	NPVLow   float64 `json:"npv_low"`
	NPVHigh  float64 `json:"npv_high"`
	Spread   float64 `json:"spread"`
}

// CashFlowYear is one row of the project cash-flow schedule.
type CashFlowYear struct {
	Year               int     `json:"year"`
	CapacityPct        float64 `json:"capacity_pct"`
	Savings            float64 `json:"savings"`
	OMCost             float64 `json:"om_cost"`
	NetCashFlow        float64 `json:"net_cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
	DiscountedCashFlow float64 `json:"discounted_cash_flow"`
}
