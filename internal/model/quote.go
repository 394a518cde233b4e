package model

// QuoteResult is the top-level output of one quote computation. It is
// created fresh per invocation and never mutated after return; downstream
// export and display consumers format it, they do not recompute.
type QuoteResult struct {
	ID       string   `json:"id"`
	Industry Industry `json:"industry"`
	Goal     Goal     `json:"goal"`

	LoadProfile          LoadProfile          `json:"load_profile"`
	ContributorBreakdown ContributorBreakdown `json:"contributor_breakdown"`
	BESSConfig           BESSConfig           `json:"bess_config"`
	DegradationProfile   DegradationProfile   `json:"degradation_profile"`
	FinancialResult      FinancialResult      `json:"financial_result"`

	Risk        *RiskAnalysis      `json:"risk,omitempty"`
	Sensitivity []SensitivityEntry `json:"sensitivity,omitempty"`
	CashFlows   []CashFlowYear     `json:"cash_flows,omitempty"`

	// Audit trail: every default or choice made (assumptions) and every
	// non-fatal anomaly (warnings), human-readable.
	Assumptions []string `json:"assumptions"`
	Warnings    []string `json:"warnings"`
}
