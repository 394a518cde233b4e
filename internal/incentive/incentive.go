// Package incentive computes the investment tax credit by stacking
// eligibility bonuses under the statutory hard cap.
package incentive

import (
	"github.com/shopspring/decimal"

	"github.com/ugobe007/merlin2-sub009/internal/config"
)

// Eligibility captures the bonus qualifications claimed for the project.
// LowIncomeQualified is the deeper low-income tier (qualified residential or
// economic-benefit project); it supersedes the base low-income bonus.
type Eligibility struct {
	PrevailingWage     bool `json:"prevailing_wage"`
	EnergyCommunity    bool `json:"energy_community"`
	DomesticContent    bool `json:"domestic_content"`
	LowIncome          bool `json:"low_income"`
	LowIncomeQualified bool `json:"low_income_qualified"`
}

// Result is the stacked credit. Rate is a fraction; CreditAmount is exact
// dollars-and-cents.
type Result struct {
	Rate         float64         `json:"rate"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
}

// ComputeITC stacks bonuses on whichever base applies. The base is 6%, or
// 30% with prevailing-wage/apprenticeship met; each bonus adds on top, and
// the total is hard-capped. Bonuses requested without PWA still stack
// correctly on the 6% base and cap at the same ceiling.
func ComputeITC(capexTotal float64, elig Eligibility) Result {
	rate := config.ITCBaseRate
	if elig.PrevailingWage {
		rate = config.ITCPWARate
	}
	if elig.EnergyCommunity {
		rate += config.ITCEnergyCommunity
	}
	if elig.DomesticContent {
		rate += config.ITCDomesticContent
	}
	switch {
	case elig.LowIncomeQualified:
		rate += config.ITCLowIncomeQualified
	case elig.LowIncome:
		rate += config.ITCLowIncome
	}
	if rate > config.ITCHardCap {
		rate = config.ITCHardCap
	}

	capex := decimal.NewFromFloat(capexTotal)
	if capex.IsNegative() {
		capex = decimal.Zero
	}
	credit := capex.Mul(decimal.NewFromFloat(rate)).Round(2)

	return Result{Rate: rate, CreditAmount: credit}
}
