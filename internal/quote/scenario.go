package quote

import (
	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/finance"
	"github.com/ugobe007/merlin2-sub009/internal/incentive"
)

// FromScenario converts an on-disk scenario into an engine request.
func FromScenario(s *config.Scenario) Request {
	req := Request{
		Industry:  s.Facility.Industry,
		Goal:      s.Goal,
		Chemistry: s.Chemistry,
		Inputs:    s.Facility.Inputs,
		Financial: financialFromConfig(s.Financial),
		Strict:    s.Strict,
	}
	if s.Risk != nil {
		req.Risk = &finance.RiskOptions{
			Iterations: s.Risk.Iterations,
			Seed:       s.Risk.Seed,
			Workers:    s.Risk.Workers,
		}
	}
	return req
}

func financialFromConfig(f config.FinancialConfig) finance.Inputs {
	return finance.Inputs{
		DiscountRate:          f.DiscountRate,
		EscalationRate:        f.EscalationRate,
		HorizonYears:          f.HorizonYears,
		CapexPerKWh:           f.CapexPerKWh,
		CapexPerKW:            f.CapexPerKW,
		FixedCost:             f.FixedCost,
		OMCostPerKWYear:       f.OMCostPerKWYear,
		CyclesPerYear:         f.CyclesPerYear,
		ArbSpreadPerKWh:       f.ArbSpreadPerKWh,
		ElectricityRatePerKWh: f.ElectricityRatePerKWh,
		DemandChargePerKW:     f.DemandChargePerKW,
		DemandReductionShare:  f.DemandReductionShare,
		SolarOffsetKWhPerYear: f.SolarOffsetKWhPerYear,
		FinanceRate:           f.FinanceRate,
		ReinvestRate:          f.ReinvestRate,
		ITC: incentive.Eligibility{
			PrevailingWage:     f.PrevailingWage,
			EnergyCommunity:    f.EnergyCommunity,
			DomesticContent:    f.DomesticContent,
			LowIncome:          f.LowIncome,
			LowIncomeQualified: f.LowIncomeQualified,
		},
	}
}
