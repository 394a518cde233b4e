// Package finance computes project cash flows and discounted-cash-flow
// metrics for a sized battery system, with optional Monte Carlo risk
// percentiles and single-variable sensitivity.
package finance

import (
	"math"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/incentive"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// Inputs are the resolved financial parameters for one evaluation. Rates are
// fractions; dollar figures are dollars.
type Inputs struct {
	DiscountRate   float64 `json:"discount_rate" yaml:"discount_rate"`
	EscalationRate float64 `json:"escalation_rate" yaml:"escalation_rate"`
	HorizonYears   int     `json:"horizon_years" yaml:"horizon_years"`

	CapexPerKWh float64 `json:"capex_per_kwh" yaml:"capex_per_kwh"`
	CapexPerKW  float64 `json:"capex_per_kw" yaml:"capex_per_kw"`
	FixedCost   float64 `json:"fixed_cost" yaml:"fixed_cost"`

	OMCostPerKWYear float64 `json:"om_cost_per_kw_year" yaml:"om_cost_per_kw_year"`
	CyclesPerYear   float64 `json:"cycles_per_year" yaml:"cycles_per_year"`

	ArbSpreadPerKWh       float64 `json:"arb_spread_per_kwh" yaml:"arb_spread_per_kwh"`
	ElectricityRatePerKWh float64 `json:"electricity_rate_per_kwh" yaml:"electricity_rate_per_kwh"`
	DemandChargePerKW     float64 `json:"demand_charge_per_kw" yaml:"demand_charge_per_kw"`
	DemandReductionShare  float64 `json:"demand_reduction_share" yaml:"demand_reduction_share"`

	// SolarOffsetKWhPerYear credits co-located solar production at the
	// retail rate. 0 = no solar.
	SolarOffsetKWhPerYear float64 `json:"solar_offset_kwh_per_year" yaml:"solar_offset_kwh_per_year"`

	// MIRR is computed only when both rates are set.
	FinanceRate  float64 `json:"finance_rate" yaml:"finance_rate"`
	ReinvestRate float64 `json:"reinvest_rate" yaml:"reinvest_rate"`

	ITC incentive.Eligibility `json:"itc" yaml:"itc"`
}

// Defaults fills unset fields from the constants table plus the resolved
// pricing context.
func Defaults(in model.CanonicalInputs) Inputs {
	return Inputs{
		DiscountRate:          config.DefaultDiscountRate,
		EscalationRate:        config.DefaultEscalationRate,
		HorizonYears:          config.ProjectHorizonYears,
		CapexPerKWh:           config.DefaultCapexPerKWh,
		CapexPerKW:            config.DefaultCapexPerKW,
		OMCostPerKWYear:       config.DefaultOMCostPerKWYear,
		CyclesPerYear:         config.DefaultCyclesPerYear,
		ArbSpreadPerKWh:       config.DefaultArbSpreadPerKWh,
		ElectricityRatePerKWh: in.ElectricityRatePerKWh,
		DemandChargePerKW:     in.DemandChargePerKW,
		DemandReductionShare:  config.DefaultDemandReduction,
	}
}

// Merge overlays non-zero override fields onto base. Boolean eligibility is
// taken from the override wholesale when any flag is set.
func Merge(base, override Inputs) Inputs {
	out := base
	if override.DiscountRate != 0 {
		out.DiscountRate = override.DiscountRate
	}
	if override.EscalationRate != 0 {
		out.EscalationRate = override.EscalationRate
	}
	if override.HorizonYears != 0 {
		out.HorizonYears = override.HorizonYears
	}
	if override.CapexPerKWh != 0 {
		out.CapexPerKWh = override.CapexPerKWh
	}
	if override.CapexPerKW != 0 {
		out.CapexPerKW = override.CapexPerKW
	}
	if override.FixedCost != 0 {
		out.FixedCost = override.FixedCost
	}
	if override.OMCostPerKWYear != 0 {
		out.OMCostPerKWYear = override.OMCostPerKWYear
	}
	if override.CyclesPerYear != 0 {
		out.CyclesPerYear = override.CyclesPerYear
	}
	if override.ArbSpreadPerKWh != 0 {
		out.ArbSpreadPerKWh = override.ArbSpreadPerKWh
	}
	if override.ElectricityRatePerKWh != 0 {
		out.ElectricityRatePerKWh = override.ElectricityRatePerKWh
	}
	if override.DemandChargePerKW != 0 {
		out.DemandChargePerKW = override.DemandChargePerKW
	}
	if override.DemandReductionShare != 0 {
		out.DemandReductionShare = override.DemandReductionShare
	}
	if override.SolarOffsetKWhPerYear != 0 {
		out.SolarOffsetKWhPerYear = override.SolarOffsetKWhPerYear
	}
	if override.FinanceRate != 0 {
		out.FinanceRate = override.FinanceRate
	}
	if override.ReinvestRate != 0 {
		out.ReinvestRate = override.ReinvestRate
	}
	if override.ITC != (incentive.Eligibility{}) {
		out.ITC = override.ITC
	}
	return out
}

// factors are the multiplicative perturbations the risk and sensitivity
// paths apply. 1.0 everywhere reproduces the base case.
type factors struct {
	electricity   float64
	degradation   float64 // scales capacity *loss*, not capacity
	equipmentCost float64
	demandCharge  float64
	solar         float64
}

var baseFactors = factors{1, 1, 1, 1, 1}

// Evaluate computes the deterministic financial outcome and the cash-flow
// schedule.
func Evaluate(bess model.BESSConfig, degr model.DegradationProfile, fin Inputs) (model.FinancialResult, []model.CashFlowYear) {
	return evaluate(bess, degr, fin, baseFactors)
}

func evaluate(bess model.BESSConfig, degr model.DegradationProfile, fin Inputs, f factors) (model.FinancialResult, []model.CashFlowYear) {
	horizon := fin.HorizonYears
	if horizon <= 0 {
		horizon = config.ProjectHorizonYears
	}

	capexTotal := (bess.EnergyKWh*fin.CapexPerKWh + bess.PowerKW*fin.CapexPerKW + fin.FixedCost) * f.equipmentCost
	itc := incentive.ComputeITC(capexTotal, fin.ITC)
	creditAmount, _ := itc.CreditAmount.Float64()
	netCapex := capexTotal - creditAmount

	cashflows := make([]float64, horizon+1)
	cashflows[0] = -netCapex

	schedule := make([]model.CashFlowYear, 0, horizon)
	cumulative := -netCapex

	var firstYearSavings float64
	for year := 1; year <= horizon; year++ {
		capacity := perturbedCapacity(degr, year, f.degradation)
		esc := math.Pow(1+fin.EscalationRate, float64(year-1))

		arbitrage := bess.EnergyKWh * capacity * fin.CyclesPerYear * fin.ArbSpreadPerKWh * f.electricity * esc
		demand := bess.PowerKW * capacity * fin.DemandReductionShare * fin.DemandChargePerKW * f.demandCharge * 12 * esc
		solar := fin.SolarOffsetKWhPerYear * f.solar * fin.ElectricityRatePerKWh * f.electricity * esc

		savings := arbitrage + demand + solar
		om := bess.PowerKW * fin.OMCostPerKWYear
		net := savings - om

		if year == 1 {
			firstYearSavings = savings
		}

		cashflows[year] = net
		cumulative += net
		schedule = append(schedule, model.CashFlowYear{
			Year:               year,
			CapacityPct:        capacity * 100,
			Savings:            savings,
			OMCost:             om,
			NetCashFlow:        net,
			CumulativeCashFlow: cumulative,
			DiscountedCashFlow: net / math.Pow(1+fin.DiscountRate, float64(year)),
		})
	}

	result := model.FinancialResult{
		CapexTotal:      capexTotal,
		AnnualSavings:   firstYearSavings,
		NPV:             NPV(fin.DiscountRate, cashflows),
		ITCRate:         itc.Rate,
		ITCCreditAmount: creditAmount,
	}

	if irr, ok := IRR(cashflows); ok {
		result.IRR = &irr
	}
	if fin.FinanceRate > 0 && fin.ReinvestRate > 0 {
		if mirr, ok := MIRR(cashflows, fin.FinanceRate, fin.ReinvestRate); ok {
			result.MIRR = &mirr
		}
	}
	if pb, ok := SimplePayback(cashflows); ok {
		result.PaybackYears = &pb
	}
	if dpb, ok := DiscountedPayback(fin.DiscountRate, cashflows); ok {
		result.DiscountedPaybackYears = &dpb
	}

	return result, schedule
}

// perturbedCapacity scales the capacity loss (never the capacity itself):
// a +20% degradation draw makes the battery fade 20% faster.
func perturbedCapacity(degr model.DegradationProfile, year int, lossFactor float64) float64 {
	capacity := degr.CapacityAtYear(year)
	loss := (1 - capacity) * lossFactor
	capacity = 1 - loss
	if capacity < 0 {
		return 0
	}
	if capacity > 1 {
		return 1
	}
	return capacity
}
