package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/incentive"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// linearFade builds a profile losing pctPerYear of nameplate each year.
func linearFade(years int, pctPerYear float64) model.DegradationProfile {
	profile := make(model.DegradationProfile, 0, years)
	for y := 1; y <= years; y++ {
		profile = append(profile, model.CapacityPoint{Year: y, CapacityPct: 100 - pctPerYear*float64(y)})
	}
	return profile
}

func fixtureBESS() model.BESSConfig {
	return model.BESSConfig{PowerKW: 100, EnergyKWh: 200, DurationHrs: 2}
}

func fixtureInputs() Inputs {
	return Inputs{
		DiscountRate:          0.08,
		EscalationRate:        0.025,
		HorizonYears:          25,
		CapexPerKWh:           350,
		CapexPerKW:            300,
		OMCostPerKWYear:       10,
		CyclesPerYear:         300,
		ArbSpreadPerKWh:       0.06,
		ElectricityRatePerKWh: 0.13,
		DemandChargePerKW:     15,
		DemandReductionShare:  0.80,
	}
}

func TestEvaluate(t *testing.T) {
	degr := linearFade(25, 1.0)
	result, schedule := Evaluate(fixtureBESS(), degr, fixtureInputs())

	// 200 kWh * $350 + 100 kW * $300, less the 6% base credit.
	assert.InDelta(t, 100000, result.CapexTotal, 1e-6)
	assert.InDelta(t, 0.06, result.ITCRate, 1e-9)
	assert.InDelta(t, 6000, result.ITCCreditAmount, 1e-6)

	require.Len(t, schedule, 25)

	// Year 1 at 99% capacity: arbitrage 3600*0.99 + demand 14400*0.99, less $1000 O&M.
	assert.InDelta(t, 18000*0.99, result.AnnualSavings, 1e-6)
	assert.InDelta(t, 18000*0.99-1000, schedule[0].NetCashFlow, 1e-6)
	assert.InDelta(t, 99.0, schedule[0].CapacityPct, 1e-9)

	assert.Greater(t, result.NPV, 0.0)
	require.NotNil(t, result.IRR)
	assert.Greater(t, *result.IRR, 0.0)
	require.NotNil(t, result.PaybackYears)
	require.NotNil(t, result.DiscountedPaybackYears)
	assert.Greater(t, *result.DiscountedPaybackYears, *result.PaybackYears)

	// MIRR only when both rates are set.
	assert.Nil(t, result.MIRR)

	// Cumulative column is consistent with the per-year nets.
	cum := -(result.CapexTotal - result.ITCCreditAmount)
	for _, row := range schedule {
		cum += row.NetCashFlow
		assert.InDelta(t, cum, row.CumulativeCashFlow, 1e-6)
	}
}

func TestEvaluateITCReducesNetCapex(t *testing.T) {
	degr := linearFade(25, 1.0)
	base, _ := Evaluate(fixtureBESS(), degr, fixtureInputs())

	fin := fixtureInputs()
	fin.ITC = incentive.Eligibility{PrevailingWage: true}
	boosted, _ := Evaluate(fixtureBESS(), degr, fin)

	assert.Equal(t, base.CapexTotal, boosted.CapexTotal)
	assert.InDelta(t, 30000, boosted.ITCCreditAmount, 1e-6)
	assert.Greater(t, boosted.NPV, base.NPV)
}

func TestEvaluateMIRR(t *testing.T) {
	fin := fixtureInputs()
	fin.FinanceRate = 0.08
	fin.ReinvestRate = 0.05
	result, _ := Evaluate(fixtureBESS(), linearFade(25, 1.0), fin)
	require.NotNil(t, result.MIRR)
	assert.Greater(t, *result.MIRR, 0.0)
}

func TestEvaluateNeverProfitable(t *testing.T) {
	fin := fixtureInputs()
	fin.ArbSpreadPerKWh = 0.001
	fin.DemandChargePerKW = 0.1
	result, _ := Evaluate(fixtureBESS(), linearFade(25, 1.0), fin)

	assert.Less(t, result.NPV, 0.0)
	assert.Nil(t, result.PaybackYears)
}

func TestDefaultsAndMerge(t *testing.T) {
	in := model.CanonicalInputs{ElectricityRatePerKWh: 0.17, DemandChargePerKW: 22}
	base := Defaults(in)

	assert.Equal(t, config.DefaultDiscountRate, base.DiscountRate)
	assert.Equal(t, 0.17, base.ElectricityRatePerKWh)
	assert.Equal(t, 22.0, base.DemandChargePerKW)
	assert.Equal(t, config.ProjectHorizonYears, base.HorizonYears)

	merged := Merge(base, Inputs{
		DiscountRate: 0.10,
		FixedCost:    5000,
		ITC:          incentive.Eligibility{EnergyCommunity: true},
	})
	assert.Equal(t, 0.10, merged.DiscountRate)
	assert.Equal(t, 5000.0, merged.FixedCost)
	assert.True(t, merged.ITC.EnergyCommunity)

	// Zero-valued override fields keep the base.
	assert.Equal(t, 0.17, merged.ElectricityRatePerKWh)
	assert.Equal(t, config.DefaultEscalationRate, merged.EscalationRate)
}

func TestPerturbedCapacityScalesLoss(t *testing.T) {
	degr := linearFade(25, 2.0)

	// 80% capacity = 20% loss; a 1.5x draw makes that a 30% loss.
	assert.InDelta(t, 0.70, perturbedCapacity(degr, 10, 1.5), 1e-9)
	assert.InDelta(t, 0.80, perturbedCapacity(degr, 10, 1.0), 1e-9)
	assert.InDelta(t, 0.90, perturbedCapacity(degr, 10, 0.5), 1e-9)
}
