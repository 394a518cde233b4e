package finance

import (
	"sort"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// sensitivityVariable names one tornado bar and how to apply its swing.
type sensitivityVariable struct {
	name  string
	swing float64
	apply func(f *factors, v float64)
}

var sensitivityVariables = []sensitivityVariable{
	{"electricity_rate", config.SwingElectricityRate, func(f *factors, v float64) { f.electricity = v }},
	{"equipment_cost", config.SwingEquipmentCost, func(f *factors, v float64) { f.equipmentCost = v }},
	{"demand_charge", config.SwingDemandCharge, func(f *factors, v float64) { f.demandCharge = v }},
	{"degradation", config.SwingDegradation, func(f *factors, v float64) { f.degradation = v }},
	{"solar_production", config.SwingSolarProduction, func(f *factors, v float64) { f.solar = v }},
}

// Sensitivity recomputes NPV with each uncertain variable swung to its low
// and high bound while the others stay at base, ranked by spread descending.
func Sensitivity(bess model.BESSConfig, degr model.DegradationProfile, fin Inputs) []model.SensitivityEntry {
	out := make([]model.SensitivityEntry, 0, len(sensitivityVariables))
	for _, v := range sensitivityVariables {
		low := baseFactors
		v.apply(&low, 1-v.swing)
		high := baseFactors
		v.apply(&high, 1+v.swing)

		lowRes, _ := evaluate(bess, degr, fin, low)
		highRes, _ := evaluate(bess, degr, fin, high)

		spread := highRes.NPV - lowRes.NPV
		if spread < 0 {
			spread = -spread
		}
		out = append(out, model.SensitivityEntry{
			Variable: v.name,
			Swing:    v.swing,
			NPVLow:   lowRes.NPV,
			NPVHigh:  highRes.NPV,
			Spread:   spread,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Spread > out[j].Spread })
	return out
}
