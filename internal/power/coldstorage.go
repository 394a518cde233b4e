package power

import (
	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// Densities for the non-refrigerated balance of the building (W/sqft).
const (
	coldDryAreaWPerSqFt   = 0.8
	coldLightingWPerSqFt  = 0.5
	coldControlsWPerSqFt  = 0.1
	coldForkliftWPerSqFt  = 0.2
)

// coldStorageModel is refrigeration-dominated: compressors hold the
// overnight floor, so base load sits close to peak.
type coldStorageModel struct{}

func (coldStorageModel) Industry() model.Industry { return model.IndustryColdStorage }

func (coldStorageModel) Compute(in model.CanonicalInputs) Result {
	var res Result

	refrigPct := clampFrac(in.RefrigeratedPct)
	refrigKW := in.SquareFeet * refrigPct * config.ColdStorageWPerSqFt / 1000
	dryKW := in.SquareFeet * (1 - refrigPct) * coldDryAreaWPerSqFt / 1000
	lightKW := in.SquareFeet * coldLightingWPerSqFt / 1000
	controlsKW := in.SquareFeet * coldControlsWPerSqFt / 1000
	forkliftKW := in.SquareFeet * coldForkliftWPerSqFt / 1000

	peakKW := refrigKW + dryKW + lightKW + controlsKW + forkliftKW
	peakKW, warns := anchoredPeak(model.IndustryColdStorage, peakKW, in.SquareFeet)
	res.Warnings = append(res.Warnings, warns...)

	res.Loads = []Load{
		{Name: "refrigeration", Category: model.ContributorCooling, KW: refrigKW},
		{Name: "dry_area_hvac", Category: model.ContributorHVAC, KW: dryKW},
		{Name: "lighting", Category: model.ContributorLighting, KW: lightKW},
		{Name: "controls", Category: model.ContributorControls, KW: controlsKW},
		{Name: "forklift_charging", Category: model.ContributorCharging, KW: forkliftKW},
	}

	// Compressors never stop; the duty cycle reflects defrost and door-open
	// recovery peaks over a continuous day.
	const hours = 24.0
	const duty = 0.85
	baseKW := controlsKW + 0.75*refrigKW + 0.30*lightKW + 0.20*dryKW

	res.DutyCycle = duty
	res.Profile = model.LoadProfile{
		BaseLoadKW:      baseKW,
		PeakLoadKW:      peakKW,
		EnergyKWhPerDay: dailyEnergyKWh(baseKW, peakKW, duty, hours),
	}
	return res
}

func init() { register(coldStorageModel{}) }
