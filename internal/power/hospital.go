package power

import (
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// Per-bed split of the headline kW/bed density, plus a flat imaging suite.
const (
	hospitalProcessKWPerBed  = 0.90 // medical equipment at bedside
	hospitalHVACKWPerBed     = 0.75
	hospitalLightKWPerBed    = 0.35
	hospitalITKWPerBed       = 0.15
	hospitalControlsKWPerBed = 0.10
	hospitalOtherKWPerBed    = 0.25
	hospitalImagingKW        = 50.0 // MRI/CT suite, present above ~trivial bed counts
)

type hospitalModel struct{}

func (hospitalModel) Industry() model.Industry { return model.IndustryHospital }

func (hospitalModel) Compute(in model.CanonicalInputs) Result {
	var res Result

	beds := in.Beds
	bedsideKW := beds * hospitalProcessKWPerBed
	hvacKW := beds * hospitalHVACKWPerBed
	lightKW := beds * hospitalLightKWPerBed
	itKW := beds * hospitalITKWPerBed
	controlsKW := beds * hospitalControlsKWPerBed
	otherKW := beds * hospitalOtherKWPerBed
	imagingKW := hospitalImagingKW

	peakKW := bedsideKW + hvacKW + lightKW + itKW + controlsKW + otherKW + imagingKW
	peakKW, warns := anchoredPeak(model.IndustryHospital, peakKW, in.SquareFeet)
	res.Warnings = append(res.Warnings, warns...)

	res.Loads = []Load{
		{Name: "bedside_equipment", Category: model.ContributorProcess, KW: bedsideKW},
		{Name: "imaging", Category: model.ContributorProcess, KW: imagingKW},
		{Name: "hvac", Category: model.ContributorHVAC, KW: hvacKW},
		{Name: "lighting", Category: model.ContributorLighting, KW: lightKW},
		{Name: "it_systems", Category: model.ContributorITLoad, KW: itKW},
		{Name: "controls", Category: model.ContributorControls, KW: controlsKW},
		{Name: "ancillary", Category: model.ContributorOther, KW: otherKW},
	}

	// Acute care runs around the clock; imaging is the main daytime-only
	// block.
	const hours = 24.0
	const duty = 0.75
	baseKW := controlsKW + itKW + 0.65*hvacKW + 0.45*lightKW + 0.55*bedsideKW + 0.30*otherKW

	res.DutyCycle = duty
	res.Profile = model.LoadProfile{
		BaseLoadKW:      baseKW,
		PeakLoadKW:      peakKW,
		EnergyKWhPerDay: dailyEnergyKWh(baseKW, peakKW, duty, hours),
	}
	return res
}

func init() { register(hospitalModel{}) }
