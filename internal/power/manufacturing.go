package power

import (
	"math"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// Adders proportional to the machine block.
const (
	mfgCompressedAirShare = 0.12
	mfgHVACShare          = 0.15
	mfgLightingShare      = 0.08
	mfgControlsShare      = 0.03
)

// manufacturingModel prefers a stated connected machine load; when none is
// given it falls back to a floor-area density, then to the industry median.
type manufacturingModel struct{}

func (manufacturingModel) Industry() model.Industry { return model.IndustryManufacturing }

func (manufacturingModel) Compute(in model.CanonicalInputs) Result {
	var res Result

	machineKW := in.MachineLoadKW
	if machineKW <= 0 {
		machineKW = in.SquareFeet * config.ManufacturingWPerSqFt / 1000
		res.Assumptions = append(res.Assumptions,
			"machine load estimated from floor area; provide connectedLoadKW for a tighter estimate")
	}

	airKW := machineKW * mfgCompressedAirShare
	hvacKW := machineKW * mfgHVACShare
	lightKW := machineKW * mfgLightingShare
	controlsKW := machineKW * mfgControlsShare

	peakKW := machineKW + airKW + hvacKW + lightKW + controlsKW
	peakKW, warns := anchoredPeak(model.IndustryManufacturing, peakKW, in.SquareFeet)
	res.Warnings = append(res.Warnings, warns...)

	res.Loads = []Load{
		{Name: "machines", Category: model.ContributorProcess, KW: machineKW},
		{Name: "compressed_air", Category: model.ContributorProcess, KW: airKW},
		{Name: "hvac", Category: model.ContributorHVAC, KW: hvacKW},
		{Name: "lighting", Category: model.ContributorLighting, KW: lightKW},
		{Name: "controls", Category: model.ContributorControls, KW: controlsKW},
	}

	// Shift pattern widens the operating window; utilization within a shift
	// is high but machines cycle.
	shifts := math.Max(in.Shifts, 1)
	hours := math.Max(in.OperatingHoursPerDay, math.Min(shifts*8, 24))
	duty := math.Min(0.55+0.10*shifts, config.MaxDutyCycle)

	baseKW := controlsKW + 0.25*hvacKW + 0.15*lightKW + 0.10*machineKW

	res.DutyCycle = duty
	res.Profile = model.LoadProfile{
		BaseLoadKW:      baseKW,
		PeakLoadKW:      peakKW,
		EnergyKWhPerDay: dailyEnergyKWh(baseKW, peakKW, duty, hours),
	}
	return res
}

func init() { register(manufacturingModel{}) }
