package power

import (
	"math"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// minutesPerWash drives the wash duty cycle: how long each wash occupies a
// position at full draw.
const minutesPerWash = 10.0

// carWashModel sizes from wash positions. Process machinery (dryers, pumps,
// vacuums) dominates the peak; HVAC, lighting and controls are small
// per-position adders.
type carWashModel struct{}

func (carWashModel) Industry() model.Industry { return model.IndustryCarWash }

func (carWashModel) Compute(in model.CanonicalInputs) Result {
	var res Result

	bays := in.WashPositions
	dryersKW := bays * config.CarWashDryerKWPerBay
	pumpsKW := bays * config.CarWashPumpKWPerBay
	vacuumsKW := bays * config.CarWashVacuumKWPerBay
	lightingKW := bays * config.CarWashLightKWPerBay
	hvacKW := bays * config.CarWashHVACKWPerBay
	controlsKW := bays * config.CarWashCtrlKWPerBay

	peakKW := dryersKW + pumpsKW + vacuumsKW + lightingKW + hvacKW + controlsKW
	peakKW, warns := anchoredPeak(model.IndustryCarWash, peakKW, in.SquareFeet)
	res.Warnings = append(res.Warnings, warns...)

	res.Loads = []Load{
		{Name: "dryers", Category: model.ContributorProcess, KW: dryersKW},
		{Name: "pumps", Category: model.ContributorProcess, KW: pumpsKW},
		{Name: "vacuums", Category: model.ContributorProcess, KW: vacuumsKW},
		{Name: "lighting", Category: model.ContributorLighting, KW: lightingKW},
		{Name: "hvac", Category: model.ContributorHVAC, KW: hvacKW},
		{Name: "controls", Category: model.ContributorControls, KW: controlsKW},
	}

	// Fraction of the operating window the bays actually run.
	hours := in.OperatingHoursPerDay
	duty := 0.5
	if bays > 0 && hours > 0 {
		duty = in.WashesPerDay * minutesPerWash / (60 * hours * bays)
	}
	duty = math.Min(duty, config.MaxDutyCycle)

	// Controls run around the clock; security lighting and a sliver of HVAC
	// stay on overnight.
	baseKW := controlsKW + 0.30*lightingKW + 0.25*hvacKW

	res.DutyCycle = duty
	res.Profile = model.LoadProfile{
		BaseLoadKW:      baseKW,
		PeakLoadKW:      peakKW,
		EnergyKWhPerDay: dailyEnergyKWh(baseKW, peakKW, duty, hours),
	}
	return res
}

func init() { register(carWashModel{}) }
