package power

import (
	"fmt"

	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// dataCenterModel sizes from IT load and PUE. Cooling is the computed
// remainder (total facility power minus IT, distribution losses, lighting
// and controls), so the contributor sum reconciles to peak exactly by
// construction rather than by tolerance.
type dataCenterModel struct{}

func (dataCenterModel) Industry() model.Industry { return model.IndustryDataCenter }

func (dataCenterModel) Compute(in model.CanonicalInputs) Result {
	res := Result{ExactByConstruction: true}

	peakKW := in.ITLoadKW * in.PUE
	peakKW, warns := anchoredPeak(model.IndustryDataCenter, peakKW, in.SquareFeet)
	res.Warnings = append(res.Warnings, warns...)

	itKW := in.ITLoadKW
	if itKW > peakKW {
		itKW = peakKW
	}
	lightingKW := 0.010 * peakKW
	controlsKW := 0.005 * peakKW
	distLossKW := 0.06 * itKW

	coolingKW := peakKW - itKW - lightingKW - controlsKW - distLossKW
	otherKW := distLossKW
	if coolingKW < 0 {
		// A PUE near 1.0 leaves no room for overhead; fold the deficit
		// into other rather than report a negative cooling load.
		otherKW += coolingKW
		if otherKW < 0 {
			otherKW = 0
		}
		coolingKW = 0
		res.Assumptions = append(res.Assumptions,
			fmt.Sprintf("PUE %.2f leaves no cooling headroom; deficit folded into other", in.PUE))
	}

	res.Loads = []Load{
		{Name: "it_load", Category: model.ContributorITLoad, KW: itKW},
		{Name: "cooling", Category: model.ContributorCooling, KW: coolingKW},
		{Name: "distribution_losses", Category: model.ContributorOther, KW: otherKW},
		{Name: "lighting", Category: model.ContributorLighting, KW: lightingKW},
		{Name: "controls", Category: model.ContributorControls, KW: controlsKW},
	}

	// Data centers run continuously; the operating-hours input does not
	// shorten the day here.
	const hours = 24.0
	const duty = 0.92
	baseKW := 0.80*itKW + 0.70*coolingKW + controlsKW + 0.50*lightingKW + 0.80*otherKW

	res.DutyCycle = duty
	res.Profile = model.LoadProfile{
		BaseLoadKW:      baseKW,
		PeakLoadKW:      peakKW,
		EnergyKWhPerDay: dailyEnergyKWh(baseKW, peakKW, duty, hours),
	}
	return res
}

func init() { register(dataCenterModel{}) }
