package power

import (
	"math"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// Split of the flat site-auxiliary allowance.
const (
	evCanopyLightKW = 6.0
	evKioskCommsKW  = 4.0
	evSiteHVACKW    = 5.0
)

// evChargingModel sizes from charger count, rating and a concurrency factor:
// not every port draws full power at once, but a busy site can briefly
// overlap sessions above the average.
type evChargingModel struct{}

func (evChargingModel) Industry() model.Industry { return model.IndustryEVCharging }

func (evChargingModel) Compute(in model.CanonicalInputs) Result {
	var res Result

	concurrency := clampFrac(in.ConcurrencyPct)
	chargingKW := in.Chargers * in.ChargerPowerKW * concurrency

	peakKW := chargingKW + evCanopyLightKW + evKioskCommsKW + evSiteHVACKW
	peakKW, warns := anchoredPeak(model.IndustryEVCharging, peakKW, in.SquareFeet)
	res.Warnings = append(res.Warnings, warns...)

	res.Loads = []Load{
		{Name: "chargers", Category: model.ContributorCharging, KW: chargingKW},
		{Name: "canopy_lighting", Category: model.ContributorLighting, KW: evCanopyLightKW},
		{Name: "kiosks_comms", Category: model.ContributorControls, KW: evKioskCommsKW},
		{Name: "site_hvac", Category: model.ContributorHVAC, KW: evSiteHVACKW},
	}

	// Charging demand is spiky: short full-power sessions against long
	// idle gaps.
	duty := math.Min(0.35+0.25*concurrency, config.MaxDutyCycle)
	baseKW := evKioskCommsKW + 0.50*evCanopyLightKW

	res.DutyCycle = duty
	res.Profile = model.LoadProfile{
		BaseLoadKW:      baseKW,
		PeakLoadKW:      peakKW,
		EnergyKWhPerDay: dailyEnergyKWh(baseKW, peakKW, duty, in.OperatingHoursPerDay),
	}
	return res
}

func init() { register(evChargingModel{}) }
