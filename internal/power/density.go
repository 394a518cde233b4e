package power

import (
	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// categoryShare is one slice of a whole-building density split. Shares for a
// given industry sum to 1.0 so the contributor sum reconciles to peak with
// zero tolerance slack.
type categoryShare struct {
	name     string
	category model.ContributorKey
	share    float64
	alwaysOn float64 // fraction of this slice that runs 24h
}

// densityModel covers industries sized from whole-building W/sqft: office,
// retail, warehouse. Base load is derived from the always-on fraction of
// each slice, never from a flat occupancy percentage.
type densityModel struct {
	industry  model.Industry
	dutyCycle float64
	shares    []categoryShare
}

func (m densityModel) Industry() model.Industry { return m.industry }

func (m densityModel) Compute(in model.CanonicalInputs) Result {
	var res Result

	peakKW := in.SquareFeet * config.DensityWPerSqFt[m.industry] / 1000
	peakKW, warns := anchoredPeak(m.industry, peakKW, in.SquareFeet)
	res.Warnings = append(res.Warnings, warns...)

	var baseKW float64
	for _, s := range m.shares {
		kw := peakKW * s.share
		res.Loads = append(res.Loads, Load{Name: s.name, Category: s.category, KW: kw})
		baseKW += kw * s.alwaysOn
	}

	res.DutyCycle = m.dutyCycle
	res.Profile = model.LoadProfile{
		BaseLoadKW:      baseKW,
		PeakLoadKW:      peakKW,
		EnergyKWhPerDay: dailyEnergyKWh(baseKW, peakKW, m.dutyCycle, in.OperatingHoursPerDay),
	}
	return res
}

func init() {
	register(densityModel{
		industry:  model.IndustryOffice,
		dutyCycle: 0.65,
		shares: []categoryShare{
			{"hvac", model.ContributorHVAC, 0.38, 0.20},
			{"lighting", model.ContributorLighting, 0.22, 0.15},
			{"it_equipment", model.ContributorITLoad, 0.18, 0.50},
			{"plug_loads", model.ContributorProcess, 0.12, 0.10},
			{"controls", model.ContributorControls, 0.04, 1.00},
			{"misc", model.ContributorOther, 0.06, 0.10},
		},
	})
	register(densityModel{
		industry:  model.IndustryRetail,
		dutyCycle: 0.70,
		shares: []categoryShare{
			{"hvac", model.ContributorHVAC, 0.35, 0.20},
			{"lighting", model.ContributorLighting, 0.30, 0.10},
			{"refrigeration_registers", model.ContributorProcess, 0.15, 0.60},
			{"controls", model.ContributorControls, 0.04, 1.00},
			{"misc", model.ContributorOther, 0.16, 0.10},
		},
	})
	register(densityModel{
		industry:  model.IndustryWarehouse,
		dutyCycle: 0.55,
		shares: []categoryShare{
			{"lighting", model.ContributorLighting, 0.40, 0.10},
			{"conveyors", model.ContributorProcess, 0.20, 0.05},
			{"forklift_charging", model.ContributorCharging, 0.15, 0.30},
			{"hvac", model.ContributorHVAC, 0.15, 0.15},
			{"controls", model.ContributorControls, 0.05, 1.00},
			{"misc", model.ContributorOther, 0.05, 0.10},
		},
	})
}
