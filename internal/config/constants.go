package config

import "github.com/ugobe007/merlin2-sub009/internal/model"

// ConstantsVersion tags the numeric-constants table below. Calculators
// consult these by name and never carry their own copies; bumping the
// version is how a recalibration is rolled out without touching calculator
// logic.
//
// Figures are benchmark-sourced (CBECS/ASHRAE-style commercial load
// densities, NREL-style storage cost and fade rates) and are calibration
// points, not physical truths.
const ConstantsVersion = "2025.1"

// Contributor reconciliation tolerances (relative to peak load).
const (
	SoftSumTolerance = 0.15 // warn above this
	HardSumTolerance = 0.25 // reject above this
	MaxDutyCycle     = 1.25 // short overlap peaks may exceed 1.0
)

// ProjectHorizonYears is the financial and degradation horizon.
const ProjectHorizonYears = 25

// DensityWPerSqFt holds whole-building peak densities for the
// density-model industries.
var DensityWPerSqFt = map[model.Industry]float64{
	model.IndustryOffice:    1.8,
	model.IndustryRetail:    2.2,
	model.IndustryWarehouse: 0.8,
}

// Per-unit model anchors.
const (
	HospitalKWPerBed      = 2.5
	HotelKWPerRoom        = 1.1
	EVSiteAuxKW           = 15.0 // canopy lighting, payment kiosks, comms
	CarWashDryerKWPerBay  = 40.0
	CarWashPumpKWPerBay   = 12.0
	CarWashVacuumKWPerBay = 3.2
	CarWashLightKWPerBay  = 2.4
	CarWashHVACKWPerBay   = 1.2
	CarWashCtrlKWPerBay   = 1.2
	ManufacturingWPerSqFt = 8.0
	ColdStorageWPerSqFt   = 3.5
)

// MedianPeakKW is the last-resort anchor when neither the industry's primary
// sizing field nor square footage survives alias resolution. A model must
// never silently zero out a load.
var MedianPeakKW = map[model.Industry]float64{
	model.IndustryOffice:        90,
	model.IndustryRetail:        110,
	model.IndustryWarehouse:     80,
	model.IndustryHospital:      500,
	model.IndustryHotel:         140,
	model.IndustryDataCenter:    1500,
	model.IndustryEVCharging:    350,
	model.IndustryCarWash:       240,
	model.IndustryManufacturing: 400,
	model.IndustryColdStorage:   300,
}

// GoalPowerRatio maps the operating goal to battery power as a fraction of
// peak load.
var GoalPowerRatio = map[model.Goal]float64{
	model.GoalPeakShaving: 0.40,
	model.GoalArbitrage:   0.50,
	model.GoalResilience:  0.70,
	model.GoalMicrogrid:   1.00,
}

// DurationHrsByIndustry sets storage duration: shorter for spike-heavy
// loads, longer for facilities needing outage ride-through.
var DurationHrsByIndustry = map[model.Industry]float64{
	model.IndustryOffice:        2,
	model.IndustryRetail:        2,
	model.IndustryWarehouse:     3,
	model.IndustryHospital:      4,
	model.IndustryHotel:         4,
	model.IndustryDataCenter:    3,
	model.IndustryEVCharging:    2,
	model.IndustryCarWash:       2,
	model.IndustryManufacturing: 3,
	model.IndustryColdStorage:   4,
}

// DefaultDurationHrs applies when an industry has no table entry.
const DefaultDurationHrs = 2.0

// ChemistryParams holds aging and floor parameters for one chemistry.
// CalendarFadePctPerYear and CycleFadePctAtRatedLife are % of nameplate.
type ChemistryParams struct {
	CalendarFadePctPerYear  float64
	CycleFadePctAtRatedLife float64
	RatedCycleLife          float64
	FloorPct                float64 // terminal capacity lower bound
	WarrantyYear            int
	WarrantyFloorPct        float64 // published warranty floor at WarrantyYear
}

var Chemistries = map[model.Chemistry]ChemistryParams{
	model.ChemistryLFP: {
		CalendarFadePctPerYear:  1.5,
		CycleFadePctAtRatedLife: 20,
		RatedCycleLife:          6000,
		FloorPct:                60,
		WarrantyYear:            10,
		WarrantyFloorPct:        70,
	},
	model.ChemistryNMC: {
		CalendarFadePctPerYear:  2.0,
		CycleFadePctAtRatedLife: 25,
		RatedCycleLife:          4000,
		FloorPct:                55,
		WarrantyYear:            10,
		WarrantyFloorPct:        65,
	},
	model.ChemistryFlow: {
		CalendarFadePctPerYear:  0.5,
		CycleFadePctAtRatedLife: 10,
		RatedCycleLife:          15000,
		FloorPct:                75,
		WarrantyYear:            10,
		WarrantyFloorPct:        80,
	},
}

// Investment tax credit rates (fractions).
const (
	ITCBaseRate            = 0.06
	ITCPWARate             = 0.30 // prevailing wage + apprenticeship met
	ITCEnergyCommunity     = 0.10
	ITCDomesticContent     = 0.10
	ITCLowIncome           = 0.10
	ITCLowIncomeQualified  = 0.20 // qualified low-income residential/economic benefit project
	ITCHardCap             = 0.70
)

// Financial defaults, applied when the scenario does not specify them.
const (
	DefaultDiscountRate     = 0.08
	DefaultEscalationRate   = 0.025 // electricity price escalation per year
	DefaultCapexPerKWh      = 350.0 // $/kWh installed, energy-proportional
	DefaultCapexPerKW       = 300.0 // $/kW installed, power-proportional
	DefaultOMCostPerKWYear  = 10.0
	DefaultCyclesPerYear    = 300.0
	DefaultArbSpreadPerKWh  = 0.06 // $/kWh charge/discharge spread
	DefaultDemandReduction  = 0.80 // share of battery power credited against demand charges
)

// Monte Carlo defaults. Each uncertain variable is drawn from a normal
// distribution centered on 1.0, truncated at +/- the swing.
const (
	DefaultRiskIterations = 10000

	SwingElectricityRate = 0.15
	SwingDegradation     = 0.20
	SwingEquipmentCost   = 0.10
	SwingDemandCharge    = 0.15
	SwingSolarProduction = 0.08
)
