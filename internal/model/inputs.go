package model

// GridConnection describes grid quality at the site. It nudges the sizing
// goal (off-grid forces microgrid sizing) but never changes the load model.
type GridConnection string

const (
	GridReliable   GridConnection = "reliable"
	GridUnreliable GridConnection = "unreliable"
	GridLimited    GridConnection = "limited"
	GridOffGrid    GridConnection = "off_grid"
	GridMicrogrid  GridConnection = "microgrid"
)

// CanonicalInputs is the fully-resolved input record a calculator consumes.
// Every field is populated by the resolver (from raw input, an alias, or a
// documented default); calculators never see a missing value.
//
// Units:
// - SquareFeet: sq ft
// - OperatingHoursPerDay: hours
// - PeakLoadOverrideKW: kW (0 = compute from the model)
// - ElectricityRatePerKWh: $/kWh
// - DemandChargePerKW: $/kW-month
type CanonicalInputs struct {
	Industry Industry

	// Universal fields, present for every industry.
	SquareFeet           float64
	OperatingHoursPerDay float64
	PeakLoadOverrideKW   float64
	GridConnection       GridConnection

	// Per-unit anchors. Only the fields relevant to the industry are
	// meaningful; the rest stay at their defaults and are ignored.
	Rooms           float64 // hotel
	OccupancyPct    float64 // hotel, 0..1
	Beds            float64 // hospital
	Chargers        float64 // ev_charging
	ChargerPowerKW  float64 // ev_charging
	ConcurrencyPct  float64 // ev_charging, 0..1
	ITLoadKW        float64 // data_center
	PUE             float64 // data_center
	WashPositions   float64 // car_wash
	WashesPerDay    float64 // car_wash
	Shifts          float64 // manufacturing
	MachineLoadKW   float64 // manufacturing
	RefrigeratedPct float64 // cold_storage, 0..1 share of floor area

	// Pricing context. These are pricing-critical: defaulting them is
	// allowed in normal mode but fails a strict-mode run.
	State                 string
	ElectricityRatePerKWh float64
	DemandChargePerKW     float64
}
