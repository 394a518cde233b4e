package rates

import "strings"

// RegionRates holds default commercial electricity pricing for a region.
// These are resolver defaults only: a live rate lookup is an upstream
// collaborator's job, and any value arriving from here is pricing-critical
// in strict mode.
// Units:
// - ElectricityRatePerKWh: $/kWh
// - DemandChargePerKW: $/kW-month
type RegionRates struct {
	ElectricityRatePerKWh float64
	DemandChargePerKW     float64
}

// National is the fallback when the state is unknown or missing.
var National = RegionRates{ElectricityRatePerKWh: 0.13, DemandChargePerKW: 15.0}

// byState is keyed by USPS state code. Commercial-sector averages; demand
// charges are representative utility tariffs, not quotes.
var byState = map[string]RegionRates{
	"AL": {0.12, 12.0},
	"AZ": {0.11, 16.0},
	"CA": {0.22, 22.0},
	"CO": {0.11, 17.0},
	"CT": {0.19, 14.0},
	"FL": {0.11, 11.0},
	"GA": {0.11, 13.0},
	"HI": {0.35, 26.0},
	"IL": {0.10, 12.0},
	"MA": {0.20, 18.0},
	"MD": {0.12, 11.0},
	"MI": {0.12, 14.0},
	"MN": {0.11, 13.0},
	"NC": {0.09, 12.0},
	"NJ": {0.14, 13.0},
	"NM": {0.10, 14.0},
	"NV": {0.09, 10.0},
	"NY": {0.18, 20.0},
	"OH": {0.10, 11.0},
	"OR": {0.09, 9.0},
	"PA": {0.10, 12.0},
	"TX": {0.09, 11.0},
	"UT": {0.09, 13.0},
	"VA": {0.09, 12.0},
	"WA": {0.09, 8.0},
	"WI": {0.11, 13.0},
}

// Lookup returns the default rates for a state code (case-insensitive).
// ok is false when the state is unknown, in which case National is returned.
func Lookup(state string) (RegionRates, bool) {
	r, ok := byState[strings.ToUpper(strings.TrimSpace(state))]
	if !ok {
		return National, false
	}
	return r, true
}
