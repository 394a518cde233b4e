// Package resolve normalizes the loosely-typed input map emitted by the
// upstream wizard into a CanonicalInputs record. The alias table here is part
// of the external interface: the wizard accumulated many field spellings over
// time, and all of them are resolved once at this boundary, never inside a
// calculator.
package resolve

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ugobe007/merlin2-sub009/internal/model"
	"github.com/ugobe007/merlin2-sub009/internal/rates"
)

// Resolution records everything the resolver decided so the quote assembler
// can build the audit trail. Resolution never fails: a facility with zero
// usable inputs still yields a complete, low-confidence record.
type Resolution struct {
	// FallbacksUsed lists canonical field names that fell back to their
	// documented default.
	FallbacksUsed []string
	// PricingFallbacks is the subset of FallbacksUsed that is
	// pricing-critical (electricity rate, demand charge, location).
	PricingFallbacks []string
	Assumptions      []string
	Warnings         []string
}

// UsedFallback reports whether the named canonical field was defaulted.
func (r Resolution) UsedFallback(field string) bool {
	for _, f := range r.FallbacksUsed {
		if f == field {
			return true
		}
	}
	return false
}

// numField describes one canonical numeric field: its alias chain, its
// documented default, and whether zero counts as missing (a hotel with
// "0 rooms" is a degenerate input, not a real facility).
type numField struct {
	name        string
	aliases     []string
	def         float64
	zeroInvalid bool
	set         func(*model.CanonicalInputs, float64)
}

var universalFields = []numField{
	{
		name:        "squareFeet",
		aliases:     []string{"facilitySize", "sqft", "squareFootage", "square_feet", "buildingSize"},
		def:         10000,
		zeroInvalid: true,
		set:         func(c *model.CanonicalInputs, v float64) { c.SquareFeet = v },
	},
	{
		name:        "operatingHours",
		aliases:     []string{"operatingHoursPerDay", "hoursPerDay", "dailyHours", "operating_hours"},
		def:         12,
		zeroInvalid: true,
		set:         func(c *model.CanonicalInputs, v float64) { c.OperatingHoursPerDay = v },
	},
	{
		// 0 means "compute from the model"; absence is not a fallback.
		name:    "peakLoadKW",
		aliases: []string{"peakLoad", "knownPeakKW", "peakDemandKW", "peak_load_kw"},
		def:     0,
		set:     func(c *model.CanonicalInputs, v float64) { c.PeakLoadOverrideKW = v },
	},
}

var industryFields = map[model.Industry][]numField{
	model.IndustryHotel: {
		{
			name:        "rooms",
			aliases:     []string{"roomCount", "numberOfRooms", "guestRooms", "keys"},
			def:         100,
			zeroInvalid: true,
			set:         func(c *model.CanonicalInputs, v float64) { c.Rooms = v },
		},
		{
			name:    "occupancy",
			aliases: []string{"occupancyRate", "occupancyPct", "averageOccupancy"},
			def:     0.70,
			set:     func(c *model.CanonicalInputs, v float64) { c.OccupancyPct = v },
		},
	},
	model.IndustryHospital: {
		{
			name:        "beds",
			aliases:     []string{"bedCount", "numberOfBeds", "licensedBeds"},
			def:         200,
			zeroInvalid: true,
			set:         func(c *model.CanonicalInputs, v float64) { c.Beds = v },
		},
	},
	model.IndustryDataCenter: {
		{
			name:        "itLoadKW",
			aliases:     []string{"itLoad", "criticalITLoadKW", "it_load_kw", "serverLoadKW"},
			def:         1000,
			zeroInvalid: true,
			set:         func(c *model.CanonicalInputs, v float64) { c.ITLoadKW = v },
		},
		{
			name:        "pue",
			aliases:     []string{"PUE", "designPUE", "targetPUE"},
			def:         1.5,
			zeroInvalid: true,
			set:         func(c *model.CanonicalInputs, v float64) { c.PUE = v },
		},
	},
	model.IndustryEVCharging: {
		{
			name:        "chargers",
			aliases:     []string{"chargerCount", "numChargers", "stalls", "ports"},
			def:         8,
			zeroInvalid: true,
			set:         func(c *model.CanonicalInputs, v float64) { c.Chargers = v },
		},
		{
			name:        "chargerPowerKW",
			aliases:     []string{"chargerKW", "portPowerKW", "chargerRatingKW"},
			def:         150,
			zeroInvalid: true,
			set:         func(c *model.CanonicalInputs, v float64) { c.ChargerPowerKW = v },
		},
		{
			name:    "concurrency",
			aliases: []string{"concurrencyFactor", "utilization", "simultaneityFactor"},
			def:     0.65,
			set:     func(c *model.CanonicalInputs, v float64) { c.ConcurrencyPct = v },
		},
	},
	model.IndustryCarWash: {
		{
			name:        "washPositions",
			aliases:     []string{"bays", "washBays", "positions", "tunnelPositions"},
			def:         4,
			zeroInvalid: true,
			set:         func(c *model.CanonicalInputs, v float64) { c.WashPositions = v },
		},
		{
			name:        "washesPerDay",
			aliases:     []string{"dailyWashes", "carsPerDay", "vehiclesPerDay"},
			def:         200,
			zeroInvalid: true,
			set:         func(c *model.CanonicalInputs, v float64) { c.WashesPerDay = v },
		},
	},
	model.IndustryManufacturing: {
		{
			name:        "shifts",
			aliases:     []string{"shiftCount", "shiftsPerDay"},
			def:         1,
			zeroInvalid: true,
			set:         func(c *model.CanonicalInputs, v float64) { c.Shifts = v },
		},
		{
			// 0 falls through to the density model.
			name:    "machineLoadKW",
			aliases: []string{"processLoadKW", "connectedLoadKW", "equipmentLoadKW"},
			def:     0,
			set:     func(c *model.CanonicalInputs, v float64) { c.MachineLoadKW = v },
		},
	},
	model.IndustryColdStorage: {
		{
			name:    "refrigeratedPct",
			aliases: []string{"refrigeratedShare", "coldShare", "refrigeratedAreaPct"},
			def:     0.80,
			set:     func(c *model.CanonicalInputs, v float64) { c.RefrigeratedPct = v },
		},
	},
}

// fractionFields are resolved on a 0..1 scale; values above 1.25 are assumed
// to be percentages and divided by 100 with a warning.
var fractionFields = map[string]bool{
	"occupancy":       true,
	"concurrency":     true,
	"refrigeratedPct": true,
}

// Resolve builds the canonical record for an industry. It never fails.
func Resolve(industry model.Industry, raw map[string]any) (model.CanonicalInputs, Resolution) {
	in := model.CanonicalInputs{Industry: industry}
	var res Resolution
	consumed := map[string]bool{}

	fields := append(append([]numField{}, universalFields...), industryFields[industry]...)
	for _, f := range fields {
		v, srcKey, ok := lookupNumber(raw, f.name, f.aliases)
		if ok {
			consumed[srcKey] = true
		}
		if ok && f.zeroInvalid && v <= 0 {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("%s=%g is not usable; falling back to default", f.name, v))
			ok = false
		}
		if !ok {
			v = f.def
			res.FallbacksUsed = append(res.FallbacksUsed, f.name)
			res.Assumptions = append(res.Assumptions,
				fmt.Sprintf("%s defaulted to %g", f.name, f.def))
		}
		if fractionFields[f.name] && v > 1.25 {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("%s=%g interpreted as a percentage", f.name, v))
			v = v / 100
		}
		f.set(&in, v)
	}

	resolveGridConnection(&in, raw, &res, consumed)
	resolvePricing(&in, raw, &res, consumed)
	warnUnknownFields(raw, consumed, &res)

	return in, res
}

func resolveGridConnection(in *model.CanonicalInputs, raw map[string]any, res *Resolution, consumed map[string]bool) {
	s, srcKey, ok := lookupString(raw, "gridConnection", []string{"gridQuality", "connectionType", "grid_connection"})
	if ok {
		consumed[srcKey] = true
	}
	switch model.GridConnection(strings.ToLower(strings.TrimSpace(s))) {
	case model.GridReliable, model.GridUnreliable, model.GridLimited, model.GridOffGrid, model.GridMicrogrid:
		in.GridConnection = model.GridConnection(strings.ToLower(strings.TrimSpace(s)))
	default:
		if ok && s != "" {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("gridConnection=%q is not recognized; assuming reliable", s))
		} else {
			res.FallbacksUsed = append(res.FallbacksUsed, "gridConnection")
			res.Assumptions = append(res.Assumptions, "gridConnection defaulted to reliable")
		}
		in.GridConnection = model.GridReliable
	}
}

func resolvePricing(in *model.CanonicalInputs, raw map[string]any, res *Resolution, consumed map[string]bool) {
	state, srcKey, ok := lookupString(raw, "state", []string{"stateCode", "usState", "location"})
	if ok {
		consumed[srcKey] = true
		in.State = strings.ToUpper(strings.TrimSpace(state))
	} else {
		res.FallbacksUsed = append(res.FallbacksUsed, "state")
		res.PricingFallbacks = append(res.PricingFallbacks, "state")
		res.Assumptions = append(res.Assumptions, "state unknown; using national-average rates")
	}

	regional, known := rates.Lookup(in.State)
	if ok && !known {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("no rate defaults for state %q; using national averages", in.State))
	}

	rate, srcKey, haveRate := lookupNumber(raw, "electricityRate",
		[]string{"electricityRatePerKWh", "utilityRate", "energyRate", "ratePerKWh"})
	if haveRate && rate > 0 {
		consumed[srcKey] = true
		in.ElectricityRatePerKWh = rate
	} else {
		if haveRate {
			consumed[srcKey] = true
		}
		in.ElectricityRatePerKWh = regional.ElectricityRatePerKWh
		res.FallbacksUsed = append(res.FallbacksUsed, "electricityRate")
		res.PricingFallbacks = append(res.PricingFallbacks, "electricityRate")
		res.Assumptions = append(res.Assumptions,
			fmt.Sprintf("electricityRate defaulted to $%.3f/kWh (regional average)", regional.ElectricityRatePerKWh))
	}

	dc, srcKey, haveDC := lookupNumber(raw, "demandCharge",
		[]string{"demandChargePerKW", "demandRate", "demand_charge"})
	if haveDC && dc > 0 {
		consumed[srcKey] = true
		in.DemandChargePerKW = dc
	} else {
		if haveDC {
			consumed[srcKey] = true
		}
		in.DemandChargePerKW = regional.DemandChargePerKW
		res.FallbacksUsed = append(res.FallbacksUsed, "demandCharge")
		res.PricingFallbacks = append(res.PricingFallbacks, "demandCharge")
		res.Assumptions = append(res.Assumptions,
			fmt.Sprintf("demandCharge defaulted to $%.2f/kW-month (regional average)", regional.DemandChargePerKW))
	}
}

func warnUnknownFields(raw map[string]any, consumed map[string]bool, res *Resolution) {
	var unknown []string
	for k := range raw {
		if !consumed[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		res.Warnings = append(res.Warnings, fmt.Sprintf("unknown field %q ignored", k))
	}
}

// lookupNumber tries the canonical name then each alias, returning the first
// value that parses as a number and the raw key it came from.
func lookupNumber(raw map[string]any, name string, aliases []string) (float64, string, bool) {
	for _, key := range append([]string{name}, aliases...) {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if f, ok := toFloat(v); ok {
			return f, key, true
		}
	}
	return 0, "", false
}

func lookupString(raw map[string]any, name string, aliases []string) (string, string, bool) {
	for _, key := range append([]string{name}, aliases...) {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s, key, true
		}
	}
	return "", "", false
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
