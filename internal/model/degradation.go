package model

import "strings"

// Chemistry identifies a battery cell chemistry.
type Chemistry string

const (
	ChemistryLFP  Chemistry = "lfp"
	ChemistryNMC  Chemistry = "nmc"
	ChemistryFlow Chemistry = "flow"
)

// ParseChemistry resolves a free-text chemistry name. Unknown values resolve
// to LFP with ok=false (LFP is the dominant stationary-storage chemistry).
func ParseChemistry(s string) (Chemistry, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lfp", "lifepo4", "lithium_iron_phosphate":
		return ChemistryLFP, true
	case "nmc", "lithium_nmc":
		return ChemistryNMC, true
	case "flow", "vanadium", "vrfb", "redox":
		return ChemistryFlow, true
	default:
		return ChemistryLFP, false
	}
}

// CapacityPoint is one year of the degradation projection.
// CapacityPct is usable capacity as a percentage of nameplate (0..100).
type CapacityPoint struct {
	Year        int     `json:"year"`
	CapacityPct float64 `json:"capacity_pct"`
}

// DegradationProfile is the ordered year 1..25 capacity projection.
// Invariant: CapacityPct is monotonically non-increasing.
type DegradationProfile []CapacityPoint

// CapacityAtYear returns the projected capacity fraction (0..1) for a year.
// Years beyond the profile return the terminal value; year <= 0 returns 1.
func (p DegradationProfile) CapacityAtYear(year int) float64 {
	if year <= 0 || len(p) == 0 {
		return 1.0
	}
	if year > len(p) {
		year = len(p)
	}
	return p[year-1].CapacityPct / 100
}
