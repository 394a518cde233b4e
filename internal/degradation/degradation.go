// Package degradation projects usable battery capacity over the project
// horizon from chemistry-specific calendar- and cycle-aging rates.
package degradation

import (
	"fmt"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// Project builds the year 1..horizon capacity profile:
//
//	loss(y) = calendarRate*y + cycleFade * (cyclesPerYear*y) / ratedCycleLife
//
// clamped so capacity never rises and never falls below the chemistry floor.
// The returned warnings flag (not fail) warranty-compliance concerns.
func Project(chemistry model.Chemistry, cyclesPerYear float64) (model.DegradationProfile, []string, error) {
	params, ok := config.Chemistries[chemistry]
	if !ok {
		return nil, nil, fmt.Errorf("unsupported chemistry %q", chemistry)
	}
	if cyclesPerYear < 0 {
		return nil, nil, fmt.Errorf("cyclesPerYear must be >= 0, got %g", cyclesPerYear)
	}

	var warnings []string
	profile := make(model.DegradationProfile, 0, config.ProjectHorizonYears)

	prev := 100.0
	for year := 1; year <= config.ProjectHorizonYears; year++ {
		loss := params.CalendarFadePctPerYear*float64(year) +
			params.CycleFadePctAtRatedLife*(cyclesPerYear*float64(year))/params.RatedCycleLife

		pct := 100 - loss
		if pct > prev {
			pct = prev
		}
		if pct < params.FloorPct {
			pct = params.FloorPct
		}
		profile = append(profile, model.CapacityPoint{Year: year, CapacityPct: pct})
		prev = pct
	}

	// Warranty check: flag when the projection dips under the published
	// floor at the warranty year.
	if params.WarrantyYear >= 1 && params.WarrantyYear <= len(profile) {
		projected := profile[params.WarrantyYear-1].CapacityPct
		if projected < params.WarrantyFloorPct {
			warnings = append(warnings, fmt.Sprintf(
				"%s projected %.1f%% capacity at year %d, below the %.0f%% warranty floor",
				chemistry, projected, params.WarrantyYear, params.WarrantyFloorPct))
		}
	}

	return profile, warnings, nil
}
