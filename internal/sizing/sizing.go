// Package sizing converts a load profile and an operating goal into a
// battery power/energy rating via the goal-to-ratio table.
package sizing

import (
	"fmt"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// Size derives the battery configuration. An unknown goal falls back to the
// arbitrage ratio, never to microgrid: over-sizing silently inflates the
// cost estimate far more than under-sizing understates savings.
func Size(profile model.LoadProfile, goal model.Goal, industry model.Industry) (model.BESSConfig, []string) {
	var assumptions []string

	ratio, ok := config.GoalPowerRatio[goal]
	if !ok {
		ratio = config.GoalPowerRatio[model.GoalArbitrage]
		assumptions = append(assumptions,
			fmt.Sprintf("goal %q unknown; sized for arbitrage (%.0f%% of peak)", goal, ratio*100))
	}

	duration, ok := config.DurationHrsByIndustry[industry]
	if !ok {
		duration = config.DefaultDurationHrs
		assumptions = append(assumptions,
			fmt.Sprintf("no duration default for %s; using %.0f hours", industry, duration))
	}

	powerKW := profile.PeakLoadKW * ratio
	return model.BESSConfig{
		PowerKW:     powerKW,
		EnergyKWh:   powerKW * duration,
		DurationHrs: duration,
	}, assumptions
}

// GoalForGridConnection applies the grid-quality nudge: a site without a
// usable grid must be sized for full islanding, a capacity-limited one for
// resilience. A reliable or unreliable grid leaves the stated goal alone.
func GoalForGridConnection(goal model.Goal, conn model.GridConnection) (model.Goal, string) {
	switch conn {
	case model.GridOffGrid, model.GridMicrogrid:
		if goal != model.GoalMicrogrid {
			return model.GoalMicrogrid, fmt.Sprintf("grid connection %q forces microgrid sizing", conn)
		}
	case model.GridLimited:
		if goal == model.GoalPeakShaving || goal == model.GoalArbitrage {
			return model.GoalResilience, "limited grid capacity; sized for resilience"
		}
	}
	return goal, ""
}
