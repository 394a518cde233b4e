package model

import (
	"errors"
	"strings"
)

// Goal is the operating objective the battery is sized for.
type Goal string

const (
	GoalPeakShaving Goal = "peak_shaving"
	GoalArbitrage   Goal = "arbitrage"
	GoalResilience  Goal = "resilience"
	GoalMicrogrid   Goal = "microgrid"
)

// ParseGoal resolves a free-text goal. Unknown or empty values resolve to
// arbitrage (the balanced default) with ok=false so the caller can record an
// assumption. Never defaults to microgrid: over-sizing inflates cost
// estimates far more than under-sizing understates savings.
func ParseGoal(s string) (Goal, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "peak_shaving", "peak-shaving", "peakshaving", "peak":
		return GoalPeakShaving, true
	case "arbitrage":
		return GoalArbitrage, true
	case "resilience", "backup":
		return GoalResilience, true
	case "microgrid", "off_grid", "off-grid", "offgrid":
		return GoalMicrogrid, true
	default:
		return GoalArbitrage, false
	}
}

// BESSConfig is the sized battery system. Created once per quote run and
// immutable thereafter.
// Units:
// - PowerKW: kW
// - EnergyKWh: kWh
// - DurationHrs: hours at rated power
type BESSConfig struct {
	PowerKW     float64 `json:"power_kw"`
	EnergyKWh   float64 `json:"energy_kwh"`
	DurationHrs float64 `json:"duration_hrs"`
}

func (c BESSConfig) Validate() error {
	if c.PowerKW <= 0 {
		return errors.New("PowerKW must be > 0")
	}
	if c.DurationHrs <= 0 {
		return errors.New("DurationHrs must be > 0")
	}
	if c.EnergyKWh <= 0 {
		return errors.New("EnergyKWh must be > 0")
	}
	return nil
}
