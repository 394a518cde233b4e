package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugobe007/merlin2-sub009/internal/model"
)

func TestSizeRatios(t *testing.T) {
	profile := model.LoadProfile{BaseLoadKW: 20, PeakLoadKW: 100, EnergyKWhPerDay: 900}

	tests := []struct {
		goal        model.Goal
		wantPowerKW float64
	}{
		{model.GoalPeakShaving, 40},
		{model.GoalArbitrage, 50},
		{model.GoalResilience, 70},
		{model.GoalMicrogrid, 100},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			cfg, assumptions := Size(profile, tt.goal, model.IndustryOffice)
			assert.Equal(t, tt.wantPowerKW, cfg.PowerKW)
			assert.Equal(t, cfg.PowerKW*cfg.DurationHrs, cfg.EnergyKWh)
			assert.Empty(t, assumptions)
			require.NoError(t, cfg.Validate())
		})
	}
}

func TestSizeUnknownGoalDefaultsToArbitrage(t *testing.T) {
	profile := model.LoadProfile{BaseLoadKW: 20, PeakLoadKW: 100, EnergyKWhPerDay: 900}
	cfg, assumptions := Size(profile, model.Goal("optimize_vibes"), model.IndustryOffice)

	assert.Equal(t, 50.0, cfg.PowerKW)
	assert.NotEmpty(t, assumptions)
}

func TestCarWashArbitrageSizing(t *testing.T) {
	// 240 kW peak at the arbitrage ratio with a 2-hour duration.
	profile := model.LoadProfile{BaseLoadKW: 8.88, PeakLoadKW: 240, EnergyKWhPerDay: 1800}
	cfg, _ := Size(profile, model.GoalArbitrage, model.IndustryCarWash)

	assert.InDelta(t, 120.0, cfg.PowerKW, 1e-9)
	assert.InDelta(t, 240.0, cfg.EnergyKWh, 1e-9)
	assert.Equal(t, 2.0, cfg.DurationHrs)
}

func TestGoalForGridConnection(t *testing.T) {
	tests := []struct {
		name string
		goal model.Goal
		conn model.GridConnection
		want model.Goal
		note bool
	}{
		{"off-grid forces microgrid", model.GoalArbitrage, model.GridOffGrid, model.GoalMicrogrid, true},
		{"microgrid connection forces microgrid", model.GoalPeakShaving, model.GridMicrogrid, model.GoalMicrogrid, true},
		{"limited bumps arbitrage to resilience", model.GoalArbitrage, model.GridLimited, model.GoalResilience, true},
		{"limited leaves microgrid alone", model.GoalMicrogrid, model.GridLimited, model.GoalMicrogrid, false},
		{"reliable leaves goal alone", model.GoalArbitrage, model.GridReliable, model.GoalArbitrage, false},
		{"unreliable leaves goal alone", model.GoalResilience, model.GridUnreliable, model.GoalResilience, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, note := GoalForGridConnection(tt.goal, tt.conn)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.note, note != "")
		})
	}
}
