package degradation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

func TestProjectMonotoneWithinBounds(t *testing.T) {
	for chemistry, params := range config.Chemistries {
		t.Run(string(chemistry), func(t *testing.T) {
			profile, _, err := Project(chemistry, 300)
			require.NoError(t, err)
			require.Len(t, profile, config.ProjectHorizonYears)

			prev := 100.0
			for _, pt := range profile {
				assert.LessOrEqual(t, pt.CapacityPct, prev, "year %d rose", pt.Year)
				assert.GreaterOrEqual(t, pt.CapacityPct, params.FloorPct, "year %d below floor", pt.Year)
				assert.LessOrEqual(t, pt.CapacityPct, 100.0)
				prev = pt.CapacityPct
			}
		})
	}
}

func TestProjectLFPValues(t *testing.T) {
	// 1.5%/yr calendar + 20% * 300y/6000 cycle fade = 2.5%/yr combined.
	profile, warnings, err := Project(model.ChemistryLFP, 300)
	require.NoError(t, err)

	assert.InDelta(t, 97.5, profile[0].CapacityPct, 1e-9)
	assert.InDelta(t, 75.0, profile[9].CapacityPct, 1e-9)
	assert.Empty(t, warnings)

	// Linear fade crosses 60% after year 16; the floor holds from there.
	assert.InDelta(t, 60.0, profile[16].CapacityPct, 1e-9)
	assert.InDelta(t, 60.0, profile[24].CapacityPct, 1e-9)
}

func TestProjectWarrantyWarning(t *testing.T) {
	// Heavy cycling: 1.5 + 2.0 = 3.5%/yr puts LFP at 65% in year 10,
	// under its 70% warranty floor.
	profile, warnings, err := Project(model.ChemistryLFP, 600)
	require.NoError(t, err)

	assert.InDelta(t, 65.0, profile[9].CapacityPct, 1e-9)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "warranty")
}

func TestProjectErrors(t *testing.T) {
	_, _, err := Project(model.Chemistry("sodium_ion"), 300)
	assert.Error(t, err)

	_, _, err = Project(model.ChemistryLFP, -1)
	assert.Error(t, err)
}

func TestCapacityAtYear(t *testing.T) {
	profile, _, err := Project(model.ChemistryFlow, 300)
	require.NoError(t, err)

	// 0.5%/yr calendar + 0.2%/yr cycle fade.
	assert.InDelta(t, 0.993, profile.CapacityAtYear(1), 1e-9)
	assert.InDelta(t, 0.965, profile.CapacityAtYear(5), 1e-9)
	assert.Equal(t, 1.0, profile.CapacityAtYear(0))
	assert.Equal(t, profile.CapacityAtYear(25), profile.CapacityAtYear(40))
}
