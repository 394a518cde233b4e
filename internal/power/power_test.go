package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugobe007/merlin2-sub009/internal/model"
	"github.com/ugobe007/merlin2-sub009/internal/resolve"
)

func TestAllIndustriesProfileInvariants(t *testing.T) {
	for _, ind := range model.Industries() {
		t.Run(string(ind), func(t *testing.T) {
			m, err := For(ind)
			require.NoError(t, err)

			in, _ := resolve.Resolve(ind, nil)
			res := m.Compute(in)

			require.NoError(t, res.Profile.Validate())
			assert.Greater(t, res.Profile.PeakLoadKW, 0.0)
			assert.GreaterOrEqual(t, res.Profile.PeakLoadKW, res.Profile.BaseLoadKW)
			assert.GreaterOrEqual(t, res.Profile.EnergyKWhPerDay, res.Profile.BaseLoadKW*24)
			assert.GreaterOrEqual(t, res.DutyCycle, 0.0)
			assert.LessOrEqual(t, res.DutyCycle, 1.25)
			assert.NotEmpty(t, res.Loads)
		})
	}
}

func TestCarWashScenario(t *testing.T) {
	// 4 wash positions, 200 washes/day, 12h operation.
	in, _ := resolve.Resolve(model.IndustryCarWash, map[string]any{
		"washPositions":  4,
		"washesPerDay":   200,
		"operatingHours": 12,
	})
	m, err := For(model.IndustryCarWash)
	require.NoError(t, err)
	res := m.Compute(in)

	assert.InDelta(t, 240.0, res.Profile.PeakLoadKW, 1.0)

	byCategory := map[model.ContributorKey]float64{}
	for _, l := range res.Loads {
		byCategory[l.Category] += l.KW
	}
	peak := res.Profile.PeakLoadKW
	assert.InDelta(t, 0.92, byCategory[model.ContributorProcess]/peak, 0.01)
	assert.InDelta(t, 0.04, byCategory[model.ContributorLighting]/peak, 0.01)
	assert.InDelta(t, 0.02, byCategory[model.ContributorHVAC]/peak, 0.01)
	assert.InDelta(t, 0.02, byCategory[model.ContributorControls]/peak, 0.01)

	// Additive model: the granular loads reconcile exactly.
	assert.InDelta(t, peak, res.SumLoadsKW(), 1e-9)
}

func TestDataCenterPUE(t *testing.T) {
	in, _ := resolve.Resolve(model.IndustryDataCenter, map[string]any{
		"itLoadKW": 2000,
		"pue":      1.5,
	})
	m, err := For(model.IndustryDataCenter)
	require.NoError(t, err)
	res := m.Compute(in)

	assert.InDelta(t, 3000.0, res.Profile.PeakLoadKW, 1.0)

	var itKW float64
	for _, l := range res.Loads {
		if l.Category == model.ContributorITLoad {
			itKW += l.KW
		}
	}
	require.Greater(t, itKW, 0.0)
	observedPUE := res.Profile.PeakLoadKW / itKW
	assert.InDelta(t, 1.5, observedPUE, 0.15) // within 10%

	// Remainder construction: loads sum to peak exactly.
	assert.True(t, res.ExactByConstruction)
	assert.InDelta(t, res.Profile.PeakLoadKW, res.SumLoadsKW(), 1e-6)
}

func TestDataCenterLowPUEClampsCooling(t *testing.T) {
	in, _ := resolve.Resolve(model.IndustryDataCenter, map[string]any{
		"itLoadKW": 1000,
		"pue":      1.02,
	})
	m, _ := For(model.IndustryDataCenter)
	res := m.Compute(in)

	for _, l := range res.Loads {
		assert.GreaterOrEqual(t, l.KW, 0.0, "load %s must not go negative", l.Name)
	}
	assert.NotEmpty(t, res.Assumptions)
}

func TestHotelDegenerateRooms(t *testing.T) {
	// 0 rooms must fall back to the default room count, never a zero peak.
	in, res := resolve.Resolve(model.IndustryHotel, map[string]any{"rooms": 0})
	require.True(t, res.UsedFallback("rooms"))

	m, _ := For(model.IndustryHotel)
	out := m.Compute(in)
	assert.Greater(t, out.Profile.PeakLoadKW, 0.0)
}

func TestManufacturingFallsBackToFloorArea(t *testing.T) {
	in, _ := resolve.Resolve(model.IndustryManufacturing, map[string]any{
		"squareFeet": 50000,
	})
	m, _ := For(model.IndustryManufacturing)
	res := m.Compute(in)

	// 50k sqft at 8 W/sqft = 400 kW machine block plus adders.
	assert.Greater(t, res.Profile.PeakLoadKW, 400.0)
	assert.NotEmpty(t, res.Assumptions)
}

func TestAnchoredPeakChain(t *testing.T) {
	t.Run("square footage anchor", func(t *testing.T) {
		peak, warns := anchoredPeak(model.IndustryHotel, 0, 20000)
		assert.InDelta(t, 30.0, peak, 1e-9)
		assert.Len(t, warns, 1)
	})
	t.Run("industry median anchor", func(t *testing.T) {
		peak, warns := anchoredPeak(model.IndustryCarWash, 0, 0)
		assert.Equal(t, 240.0, peak)
		assert.Len(t, warns, 1)
	})
	t.Run("positive peak passes through", func(t *testing.T) {
		peak, warns := anchoredPeak(model.IndustryOffice, 55, 20000)
		assert.Equal(t, 55.0, peak)
		assert.Empty(t, warns)
	})
}
