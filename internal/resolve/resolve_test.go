package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ugobe007/merlin2-sub009/internal/model"
)

func TestResolveAliases(t *testing.T) {
	tests := []struct {
		name     string
		industry model.Industry
		raw      map[string]any
		check    func(t *testing.T, in model.CanonicalInputs, res Resolution)
	}{
		{
			name:     "canonical name wins",
			industry: model.IndustryHotel,
			raw:      map[string]any{"rooms": 120},
			check: func(t *testing.T, in model.CanonicalInputs, res Resolution) {
				assert.Equal(t, 120.0, in.Rooms)
				assert.False(t, res.UsedFallback("rooms"))
			},
		},
		{
			name:     "historical alias resolves",
			industry: model.IndustryHotel,
			raw:      map[string]any{"numberOfRooms": 85},
			check: func(t *testing.T, in model.CanonicalInputs, res Resolution) {
				assert.Equal(t, 85.0, in.Rooms)
			},
		},
		{
			name:     "numeric string parses",
			industry: model.IndustryDataCenter,
			raw:      map[string]any{"itLoadKW": "2000"},
			check: func(t *testing.T, in model.CanonicalInputs, res Resolution) {
				assert.Equal(t, 2000.0, in.ITLoadKW)
			},
		},
		{
			name:     "percentage-scale fraction is normalized",
			industry: model.IndustryHotel,
			raw:      map[string]any{"occupancy": 70},
			check: func(t *testing.T, in model.CanonicalInputs, res Resolution) {
				assert.InDelta(t, 0.70, in.OccupancyPct, 1e-9)
				assert.NotEmpty(t, res.Warnings)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, res := Resolve(tt.industry, tt.raw)
			tt.check(t, in, res)
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	t.Run("empty map yields complete record", func(t *testing.T) {
		in, res := Resolve(model.IndustryOffice, nil)
		assert.Equal(t, 10000.0, in.SquareFeet)
		assert.Equal(t, 12.0, in.OperatingHoursPerDay)
		assert.Equal(t, model.GridReliable, in.GridConnection)
		assert.Greater(t, in.ElectricityRatePerKWh, 0.0)
		assert.Greater(t, in.DemandChargePerKW, 0.0)
		assert.True(t, res.UsedFallback("squareFeet"))
		assert.NotEmpty(t, res.Assumptions)
	})

	t.Run("zero rooms is degenerate and falls back", func(t *testing.T) {
		in, res := Resolve(model.IndustryHotel, map[string]any{"rooms": 0})
		assert.Equal(t, 100.0, in.Rooms)
		assert.True(t, res.UsedFallback("rooms"))
		assert.NotEmpty(t, res.Warnings)
	})

	t.Run("pricing defaults are flagged as pricing-critical", func(t *testing.T) {
		_, res := Resolve(model.IndustryRetail, map[string]any{"squareFeet": 20000})
		assert.Contains(t, res.PricingFallbacks, "electricityRate")
		assert.Contains(t, res.PricingFallbacks, "demandCharge")
		assert.Contains(t, res.PricingFallbacks, "state")
	})

	t.Run("supplied pricing is not a fallback", func(t *testing.T) {
		in, res := Resolve(model.IndustryRetail, map[string]any{
			"state":           "CA",
			"electricityRate": 0.24,
			"demandCharge":    25.0,
		})
		assert.Equal(t, 0.24, in.ElectricityRatePerKWh)
		assert.Equal(t, 25.0, in.DemandChargePerKW)
		assert.Empty(t, res.PricingFallbacks)
	})

	t.Run("state drives regional rate defaults", func(t *testing.T) {
		inCA, _ := Resolve(model.IndustryOffice, map[string]any{"state": "CA"})
		inTX, _ := Resolve(model.IndustryOffice, map[string]any{"state": "TX"})
		assert.Greater(t, inCA.ElectricityRatePerKWh, inTX.ElectricityRatePerKWh)
	})
}

func TestResolveUnknownFields(t *testing.T) {
	_, res := Resolve(model.IndustryOffice, map[string]any{
		"squareFeet":   15000,
		"wizardSecret": "x",
	})
	found := false
	for _, w := range res.Warnings {
		if assert.ObjectsAreEqual(`unknown field "wizardSecret" ignored`, w) {
			found = true
		}
	}
	assert.True(t, found, "unknown field should be warned, not dropped silently")
}
