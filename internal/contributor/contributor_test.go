package contributor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugobe007/merlin2-sub009/internal/model"
	"github.com/ugobe007/merlin2-sub009/internal/power"
	"github.com/ugobe007/merlin2-sub009/internal/resolve"
)

func profileAndResult(t *testing.T, ind model.Industry) (power.Result, model.LoadProfile) {
	t.Helper()
	m, err := power.For(ind)
	require.NoError(t, err)
	in, _ := resolve.Resolve(ind, nil)
	res := m.Compute(in)
	return res, res.Profile
}

func TestDecomposeAllIndustries(t *testing.T) {
	for _, ind := range model.Industries() {
		t.Run(string(ind), func(t *testing.T) {
			res, profile := profileAndResult(t, ind)
			b, warnings, err := Decompose(ind, res, profile)
			require.NoError(t, err)
			assert.Empty(t, warnings)

			// All eight canonical keys present, zero-filled if unused.
			assert.Len(t, b.KWContributors, 8)
			require.NoError(t, b.CheckEnvelope())

			// Sum-to-peak within the soft band for every default facility.
			sum := b.SumKW()
			assert.InEpsilon(t, profile.PeakLoadKW, sum, 0.15)

			// Granular figures survive for forensic display.
			assert.NotEmpty(t, b.Details[string(ind)])
		})
	}
}

func TestDecomposeToleranceBands(t *testing.T) {
	profile := model.LoadProfile{BaseLoadKW: 10, PeakLoadKW: 100, EnergyKWhPerDay: 700}

	mk := func(kw float64) power.Result {
		return power.Result{
			Loads:     []power.Load{{Name: "block", Category: model.ContributorProcess, KW: kw}},
			DutyCycle: 0.5,
		}
	}

	tests := []struct {
		name     string
		sumKW    float64
		wantErr  bool
		wantWarn bool
	}{
		{"exact", 100, false, false},
		{"within soft band", 110, false, false},
		{"soft violation warns", 120, false, true},
		{"hard violation rejects", 130, true, false},
		{"hard violation low side", 70, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, warnings, err := Decompose(model.IndustryOffice, mk(tt.sumKW), profile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantWarn {
				assert.NotEmpty(t, warnings)
			} else {
				assert.Empty(t, warnings)
			}
		})
	}
}

func TestDecomposeDutyCycleBounds(t *testing.T) {
	profile := model.LoadProfile{BaseLoadKW: 10, PeakLoadKW: 100, EnergyKWhPerDay: 700}
	res := power.Result{
		Loads:     []power.Load{{Name: "block", Category: model.ContributorProcess, KW: 100}},
		DutyCycle: 1.4,
	}
	_, _, err := Decompose(model.IndustryOffice, res, profile)
	assert.Error(t, err)

	res.DutyCycle = 1.2 // overlap peaks may exceed 1.0 up to 1.25
	_, _, err = Decompose(model.IndustryOffice, res, profile)
	assert.NoError(t, err)
}

func TestVerifyEnvelopeContract(t *testing.T) {
	res, profile := profileAndResult(t, model.IndustryCarWash)
	b, _, err := Decompose(model.IndustryCarWash, res, profile)
	require.NoError(t, err)

	t.Run("valid envelope passes", func(t *testing.T) {
		assert.NoError(t, Verify(b, profile.PeakLoadKW))
	})

	t.Run("version mismatch hard-fails", func(t *testing.T) {
		stale := b
		stale.Version = "v0"
		assert.Error(t, Verify(stale, profile.PeakLoadKW))
	})

	t.Run("missing canonical key hard-fails", func(t *testing.T) {
		partial := b
		partial.KWContributors = map[model.ContributorKey]float64{
			model.ContributorProcess: profile.PeakLoadKW,
		}
		assert.Error(t, partial.CheckEnvelope())
	})
}

func TestCarWashProcessShare(t *testing.T) {
	// The harness invariant: process must carry 80-95% of a car wash peak.
	res, profile := profileAndResult(t, model.IndustryCarWash)
	b, _, err := Decompose(model.IndustryCarWash, res, profile)
	require.NoError(t, err)

	share := b.KWContributors[model.ContributorProcess] / profile.PeakLoadKW
	assert.Greater(t, share, 0.80)
	assert.Less(t, share, 0.95)
}
