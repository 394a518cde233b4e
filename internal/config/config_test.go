package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
facility:
  industry: car_wash
  inputs:
    bays: 6
    state: TX
goal: peak_shaving
chemistry: lfp
financial:
  discount_rate: 0.09
risk:
  iterations: 5000
  seed: 42
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "car_wash", s.Facility.Industry)
	assert.Equal(t, 6, s.Facility.Inputs["bays"])
	assert.Equal(t, "peak_shaving", s.Goal)
	assert.Equal(t, 0.09, s.Financial.DiscountRate)
	require.NotNil(t, s.Risk)
	assert.Equal(t, 5000, s.Risk.Iterations)
	assert.Equal(t, int64(42), s.Risk.Seed)
}

func TestLoadScenarioWithFacilityFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "site.yaml", `
facility:
  industry: data_center
  inputs:
    itLoadKW: 2000
    pue: 1.4
`)
	path := writeFile(t, dir, "scenario.yaml", `
facility_file: site.yaml
facility:
  inputs:
    pue: 1.3
goal: resilience
`)

	s, err := Load(path)
	require.NoError(t, err)

	// The inline block overrides field-by-field, not wholesale.
	assert.Equal(t, "data_center", s.Facility.Industry)
	assert.Equal(t, 2000, s.Facility.Inputs["itLoadKW"])
	assert.Equal(t, 1.3, s.Facility.Inputs["pue"])
}

func TestLoadScenarioErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, dir, "noindustry.yaml", "goal: arbitrage\n")
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "industry")

	// LoadUnchecked tolerates the same file.
	s, err := LoadUnchecked(path)
	require.NoError(t, err)
	assert.Equal(t, "arbitrage", s.Goal)

	path = writeFile(t, dir, "badrisk.yaml", `
facility:
  industry: hotel
risk:
  iterations: -1
`)
	_, err = Load(path)
	assert.Error(t, err)
}

func TestMergeFacility(t *testing.T) {
	base := FacilityConfig{
		Industry: "hotel",
		Inputs:   map[string]any{"rooms": 120, "occupancy": 0.8},
	}

	merged := MergeFacility(base, FacilityConfig{Inputs: map[string]any{"rooms": 200}})
	assert.Equal(t, "hotel", merged.Industry)
	assert.Equal(t, 200, merged.Inputs["rooms"])
	assert.Equal(t, 0.8, merged.Inputs["occupancy"])

	// The base map is untouched.
	assert.Equal(t, 120, base.Inputs["rooms"])

	merged = MergeFacility(base, FacilityConfig{Industry: "hospital"})
	assert.Equal(t, "hospital", merged.Industry)
	assert.Equal(t, 120, merged.Inputs["rooms"])
}
