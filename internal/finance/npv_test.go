package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPV(t *testing.T) {
	flows := []float64{-1000, 500, 500, 500}

	assert.InDelta(t, 243.43, NPV(0.10, flows), 0.01)
	assert.InDelta(t, 500.0, NPV(0, flows), 1e-9)
	assert.Equal(t, 0.0, NPV(0.10, nil))
}

func TestIRR(t *testing.T) {
	flows := []float64{-1000, 500, 500, 500}
	rate, ok := IRR(flows)
	require.True(t, ok)
	assert.InDelta(t, 0.23375, rate, 1e-4)

	// NPV at the found rate is ~zero.
	assert.InDelta(t, 0, NPV(rate, flows), 0.01)
}

func TestIRRUndefined(t *testing.T) {
	// No sign change over the bracket means no root to report.
	_, ok := IRR([]float64{-1000, -50, -50})
	assert.False(t, ok)

	_, ok = IRR([]float64{1000, 50, 50})
	assert.False(t, ok)
}

func TestMIRR(t *testing.T) {
	flows := []float64{-1000, 500, 500, 500}
	rate, ok := MIRR(flows, 0.08, 0.05)
	require.True(t, ok)
	assert.InDelta(t, 0.1639, rate, 1e-4)

	_, ok = MIRR([]float64{-1000}, 0.08, 0.05)
	assert.False(t, ok)
	_, ok = MIRR([]float64{-1000, -100, -100}, 0.08, 0.05)
	assert.False(t, ok)
}

func TestSimplePayback(t *testing.T) {
	years, ok := SimplePayback([]float64{-1000, 400, 400, 400})
	require.True(t, ok)
	assert.InDelta(t, 2.5, years, 1e-9)

	years, ok = SimplePayback([]float64{500, 100})
	require.True(t, ok)
	assert.Equal(t, 0.0, years)

	_, ok = SimplePayback([]float64{-1000, 100, 100})
	assert.False(t, ok)
}

func TestDiscountedPayback(t *testing.T) {
	flows := []float64{-1000, 500, 500, 500}

	simple, ok := SimplePayback(flows)
	require.True(t, ok)
	discounted, ok := DiscountedPayback(0.10, flows)
	require.True(t, ok)

	assert.InDelta(t, 2.352, discounted, 1e-3)
	assert.Greater(t, discounted, simple)
}
