package finance

import (
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// RiskOptions controls the Monte Carlo run. Zero values take defaults.
// Workers only changes scheduling, never the result: each iteration derives
// its draws from its own index, so the output is identical for any worker
// count under the same seed.
type RiskOptions struct {
	Iterations int   `json:"iterations" yaml:"iterations"`
	Seed       int64 `json:"seed" yaml:"seed"`
	Workers    int   `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// RunRisk draws N independent perturbations of the uncertain variables,
// recomputes NPV for each, and reports the percentile summary.
func RunRisk(bess model.BESSConfig, degr model.DegradationProfile, fin Inputs, opts RiskOptions) model.RiskAnalysis {
	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = config.DefaultRiskIterations
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > iterations {
		workers = iterations
	}

	npvs := make([]float64, iterations)

	var wg sync.WaitGroup
	chunk := (iterations + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > iterations {
			end = iterations
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				f := drawFactors(opts.Seed, i)
				result, _ := evaluate(bess, degr, fin, f)
				npvs[i] = result.NPV
			}
		}(start, end)
	}
	wg.Wait()

	sort.Float64s(npvs)

	positive := 0
	for _, v := range npvs {
		if v > 0 {
			positive++
		}
	}

	p5 := percentileSorted(npvs, 0.05)
	var valueAtRisk float64
	if p5 < 0 {
		valueAtRisk = -p5
	}

	return model.RiskAnalysis{
		Iterations:          iterations,
		Seed:                opts.Seed,
		P10NPV:              percentileSorted(npvs, 0.10),
		P50NPV:              percentileSorted(npvs, 0.50),
		P90NPV:              percentileSorted(npvs, 0.90),
		ProbabilityPositive: float64(positive) / float64(iterations),
		ValueAtRisk95:       valueAtRisk,
	}
}

// drawFactors derives iteration i's perturbation from the root seed and the
// iteration index alone, keeping the run deterministic regardless of how
// iterations are scheduled across workers.
func drawFactors(seed int64, i int) factors {
	rng := rand.New(rand.NewSource(seed + int64(i)*0x9e3779b9))
	return factors{
		electricity:   boundedNormal(rng, config.SwingElectricityRate),
		degradation:   boundedNormal(rng, config.SwingDegradation),
		equipmentCost: boundedNormal(rng, config.SwingEquipmentCost),
		demandCharge:  boundedNormal(rng, config.SwingDemandCharge),
		solar:         boundedNormal(rng, config.SwingSolarProduction),
	}
}

// boundedNormal draws a multiplicative factor from N(1, swing/2) truncated
// to [1-swing, 1+swing]. The swing scales a magnitude, never a signed value,
// so a negative base NPV cannot invert the probability direction.
func boundedNormal(rng *rand.Rand, swing float64) float64 {
	f := 1 + rng.NormFloat64()*swing/2
	return math.Max(1-swing, math.Min(1+swing, f))
}

// percentileSorted interpolates the q-quantile of an ascending series.
func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
