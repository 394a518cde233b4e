package finance

import "math"

// NPV discounts the cash-flow series at the given rate. cashflows[0] is the
// time-zero flow (typically the negative net capex).
func NPV(rate float64, cashflows []float64) float64 {
	var npv float64
	for t, cf := range cashflows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// IRR root-finding bracket. Rates below -99% or above 1000% are not
// meaningful for a storage project.
const (
	irrLow        = -0.99
	irrHigh       = 10.0
	irrIterations = 200
	irrTolerance  = 1e-7
)

// IRR finds the discount rate at which NPV is zero, by bisection. ok is
// false when NPV does not change sign over the bracket: the result is then
// undefined and must be rendered "not computable", never fabricated.
func IRR(cashflows []float64) (float64, bool) {
	lo, hi := irrLow, irrHigh
	fLo := NPV(lo, cashflows)
	fHi := NPV(hi, cashflows)
	if fLo == 0 {
		return lo, true
	}
	if fHi == 0 {
		return hi, true
	}
	if (fLo > 0) == (fHi > 0) {
		return 0, false
	}

	for i := 0; i < irrIterations; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(mid, cashflows)
		if math.Abs(fMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return mid, true
		}
		if (fMid > 0) == (fLo > 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, true
}

// MIRR discounts negative flows at the finance rate and compounds positive
// flows forward at the reinvestment rate. ok is false when either side is
// empty (no sign mix means no meaningful MIRR).
func MIRR(cashflows []float64, financeRate, reinvestRate float64) (float64, bool) {
	n := len(cashflows) - 1
	if n < 1 {
		return 0, false
	}

	var pvNegative, fvPositive float64
	for t, cf := range cashflows {
		if cf < 0 {
			pvNegative += cf / math.Pow(1+financeRate, float64(t))
		} else if cf > 0 {
			fvPositive += cf * math.Pow(1+reinvestRate, float64(n-t))
		}
	}
	if pvNegative == 0 || fvPositive == 0 {
		return 0, false
	}

	return math.Pow(fvPositive/-pvNegative, 1/float64(n)) - 1, true
}

// SimplePayback returns the fractional year at which cumulative cash flow
// first turns non-negative. ok is false when it never does over the horizon.
func SimplePayback(cashflows []float64) (float64, bool) {
	return payback(cashflows, func(t int, cf float64) float64 { return cf })
}

// DiscountedPayback is SimplePayback over discounted flows.
func DiscountedPayback(rate float64, cashflows []float64) (float64, bool) {
	return payback(cashflows, func(t int, cf float64) float64 {
		return cf / math.Pow(1+rate, float64(t))
	})
}

func payback(cashflows []float64, transform func(int, float64) float64) (float64, bool) {
	if len(cashflows) == 0 {
		return 0, false
	}
	cumulative := transform(0, cashflows[0])
	if cumulative >= 0 {
		return 0, true
	}
	for t := 1; t < len(cashflows); t++ {
		cf := transform(t, cashflows[t])
		next := cumulative + cf
		if next >= 0 {
			// Interpolate within the year the sign flips.
			frac := 1.0
			if cf > 0 {
				frac = -cumulative / cf
			}
			return float64(t-1) + frac, true
		}
		cumulative = next
	}
	return 0, false
}
