// Package contributor rolls the per-industry granular loads up into the
// canonical eight-key breakdown and enforces the sum-to-peak invariant.
package contributor

import (
	"fmt"
	"math"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
	"github.com/ugobe007/merlin2-sub009/internal/power"
)

// Decompose builds the contributor envelope from a model result. The
// returned warnings are non-fatal; the error is reserved for hard invariant
// violations (sum beyond the hard tolerance, duty cycle out of range).
func Decompose(industry model.Industry, pr power.Result, profile model.LoadProfile) (model.ContributorBreakdown, []string, error) {
	b := model.ContributorBreakdown{
		Version:        model.EnvelopeVersion,
		KWContributors: map[model.ContributorKey]float64{},
		DutyCycle:      pr.DutyCycle,
	}
	// All eight keys are always present, zero-filled when inapplicable.
	for _, k := range model.ContributorKeys() {
		b.KWContributors[k] = 0
	}

	details := map[string]float64{}
	for _, l := range pr.Loads {
		b.KWContributors[l.Category] += l.KW
		details[l.Name] += l.KW
	}
	if len(details) > 0 {
		b.Details = map[string]map[string]float64{string(industry): details}
	}

	var warnings []string

	if pr.DutyCycle < 0 || pr.DutyCycle > config.MaxDutyCycle {
		return b, warnings, fmt.Errorf("duty cycle %.3f outside [0, %.2f]", pr.DutyCycle, config.MaxDutyCycle)
	}

	if profile.PeakLoadKW <= 0 {
		return b, warnings, fmt.Errorf("peak load %.1f kW is not positive", profile.PeakLoadKW)
	}

	sum := b.SumKW()
	relErr := math.Abs(sum-profile.PeakLoadKW) / profile.PeakLoadKW

	if pr.ExactByConstruction {
		// Remainder-reconciled industries promise exactness; anything
		// beyond float noise is a model bug.
		if relErr > 1e-6 {
			warnings = append(warnings,
				fmt.Sprintf("remainder-reconciled breakdown off peak by %.2f%%", relErr*100))
		}
		return b, warnings, nil
	}

	switch {
	case relErr > config.HardSumTolerance:
		return b, warnings, fmt.Errorf(
			"contributor sum %.1f kW is %.0f%% off peak %.1f kW (hard tolerance %.0f%%)",
			sum, relErr*100, profile.PeakLoadKW, config.HardSumTolerance*100)
	case relErr > config.SoftSumTolerance:
		warnings = append(warnings,
			fmt.Sprintf("contributor sum %.1f kW is %.0f%% off peak %.1f kW",
				sum, relErr*100, profile.PeakLoadKW))
	}

	return b, warnings, nil
}

// Verify is the harness-facing envelope check: version and key completeness
// first (hard failure, programming contract), then the sum invariant against
// the given peak.
func Verify(b model.ContributorBreakdown, peakLoadKW float64) error {
	if err := b.CheckEnvelope(); err != nil {
		return err
	}
	if peakLoadKW <= 0 {
		return fmt.Errorf("peak load %.1f kW is not positive", peakLoadKW)
	}
	relErr := math.Abs(b.SumKW()-peakLoadKW) / peakLoadKW
	if relErr > config.HardSumTolerance {
		return fmt.Errorf("contributor sum %.0f%% off peak", relErr*100)
	}
	return nil
}
