// Package power holds the per-industry load calculators. Each industry
// implements Model; dispatch is a registry lookup, consulted once per quote.
package power

import (
	"fmt"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// Load is one granular named load a model computed, tagged with the
// canonical category it rolls up into. The granular figure survives in the
// contributor details for forensic display.
type Load struct {
	Name     string
	Category model.ContributorKey
	KW       float64
}

// Result is everything one industry model produces for a facility.
type Result struct {
	Profile   model.LoadProfile
	Loads     []Load
	DutyCycle float64

	// ExactByConstruction marks remainder-reconciled industries (one
	// category computed as peak minus the others): their contributor sum
	// matches peak exactly, so tolerance bands do not apply.
	ExactByConstruction bool

	Assumptions []string
	Warnings    []string
}

// SumLoadsKW totals the granular loads.
func (r Result) SumLoadsKW() float64 {
	var sum float64
	for _, l := range r.Loads {
		sum += l.KW
	}
	return sum
}

// Model computes a load profile and its granular decomposition for one
// industry. Implementations are pure: same inputs, same result.
type Model interface {
	Industry() model.Industry
	Compute(in model.CanonicalInputs) Result
}

var registry = map[model.Industry]Model{}

func register(m Model) {
	registry[m.Industry()] = m
}

// For returns the model for an industry.
func For(industry model.Industry) (Model, error) {
	m, ok := registry[industry]
	if !ok {
		return nil, fmt.Errorf("no power model registered for industry %q", industry)
	}
	return m, nil
}

// anchoredPeak guards against a zero or negative computed peak: fall back to
// a generic square-footage density, then to the industry median. A model must
// never silently zero out a load.
func anchoredPeak(industry model.Industry, peakKW, squareFeet float64) (float64, []string) {
	if peakKW > 0 {
		return peakKW, nil
	}
	var warns []string
	if squareFeet > 0 {
		warns = append(warns,
			fmt.Sprintf("%s primary sizing inputs unusable; anchored peak to square footage", industry))
		return squareFeet * 1.5 / 1000, warns
	}
	warns = append(warns,
		fmt.Sprintf("%s sizing inputs unusable; anchored peak to industry median", industry))
	return config.MedianPeakKW[industry], warns
}

// dailyEnergyKWh integrates base and peak over the operating window:
// base load runs 24h, the load above base runs duty-cycle-weighted over the
// stated operating hours.
func dailyEnergyKWh(baseKW, peakKW, dutyCycle, operatingHours float64) float64 {
	if operatingHours > 24 {
		operatingHours = 24
	}
	return baseKW*24 + (peakKW-baseKW)*dutyCycle*operatingHours
}

// ScaleLoads multiplies every granular load by f, preserving order.
func ScaleLoads(loads []Load, f float64) []Load {
	out := make([]Load, len(loads))
	for i, l := range loads {
		l.KW *= f
		out[i] = l
	}
	return out
}
