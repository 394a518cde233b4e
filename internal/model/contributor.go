package model

import "fmt"

// EnvelopeVersion is the schema tag of the contributor envelope consumed by
// the external validation harness. Bump it whenever the canonical key set or
// the reconciliation semantics change; a mismatch is always a hard failure.
const EnvelopeVersion = "v1"

// ContributorKey is one of the eight canonical load categories every
// industry decomposes into. All eight are always present (zero-filled when
// inapplicable) so cross-industry tooling never special-cases key absence.
type ContributorKey string

const (
	ContributorProcess  ContributorKey = "process"
	ContributorHVAC     ContributorKey = "hvac"
	ContributorLighting ContributorKey = "lighting"
	ContributorControls ContributorKey = "controls"
	ContributorITLoad   ContributorKey = "itLoad"
	ContributorCooling  ContributorKey = "cooling"
	ContributorCharging ContributorKey = "charging"
	ContributorOther    ContributorKey = "other"
)

// ContributorKeys returns the canonical keys in a stable order.
func ContributorKeys() []ContributorKey {
	return []ContributorKey{
		ContributorProcess,
		ContributorHVAC,
		ContributorLighting,
		ContributorControls,
		ContributorITLoad,
		ContributorCooling,
		ContributorCharging,
		ContributorOther,
	}
}

// ContributorBreakdown decomposes a peak load into the canonical categories,
// retaining the industry's granular figures in Details for forensic display.
// Units: all values kW. DutyCycle is a fraction; it may modestly exceed 1.0
// (up to 1.25) to represent short-duration overlap peaks.
type ContributorBreakdown struct {
	Version        string                        `json:"version"`
	KWContributors map[ContributorKey]float64    `json:"kw_contributors"`
	Details        map[string]map[string]float64 `json:"details,omitempty"`
	DutyCycle      float64                       `json:"duty_cycle"`
}

// SumKW returns the total of all canonical contributors.
func (b ContributorBreakdown) SumKW() float64 {
	var sum float64
	for _, v := range b.KWContributors {
		sum += v
	}
	return sum
}

// CheckEnvelope verifies the schema tag and key completeness. This is the
// contract the external validation harness depends on: a version mismatch is
// a programming error, not a data-quality issue, and must never be
// reinterpreted silently.
func (b ContributorBreakdown) CheckEnvelope() error {
	if b.Version != EnvelopeVersion {
		return fmt.Errorf("contributor envelope version %q, want %q", b.Version, EnvelopeVersion)
	}
	for _, k := range ContributorKeys() {
		if _, ok := b.KWContributors[k]; !ok {
			return fmt.Errorf("contributor envelope missing canonical key %q", k)
		}
	}
	return nil
}
