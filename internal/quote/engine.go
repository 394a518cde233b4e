// Package quote orchestrates the calculation pipeline: resolve inputs,
// compute the load profile, validate the contributor breakdown, size the
// battery, project degradation, evaluate financials, and assemble one
// immutable result with its audit trail.
package quote

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/ugobe007/merlin2-sub009/internal/contributor"
	"github.com/ugobe007/merlin2-sub009/internal/degradation"
	"github.com/ugobe007/merlin2-sub009/internal/finance"
	"github.com/ugobe007/merlin2-sub009/internal/model"
	"github.com/ugobe007/merlin2-sub009/internal/power"
	"github.com/ugobe007/merlin2-sub009/internal/resolve"
	"github.com/ugobe007/merlin2-sub009/internal/sizing"
)

// Request is one quote invocation. Inputs is the raw wizard field map; all
// other fields arrive already structured.
type Request struct {
	Industry  string         `json:"industry"`
	Goal      string         `json:"goal,omitempty"`
	Chemistry string         `json:"chemistry,omitempty"`
	Inputs    map[string]any `json:"inputs,omitempty"`

	Financial finance.Inputs       `json:"financial,omitempty"`
	Risk      *finance.RiskOptions `json:"risk,omitempty"`

	IncludeSensitivity bool `json:"include_sensitivity,omitempty"`
	IncludeCashFlows   bool `json:"include_cash_flows,omitempty"`

	// Strict is the CI validation mode: pricing-critical defaults and hard
	// invariant violations fail the run instead of becoming warnings.
	Strict bool `json:"strict,omitempty"`
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes the full pipeline. Every stage is pure; the returned result
// is created fresh and never mutated afterwards.
func (e *Engine) Run(req Request) (*model.QuoteResult, error) {
	var assumptions, warnings []string

	industry, ok := model.ParseIndustry(req.Industry)
	if !ok {
		if req.Strict {
			return nil, fmt.Errorf("unknown industry %q", req.Industry)
		}
		industry = model.IndustryOffice
		warnings = append(warnings,
			fmt.Sprintf("industry %q not recognized; modeled as a generic office building", req.Industry))
	}

	inputs, res := resolve.Resolve(industry, req.Inputs)
	assumptions = append(assumptions, res.Assumptions...)
	warnings = append(warnings, res.Warnings...)

	if req.Strict && len(res.PricingFallbacks) > 0 {
		return nil, fmt.Errorf("pricing-critical inputs defaulted in strict mode: %v", res.PricingFallbacks)
	}

	goal, ok := model.ParseGoal(req.Goal)
	if !ok {
		assumptions = append(assumptions,
			fmt.Sprintf("goal %q not recognized; assuming arbitrage", req.Goal))
	}
	if nudged, note := sizing.GoalForGridConnection(goal, inputs.GridConnection); note != "" {
		goal = nudged
		assumptions = append(assumptions, note)
	}

	pm, err := power.For(industry)
	if err != nil {
		return nil, err
	}
	pr := pm.Compute(inputs)
	assumptions = append(assumptions, pr.Assumptions...)
	warnings = append(warnings, pr.Warnings...)

	pr = applyPeakOverride(inputs, pr, &assumptions)

	if err := pr.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("%s load profile invalid: %w", industry, err)
	}

	breakdown, contribWarnings, contribErr := contributor.Decompose(industry, pr, pr.Profile)
	warnings = append(warnings, contribWarnings...)
	if contribErr != nil {
		// A hard tolerance violation is a failed run only in strict mode;
		// in normal mode it is an anomaly the user should see.
		if req.Strict {
			return nil, contribErr
		}
		warnings = append(warnings, contribErr.Error())
	}
	// The envelope contract is a programming invariant, never downgraded.
	if err := breakdown.CheckEnvelope(); err != nil {
		return nil, err
	}

	bess, sizeAssumptions := sizing.Size(pr.Profile, goal, industry)
	assumptions = append(assumptions, sizeAssumptions...)
	if err := bess.Validate(); err != nil {
		return nil, fmt.Errorf("sized battery invalid: %w", err)
	}

	chemistry, ok := model.ParseChemistry(req.Chemistry)
	if !ok && req.Chemistry != "" {
		assumptions = append(assumptions,
			fmt.Sprintf("chemistry %q not recognized; assuming LFP", req.Chemistry))
	} else if req.Chemistry == "" {
		assumptions = append(assumptions, "chemistry defaulted to LFP")
	}

	fin := finance.Merge(finance.Defaults(inputs), req.Financial)

	degr, degrWarnings, err := degradation.Project(chemistry, fin.CyclesPerYear)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, degrWarnings...)

	financial, schedule := finance.Evaluate(bess, degr, fin)
	if financial.IRR == nil {
		warnings = append(warnings, "IRR not computable for this cash-flow shape")
	}

	result := &model.QuoteResult{
		ID:                   requestID(req),
		Industry:             industry,
		Goal:                 goal,
		LoadProfile:          pr.Profile,
		ContributorBreakdown: breakdown,
		BESSConfig:           bess,
		DegradationProfile:   degr,
		FinancialResult:      financial,
		Assumptions:          assumptions,
		Warnings:             warnings,
	}
	if req.IncludeCashFlows {
		result.CashFlows = schedule
	}
	if req.Risk != nil {
		risk := finance.RunRisk(bess, degr, fin, *req.Risk)
		result.Risk = &risk
	}
	if req.IncludeSensitivity {
		result.Sensitivity = finance.Sensitivity(bess, degr, fin)
	}

	return result, nil
}

// applyPeakOverride rescales the modeled profile to a utility-bill peak when
// the user supplied one, preserving the contributor mix.
func applyPeakOverride(in model.CanonicalInputs, pr power.Result, assumptions *[]string) power.Result {
	if in.PeakLoadOverrideKW <= 0 || pr.Profile.PeakLoadKW <= 0 {
		return pr
	}
	factor := in.PeakLoadOverrideKW / pr.Profile.PeakLoadKW
	pr.Profile.PeakLoadKW *= factor
	pr.Profile.BaseLoadKW *= factor
	pr.Profile.EnergyKWhPerDay *= factor
	pr.Loads = power.ScaleLoads(pr.Loads, factor)
	*assumptions = append(*assumptions,
		fmt.Sprintf("modeled profile rescaled to stated %.0f kW utility-bill peak", in.PeakLoadOverrideKW))
	return pr
}

// requestID derives a stable quote ID from the request content, so repeated
// runs of identical inputs yield identical results end to end.
func requestID(req Request) string {
	raw, err := json.Marshal(req)
	if err != nil {
		return uuid.New().String()
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, raw).String()
}
