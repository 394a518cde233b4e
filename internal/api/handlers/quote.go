package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ugobe007/merlin2-sub009/internal/api/models"
	"github.com/ugobe007/merlin2-sub009/internal/finance"
	"github.com/ugobe007/merlin2-sub009/internal/incentive"
	"github.com/ugobe007/merlin2-sub009/internal/model"
	"github.com/ugobe007/merlin2-sub009/internal/quote"
)

// QuoteHandler handles quote-related requests.
type QuoteHandler struct {
	engine *quote.Engine
}

func NewQuoteHandler() *QuoteHandler {
	return &QuoteHandler{engine: quote.New()}
}

// RunQuote handles POST /api/v1/quote
func (h *QuoteHandler) RunQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	result, err := h.engine.Run(toEngineRequest(req))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "QUOTE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.QuoteResponse{Status: "completed", Quote: result})
}

// CompareQuotes handles POST /api/v1/quote/compare
func (h *QuoteHandler) CompareQuotes(c *gin.Context) {
	var req models.CompareQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	base, err := h.engine.Run(toEngineRequest(req.Base))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "QUOTE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := mergeVariation(req.Base, variation)
		result, err := h.engine.Run(toEngineRequest(merged))
		if err != nil {
			continue // skip invalid variations, keep the rest
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: buildSummary(result),
		})
	}

	c.JSON(http.StatusOK, models.CompareQuoteResponse{
		Base:       buildSummary(base),
		Comparison: comparison,
	})
}

func mergeVariation(base models.QuoteRequest, v models.QuoteVariation) models.QuoteRequest {
	merged := base
	if v.Goal != "" {
		merged.Goal = v.Goal
	}
	if v.Chemistry != "" {
		merged.Chemistry = v.Chemistry
	}
	if len(v.Inputs) > 0 {
		inputs := make(map[string]any, len(base.Inputs)+len(v.Inputs))
		for k, val := range base.Inputs {
			inputs[k] = val
		}
		for k, val := range v.Inputs {
			inputs[k] = val
		}
		merged.Inputs = inputs
	}
	if v.Financial != nil {
		merged.Financial = v.Financial
	}
	// Comparisons never need the full risk run per variation.
	merged.Risk = nil
	return merged
}

func toEngineRequest(req models.QuoteRequest) quote.Request {
	out := quote.Request{
		Industry:           req.Industry,
		Goal:               req.Goal,
		Chemistry:          req.Chemistry,
		Inputs:             req.Inputs,
		IncludeCashFlows:   req.Options.IncludeCashFlows,
		IncludeSensitivity: req.Options.IncludeSensitivity,
		Strict:             req.Options.Strict,
	}
	if req.Financial != nil {
		out.Financial = toFinanceInputs(*req.Financial)
	}
	if req.Risk != nil {
		out.Risk = &finance.RiskOptions{
			Iterations: req.Risk.Iterations,
			Seed:       req.Risk.Seed,
			Workers:    req.Risk.Workers,
		}
	}
	return out
}

func toFinanceInputs(f models.FinancialConfig) finance.Inputs {
	return finance.Inputs{
		DiscountRate:          f.DiscountRate,
		EscalationRate:        f.EscalationRate,
		HorizonYears:          f.HorizonYears,
		CapexPerKWh:           f.CapexPerKWh,
		CapexPerKW:            f.CapexPerKW,
		FixedCost:             f.FixedCost,
		OMCostPerKWYear:       f.OMCostPerKWYear,
		CyclesPerYear:         f.CyclesPerYear,
		ArbSpreadPerKWh:       f.ArbSpreadPerKWh,
		ElectricityRatePerKWh: f.ElectricityRatePerKWh,
		DemandChargePerKW:     f.DemandChargePerKW,
		DemandReductionShare:  f.DemandReductionShare,
		SolarOffsetKWhPerYear: f.SolarOffsetKWhPerYear,
		FinanceRate:           f.FinanceRate,
		ReinvestRate:          f.ReinvestRate,
		ITC: incentive.Eligibility{
			PrevailingWage:     f.PrevailingWage,
			EnergyCommunity:    f.EnergyCommunity,
			DomesticContent:    f.DomesticContent,
			LowIncome:          f.LowIncome,
			LowIncomeQualified: f.LowIncomeQualified,
		},
	}
}

func buildSummary(result *model.QuoteResult) models.QuoteSummary {
	return models.QuoteSummary{
		PeakLoadKW:    result.LoadProfile.PeakLoadKW,
		PowerKW:       result.BESSConfig.PowerKW,
		EnergyKWh:     result.BESSConfig.EnergyKWh,
		CapexTotal:    result.FinancialResult.CapexTotal,
		AnnualSavings: result.FinancialResult.AnnualSavings,
		NPV:           result.FinancialResult.NPV,
		IRR:           result.FinancialResult.IRR,
		PaybackYears:  result.FinancialResult.PaybackYears,
		ITCRate:       result.FinancialResult.ITCRate,
		WarningCount:  len(result.Warnings),
	}
}
