package handlers

import (
	"net/http"

	"profit_leak/leakdetector/internal/analysis"
	"profit_leak/leakdetector/internal/auth"
	"profit_leak/leakdetector/internal/logic"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type inputsPayload struct {
	UnitsSold          int64   `json:"units_sold" binding:"gte=0"`
	Price              float64 `json:"price" binding:"gte=0"`
	Cost               float64 `json:"cost" binding:"gte=0"`
	DiscountPct        float64 `json:"discount_pct" binding:"gte=0,lte=100"`
	ReturnPct          float64 `json:"return_pct" binding:"gte=0,lte=100"`
	AvgStockUnits      int64   `json:"avg_stock_units" binding:"gte=0"`
	StorageCostPerUnit float64 `json:"storage_cost_per_unit" binding:"gte=0"`
}

func (p *inputsPayload) toInputs() logic.BusinessInputs {
	return logic.BusinessInputs{
		UnitsSold:          p.UnitsSold,
		Price:              p.Price,
		Cost:               p.Cost,
		DiscountPct:        p.DiscountPct,
		ReturnPct:          p.ReturnPct,
		AvgStockUnits:      p.AvgStockUnits,
		StorageCostPerUnit: p.StorageCostPerUnit,
	}
}

type analyzeRequest struct {
	BusinessID string         `json:"business_id"`
	Inputs     *inputsPayload `json:"inputs" binding:"required"`
	Limit      int            `json:"limit"`
}

type overridesPayload struct {
	DiscountPct        *float64 `json:"discount_pct" binding:"omitempty,gte=0,lte=100"`
	ReturnPct          *float64 `json:"return_pct" binding:"omitempty,gte=0,lte=100"`
	StorageCostPerUnit *float64 `json:"storage_cost_per_unit" binding:"omitempty,gte=0"`
}

type scenarioRequest struct {
	Baseline  *inputsPayload    `json:"baseline" binding:"required"`
	Overrides *overridesPayload `json:"overrides"`
}

type AnalysisHandler struct {
	engine *analysis.Engine
	logger *logrus.Logger
}

// NewAnalysisHandler constructs the HTTP analysis endpoints.
func NewAnalysisHandler(engine *analysis.Engine, logger *logrus.Logger) *AnalysisHandler {
	return &AnalysisHandler{engine: engine, logger: logger}
}

// Analyze returns metrics, ranked leaks and actions for the posted inputs.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"component": "analyze", "client": c.GetString(auth.ClientKey)})

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("invalid analyze request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log = log.WithField("business_id", req.BusinessID)

	res := h.engine.Analyze(c.Request.Context(), analysis.Request{
		BusinessID: req.BusinessID,
		Inputs:     req.Inputs.toInputs(),
		Limit:      req.Limit,
		Transport:  "http",
	})
	log.WithFields(logrus.Fields{"report_id": res.ReportID, "leaks": res.TotalLeaks}).Debug("analyze served")

	c.JSON(http.StatusOK, gin.H{
		"report_id":   res.ReportID,
		"metrics":     res.Report.Metrics,
		"leaks":       res.Report.Leaks,
		"actions":     res.Report.Actions,
		"total_leaks": res.TotalLeaks,
	})
}

// Scenario compares the baseline with a what-if built from the overrides.
func (h *AnalysisHandler) Scenario(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"component": "scenario", "client": c.GetString(auth.ClientKey)})

	var req scenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("invalid scenario request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var overrides logic.ScenarioOverrides
	if req.Overrides != nil {
		overrides = logic.ScenarioOverrides{
			DiscountPct:        req.Overrides.DiscountPct,
			ReturnPct:          req.Overrides.ReturnPct,
			StorageCostPerUnit: req.Overrides.StorageCostPerUnit,
		}
	}

	res := h.engine.CompareScenario(req.Baseline.toInputs(), overrides)

	c.JSON(http.StatusOK, gin.H{
		"baseline":        res.Comparison.Baseline,
		"scenario":        res.Comparison.Scenario,
		"scenario_inputs": res.ScenarioInputs,
		"profit_delta":    res.Comparison.ProfitDelta,
	})
}

// Thresholds returns the active threshold configuration.
func (h *AnalysisHandler) Thresholds(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Thresholds())
}
