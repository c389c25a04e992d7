package handler

import (
	"context"

	"profit_leak/leakdetector/api"
	"profit_leak/leakdetector/internal/analysis"
	"profit_leak/leakdetector/internal/logic"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type LeakDetectorHandler struct {
	api.UnimplementedLeakDetectorServiceServer
	engine *analysis.Engine
	logger *logrus.Logger
}

// NewLeakDetectorHandler constructs the gRPC handler.
func NewLeakDetectorHandler(engine *analysis.Engine, logger *logrus.Logger) *LeakDetectorHandler {
	return &LeakDetectorHandler{engine: engine, logger: logger}
}

// Analyze computes metrics, leaks and actions for one set of inputs.
func (h *LeakDetectorHandler) Analyze(ctx context.Context, req *api.AnalyzeRequest) (*api.AnalyzeResponse, error) {
	log := h.logger.WithFields(logrus.Fields{"component": "grpc", "method": "Analyze", "business_id": req.BusinessId})
	log.Debug("Analyze called")

	if req.GetInputs() == nil {
		log.Warn("Analyze missing inputs")
		return nil, status.Error(codes.InvalidArgument, "inputs are required")
	}
	inputs := toInputs(req.GetInputs())
	if err := analysis.ValidateInputs(inputs); err != nil {
		log.WithError(err).Warn("Analyze rejected inputs")
		return nil, status.Errorf(codes.InvalidArgument, "invalid inputs: %v", err)
	}

	res := h.engine.Analyze(ctx, analysis.Request{
		BusinessID: req.BusinessId,
		Inputs:     inputs,
		Limit:      int(req.Limit),
		Transport:  "grpc",
	})

	leaks := make([]*api.Leak, 0, len(res.Report.Leaks))
	for _, leak := range res.Report.Leaks {
		leaks = append(leaks, &api.Leak{Name: leak.Kind.String(), Amount: leak.Amount})
	}
	log.WithField("report_id", res.ReportID).Debug("Analyze complete")

	return &api.AnalyzeResponse{
		ReportId:   res.ReportID,
		Metrics:    fromMetrics(res.Report.Metrics),
		Leaks:      leaks,
		Actions:    res.Report.Actions,
		TotalLeaks: int32(res.TotalLeaks),
	}, nil
}

// CompareScenario evaluates a what-if against the baseline inputs.
func (h *LeakDetectorHandler) CompareScenario(ctx context.Context, req *api.ScenarioRequest) (*api.ScenarioResponse, error) {
	log := h.logger.WithFields(logrus.Fields{"component": "grpc", "method": "CompareScenario"})
	log.Debug("CompareScenario called")

	if req.GetBaseline() == nil {
		return nil, status.Error(codes.InvalidArgument, "baseline is required")
	}
	baseline := toInputs(req.GetBaseline())
	if err := analysis.ValidateInputs(baseline); err != nil {
		log.WithError(err).Warn("CompareScenario rejected baseline")
		return nil, status.Errorf(codes.InvalidArgument, "invalid baseline: %v", err)
	}
	o := req.GetOverrides()
	overrides := logic.ScenarioOverrides{
		DiscountPct:        o.DiscountPct,
		ReturnPct:          o.ReturnPct,
		StorageCostPerUnit: o.StorageCostPerUnit,
	}
	if err := analysis.ValidateOverrides(overrides); err != nil {
		log.WithError(err).Warn("CompareScenario rejected overrides")
		return nil, status.Errorf(codes.InvalidArgument, "invalid overrides: %v", err)
	}

	res := h.engine.CompareScenario(baseline, overrides)

	return &api.ScenarioResponse{
		Baseline:       fromMetrics(res.Comparison.Baseline),
		Scenario:       fromMetrics(res.Comparison.Scenario),
		ScenarioInputs: fromInputs(res.ScenarioInputs),
		ProfitDelta:    res.Comparison.ProfitDelta,
	}, nil
}

// GetThresholds returns the thresholds the service detects leaks against.
func (h *LeakDetectorHandler) GetThresholds(ctx context.Context, req *api.GetThresholdsRequest) (*api.GetThresholdsResponse, error) {
	t := h.engine.Thresholds()
	return &api.GetThresholdsResponse{
		Thresholds: &api.Thresholds{
			MaxDiscountPct:    t.MaxDiscountPct,
			MaxReturnPct:      t.MaxReturnPct,
			MaxStockDays:      t.MaxStockDays,
			MinGrossMarginPct: t.MinGrossMarginPct,
		},
	}, nil
}

func toInputs(in *api.BusinessInputs) logic.BusinessInputs {
	return logic.BusinessInputs{
		UnitsSold:          in.UnitsSold,
		Price:              in.Price,
		Cost:               in.Cost,
		DiscountPct:        in.DiscountPct,
		ReturnPct:          in.ReturnPct,
		AvgStockUnits:      in.AvgStockUnits,
		StorageCostPerUnit: in.StorageCostPerUnit,
	}
}

func fromInputs(in logic.BusinessInputs) *api.BusinessInputs {
	return &api.BusinessInputs{
		UnitsSold:          in.UnitsSold,
		Price:              in.Price,
		Cost:               in.Cost,
		DiscountPct:        in.DiscountPct,
		ReturnPct:          in.ReturnPct,
		AvgStockUnits:      in.AvgStockUnits,
		StorageCostPerUnit: in.StorageCostPerUnit,
	}
}

func fromMetrics(m logic.Metrics) *api.Metrics {
	return &api.Metrics{
		Revenue:        m.Revenue,
		GrossProfit:    m.GrossProfit,
		DiscountLoss:   m.DiscountLoss,
		ReturnLoss:     m.ReturnLoss,
		InventoryCost:  m.InventoryCost,
		TrueProfit:     m.TrueProfit,
		GrossMarginPct: m.GrossMarginPct,
	}
}
