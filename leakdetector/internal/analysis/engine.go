package analysis

import (
	"context"
	"fmt"
	"math"

	"profit_leak/leakdetector/internal/alerts"
	"profit_leak/leakdetector/internal/logic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Notifier publishes alerts for reports that contain leaks.
type Notifier interface {
	Notify(ctx context.Context, businessID string, report logic.Report) alerts.Outcome
}

// Recorder receives counters about the work the engine does.
type Recorder interface {
	RecordAnalysis(transport string, leakNames []string)
	RecordAlert(outcome string)
	RecordScenario()
}

// Engine runs analyses against a fixed threshold set on behalf of the transports.
type Engine struct {
	thresholds logic.ThresholdConfig
	topN       int
	notifier   Notifier
	recorder   Recorder
	logger     *logrus.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier enables leak alerts.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithRecorder enables metrics.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// NewEngine creates an engine. topN is the default leak display limit.
func NewEngine(thresholds logic.ThresholdConfig, topN int, logger *logrus.Logger, opts ...Option) *Engine {
	e := &Engine{
		thresholds: thresholds,
		topN:       topN,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Request is one analysis call.
type Request struct {
	BusinessID string
	Inputs     logic.BusinessInputs
	// Limit overrides the default top-N; 0 uses the default, negative means all.
	Limit     int
	Transport string
}

// Result is the analysis returned to a transport.
type Result struct {
	ReportID   string
	Report     logic.Report
	TotalLeaks int
	Alert      alerts.Outcome
}

// ScenarioResult is a what-if comparison with the inputs actually used.
type ScenarioResult struct {
	Comparison     logic.ScenarioComparison
	ScenarioInputs logic.BusinessInputs
}

// Thresholds returns the active threshold set.
func (e *Engine) Thresholds() logic.ThresholdConfig {
	return e.thresholds
}

// Analyze computes the full report, records metrics and hands it to the notifier.
func (e *Engine) Analyze(ctx context.Context, req Request) Result {
	log := e.logger.WithFields(logrus.Fields{
		"component":   "analysis",
		"transport":   req.Transport,
		"business_id": req.BusinessID,
	})
	log.WithFields(logrus.Fields{
		"units_sold": req.Inputs.UnitsSold,
		"price":      req.Inputs.Price,
		"cost":       req.Inputs.Cost,
	}).Debug("analysis started")

	full := logic.Analyze(req.Inputs, e.thresholds)

	names := make([]string, len(full.Leaks))
	for i, leak := range full.Leaks {
		names[i] = leak.Kind.String()
	}
	if e.recorder != nil {
		e.recorder.RecordAnalysis(req.Transport, names)
	}

	outcome := alerts.OutcomeSkipped
	if e.notifier != nil {
		outcome = e.notifier.Notify(ctx, req.BusinessID, full)
		if e.recorder != nil {
			e.recorder.RecordAlert(string(outcome))
		}
	}

	limit := req.Limit
	if limit == 0 {
		limit = e.topN
	}

	result := Result{
		ReportID:   uuid.New().String(),
		Report:     full.Top(limit),
		TotalLeaks: len(full.Leaks),
		Alert:      outcome,
	}
	log.WithFields(logrus.Fields{
		"report_id":   result.ReportID,
		"true_profit": full.Metrics.TrueProfit,
		"leaks":       names,
		"alert":       outcome,
	}).Info("analysis complete")
	return result
}

// CompareScenario evaluates the baseline against a what-if built from overrides.
func (e *Engine) CompareScenario(baseline logic.BusinessInputs, overrides logic.ScenarioOverrides) ScenarioResult {
	scenario := overrides.Apply(baseline)
	comparison := logic.CompareScenario(baseline, scenario)
	if e.recorder != nil {
		e.recorder.RecordScenario()
	}
	e.logger.WithFields(logrus.Fields{
		"component":    "analysis",
		"profit_delta": comparison.ProfitDelta,
	}).Info("scenario compared")
	return ScenarioResult{Comparison: comparison, ScenarioInputs: scenario}
}

// ValidateInputs enforces the input domain the calculator is documented for:
// finite, non-negative values with percentages at most 100.
func ValidateInputs(in logic.BusinessInputs) error {
	if in.UnitsSold < 0 {
		return fmt.Errorf("units_sold must not be negative")
	}
	if in.AvgStockUnits < 0 {
		return fmt.Errorf("avg_stock_units must not be negative")
	}
	amounts := []struct {
		name  string
		value float64
	}{
		{"price", in.Price},
		{"cost", in.Cost},
		{"storage_cost_per_unit", in.StorageCostPerUnit},
	}
	for _, a := range amounts {
		if err := checkAmount(a.name, a.value); err != nil {
			return err
		}
	}
	if err := checkPercent("discount_pct", in.DiscountPct); err != nil {
		return err
	}
	return checkPercent("return_pct", in.ReturnPct)
}

// ValidateOverrides applies the same rules to the fields a scenario sets.
func ValidateOverrides(o logic.ScenarioOverrides) error {
	if o.DiscountPct != nil {
		if err := checkPercent("discount_pct", *o.DiscountPct); err != nil {
			return err
		}
	}
	if o.ReturnPct != nil {
		if err := checkPercent("return_pct", *o.ReturnPct); err != nil {
			return err
		}
	}
	if o.StorageCostPerUnit != nil {
		return checkAmount("storage_cost_per_unit", *o.StorageCostPerUnit)
	}
	return nil
}

func checkAmount(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	if v < 0 {
		return fmt.Errorf("%s must not be negative", name)
	}
	return nil
}

func checkPercent(name string, v float64) error {
	if err := checkAmount(name, v); err != nil {
		return err
	}
	if v > 100 {
		return fmt.Errorf("%s must be at most 100", name)
	}
	return nil
}
