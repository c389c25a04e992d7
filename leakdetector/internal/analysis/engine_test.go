package analysis

import (
	"context"
	"testing"

	"profit_leak/leakdetector/internal/alerts"
	"profit_leak/leakdetector/internal/logging"
	"profit_leak/leakdetector/internal/logic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	transport string
	leaks     []string
}

type fakeRecorder struct {
	analyses  []recordedCall
	alerts    []string
	scenarios int
}

func (f *fakeRecorder) RecordAnalysis(transport string, leakNames []string) {
	f.analyses = append(f.analyses, recordedCall{transport: transport, leaks: leakNames})
}
func (f *fakeRecorder) RecordAlert(outcome string) { f.alerts = append(f.alerts, outcome) }
func (f *fakeRecorder) RecordScenario()            { f.scenarios++ }

type fakeNotifier struct {
	businessIDs []string
	reports     []logic.Report
}

func (f *fakeNotifier) Notify(_ context.Context, businessID string, report logic.Report) alerts.Outcome {
	f.businessIDs = append(f.businessIDs, businessID)
	f.reports = append(f.reports, report)
	return alerts.OutcomePublished
}

// Every check fires: 20% discount, 10% returns, heavy stock, 10% margin.
func allLeakInputs() logic.BusinessInputs {
	return logic.BusinessInputs{
		UnitsSold:          100,
		Price:              100,
		Cost:               90,
		DiscountPct:        20,
		ReturnPct:          10,
		AvgStockUnits:      1000,
		StorageCostPerUnit: 1,
	}
}

func TestEngine_AnalyzeReference(t *testing.T) {
	e := NewEngine(logic.DefaultThresholds(), 5, logging.NewDiscardLogger())

	res := e.Analyze(context.Background(), Request{
		Inputs: logic.BusinessInputs{
			UnitsSold: 1000, Price: 500, Cost: 300, DiscountPct: 15,
			ReturnPct: 6, AvgStockUnits: 1500, StorageCostPerUnit: 5,
		},
		Transport: "http",
	})

	assert.NotEmpty(t, res.ReportID)
	assert.Equal(t, 87500.0, res.Report.Metrics.TrueProfit)
	require.Len(t, res.Report.Leaks, 1)
	assert.Equal(t, logic.LeakHighReturns, res.Report.Leaks[0].Kind)
	assert.Equal(t, 1, res.TotalLeaks)
	assert.Equal(t, alerts.OutcomeSkipped, res.Alert)
}

func TestEngine_AnalyzeLimit(t *testing.T) {
	e := NewEngine(logic.DefaultThresholds(), 2, logging.NewDiscardLogger())
	ctx := context.Background()

	res := e.Analyze(ctx, Request{Inputs: allLeakInputs()})
	assert.Equal(t, 4, res.TotalLeaks)
	assert.Len(t, res.Report.Leaks, 2)
	assert.Len(t, res.Report.Actions, 2)

	res = e.Analyze(ctx, Request{Inputs: allLeakInputs(), Limit: 3})
	assert.Len(t, res.Report.Leaks, 3)

	res = e.Analyze(ctx, Request{Inputs: allLeakInputs(), Limit: -1})
	assert.Len(t, res.Report.Leaks, 4)
}

func TestEngine_RecordsAndNotifiesWithFullReport(t *testing.T) {
	rec := &fakeRecorder{}
	notifier := &fakeNotifier{}
	e := NewEngine(logic.DefaultThresholds(), 1, logging.NewDiscardLogger(),
		WithRecorder(rec), WithNotifier(notifier))

	res := e.Analyze(context.Background(), Request{
		BusinessID: "shop-7",
		Inputs:     allLeakInputs(),
		Transport:  "grpc",
	})

	assert.Equal(t, alerts.OutcomePublished, res.Alert)
	require.Len(t, rec.analyses, 1)
	assert.Equal(t, "grpc", rec.analyses[0].transport)
	assert.Len(t, rec.analyses[0].leaks, 4)
	assert.Equal(t, []string{"published"}, rec.alerts)

	// The notifier sees every leak, not only the displayed top-N.
	require.Len(t, notifier.reports, 1)
	assert.Equal(t, "shop-7", notifier.businessIDs[0])
	assert.Len(t, notifier.reports[0].Leaks, 4)
	assert.Len(t, res.Report.Leaks, 1)
}

func TestEngine_CompareScenario(t *testing.T) {
	rec := &fakeRecorder{}
	e := NewEngine(logic.DefaultThresholds(), 5, logging.NewDiscardLogger(), WithRecorder(rec))
	discount := 0.0

	res := e.CompareScenario(allLeakInputs(), logic.ScenarioOverrides{DiscountPct: &discount})

	assert.Equal(t, 0.0, res.ScenarioInputs.DiscountPct)
	assert.Equal(t, 9.0, res.ScenarioInputs.ReturnPct)
	// Dropping 20 points of discount and 1 of returns on 10000 revenue.
	assert.InDelta(t, 2100.0, res.Comparison.ProfitDelta, 1e-9)
	assert.Equal(t, 1, rec.scenarios)
}

func TestEngine_Thresholds(t *testing.T) {
	th := logic.ThresholdConfig{MaxDiscountPct: 1, MaxReturnPct: 2, MaxStockDays: 3, MinGrossMarginPct: 4}
	e := NewEngine(th, 5, logging.NewDiscardLogger())
	assert.Equal(t, th, e.Thresholds())
}

func TestValidateInputs(t *testing.T) {
	require.NoError(t, ValidateInputs(allLeakInputs()))
	require.NoError(t, ValidateInputs(logic.BusinessInputs{}))

	tests := []struct {
		name   string
		mutate func(*logic.BusinessInputs)
		want   string
	}{
		{"negative units", func(in *logic.BusinessInputs) { in.UnitsSold = -1 }, "units_sold"},
		{"negative stock", func(in *logic.BusinessInputs) { in.AvgStockUnits = -1 }, "avg_stock_units"},
		{"negative price", func(in *logic.BusinessInputs) { in.Price = -0.01 }, "price"},
		{"negative cost", func(in *logic.BusinessInputs) { in.Cost = -5 }, "cost"},
		{"discount over 100", func(in *logic.BusinessInputs) { in.DiscountPct = 101 }, "discount_pct"},
		{"negative returns", func(in *logic.BusinessInputs) { in.ReturnPct = -1 }, "return_pct"},
		{"negative storage", func(in *logic.BusinessInputs) { in.StorageCostPerUnit = -1 }, "storage_cost_per_unit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := allLeakInputs()
			tt.mutate(&in)
			assert.ErrorContains(t, ValidateInputs(in), tt.want)
		})
	}
}

func TestValidateOverrides(t *testing.T) {
	ok := 50.0
	tooHigh := 150.0
	negative := -2.0

	require.NoError(t, ValidateOverrides(logic.ScenarioOverrides{}))
	require.NoError(t, ValidateOverrides(logic.ScenarioOverrides{DiscountPct: &ok, ReturnPct: &ok, StorageCostPerUnit: &ok}))
	assert.Error(t, ValidateOverrides(logic.ScenarioOverrides{DiscountPct: &tooHigh}))
	assert.Error(t, ValidateOverrides(logic.ScenarioOverrides{ReturnPct: &negative}))
	assert.Error(t, ValidateOverrides(logic.ScenarioOverrides{StorageCostPerUnit: &negative}))
}
