package logic

import "math"

const (
	suggestedDiscountCut = 5.0
	suggestedReturnCut   = 1.0
)

// ScenarioComparison holds baseline and what-if metrics side by side.
type ScenarioComparison struct {
	Baseline    Metrics `json:"baseline"`
	Scenario    Metrics `json:"scenario"`
	ProfitDelta float64 `json:"profit_delta"`
}

// CompareScenario computes both metric sets and the change in true profit.
func CompareScenario(baseline, scenario BusinessInputs) ScenarioComparison {
	base := ComputeMetrics(baseline)
	next := ComputeMetrics(scenario)
	return ScenarioComparison{
		Baseline:    base,
		Scenario:    next,
		ProfitDelta: next.TrueProfit - base.TrueProfit,
	}
}

// SuggestScenario returns the default what-if: five points less discount and
// one point fewer returns, neither below zero.
func SuggestScenario(in BusinessInputs) BusinessInputs {
	out := in
	out.DiscountPct = math.Max(0, in.DiscountPct-suggestedDiscountCut)
	out.ReturnPct = math.Max(0, in.ReturnPct-suggestedReturnCut)
	return out
}

// ScenarioOverrides are the inputs a what-if may vary. Nil fields fall back
// to SuggestScenario.
type ScenarioOverrides struct {
	DiscountPct        *float64 `json:"discount_pct,omitempty"`
	ReturnPct          *float64 `json:"return_pct,omitempty"`
	StorageCostPerUnit *float64 `json:"storage_cost_per_unit,omitempty"`
}

// Apply builds the scenario inputs from a baseline.
func (o ScenarioOverrides) Apply(baseline BusinessInputs) BusinessInputs {
	out := SuggestScenario(baseline)
	if o.DiscountPct != nil {
		out.DiscountPct = *o.DiscountPct
	}
	if o.ReturnPct != nil {
		out.ReturnPct = *o.ReturnPct
	}
	if o.StorageCostPerUnit != nil {
		out.StorageCostPerUnit = *o.StorageCostPerUnit
	}
	return out
}
