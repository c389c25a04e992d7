package logic

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func inputsGen() gopter.Gen {
	return gopter.CombineGens(
		gen.Int64Range(0, 1_000_000),
		gen.Float64Range(0, 10_000),
		gen.Float64Range(0, 10_000),
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 100),
		gen.Int64Range(0, 1_000_000),
		gen.Float64Range(0, 500),
	).Map(func(v []interface{}) BusinessInputs {
		return BusinessInputs{
			UnitsSold:          v[0].(int64),
			Price:              v[1].(float64),
			Cost:               v[2].(float64),
			DiscountPct:        v[3].(float64),
			ReturnPct:          v[4].(float64),
			AvgStockUnits:      v[5].(int64),
			StorageCostPerUnit: v[6].(float64),
		}
	})
}

// TestMetricsProperties checks the accounting identities over random inputs.
func TestMetricsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("true profit is gross profit minus every loss", prop.ForAll(
		func(in BusinessInputs) bool {
			m := ComputeMetrics(in)
			return m.TrueProfit == m.GrossProfit-m.DiscountLoss-m.ReturnLoss-m.InventoryCost
		},
		inputsGen(),
	))

	properties.Property("gross profit is units times unit margin", prop.ForAll(
		func(in BusinessInputs) bool {
			m := ComputeMetrics(in)
			return m.GrossProfit == float64(in.UnitsSold)*(in.Price-in.Cost)
		},
		inputsGen(),
	))

	properties.Property("no revenue means zero margin", prop.ForAll(
		func(in BusinessInputs) bool {
			in.UnitsSold = 0
			return ComputeMetrics(in).GrossMarginPct == 0
		},
		inputsGen(),
	))

	properties.Property("compute is referentially transparent", prop.ForAll(
		func(in BusinessInputs) bool {
			return ComputeMetrics(in) == ComputeMetrics(in)
		},
		inputsGen(),
	))

	properties.TestingRun(t)
}

// TestLeakProperties checks ranking and recommendation invariants.
func TestLeakProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("between zero and four leaks, largest first", prop.ForAll(
		func(in BusinessInputs) bool {
			leaks := DetectLeaks(ComputeMetrics(in), DefaultThresholds())
			if len(leaks) > 4 {
				return false
			}
			for i := 1; i < len(leaks); i++ {
				if leaks[i-1].Amount < leaks[i].Amount {
					return false
				}
			}
			return true
		},
		inputsGen(),
	))

	properties.Property("each leak kind appears at most once", prop.ForAll(
		func(in BusinessInputs) bool {
			seen := make(map[LeakKind]bool)
			for _, leak := range DetectLeaks(ComputeMetrics(in), DefaultThresholds()) {
				if seen[leak.Kind] {
					return false
				}
				seen[leak.Kind] = true
			}
			return true
		},
		inputsGen(),
	))

	properties.Property("one action per leak, in leak order", prop.ForAll(
		func(in BusinessInputs) bool {
			leaks := DetectLeaks(ComputeMetrics(in), DefaultThresholds())
			actions := RecommendActions(leaks)
			if len(actions) != len(leaks) {
				return false
			}
			for i, leak := range leaks {
				want, _ := RecommendAction(leak.Kind)
				if actions[i] != want {
					return false
				}
			}
			return true
		},
		inputsGen(),
	))

	properties.TestingRun(t)
}
