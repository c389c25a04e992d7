package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func referenceInputs() BusinessInputs {
	return BusinessInputs{
		UnitsSold:          1000,
		Price:              500,
		Cost:               300,
		DiscountPct:        15,
		ReturnPct:          6,
		AvgStockUnits:      1500,
		StorageCostPerUnit: 5,
	}
}

func TestComputeMetrics_ReferenceBusiness(t *testing.T) {
	m := ComputeMetrics(referenceInputs())

	assert.Equal(t, 500000.0, m.Revenue)
	assert.Equal(t, 200000.0, m.GrossProfit)
	assert.Equal(t, 75000.0, m.DiscountLoss)
	assert.Equal(t, 30000.0, m.ReturnLoss)
	assert.Equal(t, 7500.0, m.InventoryCost)
	assert.Equal(t, 87500.0, m.TrueProfit)
	assert.Equal(t, 40.0, m.GrossMarginPct)
}

func TestComputeMetrics_NoUnitsSold(t *testing.T) {
	in := referenceInputs()
	in.UnitsSold = 0

	m := ComputeMetrics(in)

	assert.Zero(t, m.Revenue)
	assert.Zero(t, m.GrossProfit)
	assert.Zero(t, m.DiscountLoss)
	assert.Zero(t, m.ReturnLoss)
	assert.Zero(t, m.GrossMarginPct)
	assert.Equal(t, 7500.0, m.InventoryCost)
	assert.Equal(t, -7500.0, m.TrueProfit)
}

func TestComputeMetrics_PriceBelowCost(t *testing.T) {
	in := BusinessInputs{UnitsSold: 10, Price: 80, Cost: 100}

	m := ComputeMetrics(in)

	assert.Equal(t, 800.0, m.Revenue)
	assert.Equal(t, -200.0, m.GrossProfit)
	assert.Equal(t, -25.0, m.GrossMarginPct)
	assert.Equal(t, -200.0, m.TrueProfit)
}

func TestComputeMetrics_NegativeInputsDoNotPanic(t *testing.T) {
	in := BusinessInputs{
		UnitsSold:          -5,
		Price:              10,
		Cost:               4,
		DiscountPct:        -10,
		ReturnPct:          0,
		AvgStockUnits:      -1,
		StorageCostPerUnit: 2,
	}

	m := ComputeMetrics(in)

	assert.Equal(t, -50.0, m.Revenue)
	assert.Equal(t, -30.0, m.GrossProfit)
	// Revenue is not positive, so margin is guarded to zero.
	assert.Zero(t, m.GrossMarginPct)
	assert.Equal(t, m.GrossProfit-m.DiscountLoss-m.ReturnLoss-m.InventoryCost, m.TrueProfit)
}

func TestComputeMetrics_Idempotent(t *testing.T) {
	in := referenceInputs()
	assert.Equal(t, ComputeMetrics(in), ComputeMetrics(in))
}
