package logic

// BusinessInputs are the monthly figures a business owner supplies.
// The calculator does not validate them; callers enforce non-negativity.
type BusinessInputs struct {
	UnitsSold          int64   `json:"units_sold"`
	Price              float64 `json:"price"`
	Cost               float64 `json:"cost"`
	DiscountPct        float64 `json:"discount_pct"`
	ReturnPct          float64 `json:"return_pct"`
	AvgStockUnits      int64   `json:"avg_stock_units"`
	StorageCostPerUnit float64 `json:"storage_cost_per_unit"`
}

// Metrics holds the figures derived from one set of BusinessInputs.
type Metrics struct {
	Revenue        float64 `json:"revenue"`
	GrossProfit    float64 `json:"gross_profit"`
	DiscountLoss   float64 `json:"discount_loss"`
	ReturnLoss     float64 `json:"return_loss"`
	InventoryCost  float64 `json:"inventory_cost"`
	TrueProfit     float64 `json:"true_profit"`
	GrossMarginPct float64 `json:"gross_margin_pct"`
}

// ComputeMetrics derives revenue, profit and loss figures from raw inputs.
func ComputeMetrics(in BusinessInputs) Metrics {
	units := float64(in.UnitsSold)

	revenue := units * in.Price
	grossProfit := units * (in.Price - in.Cost)

	// Discounts and returns are modelled as a flat share of revenue.
	discountLoss := revenue * (in.DiscountPct / 100.0)
	returnLoss := revenue * (in.ReturnPct / 100.0)

	// Monthly holding cost of the average stock level.
	inventoryCost := float64(in.AvgStockUnits) * in.StorageCostPerUnit

	trueProfit := grossProfit - discountLoss - returnLoss - inventoryCost

	grossMarginPct := 0.0
	if revenue > 0 {
		grossMarginPct = grossProfit / revenue * 100.0
	}

	return Metrics{
		Revenue:        revenue,
		GrossProfit:    grossProfit,
		DiscountLoss:   discountLoss,
		ReturnLoss:     returnLoss,
		InventoryCost:  inventoryCost,
		TrueProfit:     trueProfit,
		GrossMarginPct: grossMarginPct,
	}
}
