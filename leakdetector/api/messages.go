// Package api defines the wire messages and gRPC service descriptor of the
// leak detector. Messages travel as JSON under the "json" content-subtype.
package api

type BusinessInputs struct {
	UnitsSold          int64   `json:"units_sold"`
	Price              float64 `json:"price"`
	Cost               float64 `json:"cost"`
	DiscountPct        float64 `json:"discount_pct"`
	ReturnPct          float64 `json:"return_pct"`
	AvgStockUnits      int64   `json:"avg_stock_units"`
	StorageCostPerUnit float64 `json:"storage_cost_per_unit"`
}

type Metrics struct {
	Revenue        float64 `json:"revenue"`
	GrossProfit    float64 `json:"gross_profit"`
	DiscountLoss   float64 `json:"discount_loss"`
	ReturnLoss     float64 `json:"return_loss"`
	InventoryCost  float64 `json:"inventory_cost"`
	TrueProfit     float64 `json:"true_profit"`
	GrossMarginPct float64 `json:"gross_margin_pct"`
}

type Leak struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type Thresholds struct {
	MaxDiscountPct    float64 `json:"max_discount_pct"`
	MaxReturnPct      float64 `json:"max_return_pct"`
	MaxStockDays      float64 `json:"max_stock_days"`
	MinGrossMarginPct float64 `json:"min_gross_margin_pct"`
}

type AnalyzeRequest struct {
	BusinessId string          `json:"business_id,omitempty"`
	Inputs     *BusinessInputs `json:"inputs"`
	// Limit caps returned leaks and actions; 0 uses the server default, negative returns all.
	Limit int32 `json:"limit,omitempty"`
}

func (x *AnalyzeRequest) GetInputs() *BusinessInputs {
	if x != nil {
		return x.Inputs
	}
	return nil
}

type AnalyzeResponse struct {
	ReportId   string   `json:"report_id"`
	Metrics    *Metrics `json:"metrics"`
	Leaks      []*Leak  `json:"leaks"`
	Actions    []string `json:"actions"`
	TotalLeaks int32    `json:"total_leaks"`
}

type ScenarioOverrides struct {
	DiscountPct        *float64 `json:"discount_pct,omitempty"`
	ReturnPct          *float64 `json:"return_pct,omitempty"`
	StorageCostPerUnit *float64 `json:"storage_cost_per_unit,omitempty"`
}

type ScenarioRequest struct {
	Baseline  *BusinessInputs    `json:"baseline"`
	Overrides *ScenarioOverrides `json:"overrides,omitempty"`
}

func (x *ScenarioRequest) GetBaseline() *BusinessInputs {
	if x != nil {
		return x.Baseline
	}
	return nil
}

func (x *ScenarioRequest) GetOverrides() *ScenarioOverrides {
	if x != nil && x.Overrides != nil {
		return x.Overrides
	}
	return &ScenarioOverrides{}
}

type ScenarioResponse struct {
	Baseline       *Metrics        `json:"baseline"`
	Scenario       *Metrics        `json:"scenario"`
	ScenarioInputs *BusinessInputs `json:"scenario_inputs"`
	ProfitDelta    float64         `json:"profit_delta"`
}

type GetThresholdsRequest struct{}

type GetThresholdsResponse struct {
	Thresholds *Thresholds `json:"thresholds"`
}
