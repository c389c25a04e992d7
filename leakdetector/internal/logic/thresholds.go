package logic

// ThresholdConfig holds the limits leak detection is evaluated against.
// It is built once at startup and passed by value, never mutated.
type ThresholdConfig struct {
	MaxDiscountPct float64 `json:"max_discount_pct" yaml:"max_discount_pct"`
	MaxReturnPct   float64 `json:"max_return_pct" yaml:"max_return_pct"`
	// MaxStockDays is reserved for a stock-days check and is not read by DetectLeaks.
	MaxStockDays      float64 `json:"max_stock_days" yaml:"max_stock_days"`
	MinGrossMarginPct float64 `json:"min_gross_margin_pct" yaml:"min_gross_margin_pct"`
}

// DefaultThresholds returns the stock threshold set.
func DefaultThresholds() ThresholdConfig {
	return ThresholdConfig{
		MaxDiscountPct:    15,
		MaxReturnPct:      5,
		MaxStockDays:      45,
		MinGrossMarginPct: 25,
	}
}

// inventoryShareOfProfit is the fraction of gross profit that holding cost may consume.
const inventoryShareOfProfit = 0.10
