package config

import (
	"fmt"
	"math"
	"os"

	"profit_leak/leakdetector/internal/logic"

	"gopkg.in/yaml.v3"
)

// LoadThresholds reads a YAML threshold file over the defaults.
// An empty path returns the defaults unchanged.
func LoadThresholds(path string) (logic.ThresholdConfig, error) {
	thresholds := logic.DefaultThresholds()
	if path == "" {
		return thresholds, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return logic.ThresholdConfig{}, fmt.Errorf("failed to read thresholds file: %w", err)
	}
	return ParseThresholds(data)
}

// ParseThresholds decodes YAML threshold overrides. Keys left out keep their defaults.
func ParseThresholds(data []byte) (logic.ThresholdConfig, error) {
	thresholds := logic.DefaultThresholds()
	if err := yaml.Unmarshal(data, &thresholds); err != nil {
		return logic.ThresholdConfig{}, fmt.Errorf("failed to parse thresholds: %w", err)
	}
	if err := validateThresholds(thresholds); err != nil {
		return logic.ThresholdConfig{}, err
	}
	return thresholds, nil
}

func validateThresholds(t logic.ThresholdConfig) error {
	values := []struct {
		name  string
		value float64
	}{
		{"max_discount_pct", t.MaxDiscountPct},
		{"max_return_pct", t.MaxReturnPct},
		{"max_stock_days", t.MaxStockDays},
		{"min_gross_margin_pct", t.MinGrossMarginPct},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("threshold %s must be a finite number", v.name)
		}
		if v.value < 0 {
			return fmt.Errorf("threshold %s must not be negative, got %v", v.name, v.value)
		}
	}
	return nil
}
