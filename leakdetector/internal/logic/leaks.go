package logic

import (
	"fmt"
	"sort"
)

// LeakKind identifies one of the fixed profit leak heuristics.
type LeakKind int

const (
	LeakOverDiscounting LeakKind = iota
	LeakHighReturns
	LeakInventoryHolding
	LeakLowMargin
)

var leakNames = map[LeakKind]string{
	LeakOverDiscounting:  "Over-discounting",
	LeakHighReturns:      "High returns",
	LeakInventoryHolding: "Inventory holding too high",
	LeakLowMargin:        "Low margin / pricing risk",
}

// String returns the display name of the leak.
func (k LeakKind) String() string {
	if name, ok := leakNames[k]; ok {
		return name
	}
	return fmt.Sprintf("LeakKind(%d)", int(k))
}

// ParseLeakKind maps a display name back to its LeakKind.
func ParseLeakKind(name string) (LeakKind, bool) {
	for kind, n := range leakNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}

// MarshalText encodes the kind as its display name.
func (k LeakKind) MarshalText() ([]byte, error) {
	if _, ok := leakNames[k]; !ok {
		return nil, fmt.Errorf("unknown leak kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a display name.
func (k *LeakKind) UnmarshalText(text []byte) error {
	kind, ok := ParseLeakKind(string(text))
	if !ok {
		return fmt.Errorf("unknown leak name %q", string(text))
	}
	*k = kind
	return nil
}

// Leak is a detected profit leak and the money it accounts for.
type Leak struct {
	Kind   LeakKind `json:"name"`
	Amount float64  `json:"amount"`
}

// DetectLeaks evaluates metrics against the thresholds and returns the leaks
// found, largest amount first. Leaks with equal amounts keep evaluation order.
func DetectLeaks(m Metrics, t ThresholdConfig) []Leak {
	leaks := make([]Leak, 0, len(leakNames))

	if sharePct(m.DiscountLoss, m.Revenue) > t.MaxDiscountPct {
		leaks = append(leaks, Leak{Kind: LeakOverDiscounting, Amount: m.DiscountLoss})
	}

	if sharePct(m.ReturnLoss, m.Revenue) > t.MaxReturnPct {
		leaks = append(leaks, Leak{Kind: LeakHighReturns, Amount: m.ReturnLoss})
	}

	if m.GrossProfit > 0 && m.InventoryCost > inventoryShareOfProfit*m.GrossProfit {
		leaks = append(leaks, Leak{Kind: LeakInventoryHolding, Amount: m.InventoryCost})
	}

	if m.GrossMarginPct < t.MinGrossMarginPct {
		leaks = append(leaks, Leak{Kind: LeakLowMargin, Amount: m.GrossProfit})
	}

	// Amounts are compared raw across categories.
	sort.SliceStable(leaks, func(i, j int) bool {
		return leaks[i].Amount > leaks[j].Amount
	})
	return leaks
}

// sharePct returns part as a percentage of revenue, or 0 without revenue.
func sharePct(part, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return part / revenue * 100
}
