package logic

// RecommendAction returns the canned fix for a leak kind.
// The boolean is false for kinds outside the fixed set.
func RecommendAction(kind LeakKind) (string, bool) {
	switch kind {
	case LeakOverDiscounting:
		return "Cap discount closer to 10–12% unless discounts clearly increase volume enough to offset it.", true
	case LeakHighReturns:
		return "Track top return reasons and fix the biggest 1–2 causes (quality checks, sizing info, packaging).", true
	case LeakInventoryHolding:
		return "Reduce slow-moving stock; reorder in smaller batches; target lower average inventory.", true
	case LeakLowMargin:
		return "Try a small price increase or negotiate supplier costs; aim for 25%+ gross margin.", true
	}
	return "", false
}

// RecommendActions maps each leak to its recommendation, keeping leak order.
// Leaks of unknown kind are skipped.
func RecommendActions(leaks []Leak) []string {
	actions := make([]string, 0, len(leaks))
	for _, leak := range leaks {
		if action, ok := RecommendAction(leak.Kind); ok {
			actions = append(actions, action)
		}
	}
	return actions
}
