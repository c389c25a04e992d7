package logic

// Report is the result of one full pass over a set of inputs.
type Report struct {
	Metrics Metrics  `json:"metrics"`
	Leaks   []Leak   `json:"leaks"`
	Actions []string `json:"actions"`
}

// Analyze runs metrics, leak detection and recommendations in sequence.
func Analyze(in BusinessInputs, t ThresholdConfig) Report {
	metrics := ComputeMetrics(in)
	leaks := DetectLeaks(metrics, t)
	return Report{
		Metrics: metrics,
		Leaks:   leaks,
		Actions: RecommendActions(leaks),
	}
}

// Top returns a copy of the report keeping only the first n leaks and actions.
// n <= 0 keeps everything.
func (r Report) Top(n int) Report {
	out := Report{
		Metrics: r.Metrics,
		Leaks:   make([]Leak, len(r.Leaks)),
		Actions: make([]string, len(r.Actions)),
	}
	copy(out.Leaks, r.Leaks)
	copy(out.Actions, r.Actions)
	if n <= 0 {
		return out
	}
	if len(out.Leaks) > n {
		out.Leaks = out.Leaks[:n]
	}
	if len(out.Actions) > n {
		out.Actions = out.Actions[:n]
	}
	return out
}
