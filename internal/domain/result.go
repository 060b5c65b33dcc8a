package domain

import "time"

// TraversalResult accumulates counters across a traversal. Continue turns
// false once the operator quits and never turns true again.
type TraversalResult struct {
	Run      int
	Passed   int
	Continue bool
	Problems []CaseProblem
	Duration time.Duration
}

// AllPassed reports whether every visited case ultimately passed
func (r *TraversalResult) AllPassed() bool {
	return r.Run == r.Passed
}

// RunMeta contains metadata about a run
type RunMeta struct {
	TestPath        string  `json:"test_path"`
	CasesRun        int     `json:"cases_run"`
	CasesPassed     int     `json:"cases_passed"`
	CasesFailed     int     `json:"cases_failed"`
	Aborted         bool    `json:"aborted"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete stored summary of a run
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseProblem `json:"details"`
}
