package domain

// OutcomeKind tags a RunOutcome
type OutcomeKind int

const (
	// OutcomePass means observed diagnostics matched the expectation block.
	OutcomePass OutcomeKind = iota
	// OutcomeFail is a structured mismatch between expected and observed diagnostics.
	OutcomeFail
	// OutcomeEngineError means the engine failed without producing structured output.
	OutcomeEngineError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePass:
		return "pass"
	case OutcomeFail:
		return "fail"
	case OutcomeEngineError:
		return "engine"
	}
	return "unknown"
}

// RunOutcome is the result of running one case through the engine. It is
// produced once per run and never modified afterwards.
type RunOutcome struct {
	Kind     OutcomeKind
	Report   string       // Formatted expected/obtained listing (Fail only)
	Observed []Diagnostic // Diagnostics produced by the engine (Fail and Pass)
	Details  string       // Raw engine output (EngineError only)
	Err      error        // Underlying engine error (EngineError only)
}

// Passed reports whether the outcome is a pass
func (o RunOutcome) Passed() bool {
	return o.Kind == OutcomePass
}
