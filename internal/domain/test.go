package domain

// Diagnostic is one expected or observed diagnostic line, e.g.
// "TypeError: Type uint256 is not implicitly convertible".
type Diagnostic struct {
	Kind    string // Diagnostic class such as TypeError or Warning
	Message string // Text after the "Kind: " prefix
}

// String renders the diagnostic the way it appears in an expectation block.
func (d Diagnostic) String() string {
	return d.Kind + ": " + d.Message
}

// TestCase is a single case file loaded from disk
type TestCase struct {
	Name         string       // Path relative to the discovery root, used as identity
	Path         string       // Full path to the case file
	Source       string       // Everything before the expectation separator, verbatim
	Expectations []Diagnostic // Parsed expectation block
}
