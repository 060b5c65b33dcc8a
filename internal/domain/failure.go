package domain

// Problem kinds recorded for cases that did not pass
const (
	ProblemLoad   = "load"
	ProblemFail   = "fail"
	ProblemEngine = "engine"
)

// CaseProblem records a case that was visited but did not pass
type CaseProblem struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	Details  string `json:"details"`
	Resolved bool   `json:"resolved,omitempty"` // Toggled from the results viewer
}
