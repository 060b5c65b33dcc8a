package execution

import (
	"context"
	"time"

	"syntaxtest/internal/discovery"
	"syntaxtest/internal/domain"
	"syntaxtest/internal/ui"
)

var _ Executor = (*Traversal)(nil)

// Traversal visits cases in scanner order and hands each one to a runner.
// It stops at the first verdict that does not continue.
type Traversal struct {
	scanner  *discovery.Scanner
	runner   CaseRunner
	progress *ui.ProgressBar
}

// NewTraversal creates a new Traversal
func NewTraversal(scanner *discovery.Scanner, runner CaseRunner) *Traversal {
	return &Traversal{scanner: scanner, runner: runner}
}

// SetProgress sets the progress bar updated after every case
func (t *Traversal) SetProgress(progress *ui.ProgressBar) {
	t.progress = progress
}

// Execute visits every case below root/sub. The returned result has
// Continue set to false when the operator quit.
func (t *Traversal) Execute(ctx context.Context, root, sub string) (*domain.TraversalResult, error) {
	result := &domain.TraversalResult{}
	startTime := time.Now()

	proceed, err := t.scanner.Walk(root, sub, func(name string) bool {
		if ctx.Err() != nil {
			return false
		}

		result.Run++
		verdict := t.runner.Process(ctx, root, name)
		if verdict.Passed {
			result.Passed++
		}
		if verdict.Problem != nil {
			result.Problems = append(result.Problems, *verdict.Problem)
		}
		if t.progress != nil {
			t.progress.Update(result.Passed, result.Run-result.Passed)
		}
		return verdict.Continue
	})

	if t.progress != nil {
		t.progress.Finish()
	}
	result.Continue = proceed
	result.Duration = time.Since(startTime)
	return result, err
}
