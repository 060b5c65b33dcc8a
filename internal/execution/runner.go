package execution

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"syntaxtest/internal/domain"
	"syntaxtest/internal/engine"
	"syntaxtest/internal/parser"
	"syntaxtest/internal/ui"
)

// Verdict is what a Runner reports back to the traversal for one case
type Verdict struct {
	Passed   bool
	Continue bool
	Problem  *domain.CaseProblem
}

// CaseRunner processes a single case identity
type CaseRunner interface {
	Process(ctx context.Context, root, name string) Verdict
}

var _ CaseRunner = (*Runner)(nil)

// Runner loads, runs and reports one case, and asks the operator what to do
// when it fails
type Runner struct {
	engine      engine.Engine
	out         *ui.Printer
	warn        *ui.Printer
	keys        ui.KeyReader
	editor      Editor
	interactive bool
}

// NewRunner creates a new Runner. With a nil key reader failures are
// reported and skipped without prompting.
func NewRunner(eng engine.Engine, out, warn *ui.Printer, keys ui.KeyReader, editor Editor) *Runner {
	return &Runner{
		engine:      eng,
		out:         out,
		warn:        warn,
		keys:        keys,
		editor:      editor,
		interactive: keys != nil,
	}
}

// Process runs the case root/name until the operator stops retrying it. The
// case is reloaded from disk on every attempt.
func (r *Runner) Process(ctx context.Context, root, name string) Verdict {
	for {
		r.out.Styled(ui.Heading, "%s: ", name)
		r.out.Flush()

		tc, err := r.engine.Load(root, name)
		if err != nil {
			r.out.Styled(ui.Failure, "cannot read test: %v", err)
			r.out.Println()
			return Verdict{Continue: true, Problem: problem(root, name, err.Error(), domain.ProblemLoad)}
		}

		outcome := r.engine.Run(ctx, tc)
		if ctx.Err() != nil {
			r.out.Styled(ui.Warning, "interrupted")
			r.out.Println()
			return Verdict{Continue: false}
		}
		if outcome.Passed() {
			r.out.Styled(ui.Success, "OK")
			r.out.Println()
			return Verdict{Passed: true, Continue: true}
		}

		r.reportFailure(tc, outcome)
		failed := r.failureProblem(tc, outcome)

		if !r.interactive {
			return Verdict{Continue: true, Problem: failed}
		}

		resp, err := r.respond(ctx, tc, outcome)
		switch resp {
		case responseSkip:
			return Verdict{Continue: true, Problem: failed}
		case responseQuit:
			return Verdict{Continue: false, Problem: failed}
		case responseUpdateFailed:
			r.out.Styled(ui.Failure, "cannot update test: %v", err)
			r.out.Println()
			return Verdict{Continue: true, Problem: problem(root, name, err.Error(), domain.ProblemLoad)}
		case responseRerun:
			r.out.Println("Re-running test case...")
		}
	}
}

func (r *Runner) reportFailure(tc *domain.TestCase, outcome domain.RunOutcome) {
	r.out.Styled(ui.Failure, "FAIL")
	r.out.Println()

	r.out.Println("  Contract:")
	r.printSource(tc)

	if outcome.Kind == domain.OutcomeEngineError {
		r.out.Printf("  ")
		r.out.Styled(ui.Error, "Parsing failed:")
		r.out.Println()
		r.printIndented(ui.Failure, outcome.Details, "    ")
		if outcome.Err != nil {
			r.printIndented(ui.Failure, outcome.Err.Error(), "    ")
		}
		r.out.Println()
		return
	}

	r.out.Printf("%s", outcome.Report)
	r.out.Println()
}

func (r *Runner) printSource(tc *domain.TestCase) {
	r.printIndented(ui.Source, r.engine.RawSource(tc), "    ")
}

func (r *Runner) printIndented(role ui.Role, text, indent string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	s := r.out.Scope(role)
	defer s.Close()
	for _, line := range strings.Split(text, "\n") {
		s.Printf("%s%s\n", indent, line)
	}
}

func (r *Runner) failureProblem(tc *domain.TestCase, outcome domain.RunOutcome) *domain.CaseProblem {
	if outcome.Kind == domain.OutcomeEngineError {
		details := outcome.Details
		if outcome.Err != nil {
			details = strings.TrimRight(details, "\n") + "\n" + outcome.Err.Error()
		}
		return &domain.CaseProblem{Name: tc.Name, Path: tc.Path, Kind: domain.ProblemEngine, Details: strings.TrimLeft(details, "\n")}
	}
	plain := r.engine.SerializeExpectations(outcome.Observed, false)
	return &domain.CaseProblem{Name: tc.Name, Path: tc.Path, Kind: domain.ProblemFail, Details: plain}
}

// rewrite replaces the case file with its source, the separator and the
// observed diagnostics. The file is synced and closed before returning so a
// reload sees the new bytes.
func (r *Runner) rewrite(tc *domain.TestCase, observed []domain.Diagnostic) error {
	var b strings.Builder
	source := r.engine.RawSource(tc)
	b.WriteString(source)
	if source != "" && !strings.HasSuffix(source, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(parser.Separator)
	b.WriteString("\n")
	b.WriteString(r.engine.SerializeExpectations(observed, false))

	f, err := os.OpenFile(tc.Path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", tc.Path, err)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", tc.Path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync %s: %w", tc.Path, err)
	}
	return f.Close()
}

func problem(root, name, details, kind string) *domain.CaseProblem {
	return &domain.CaseProblem{Name: name, Path: filepath.Join(root, name), Kind: kind, Details: details}
}
