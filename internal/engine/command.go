package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"syntaxtest/internal/config"
	"syntaxtest/internal/domain"
	"syntaxtest/internal/parser"
)

// EnvCasePath carries the case file path to the engine process
const EnvCasePath = "SYNTAXTEST_CASE"

// ReportIndent prefixes every line of a failure report
const ReportIndent = "  "

var _ Engine = (*CommandEngine)(nil)

// CommandEngine runs an external checker on each case. The case source is
// written to the checker's stdin; every non-blank stdout line must read
// "Kind: message". Exit status 0 and 1 both count as a structured result.
type CommandEngine struct {
	*Cases
	config *config.Config
	parser parser.Parser
}

// NewCommandEngine creates a CommandEngine using cfg.EngineCommand
func NewCommandEngine(cfg *config.Config, p *parser.DiagnosticParser) *CommandEngine {
	return &CommandEngine{
		Cases:  NewCases(p),
		config: cfg,
		parser: p,
	}
}

// Run executes the checker for a single case
func (e *CommandEngine) Run(ctx context.Context, tc *domain.TestCase) domain.RunOutcome {
	args := strings.Fields(e.config.EngineCommand)
	if len(args) == 0 {
		return engineError(errors.New("no engine command configured"), "")
	}

	parent := ctx
	if e.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", EnvCasePath, tc.Path))
	cmd.Stdin = strings.NewReader(tc.Source)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	raw := stdout.String() + stderr.String()

	if err := parent.Err(); err != nil {
		return engineError(fmt.Errorf("engine interrupted: %w", err), raw)
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return engineError(fmt.Errorf("engine timed out after %s: %w", time.Since(start).Round(time.Millisecond), ctx.Err()), raw)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			return engineError(err, raw)
		}
	}

	observed, perr := e.parser.ParseDiagnostics(stdout.String())
	if perr != nil {
		return engineError(perr, raw)
	}

	if Equal(tc.Expectations, observed) {
		return domain.RunOutcome{Kind: domain.OutcomePass, Observed: observed}
	}
	return domain.RunOutcome{
		Kind:     domain.OutcomeFail,
		Report:   e.Report(tc.Expectations, observed, ReportIndent, e.config.Colored()),
		Observed: observed,
	}
}

func engineError(err error, raw string) domain.RunOutcome {
	return domain.RunOutcome{
		Kind:    domain.OutcomeEngineError,
		Details: raw,
		Err:     err,
	}
}
