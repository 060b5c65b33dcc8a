package commands

import (
	"errors"
	"io"

	"syntaxtest/internal/config"
	"syntaxtest/internal/discovery"
	"syntaxtest/internal/engine"
	"syntaxtest/internal/execution"
	"syntaxtest/internal/parser"
	"syntaxtest/internal/storage"
	"syntaxtest/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config  *config.Config
	storage storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, st storage.Storage) *RunCommand {
	return &RunCommand{
		config:  cfg,
		storage: st,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := rc.config
	if cfg.EngineCommand == "" {
		return errors.New("no engine command configured (set " + config.EnvEngine + " or --engine)")
	}

	out := ui.NewPrinter(cmd.OutOrStdout(), cfg.Colored())
	warn := ui.NewPrinter(cmd.ErrOrStderr(), cfg.Colored())

	scanner := discovery.NewScanner(cfg.PathsToIgnore).WithFilter(discovery.NewFilter(), cfg.Flags.NameFilter)
	eng := engine.NewCommandEngine(cfg, parser.NewDiagnosticParser())
	editor := execution.NewCommandEditor(cfg.Editor, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	var keys ui.KeyReader
	caseOut := out
	if cfg.Flags.NonInteractive {
		caseOut = ui.NewPrinter(io.Discard, false)
	} else {
		keys = newKeyReader(cmd.InOrStdin())
	}

	runner := execution.NewRunner(eng, caseOut, warn, keys, editor)
	traversal := execution.NewTraversal(scanner, runner)

	if cfg.Flags.NonInteractive {
		names, err := scanner.Scan(cfg.TestPath, cfg.SubPath)
		if err != nil {
			return err
		}
		traversal.SetProgress(ui.NewProgressBar(len(names), cmd.ErrOrStderr(), cfg.Colored()))
	}

	result, err := traversal.Execute(cmd.Context(), cfg.TestPath, cfg.SubPath)
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(out)
	if cfg.Flags.NonInteractive {
		formatter.PrintProblems(result.Problems)
	}
	formatter.PrintSummary(result)

	if err := rc.storage.Save(result, cfg.TestPath); err != nil {
		warn.Styled(ui.Warning, "failed to save results: %v", err)
		warn.Println()
	}

	if !result.AllPassed() {
		return ErrCasesFailed
	}
	return nil
}
