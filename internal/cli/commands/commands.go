package commands

import (
	"errors"
	"io"
	"os"

	"syntaxtest/internal/cli"
	"syntaxtest/internal/config"
	"syntaxtest/internal/storage"
	"syntaxtest/internal/ui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrCasesFailed is returned by run when not every case passed. The summary
// line has already been printed, so main only sets the exit status.
var ErrCasesFailed = errors.New("not all test cases passed")

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Results *ResultsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)

	return &Commands{
		Run:     NewRunCommand(cfg, jsonStorage),
		List:    NewListCommand(cfg, jsonStorage),
		Results: NewResultsCommand(cfg, jsonStorage),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Flags parsed fine; later errors are not usage errors
		cmd.SilenceUsage = true
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run test cases interactively",
		Long:    "Run every case file below the test path and decide interactively what to do with failing ones",
		Args:    cobra.NoArgs,
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	addDiscoveryFlags(runCmd, flags)
	runCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Don't use colors")
	runCmd.Flags().StringVar(&flags.Editor, "editor", "", "Editor for opening test cases (default $EDITOR)")
	runCmd.Flags().StringVar(&flags.Engine, "engine", "", "Command that checks a case read from stdin (default $SYNTAXTEST_ENGINE)")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", config.DefaultTimeout, "Maximum duration of a single engine run")
	runCmd.Flags().BoolVar(&flags.NonInteractive, "non-interactive", false, "Report failing cases and skip them without prompting")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered test cases",
		Long:    "Print every case file below the test path in the order run visits them",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	addDiscoveryFlags(listCmd, flags)
	listCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Don't use colors")
	rootCmd.AddCommand(listCmd)

	// Results command
	resultsCmd := &cobra.Command{
		Use:     "results",
		Short:   "Review the cases that did not pass in the last run",
		Long:    "Display the failing, unreadable and crashing cases from the last run in an interactive viewer",
		Args:    cobra.NoArgs,
		RunE:    c.Results.Execute,
		PreRunE: applyFlags,
	}
	resultsCmd.Flags().StringVar(&flags.Editor, "editor", "", "Editor for opening test cases (default $EDITOR)")
	rootCmd.AddCommand(resultsCmd)
}

func addDiscoveryFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the test case directory")
	cmd.Flags().StringVar(&flags.SubPath, "subpath", "", "Directory below the test path to start from")
	cmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by file name pattern (supports wildcards, e.g. '*.sol' or '*shadow*')")
	cmd.Flags().StringSliceVar(&flags.Ignore, "ignore", nil, "Directory names to skip")
	_ = cmd.MarkFlagRequired("test-path")
}

// newKeyReader reads raw keys from a terminal and plain bytes otherwise
func newKeyReader(in io.Reader) ui.KeyReader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ui.NewTerminalKeyReader(f)
	}
	return ui.NewStreamKeyReader(in)
}
