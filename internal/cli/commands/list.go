package commands

import (
	"path/filepath"

	"syntaxtest/internal/config"
	"syntaxtest/internal/discovery"
	"syntaxtest/internal/storage"
	"syntaxtest/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	storage storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, st storage.Storage) *ListCommand {
	return &ListCommand{
		config:  cfg,
		storage: st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := lc.config
	out := ui.NewPrinter(cmd.OutOrStdout(), cfg.Colored())

	scanner := discovery.NewScanner(cfg.PathsToIgnore).WithFilter(discovery.NewFilter(), cfg.Flags.NameFilter)
	names, err := scanner.Scan(cfg.TestPath, cfg.SubPath)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		out.Styled(ui.Warning, "No test cases found")
		out.Println()
		return nil
	}

	ui.NewFormatter(out).PrintCaseList(names, lc.lastFailures())
	return nil
}

// lastFailures returns the names of cases that did not pass in the last run
// over the same test path
func (lc *ListCommand) lastFailures() map[string]struct{} {
	failed := make(map[string]struct{})
	output, err := lc.storage.Load()
	if err != nil {
		return failed
	}
	if filepath.Clean(output.Meta.TestPath) != filepath.Clean(lc.config.TestPath) {
		return failed
	}
	for _, p := range output.Details {
		if !p.Resolved {
			failed[p.Name] = struct{}{}
		}
	}
	return failed
}
