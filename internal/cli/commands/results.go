package commands

import (
	"os"

	"syntaxtest/internal/config"
	"syntaxtest/internal/execution"
	"syntaxtest/internal/storage"
	"syntaxtest/internal/ui"

	"github.com/spf13/cobra"
)

// ResultsCommand handles the results command
type ResultsCommand struct {
	config  *config.Config
	storage storage.Storage
}

// NewResultsCommand creates a new ResultsCommand
func NewResultsCommand(cfg *config.Config, st storage.Storage) *ResultsCommand {
	return &ResultsCommand{
		config:  cfg,
		storage: st,
	}
}

// Execute runs the command
func (rc *ResultsCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := rc.storage.Load()
	if err != nil {
		return err
	}

	editor := execution.NewCommandEditor(rc.config.Editor, os.Stdin, os.Stdout, os.Stderr)
	open := func(path string) error {
		return editor.Open(cmd.Context(), path)
	}

	var viewer ui.Viewer = ui.NewResultsViewer(rc.storage, ui.NewPrinter(cmd.OutOrStdout(), rc.config.Colored()), open)
	return viewer.View(results)
}
