package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"syntaxtest/internal/cli"
	"syntaxtest/internal/cli/commands"
	"syntaxtest/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "syntaxtest",
		Short: "Interactive test case manager",
		Long: `A tool for interactively validating test case files against a checker.
Failing cases can be skipped, edited or have their expectations updated in place.`,
		Version:       version,
		SilenceErrors: true,
	}

	// .env values become defaults for EDITOR and SYNTAXTEST_ENGINE
	if err := config.LoadEnv(config.DefaultEnvFile); err != nil {
		color.New(color.FgYellow).Fprintf(os.Stderr, "Warning: cannot load %s: %v\n", config.DefaultEnvFile, err)
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, commands.ErrCasesFailed) {
			fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		}
		stop()
		os.Exit(1)
	}
}
