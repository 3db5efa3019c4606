package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	logLevel   string
	jsonOutput bool
	formatName string
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "facet",
		Short: "Facet - Structural Value Toolkit",
		Long: `Facet loads configuration documents into a uniform value graph and
operates on them structurally.

Features:
  - JSON, YAML, CUE, and Starlark document formats
  - Deep structural equality over possibly cyclic graphs
  - Path-level diff reports between two documents
  - Live re-comparison on file change (watch mode)`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if level, err := zerolog.ParseLevel(logLevel); err == nil {
				zerolog.SetGlobalLevel(level)
			}
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "", "force document format (json, yaml, cue, starlark)")

	// Add subcommands
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newDiffCommand())
	rootCmd.AddCommand(newWatchCommand())

	return rootCmd
}
