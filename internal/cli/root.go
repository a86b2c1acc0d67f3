// Package cli implements the Cobra command hierarchy for the lintcascade
// CLI tool. The root command defined here is the entry point for all
// subcommands and handles cross-cutting concerns like logging
// initialization and exit-code translation.
package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	lintcascade "github.com/lintcascade/lintcascade"
	"github.com/lintcascade/lintcascade/internal/toolconfig"
)

var settings *toolconfig.Settings

var rootCmd = &cobra.Command{
	Use:   "lintcascade",
	Short: "Resolve files and cascading lint configuration for a project tree.",
	Long: `lintcascade resolves, for a set of input path patterns, the concrete
files to process and, for each one, a fully merged and validated
configuration assembled from a cascading hierarchy of configuration files,
command-line options, and a base configuration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := toolconfig.Resolve(toolconfig.ResolveOptions{CLIFlags: flagOverrides(cmd)})
		if err != nil {
			return err
		}
		settings = resolved.Settings

		setupLogging(resolved.Settings.LogFormat)
		slog.Debug("settings resolved", "sources", resolved.Sources)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
}

func init() {
	bindGlobalFlags(rootCmd)
}

// setupLogging configures the global slog default logger. format should be
// "json" for structured output or anything else for human-readable text.
// All log output is directed to os.Stderr to keep stdout clean for piped
// results.
func setupLogging(format string) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// Execute runs the root command and returns a process exit code. A
// *lintcascade.Error's Code determines the code; any other non-nil error
// returns 1.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		return exitCodeFor(err)
	}
	return 0
}

func exitCodeFor(err error) int {
	var lcErr *lintcascade.Error
	if errors.As(err, &lcErr) {
		switch lcErr.Code {
		case lintcascade.CodeFileNotFound:
			return 2
		case lintcascade.CodeAllFilesIgnored:
			return 3
		case lintcascade.CodeNoConfigFound:
			return 4
		}
	}
	return 1
}

// RootCmd returns the root cobra.Command, for testing and subcommand
// registration.
func RootCmd() *cobra.Command {
	return rootCmd
}
