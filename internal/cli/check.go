package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Resolve and list the files matched by the given patterns",
	Long: `Expands the given patterns into the concrete set of files to process,
honoring globs, directory walks, direct paths, and the ignore system.

Running lintcascade with no subcommand is equivalent to running
'lintcascade check'.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, patterns []string) error {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	enumerator, err := newEnumerator()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for entry, err := range enumerator.IterateFiles(patterns...) {
		if err != nil {
			return err
		}
		if entry.Ignored {
			fmt.Fprintf(out, "%s (ignored)\n", entry.FilePath)
			continue
		}
		fmt.Fprintln(out, entry.FilePath)
	}
	return nil
}
