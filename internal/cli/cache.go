package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or manage the resolver's in-memory caches",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Rebuild base/CLI arrays and clear the per-directory and finalize caches",
	Long: `Constructs a fresh enumerator (which is itself a fresh set of caches)
and reports success. Since an enumerator's caches live only for its own
process lifetime, this is mainly useful to confirm the current settings
produce a valid configuration chain before running 'check' over a large
tree.`,
	RunE: runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	enumerator, err := newEnumerator()
	if err != nil {
		return err
	}
	if err := enumerator.ClearCache(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
	return nil
}
