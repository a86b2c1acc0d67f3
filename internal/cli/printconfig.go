package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var printConfigCmd = &cobra.Command{
	Use:   "print-config [file]",
	Short: "Print the fully resolved configuration for a file as JSON",
	Long: `Resolves ancestors for the given file (or the working directory if no
file is given) and prints its finalized, flattened configuration as JSON, in
the same shape a --print-config style caller expects.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrintConfig,
}

func init() {
	rootCmd.AddCommand(printConfigCmd)
}

func runPrintConfig(cmd *cobra.Command, args []string) error {
	enumerator, err := newEnumerator()
	if err != nil {
		return err
	}

	array, err := enumerator.GetConfigArrayForFile(args...)
	if err != nil {
		return err
	}

	target := "a.js"
	if len(args) > 0 {
		target = args[0]
	}

	extracted := array.Extract(target)
	compat := extracted.ToCompatibleObject()

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(compat)
}
