package cli

import (
	"github.com/spf13/cobra"
)

// bindGlobalFlags registers the flags shared by every subcommand (and the
// root command's own implicit "check" behavior) on cmd.
func bindGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringSlice("ext", nil, "file extensions selected by a plain directory walk (default .js)")
	cmd.PersistentFlags().String("ignore-path", "", "explicit ignore-file path")
	cmd.PersistentFlags().StringSlice("ignore-pattern", nil, "additional inline ignore pattern (repeatable)")
	cmd.PersistentFlags().Bool("no-ignore", false, "disable user ignore files/patterns (built-in defaults still apply)")
	cmd.PersistentFlags().Bool("no-eslintrc", false, "disable cascading configuration discovery")
	cmd.PersistentFlags().Bool("no-glob", false, "disable glob-pattern expansion of input patterns")
	cmd.PersistentFlags().String("config", "", "explicit configuration file, prepended ahead of CLI-inline overrides")
	cmd.PersistentFlags().StringSlice("rulesdir", nil, "extra directory of rule definitions (repeatable)")
	cmd.PersistentFlags().String("log-format", "", "log output format: text or json")
}

// flagOverrides collects the explicitly-set global flags on cmd into a flat
// map suitable for toolconfig.Resolve's highest-precedence layer. Only
// flags the user actually passed are included, so unset flags fall through
// to lower-precedence layers instead of overriding them with zero values.
func flagOverrides(cmd *cobra.Command) map[string]any {
	out := make(map[string]any)
	flags := cmd.Flags()

	if flags.Changed("ext") {
		v, _ := flags.GetStringSlice("ext")
		out["extensions"] = v
	}
	if flags.Changed("ignore-path") {
		v, _ := flags.GetString("ignore-path")
		out["ignore_path"] = v
	}
	if flags.Changed("ignore-pattern") {
		v, _ := flags.GetStringSlice("ignore-pattern")
		out["ignore_patterns"] = v
	}
	if flags.Changed("no-ignore") {
		v, _ := flags.GetBool("no-ignore")
		out["no_ignore"] = v
	}
	if flags.Changed("no-eslintrc") {
		v, _ := flags.GetBool("no-eslintrc")
		out["no_eslintrc"] = v
	}
	if flags.Changed("no-glob") {
		v, _ := flags.GetBool("no-glob")
		out["no_glob"] = v
	}
	if flags.Changed("config") {
		v, _ := flags.GetString("config")
		out["config_file"] = v
	}
	if flags.Changed("rulesdir") {
		v, _ := flags.GetStringSlice("rulesdir")
		out["rulesdir"] = v
	}
	if flags.Changed("log-format") {
		v, _ := flags.GetString("log-format")
		out["log_format"] = v
	}

	return out
}
