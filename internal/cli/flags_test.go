package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	bindGlobalFlags(cmd)
	return cmd
}

func TestBindGlobalFlags_RegistersExpectedFlags(t *testing.T) {
	cmd := newTestCommand()
	names := []string{
		"ext", "ignore-path", "ignore-pattern", "no-ignore",
		"no-eslintrc", "no-glob", "config", "rulesdir", "log-format",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			require.NotNil(t, cmd.PersistentFlags().Lookup(name), "expected --%s to be registered", name)
		})
	}
}

func TestFlagOverrides_EmptyWhenNothingChanged(t *testing.T) {
	cmd := newTestCommand()
	require.NoError(t, cmd.Execute())

	got := flagOverrides(cmd)
	assert.Empty(t, got)
}

func TestFlagOverrides_OnlyIncludesExplicitlySetFlags(t *testing.T) {
	cmd := newTestCommand()
	cmd.SetArgs([]string{"--no-ignore", "--log-format", "json"})
	require.NoError(t, cmd.Execute())

	got := flagOverrides(cmd)
	assert.Equal(t, true, got["no_ignore"])
	assert.Equal(t, "json", got["log_format"])
	_, hasExt := got["extensions"]
	assert.False(t, hasExt, "unset --ext must not appear in overrides")
	_, hasConfig := got["config_file"]
	assert.False(t, hasConfig, "unset --config must not appear in overrides")
}

func TestFlagOverrides_SliceAndStringFlags(t *testing.T) {
	cmd := newTestCommand()
	cmd.SetArgs([]string{
		"--ext", ".ts,.tsx",
		"--ignore-path", "/tmp/.ignore",
		"--ignore-pattern", "dist/**",
		"--config", "base.toml",
		"--rulesdir", "./rules",
	})
	require.NoError(t, cmd.Execute())

	got := flagOverrides(cmd)
	assert.Equal(t, []string{".ts", ".tsx"}, got["extensions"])
	assert.Equal(t, "/tmp/.ignore", got["ignore_path"])
	assert.Equal(t, []string{"dist/**"}, got["ignore_patterns"])
	assert.Equal(t, "base.toml", got["config_file"])
	assert.Equal(t, []string{"./rules"}, got["rulesdir"])
}
