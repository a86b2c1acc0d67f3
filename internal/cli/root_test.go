package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lintcascade "github.com/lintcascade/lintcascade"
)

func TestRootCommandUse(t *testing.T) {
	assert.Equal(t, "lintcascade", rootCmd.Use)
}

func TestRootCommandSilenceUsage(t *testing.T) {
	assert.True(t, rootCmd.SilenceUsage, "SilenceUsage must be true to avoid printing usage on errors")
}

func TestRootCommandSilenceErrors(t *testing.T) {
	assert.True(t, rootCmd.SilenceErrors, "SilenceErrors must be true for manual error handling")
}

func TestRootCmdReturnsCommand(t *testing.T) {
	cmd := RootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "lintcascade", cmd.Use)
}

func TestExecuteWithHelp(t *testing.T) {
	rootCmd.SetArgs([]string{"--help"})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	code := Execute()
	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "cascading hierarchy")
}

func TestExecuteWithUnknownFlag(t *testing.T) {
	rootCmd.SetArgs([]string{"--nonexistent-flag"})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetErr(buf)
	defer rootCmd.SetErr(nil)

	code := Execute()
	assert.Equal(t, 1, code)
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"generic error", errors.New("boom"), 1},
		{"file not found", &lintcascade.Error{Code: lintcascade.CodeFileNotFound}, 2},
		{"all files ignored", &lintcascade.Error{Code: lintcascade.CodeAllFilesIgnored}, 3},
		{"no config found", &lintcascade.Error{Code: lintcascade.CodeNoConfigFound}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeFor(tt.err))
		})
	}
}
