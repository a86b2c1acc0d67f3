package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersion_TextOutput(t *testing.T) {
	cmd := versionCmd
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	defer cmd.SetOut(nil)
	require.NoError(t, cmd.Flags().Set("json", "false"))

	require.NoError(t, runVersion(cmd, nil))
	assert.Contains(t, buf.String(), "lintcascade version")
	assert.Contains(t, buf.String(), "go version:")
}

func TestRunVersion_JSONOutput(t *testing.T) {
	cmd := versionCmd
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	defer cmd.SetOut(nil)
	require.NoError(t, cmd.Flags().Set("json", "true"))
	defer cmd.Flags().Set("json", "false")

	require.NoError(t, runVersion(cmd, nil))

	var info versionInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.NotEmpty(t, info.GoVersion)
}
