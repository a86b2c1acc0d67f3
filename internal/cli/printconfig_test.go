package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintcascade/lintcascade/internal/toolconfig"
)

func TestRunPrintConfig_EmitsCompatJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lintcascaderc.toml"), []byte(`
root = true
[rules]
no-undef = ["error"]
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte("var x;"), 0o644))
	t.Chdir(dir)

	withTestSettings(t, &toolconfig.Settings{Extensions: []string{".js"}})

	cmd := printConfigCmd
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	defer cmd.SetOut(nil)

	require.NoError(t, runPrintConfig(cmd, []string{"a.js"}))

	var compat map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &compat))
	rules, ok := compat["rules"].(map[string]any)
	require.True(t, ok, "expected rules in compat output, got %v", compat)
	assert.Contains(t, rules, "no-undef")
}

func TestRunPrintConfig_DefaultsToAJsWhenNoArgGiven(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	withTestSettings(t, &toolconfig.Settings{Extensions: []string{".js"}})

	cmd := printConfigCmd
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	defer cmd.SetOut(nil)

	require.NoError(t, runPrintConfig(cmd, nil))

	var compat map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &compat))
}
