package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintcascade/lintcascade/internal/toolconfig"
)

func withTestSettings(t *testing.T, s *toolconfig.Settings) {
	t.Helper()
	prev := settings
	settings = s
	t.Cleanup(func() { settings = prev })
}

func TestRunCheck_ListsMatchedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte("var x;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.js"), []byte("var y;"), 0o644))
	t.Chdir(dir)

	withTestSettings(t, &toolconfig.Settings{Extensions: []string{".js"}})

	cmd := checkCmd
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	defer cmd.SetOut(nil)

	require.NoError(t, runCheck(cmd, nil))
	out := buf.String()
	assert.Contains(t, out, "a.js")
	assert.Contains(t, out, "b.js")
}

func TestRunCheck_DefaultsToCurrentDirectoryWhenNoPatterns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "only.js"), []byte("var z;"), 0o644))
	t.Chdir(dir)

	withTestSettings(t, &toolconfig.Settings{Extensions: []string{".js"}})

	cmd := checkCmd
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	defer cmd.SetOut(nil)

	require.NoError(t, runCheck(cmd, nil))
	assert.Contains(t, buf.String(), "only.js")
}
