package toolconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_DefaultsOnly(t *testing.T) {
	dir := t.TempDir()
	resolved, err := Resolve(ResolveOptions{TargetDir: dir, GlobalConfigPath: filepath.Join(dir, "absent-global.toml")})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := resolved.Settings.Extensions; len(got) != 1 || got[0] != ".js" {
		t.Fatalf("expected default extensions, got %v", got)
	}
	if resolved.Sources["extensions"] != SourceDefault {
		t.Fatalf("expected extensions source to be default, got %v", resolved.Sources["extensions"])
	}
}

func TestResolve_RepoFileOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, recognizedFilename), `
extensions = [".ts", ".tsx"]
no_ignore = true
`)

	resolved, err := Resolve(ResolveOptions{TargetDir: dir, GlobalConfigPath: filepath.Join(dir, "absent-global.toml")})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := resolved.Settings.Extensions; len(got) != 2 || got[0] != ".ts" || got[1] != ".tsx" {
		t.Fatalf("expected repo extensions to win, got %v", got)
	}
	if !resolved.Settings.NoIgnore {
		t.Fatal("expected no_ignore true from repo file")
	}
	if resolved.Sources["extensions"] != SourceRepo {
		t.Fatalf("expected extensions source repo, got %v", resolved.Sources["extensions"])
	}
}

func TestResolve_GlobalThenRepoThenEnvThenFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	globalPath := filepath.Join(dir, "global.toml")
	writeFile(t, globalPath, `log_format = "json"`)
	writeFile(t, filepath.Join(dir, recognizedFilename), `log_format = "text"`)

	t.Setenv(EnvLogFormat, "pretty")

	resolved, err := Resolve(ResolveOptions{
		TargetDir:        dir,
		GlobalConfigPath: globalPath,
		CLIFlags:         map[string]any{"log_format": "compact"},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Settings.LogFormat != "compact" {
		t.Fatalf("expected CLI flag to win, got %q", resolved.Settings.LogFormat)
	}
	if resolved.Sources["log_format"] != SourceFlag {
		t.Fatalf("expected source flag, got %v", resolved.Sources["log_format"])
	}
}

func TestResolve_EnvWinsOverRepoAndGlobalWhenNoFlag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, recognizedFilename), `log_format = "text"`)
	t.Setenv(EnvLogFormat, "pretty")

	resolved, err := Resolve(ResolveOptions{TargetDir: dir, GlobalConfigPath: filepath.Join(dir, "absent-global.toml")})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Settings.LogFormat != "pretty" {
		t.Fatalf("expected env to win over repo, got %q", resolved.Settings.LogFormat)
	}
	if resolved.Sources["log_format"] != SourceEnv {
		t.Fatalf("expected source env, got %v", resolved.Sources["log_format"])
	}
}

func TestResolve_MissingFilesAreSkippedSilently(t *testing.T) {
	dir := t.TempDir()
	_, err := Resolve(ResolveOptions{
		TargetDir:        dir,
		GlobalConfigPath: filepath.Join(dir, "nope", "config.toml"),
	})
	if err != nil {
		t.Fatalf("expected missing files to be skipped, got error: %v", err)
	}
}

func TestResolve_InvalidRepoFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, recognizedFilename), `not = [valid toml`)

	if _, err := Resolve(ResolveOptions{TargetDir: dir, GlobalConfigPath: filepath.Join(dir, "absent-global.toml")}); err == nil {
		t.Fatal("expected parse error for malformed repo config")
	}
}

func TestBuildEnvMap_OnlySetVarsIncluded(t *testing.T) {
	t.Setenv(EnvExtensions, ".mjs,.cjs")
	t.Setenv(EnvNoIgnore, "true")

	m := buildEnvMap()
	exts, ok := m["extensions"].([]string)
	if !ok || len(exts) != 2 || exts[0] != ".mjs" || exts[1] != ".cjs" {
		t.Fatalf("unexpected extensions in env map: %v", m["extensions"])
	}
	if m["no_ignore"] != true {
		t.Fatalf("expected no_ignore true, got %v", m["no_ignore"])
	}
	if _, present := m["log_format"]; present {
		t.Fatal("expected log_format to be absent when env var unset")
	}
}

func TestBuildEnvMap_UnparseableBoolIsSkipped(t *testing.T) {
	t.Setenv(EnvNoIgnore, "not-a-bool")

	m := buildEnvMap()
	if _, present := m["no_ignore"]; present {
		t.Fatal("expected unparseable bool to be skipped")
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
