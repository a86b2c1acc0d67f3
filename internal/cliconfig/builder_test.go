package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lintcascade/lintcascade/internal/configarray"
	"github.com/lintcascade/lintcascade/internal/configfactory"
)

func TestBuild_NoConfigFileReturnsInlineOnly(t *testing.T) {
	factory := configfactory.NewDefaultFactory()
	array, err := Build(factory, configfactory.RawLayer{
		Rules: map[string][]any{"no-undef": {"error"}},
	}, "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(array.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(array.Elements))
	}
	if _, ok := array.Elements[0].Rules["no-undef"]; !ok {
		t.Fatalf("expected inline rule to survive, got %v", array.Elements[0].Rules)
	}
}

func TestBuild_ConfigFilePrependsAheadOfInline(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "explicit.toml")
	if err := os.WriteFile(configPath, []byte(`
[rules]
no-undef = ["warn"]
`), 0o644); err != nil {
		t.Fatal(err)
	}

	factory := configfactory.NewDefaultFactory()
	array, err := Build(factory, configfactory.RawLayer{
		Rules: map[string][]any{"no-undef": {"error"}},
	}, configPath)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(array.Elements) != 2 {
		t.Fatalf("expected explicit file element + inline element, got %d", len(array.Elements))
	}
	if array.Elements[0].Name != configPath {
		t.Fatalf("expected explicit file element first, got %q", array.Elements[0].Name)
	}

	extracted := array.Extract("a.js")
	if extracted.Rules["no-undef"].Severity != configarray.SeverityError {
		t.Fatalf("expected inline severity to win as the later element, got %v", extracted.Rules["no-undef"].Severity)
	}
}

func TestBuild_MissingConfigFileReturnsError(t *testing.T) {
	factory := configfactory.NewDefaultFactory()
	_, err := Build(factory, configfactory.RawLayer{}, filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing --config file")
	}
}
