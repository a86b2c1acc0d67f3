package baseconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lintcascade/lintcascade/internal/configfactory"
)

func TestBuild_NoRuleDirsReturnsPlainBaseArray(t *testing.T) {
	factory := configfactory.NewDefaultFactory()
	array, err := Build(factory, configfactory.RawLayer{
		Rules: map[string][]any{"no-undef": {"error"}},
	}, nil, t.TempDir())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(array.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(array.Elements))
	}
	for _, elem := range array.Elements {
		if _, ok := elem.Plugins[""]; ok {
			t.Fatal("did not expect a synthetic rulesdir plugin with no ruleDirs")
		}
	}
}

func TestBuild_RuleDirsAppendSyntheticPlugin(t *testing.T) {
	dir := t.TempDir()
	rulesDir := filepath.Join(dir, "rules")
	if err := os.Mkdir(rulesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(rulesDir, "my-rule.js"), []byte("module.exports = {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(rulesDir, "other-rule.js"), []byte("module.exports = {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	factory := configfactory.NewDefaultFactory()
	array, err := Build(factory, configfactory.RawLayer{}, []string{"rules"}, dir)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var found bool
	for _, elem := range array.Elements {
		if elem.Name != rulesdirName {
			continue
		}
		found = true
		if elem.HasRealFile() {
			t.Fatal("synthetic rulesdir element must not report a real file")
		}
		plugin, ok := elem.Plugins[""]
		if !ok {
			t.Fatal("expected synthetic plugin keyed by empty id")
		}
		if _, ok := plugin.Rules["my-rule"]; !ok {
			t.Fatalf("expected my-rule in synthetic plugin rules, got %v", plugin.Rules)
		}
		if _, ok := plugin.Rules["other-rule"]; !ok {
			t.Fatalf("expected other-rule in synthetic plugin rules, got %v", plugin.Rules)
		}
	}
	if !found {
		t.Fatal("expected a synthetic rulesdir element in the built array")
	}
}

func TestBuild_MultipleRuleDirsLaterWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	for _, d := range []string{first, second} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(first, "shared.js"), []byte("1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(second, "shared.js"), []byte("2"), 0o644); err != nil {
		t.Fatal(err)
	}

	factory := configfactory.NewDefaultFactory()
	array, err := Build(factory, configfactory.RawLayer{}, []string{"first", "second"}, dir)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, elem := range array.Elements {
		if elem.Name != rulesdirName {
			continue
		}
		path := elem.Plugins[""].Rules["shared"]
		if path != filepath.Join(second, "shared.js") {
			t.Fatalf("expected second directory's file to win, got %v", path)
		}
	}
}

func TestBuild_MissingRuleDirReturnsError(t *testing.T) {
	factory := configfactory.NewDefaultFactory()
	_, err := Build(factory, configfactory.RawLayer{}, []string{"does-not-exist"}, t.TempDir())
	if err == nil {
		t.Fatal("expected an error for a missing rule directory")
	}
}
