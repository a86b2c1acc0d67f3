// Package baseconfig implements the Base-Config Builder: the
// immutable tail of every configuration chain, assembled from the caller's
// base config data plus a synthetic pseudo-plugin exposing rules loaded from
// extra rule directories.
package baseconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lintcascade/lintcascade/internal/configarray"
	"github.com/lintcascade/lintcascade/internal/configfactory"
)

// rulesdirName is the reserved diagnostic name for the synthetic
// "--rulesdir" pseudo-plugin element. Its FilePath is always empty so it
// never satisfies ConfigElement.HasRealFile, keeping the Finalizer's
// "no real config file exists" test correct when only rule
// directories were supplied.
const rulesdirName = "--rulesdir"

// Build materializes baseData through factory, then appends the
// "--rulesdir" synthetic element if any ruleDirs were supplied.
func Build(factory configfactory.Factory, baseData configfactory.RawLayer, ruleDirs []string, cwd string) (*configarray.ConfigArray, error) {
	array, err := factory.Create(baseData, configfactory.CreateOptions{Name: "<base config>"})
	if err != nil {
		return nil, fmt.Errorf("baseconfig: materializing base config: %w", err)
	}

	if len(ruleDirs) == 0 {
		return array, nil
	}

	rules, err := loadRuleDirs(ruleDirs, cwd)
	if err != nil {
		return nil, fmt.Errorf("baseconfig: loading rule directories: %w", err)
	}

	synthetic := &configarray.ConfigElement{
		Name:     rulesdirName,
		FilePath: "",
		Plugins: map[string]configarray.PluginDescriptor{
			"": {ID: "", Rules: rules},
		},
	}

	return configarray.Concat(array, configarray.New(synthetic)), nil
}

// loadRuleDirs concatenates the rule files discovered in each directory into
// a single id -> definition map. Later directories overwrite earlier ones on
// id collision, so ruleDirs is processed in the order given.
func loadRuleDirs(ruleDirs []string, cwd string) (map[string]any, error) {
	rules := map[string]any{}

	for _, dir := range ruleDirs {
		resolved := dir
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(cwd, resolved)
		}

		entries, err := os.ReadDir(resolved)
		if err != nil {
			return nil, fmt.Errorf("reading rule directory %s: %w", resolved, err)
		}

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			names = append(names, entry.Name())
		}
		sort.Strings(names)

		for _, name := range names {
			id := strings.TrimSuffix(name, filepath.Ext(name))
			rules[id] = filepath.Join(resolved, name)
		}
	}

	return rules, nil
}
