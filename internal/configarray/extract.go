package configarray

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ExtractedConfig is the final flattened view of a ConfigArray for one target
// file, consumed by the lint engine: every layer's scalar fields overridden
// by later layers, map fields deep-merged, and each layer's matching
// Overrides folded in right after that layer itself.
type ExtractedConfig struct {
	Env           map[string]bool
	Globals       map[string]AccessMode
	Parser        *ParserDescriptor
	ParserOptions map[string]any
	// Plugins preserves insertion order (earliest-contributing layer first);
	// ToCompatibleObject reverses this for the compat view.
	Plugins   []PluginDescriptor
	Processor string
	Rules     map[string]RuleEntry
	Settings  map[string]any
}

// Extract folds array through the overrides scoped to targetPath (relative to
// the directory the array was resolved for) and returns the flattened result.
// targetPath should use forward slashes, matching doublestar's expectations.
func (a *ConfigArray) Extract(targetPath string) *ExtractedConfig {
	out := &ExtractedConfig{
		Env:           map[string]bool{},
		Globals:       map[string]AccessMode{},
		ParserOptions: map[string]any{},
		Rules:         map[string]RuleEntry{},
		Settings:      map[string]any{},
	}

	var pluginOrder []string
	plugins := map[string]PluginDescriptor{}

	applyBase := func(
		env map[string]bool,
		globals map[string]AccessMode,
		parser *ParserDescriptor,
		parserOptions map[string]any,
		elemPlugins map[string]PluginDescriptor,
		processor string,
		rules map[string]RuleEntry,
		settings map[string]any,
	) {
		out.Env = MergeBoolMap(out.Env, env)
		out.Globals = MergeGlobalsMap(out.Globals, globals)
		if parser != nil {
			out.Parser = parser
		}
		out.ParserOptions = MergeAnyMap(out.ParserOptions, parserOptions)
		for id, p := range elemPlugins {
			if _, seen := plugins[id]; !seen {
				pluginOrder = append(pluginOrder, id)
			}
			plugins[id] = p
		}
		if processor != "" {
			out.Processor = processor
		}
		out.Rules = MergeRuleMap(out.Rules, rules)
		out.Settings = MergeAnyMap(out.Settings, settings)
	}

	if a != nil {
		for _, elem := range a.Elements {
			applyBase(elem.Env, elem.Globals, elem.Parser, elem.ParserOptions,
				elem.Plugins, elem.Processor, elem.Rules, elem.Settings)

			for _, ov := range elem.Overrides {
				if !overrideMatches(ov, targetPath) {
					continue
				}
				applyBase(ov.Env, ov.Globals, ov.Parser, ov.ParserOptions,
					ov.Plugins, ov.Processor, ov.Rules, ov.Settings)
			}
		}
	}

	out.Plugins = make([]PluginDescriptor, 0, len(pluginOrder))
	for _, id := range pluginOrder {
		out.Plugins = append(out.Plugins, plugins[id])
	}

	return out
}

// overrideMatches reports whether targetPath is selected by ov.Files and not
// excluded by ov.ExcludedFiles. At least one Files pattern must match; any
// ExcludedFiles match vetoes the override regardless.
func overrideMatches(ov OverrideEntry, targetPath string) bool {
	normalized := filepath.ToSlash(targetPath)

	matched := false
	for _, pattern := range ov.Files {
		if ok, err := doublestar.Match(pattern, normalized); err == nil && ok {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	for _, pattern := range ov.ExcludedFiles {
		if ok, err := doublestar.Match(pattern, normalized); err == nil && ok {
			return false
		}
	}
	return true
}

// CompatObject is the compat form of an ExtractedConfig: the parser as its
// file path and the plugins as a list of ids in reverse insertion order,
// matching ESLint's --print-config plugin ordering.
type CompatObject struct {
	Env           map[string]bool        `json:"env,omitempty"`
	Globals       map[string]AccessMode  `json:"globals,omitempty"`
	Parser        string                 `json:"parser,omitempty"`
	ParserOptions map[string]any         `json:"parserOptions,omitempty"`
	Plugins       []string               `json:"plugins,omitempty"`
	Rules         map[string]RuleEntry   `json:"rules,omitempty"`
	Settings      map[string]any         `json:"settings,omitempty"`
}

// ToCompatibleObject renders the ExtractedConfig the way --print-config-style
// callers expect: the parser descriptor replaced by its resolved file path
// (or empty when absent), and plugin ids listed in the reverse of insertion
// order. The processor field is intentionally omitted -- it is not part of
// the printable compat surface.
func (c *ExtractedConfig) ToCompatibleObject() *CompatObject {
	var parserPath string
	if c.Parser != nil {
		parserPath = c.Parser.FilePath
	}

	ids := make([]string, len(c.Plugins))
	for i, p := range c.Plugins {
		ids[len(c.Plugins)-1-i] = p.ID
	}

	return &CompatObject{
		Env:           c.Env,
		Globals:       c.Globals,
		Parser:        parserPath,
		ParserOptions: c.ParserOptions,
		Plugins:       ids,
		Rules:         c.Rules,
		Settings:      c.Settings,
	}
}

// SortedRuleIDs returns the rule ids present in the extracted config, sorted,
// for deterministic display.
func (c *ExtractedConfig) SortedRuleIDs() []string {
	ids := make([]string, 0, len(c.Rules))
	for id := range c.Rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
