package lintcascade

import "github.com/lintcascade/lintcascade/internal/configfactory"

// LayerData is the free-form shape of one configuration layer supplied
// in-memory, used for Options.Base and Options.CLI.
type LayerData struct {
	Root          bool
	Extends       []string
	Env           map[string]bool
	Globals       map[string]any
	Parser        string
	ParserOptions map[string]any
	Plugins       []string
	Processor     string
	Rules         map[string][]any
	Settings      map[string]any
	Overrides     []OverrideData
}

// OverrideData is the free-form shape of one glob-scoped override entry.
type OverrideData struct {
	Files         []string
	ExcludedFiles []string
	Env           map[string]bool
	Globals       map[string]any
	Parser        string
	ParserOptions map[string]any
	Plugins       []string
	Processor     string
	Rules         map[string][]any
	Settings      map[string]any
}

func (l LayerData) toRawLayer() configfactory.RawLayer {
	overrides := make([]configfactory.RawOverride, len(l.Overrides))
	for i, ov := range l.Overrides {
		overrides[i] = configfactory.RawOverride{
			Files:         ov.Files,
			ExcludedFiles: ov.ExcludedFiles,
			Env:           ov.Env,
			Globals:       ov.Globals,
			Parser:        ov.Parser,
			ParserOptions: ov.ParserOptions,
			Plugins:       ov.Plugins,
			Processor:     ov.Processor,
			Rules:         ov.Rules,
			Settings:      ov.Settings,
		}
	}
	return configfactory.RawLayer{
		Root:          l.Root,
		Extends:       l.Extends,
		Env:           l.Env,
		Globals:       l.Globals,
		Parser:        l.Parser,
		ParserOptions: l.ParserOptions,
		Plugins:       l.Plugins,
		Processor:     l.Processor,
		Rules:         l.Rules,
		Settings:      l.Settings,
		Overrides:     overrides,
	}
}

// Options configures a new Enumerator. All fields are retained verbatim so
// ClearCache can rebuild the base and CLI arrays from scratch.
type Options struct {
	// Cwd is the working directory every relative pattern and path is
	// resolved against. Must be absolute.
	Cwd string
	// Home is the user's home directory, enabling the Ancestor Resolver's
	// home-directory stop condition and the Finalizer's personal-config
	// fallback. Leave empty to disable both.
	Home string

	// UseEslintrc toggles cascading configuration discovery. When false, the
	// Ancestor Resolver always returns the base array unchanged.
	UseEslintrc bool
	// IgnoreEnabled toggles whether user ignore files/patterns apply, on top
	// of the built-in defaults which always apply.
	IgnoreEnabled bool
	// GlobInputPaths toggles glob-pattern expansion of input patterns.
	GlobInputPaths bool

	// IgnorePath is an explicit ignore-file path.
	IgnorePath string
	// IgnorePatterns are additional inline ignore patterns.
	IgnorePatterns []string
	// Extensions are the file extensions (with or without a leading dot)
	// selected by a plain directory walk.
	Extensions []string

	// Base is the caller-supplied base configuration, the immutable tail of
	// every chain.
	Base LayerData
	// RuleDirs are extra directories of rule definitions folded into the
	// base array's synthetic "--rulesdir" pseudo-plugin.
	RuleDirs []string

	// CLI is the caller-supplied CLI configuration, the head of the final
	// chain.
	CLI LayerData
	// ConfigFile is an optional explicit configuration file path, loaded and
	// prepended ahead of CLI's inline settings.
	ConfigFile string
}
