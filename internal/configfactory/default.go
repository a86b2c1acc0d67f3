package configfactory

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lintcascade/lintcascade/internal/configarray"
)

// DefaultFactory is the concrete Configuration Factory implementation: TOML
// on disk, "extends" resolved against both the built-in named registry and
// relative file paths, parser/plugin identifiers captured but left
// unresolved.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewDefaultFactory constructs the default factory.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{logger: slog.Default().With("component", "configfactory")}
}

var _ Factory = (*DefaultFactory)(nil)

// Create materializes in-memory layer data into a one-element ConfigArray
// (plus whatever "extends" resolution prepends). FilePath is left empty
// since no file backs this layer. A completely zero-valued data (the
// caller supplied no base/CLI configuration at all) returns an empty array
// rather than a placeholder element, so an unused base or CLI config never
// inflates an otherwise single-file chain.
func (f *DefaultFactory) Create(data RawLayer, opts CreateOptions) (*configarray.ConfigArray, error) {
	if isEmptyRawLayer(data) {
		return configarray.New(), nil
	}
	return f.build(data, "", opts.Name)
}

// isEmptyRawLayer reports whether data carries no configuration at all.
func isEmptyRawLayer(data RawLayer) bool {
	return !data.Root &&
		len(data.Extends) == 0 &&
		len(data.Env) == 0 &&
		len(data.Globals) == 0 &&
		data.Parser == "" &&
		len(data.ParserOptions) == 0 &&
		len(data.Plugins) == 0 &&
		data.Processor == "" &&
		len(data.Rules) == 0 &&
		len(data.Settings) == 0 &&
		len(data.Overrides) == 0
}

// LoadFile parses filePath as TOML and resolves its extends chain.
func (f *DefaultFactory) LoadFile(filePath string, opts CreateOptions) (*configarray.ConfigArray, error) {
	raw, err := parseFile(filePath)
	if err != nil {
		return nil, err
	}
	name := opts.Name
	if name == "" {
		name = filePath
	}
	return f.build(raw, filePath, name)
}

// LoadOnDirectory scans dir for a recognized configuration filename. A
// permission error while probing a candidate file propagates unchanged so
// the Ancestor Resolver can apply its access-denied substitution;
// a plain not-exist is treated as "this candidate isn't present" and the
// next recognized filename is tried.
func (f *DefaultFactory) LoadOnDirectory(dir string, opts LoadOnDirectoryOptions) (*configarray.ConfigArray, error) {
	for _, filename := range RecognizedFilenames {
		candidate := filepath.Join(dir, filename)
		_, err := os.Stat(candidate)
		if err == nil {
			name := opts.Name
			if name == "" {
				name = candidate
			}
			return f.LoadFile(candidate, CreateOptions{Name: name})
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("configfactory: stat %s: %w", candidate, err)
		}
	}
	f.logger.Debug("no recognized config file in directory", "dir", dir)
	return configarray.New(), nil
}

// build converts raw into a ConfigArray: the extends chain's arrays
// concatenated ahead of raw's own element.
func (f *DefaultFactory) build(raw RawLayer, filePath, name string) (*configarray.ConfigArray, error) {
	var chain *configarray.ConfigArray

	for _, ref := range raw.Extends {
		extended, err := f.resolveExtends(ref, filepath.Dir(filePath))
		if err != nil {
			return nil, fmt.Errorf("configfactory: resolving extends %q in %s: %w", ref, name, err)
		}
		chain = configarray.Concat(chain, extended)
	}

	elem, err := rawToElement(raw, filePath, name)
	if err != nil {
		return nil, fmt.Errorf("configfactory: building %s: %w", name, err)
	}

	return configarray.Concat(chain, configarray.New(elem)), nil
}

// resolveExtends resolves one extends entry: a "lintcascade:<name>" registry
// reference, or a file path resolved relative to baseDir.
func (f *DefaultFactory) resolveExtends(ref, baseDir string) (*configarray.ConfigArray, error) {
	if raw, ok := namedConfigs[ref]; ok {
		return f.build(raw, "", ref)
	}

	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return f.LoadFile(path, CreateOptions{Name: ref})
}

func parseFile(path string) (RawLayer, error) {
	var decoded rawFile
	meta, err := toml.DecodeFile(path, &decoded)
	if err != nil {
		return RawLayer{}, fmt.Errorf("configfactory: parsing %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slog.Default().Warn("unknown config keys ignored", "path", path, "keys", keys)
	}
	return decoded.toRawLayer(), nil
}

// rawFile is the TOML decode target for one on-disk configuration layer.
type rawFile struct {
	Root          bool             `toml:"root"`
	Extends       []string         `toml:"extends"`
	Env           map[string]bool  `toml:"env"`
	Globals       map[string]any   `toml:"globals"`
	Parser        string           `toml:"parser"`
	ParserOptions map[string]any   `toml:"parserOptions"`
	Plugins       []string         `toml:"plugins"`
	Processor     string           `toml:"processor"`
	Rules         map[string][]any `toml:"rules"`
	Settings      map[string]any   `toml:"settings"`
	Overrides     []rawOverride    `toml:"overrides"`
}

type rawOverride struct {
	Files         []string         `toml:"files"`
	ExcludedFiles []string         `toml:"excludedFiles"`
	Env           map[string]bool  `toml:"env"`
	Globals       map[string]any   `toml:"globals"`
	Parser        string           `toml:"parser"`
	ParserOptions map[string]any   `toml:"parserOptions"`
	Plugins       []string         `toml:"plugins"`
	Processor     string           `toml:"processor"`
	Rules         map[string][]any `toml:"rules"`
	Settings      map[string]any   `toml:"settings"`
}

func (r rawFile) toRawLayer() RawLayer {
	overrides := make([]RawOverride, len(r.Overrides))
	for i, ov := range r.Overrides {
		overrides[i] = RawOverride{
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
	return RawLayer{
		Root:          r.Root,
		Extends:       r.Extends,
		Env:           r.Env,
		Globals:       r.Globals,
		Parser:        r.Parser,
		ParserOptions: r.ParserOptions,
		Plugins:       r.Plugins,
		Processor:     r.Processor,
		Rules:         r.Rules,
		Settings:      r.Settings,
		Overrides:     overrides,
	}
}

// rawToElement converts a RawLayer into a *configarray.ConfigElement,
// normalizing globals and rule severities.
func rawToElement(raw RawLayer, filePath, name string) (*configarray.ConfigElement, error) {
	globals, err := normalizeGlobals(raw.Globals)
	if err != nil {
		return nil, err
	}
	rules, err := normalizeRules(raw.Rules)
	if err != nil {
		return nil, err
	}

	var parser *configarray.ParserDescriptor
	if raw.Parser != "" {
		parser = &configarray.ParserDescriptor{
			ID:       raw.Parser,
			FilePath: resolveRelative(raw.Parser, filePath),
		}
	}

	plugins := make(map[string]configarray.PluginDescriptor, len(raw.Plugins))
	for _, id := range raw.Plugins {
		plugins[id] = configarray.PluginDescriptor{ID: id}
	}

	overrides := make([]configarray.OverrideEntry, len(raw.Overrides))
	for i, ov := range raw.Overrides {
		ovGlobals, err := normalizeGlobals(ov.Globals)
		if err != nil {
			return nil, err
		}
		ovRules, err := normalizeRules(ov.Rules)
		if err != nil {
			return nil, err
		}
		var ovParser *configarray.ParserDescriptor
		if ov.Parser != "" {
			ovParser = &configarray.ParserDescriptor{
				ID:       ov.Parser,
				FilePath: resolveRelative(ov.Parser, filePath),
			}
		}
		ovPlugins := make(map[string]configarray.PluginDescriptor, len(ov.Plugins))
		for _, id := range ov.Plugins {
			ovPlugins[id] = configarray.PluginDescriptor{ID: id}
		}
		overrides[i] = configarray.OverrideEntry{
			Files:         ov.Files,
			ExcludedFiles: ov.ExcludedFiles,
			Env:           ov.Env,
			Globals:       ovGlobals,
			Parser:        ovParser,
			ParserOptions: ov.ParserOptions,
			Plugins:       ovPlugins,
			Processor:     ov.Processor,
			Rules:         ovRules,
			Settings:      ov.Settings,
		}
	}

	return &configarray.ConfigElement{
		Name:          name,
		FilePath:      filePath,
		Env:           raw.Env,
		Globals:       globals,
		Parser:        parser,
		ParserOptions: raw.ParserOptions,
		Plugins:       plugins,
		Processor:     raw.Processor,
		Rules:         rules,
		Settings:      raw.Settings,
		Root:          raw.Root,
		Overrides:     overrides,
	}, nil
}

func normalizeGlobals(raw map[string]any) (map[string]configarray.AccessMode, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]configarray.AccessMode, len(raw))
	for name, v := range raw {
		mode, err := configarray.ParseAccessMode(v)
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", name, err)
		}
		out[name] = mode
	}
	return out, nil
}

func normalizeRules(raw map[string][]any) (map[string]configarray.RuleEntry, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]configarray.RuleEntry, len(raw))
	for id, args := range raw {
		if len(args) == 0 {
			return nil, fmt.Errorf("rule %q: empty argument sequence", id)
		}
		sev, err := configarray.ParseSeverity(args[0])
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", id, err)
		}
		out[id] = configarray.RuleEntry{
			Severity: sev,
			Options:  args[1:],
			RawArgs:  args,
		}
	}
	return out, nil
}

func resolveRelative(ref, configFilePath string) string {
	if ref == "" || filepath.IsAbs(ref) || configFilePath == "" {
		return ref
	}
	return filepath.Join(filepath.Dir(configFilePath), ref)
}
