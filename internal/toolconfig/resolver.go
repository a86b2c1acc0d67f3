package toolconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/providers/confmap"
	koanf "github.com/knadh/koanf/v2"
)

// recognizedFilename is the tool's own settings file, deliberately distinct
// from the recognized lint-configuration filenames in
// internal/configfactory -- the two cascades are independent and must not
// be confused with one another.
const recognizedFilename = "lintcascade.tool.toml"

// ResolveOptions configures the multi-source settings resolution.
type ResolveOptions struct {
	// TargetDir is the directory searched for the repo-local settings file.
	// Defaults to "." if empty.
	TargetDir string
	// GlobalConfigPath overrides the default
	// ~/.config/lintcascade/config.toml. Useful for testing.
	GlobalConfigPath string
	// CLIFlags holds explicit CLI flag overrides (highest precedence). Keys
	// are flat Settings field names: "extensions", "no_ignore", etc.
	CLIFlags map[string]any
}

// Resolved is the result of multi-source settings resolution.
type Resolved struct {
	Settings *Settings
	Sources  SourceMap
}

// Resolve runs the 5-layer settings resolution pipeline: built-in defaults,
// global config, repo config, environment variables, CLI flags. Missing
// config files are silently ignored; invalid ones return an error.
func Resolve(opts ResolveOptions) (*Resolved, error) {
	k := koanf.New(".")
	sources := make(SourceMap)

	if err := loadLayer(k, settingsToFlatMap(Default()), sources, SourceDefault); err != nil {
		return nil, fmt.Errorf("toolconfig: loading defaults: %w", err)
	}

	globalPath := opts.GlobalConfigPath
	if globalPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			globalPath = filepath.Join(home, ".config", "lintcascade", "config.toml")
		}
	}
	if globalPath != "" {
		if err := loadFileLayer(k, globalPath, sources, SourceGlobal); err != nil {
			return nil, err
		}
	}

	targetDir := opts.TargetDir
	if targetDir == "" {
		targetDir = "."
	}
	repoPath := filepath.Join(targetDir, recognizedFilename)
	if err := loadFileLayer(k, repoPath, sources, SourceRepo); err != nil {
		return nil, err
	}

	if envMap := buildEnvMap(); len(envMap) > 0 {
		if err := loadLayer(k, envMap, sources, SourceEnv); err != nil {
			return nil, fmt.Errorf("toolconfig: loading env vars: %w", err)
		}
	}

	if len(opts.CLIFlags) > 0 {
		if err := loadLayer(k, opts.CLIFlags, sources, SourceFlag); err != nil {
			return nil, fmt.Errorf("toolconfig: loading CLI flags: %w", err)
		}
	}

	return &Resolved{Settings: flatMapToSettings(k), Sources: sources}, nil
}

// loadFileLayer parses path as TOML and merges its top-level keys, if the
// file exists. A missing file is skipped silently; any other stat or parse
// error is returned.
func loadFileLayer(k *koanf.Koanf, path string, sources SourceMap, src Source) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("toolconfig: stat %s: %w", path, err)
	}

	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return fmt.Errorf("toolconfig: parsing %s: %w", path, err)
	}

	flat := normalizeRaw(raw)
	return loadLayer(k, flat, sources, src)
}

// normalizeRaw widens BurntSushi/toml's decoded int64 to int and leaves
// everything else as-is, so koanf and our own accessors agree on types.
func normalizeRaw(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for key, v := range raw {
		switch n := v.(type) {
		case int64:
			out[key] = int(n)
		default:
			out[key] = v
		}
	}
	return out
}

func loadLayer(k *koanf.Koanf, m map[string]any, sources SourceMap, src Source) error {
	if err := k.Load(confmap.Provider(m, "."), nil); err != nil {
		return fmt.Errorf("merge layer %s: %w", src.String(), err)
	}
	for key := range m {
		sources[key] = src
	}
	return nil
}

func settingsToFlatMap(s *Settings) map[string]any {
	return map[string]any{
		"extensions":      s.Extensions,
		"ignore_path":     s.IgnorePath,
		"ignore_patterns": s.IgnorePatterns,
		"no_ignore":       s.NoIgnore,
		"no_eslintrc":     s.NoEslintrc,
		"no_glob":         s.NoGlob,
		"config_file":     s.ConfigFile,
		"rulesdir":        s.RuleDirs,
		"log_format":      s.LogFormat,
	}
}

func flatMapToSettings(k *koanf.Koanf) *Settings {
	return &Settings{
		Extensions:     k.Strings("extensions"),
		IgnorePath:     k.String("ignore_path"),
		IgnorePatterns: k.Strings("ignore_patterns"),
		NoIgnore:       k.Bool("no_ignore"),
		NoEslintrc:     k.Bool("no_eslintrc"),
		NoGlob:         k.Bool("no_glob"),
		ConfigFile:     k.String("config_file"),
		RuleDirs:       k.Strings("rulesdir"),
		LogFormat:      k.String("log_format"),
	}
}
