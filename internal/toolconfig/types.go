// Package toolconfig resolves the CLI tool's own settings -- as opposed to
// the cascading lint configuration the enumerator resolves -- from built-in
// defaults, a global config file, a repo-local config file, environment
// variables, and CLI flags, in ascending order of precedence.
package toolconfig

// Settings is the tool's own resolved configuration: the inputs that
// construct an Options for the enumerator facade, plus a couple of
// tool-only switches (LogFormat) that never reach the enumerator.
type Settings struct {
	Extensions     []string `koanf:"extensions"`
	IgnorePath     string   `koanf:"ignore_path"`
	IgnorePatterns []string `koanf:"ignore_patterns"`
	NoIgnore       bool     `koanf:"no_ignore"`
	NoEslintrc     bool     `koanf:"no_eslintrc"`
	NoGlob         bool     `koanf:"no_glob"`
	ConfigFile     string   `koanf:"config_file"`
	RuleDirs       []string `koanf:"rulesdir"`
	LogFormat      string   `koanf:"log_format"`
}

// Default returns the built-in settings, the lowest-precedence layer.
func Default() *Settings {
	return &Settings{
		Extensions: []string{".js"},
		LogFormat:  "text",
	}
}
