package toolconfig

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names for LINTCASCADE_* overrides.
const (
	EnvExtensions = "LINTCASCADE_EXTENSIONS"
	EnvIgnorePath = "LINTCASCADE_IGNORE_PATH"
	EnvNoIgnore   = "LINTCASCADE_NO_IGNORE"
	EnvNoEslintrc = "LINTCASCADE_NO_ESLINTRC"
	EnvNoGlob     = "LINTCASCADE_NO_GLOB"
	EnvConfigFile = "LINTCASCADE_CONFIG_FILE"
	EnvLogFormat  = "LINTCASCADE_LOG_FORMAT"
)

// buildEnvMap reads LINTCASCADE_* environment variables into a flat map
// suitable for a koanf confmap provider. Only present, parseable values are
// included; an unparseable boolean is silently skipped rather than failing
// the whole resolution pipeline.
func buildEnvMap() map[string]any {
	m := make(map[string]any)

	if v := os.Getenv(EnvExtensions); v != "" {
		m["extensions"] = strings.Split(v, ",")
	}
	if v := os.Getenv(EnvIgnorePath); v != "" {
		m["ignore_path"] = v
	}
	if v := os.Getenv(EnvNoIgnore); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			m["no_ignore"] = b
		}
	}
	if v := os.Getenv(EnvNoEslintrc); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			m["no_eslintrc"] = b
		}
	}
	if v := os.Getenv(EnvNoGlob); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			m["no_glob"] = b
		}
	}
	if v := os.Getenv(EnvConfigFile); v != "" {
		m["config_file"] = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		m["log_format"] = v
	}

	return m
}
