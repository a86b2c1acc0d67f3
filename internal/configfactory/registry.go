package configfactory

// namedConfigs is the built-in registry of shareable base configurations
// addressable via an "extends" entry spelled "lintcascade:<name>", the same
// way ESLint-style tools resolve "eslint:recommended". Real plugin-provided
// shareable configs are out of scope; this registry only covers the tool's own bundled presets.
var namedConfigs = map[string]RawLayer{
	"lintcascade:recommended": {
		Rules: map[string][]any{
			"no-undef":       {"error"},
			"no-unused-vars": {"warn"},
		},
	},
	"lintcascade:all": {
		Rules: map[string][]any{
			"no-undef":       {"error"},
			"no-unused-vars": {"error"},
			"no-dupe-keys":   {"error"},
		},
	},
}
