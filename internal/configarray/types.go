// Package configarray defines the cascading configuration data model shared
// by every stage of the lint resolver: the ordered ConfigElement sequence
// that is a ConfigArray, and the flattened ExtractedConfig folded from it for
// a particular target file.
//
// Array identity is load-bearing: two files discovered in the same directory
// must be handed the exact same *ConfigArray pointer so callers can rely on
// reference equality rather than deep comparison.
package configarray

import "fmt"

// AccessMode is the access level granted to a declared global variable.
type AccessMode string

const (
	AccessOff      AccessMode = "off"
	AccessReadonly AccessMode = "readonly"
	AccessWritable AccessMode = "writable"
)

// ParseAccessMode accepts the aliases ESLint-style configs use for global
// variable access and normalizes them to one of the three AccessMode values.
// Unrecognized values return an error naming the offending raw value.
func ParseAccessMode(raw any) (AccessMode, error) {
	switch v := raw.(type) {
	case bool:
		if v {
			return AccessWritable, nil
		}
		return AccessReadonly, nil
	case string:
		switch v {
		case "off":
			return AccessOff, nil
		case "readonly", "readable":
			return AccessReadonly, nil
		case "writable", "writeable":
			return AccessWritable, nil
		default:
			return "", fmt.Errorf("configarray: invalid global access mode %q", v)
		}
	default:
		return "", fmt.Errorf("configarray: invalid global access mode %v", raw)
	}
}

// Severity is the normalized rule severity: off, warn, or error.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityWarn
	SeverityError
)

// ParseSeverity accepts both the string and numeric spellings ESLint-style
// rule settings use ("off"|"warn"|"error" or 0|1|2).
func ParseSeverity(raw any) (Severity, error) {
	switch v := raw.(type) {
	case string:
		switch v {
		case "off":
			return SeverityOff, nil
		case "warn":
			return SeverityWarn, nil
		case "error":
			return SeverityError, nil
		default:
			return 0, fmt.Errorf("configarray: invalid rule severity %q", v)
		}
	case int:
		return parseSeverityInt(v)
	case int64:
		return parseSeverityInt(int(v))
	case float64:
		return parseSeverityInt(int(v))
	default:
		return 0, fmt.Errorf("configarray: invalid rule severity %v", raw)
	}
}

func parseSeverityInt(n int) (Severity, error) {
	switch n {
	case 0:
		return SeverityOff, nil
	case 1:
		return SeverityWarn, nil
	case 2:
		return SeverityError, nil
	default:
		return 0, fmt.Errorf("configarray: invalid rule severity %d", n)
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "off"
	}
}

// RuleEntry is one rule's ordered argument sequence. Arg[0] (after parsing)
// is always the severity; RawArgs preserves the full original sequence
// (including the raw severity spelling) for round-tripping to callers that
// print configuration verbatim.
type RuleEntry struct {
	Severity Severity
	Options  []any
	RawArgs  []any
}

// ParserDescriptor identifies the parser assigned to a configuration layer.
// Definition holds a loaded parser definition; DefaultFactory records only
// ID and FilePath and never loads the parser, so Definition stays nil for
// every descriptor it builds.
type ParserDescriptor struct {
	ID         string
	FilePath   string
	Definition any
}

// PluginDescriptor identifies one plugin contributed by a configuration
// layer. Rules maps a short rule id (scoped to the plugin) to its
// definition; for the synthetic "--rulesdir" plugin this is the only
// populated field.
type PluginDescriptor struct {
	ID    string
	Rules map[string]any
}

// OverrideEntry is one element of ConfigElement.Overrides: a glob-scoped
// sub-configuration applied only to files matching Files and not matching
// ExcludedFiles.
type OverrideEntry struct {
	Files         []string
	ExcludedFiles []string

	Env            map[string]bool
	Globals        map[string]AccessMode
	Parser         *ParserDescriptor
	ParserOptions  map[string]any
	Plugins        map[string]PluginDescriptor
	Processor      string
	Rules          map[string]RuleEntry
	Settings       map[string]any
}

// ConfigElement is one layer of a cascading configuration chain.
type ConfigElement struct {
	// Name is a diagnostic label, e.g. ".lintcascaderc.toml in /repo/lib".
	Name string

	// FilePath is the absolute path of the file this layer was loaded from.
	// Empty for synthetic layers (the base config's --rulesdir pseudo-plugin,
	// inline CLI/base data passed as in-memory maps).
	FilePath string

	Env           map[string]bool
	Globals       map[string]AccessMode
	Parser        *ParserDescriptor
	ParserOptions map[string]any
	Plugins       map[string]PluginDescriptor
	Processor     string
	Rules         map[string]RuleEntry
	Settings      map[string]any

	// Root halts the Ancestor Resolver's upward walk when true.
	Root bool

	Overrides []OverrideEntry
}

// HasRealFile reports whether this layer originates from an actual file on
// disk, used by the Finalizer's "no project config exists" test.
func (e *ConfigElement) HasRealFile() bool {
	return e != nil && e.FilePath != ""
}

// ConfigArray is an ordered, shared-by-reference sequence of ConfigElement,
// leaves (base config) first, CLI/personal config last. Callers must treat
// returned arrays as immutable; the cascading resolver only ever replaces the
// pointer held in its caches, never mutates an array already handed out.
type ConfigArray struct {
	Elements []*ConfigElement
}

// New builds a ConfigArray from the given elements, copying them into a new
// backing array so the caller's slice cannot be mutated out from under the
// result.
func New(elements ...*ConfigElement) *ConfigArray {
	cp := make([]*ConfigElement, len(elements))
	copy(cp, elements)
	return &ConfigArray{Elements: cp}
}

// Concat returns a new ConfigArray whose elements are head's followed by
// tail's. Neither input is mutated.
func Concat(head, tail *ConfigArray) *ConfigArray {
	var elems []*ConfigElement
	if head != nil {
		elems = append(elems, head.Elements...)
	}
	if tail != nil {
		elems = append(elems, tail.Elements...)
	}
	return &ConfigArray{Elements: elems}
}

// Len returns the number of elements in the array. A nil receiver has length 0.
func (a *ConfigArray) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Elements)
}

// HasRealFile reports whether any element in the array originates from a
// real file on disk.
func (a *ConfigArray) HasRealFile() bool {
	if a == nil {
		return false
	}
	for _, e := range a.Elements {
		if e.HasRealFile() {
			return true
		}
	}
	return false
}

// IsRoot reports whether the array's last-loaded element (the one most
// recently appended during an ancestor walk) declares root: true.
func (a *ConfigArray) IsRoot() bool {
	if a.Len() == 0 {
		return false
	}
	return a.Elements[len(a.Elements)-1].Root
}
