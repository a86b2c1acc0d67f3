// Package configfactory implements the Configuration Factory external
// collaborator: given in-memory data, a single file, or a directory,
// it produces a ConfigArray, resolving "extends" chains and validating
// element structure along the way. The enumerator depends only on this
// documented contract; parsing a particular file format is this package's
// concern, not the resolver's.
package configfactory

import "github.com/lintcascade/lintcascade/internal/configarray"

// CreateOptions names the layer being materialized, for diagnostics.
type CreateOptions struct {
	Name string
}

// LoadOnDirectoryOptions additionally carries the parent chain a directory
// load is layered on. DefaultFactory does not read Parent; the Ancestor
// Resolver and File Iterator own actual chain composition.
type LoadOnDirectoryOptions struct {
	Name   string
	Parent *configarray.ConfigArray
}

// Factory is the contract required from the configuration-loading
// collaborator.
type Factory interface {
	// Create materializes already-in-memory layer data (used for the base
	// config and CLI-supplied overrides). May return an empty array.
	Create(data RawLayer, opts CreateOptions) (*configarray.ConfigArray, error)

	// LoadFile loads one explicit configuration file, resolving any
	// "extends" chain it declares.
	LoadFile(filePath string, opts CreateOptions) (*configarray.ConfigArray, error)

	// LoadOnDirectory scans dir for a recognized configuration filename and,
	// if found, behaves as LoadFile. Returns an empty (non-nil) array if no
	// recognized file exists in dir.
	LoadOnDirectory(dir string, opts LoadOnDirectoryOptions) (*configarray.ConfigArray, error)
}

// RawLayer is the free-form, not-yet-validated shape of one configuration
// layer, whether it arrived via TOML file or was constructed in memory by
// the Base-Config/CLI-Config builders.
type RawLayer struct {
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
	Overrides     []RawOverride
}

// RawOverride is the free-form shape of one ConfigElement.Overrides entry.
type RawOverride struct {
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

// RecognizedFilenames lists the configuration filenames LoadOnDirectory
// scans for, in priority order (first existing file wins).
var RecognizedFilenames = []string{
	".lintcascaderc.toml",
	"lintcascade.config.toml",
}
