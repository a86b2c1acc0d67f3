// Package finalize implements the Finalizer: the last step between a
// raw, ancestor-resolved ConfigArray and the array handed to a caller. It
// appends the personal (home-directory) configuration when no project
// configuration file was found anywhere in the chain, appends the
// CLI-supplied overrides array, and validates the result -- all memoized by
// the identity of the input array so that repeated resolution for files in
// the same directory does the work exactly once.
package finalize

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lintcascade/lintcascade/internal/configarray"
	"github.com/lintcascade/lintcascade/internal/configfactory"
	"github.com/lintcascade/lintcascade/internal/lcerrors"
)

// Options configures a Finalizer.
type Options struct {
	Factory     configfactory.Factory
	Home        string // empty disables the personal-config fallback
	CLIArray    *configarray.ConfigArray
	UseEslintrc bool
}

// Finalizer applies the personal-config fallback, CLI-array append, and
// validation, memoized by the identity of the array it is handed.
type Finalizer struct {
	factory     configfactory.Factory
	home        string
	cliArray    *configarray.ConfigArray
	useEslintrc bool

	cache    map[*configarray.ConfigArray]*configarray.ConfigArray
	personal *configarray.ConfigArray
	loaded   bool
	logger   *slog.Logger
}

// New constructs a Finalizer.
func New(opts Options) *Finalizer {
	return &Finalizer{
		factory:     opts.Factory,
		home:        opts.Home,
		cliArray:    opts.CLIArray,
		useEslintrc: opts.UseEslintrc,
		cache:       make(map[*configarray.ConfigArray]*configarray.ConfigArray),
		logger:      slog.Default().With("component", "finalize"),
	}
}

// Finalize returns the fully-resolved array for a file whose ancestor-walk
// result is raw, living in directory dir. Two raw arrays that are the same
// pointer always finalize to the same pointer (identity is preserved
// end-to-end, not just through the ancestor walk).
func (f *Finalizer) Finalize(raw *configarray.ConfigArray, dir string) (*configarray.ConfigArray, error) {
	if cached, ok := f.cache[raw]; ok {
		return cached, nil
	}

	result := raw

	if f.useEslintrc && !result.HasRealFile() && !f.cliArray.HasRealFile() {
		personal, err := f.personalConfig()
		if err != nil {
			return nil, err
		}
		if personal.Len() > 0 {
			result = configarray.Concat(result, personal)
		}
	}

	if f.cliArray.Len() > 0 {
		result = configarray.Concat(result, f.cliArray)
	}

	if f.useEslintrc && result.Len() == 0 {
		return nil, lcerrors.NewConfigurationNotFound(dir)
	}

	if errs := configarray.Validate(result); len(errs) > 0 {
		messages := make([]string, len(errs))
		for i, e := range errs {
			messages[i] = e.Error()
		}
		return nil, fmt.Errorf("finalize: invalid configuration for %s: %s", dir, strings.Join(messages, "; "))
	}

	f.cache[raw] = result
	return result, nil
}

// ClearCache discards every memoized raw->finalized mapping and the cached
// personal configuration, forcing the next Finalize call to reload both.
func (f *Finalizer) ClearCache() {
	f.cache = make(map[*configarray.ConfigArray]*configarray.ConfigArray)
	f.personal = nil
	f.loaded = false
}

// personalConfig lazily loads and memoizes the home-directory configuration
// used as a fallback when no project configuration file exists anywhere in a
// file's ancestor chain.
func (f *Finalizer) personalConfig() (*configarray.ConfigArray, error) {
	if f.loaded {
		return f.personal, nil
	}
	f.loaded = true

	if f.home == "" {
		f.personal = configarray.New()
		return f.personal, nil
	}

	array, err := f.factory.LoadOnDirectory(f.home, configfactory.LoadOnDirectoryOptions{Name: "personal"})
	if err != nil {
		f.logger.Debug("personal config unreadable, ignoring", "home", f.home, "error", err)
		f.personal = configarray.New()
		return f.personal, nil
	}
	f.personal = array
	return f.personal, nil
}
