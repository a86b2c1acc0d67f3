// Package ancestor implements the Ancestor Resolver: given a path, it
// produces the merged ConfigArray for that path's directory by walking
// upward, caching per directory, honoring root: true, and the home/
// filesystem-root stop conditions.
package ancestor

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/lintcascade/lintcascade/internal/configarray"
	"github.com/lintcascade/lintcascade/internal/configfactory"
)

// Resolver walks ancestor directories, memoizing the ConfigArray produced for
// each one. Resolver is not safe for concurrent use by multiple goroutines,
// matching the enumerator's single-threaded cooperative model.
type Resolver struct {
	factory     configfactory.Factory
	base        *configarray.ConfigArray
	cwd         string
	home        string
	useEslintrc bool

	cache map[string]*configarray.ConfigArray
	logger *slog.Logger
}

// Options configures a new Resolver.
type Options struct {
	Factory     configfactory.Factory
	Base        *configarray.ConfigArray
	Cwd         string
	Home        string // empty disables the home-directory stop condition
	UseEslintrc bool
}

// New constructs a Resolver. Cwd should already be absolute.
func New(opts Options) *Resolver {
	return &Resolver{
		factory:     opts.Factory,
		base:        opts.Base,
		cwd:         opts.Cwd,
		home:        opts.Home,
		useEslintrc: opts.UseEslintrc,
		cache:       make(map[string]*configarray.ConfigArray),
		logger:      slog.Default().With("component", "ancestor"),
	}
}

// Resolve returns the merged ConfigArray for dirname(path).
func (r *Resolver) Resolve(path string) (*configarray.ConfigArray, error) {
	if !r.useEslintrc {
		return r.base, nil
	}
	dir := filepath.Dir(path)
	return r.resolveDir(dir)
}

// ClearCache discards every memoized directory->array mapping. The caller is
// expected to also replace the Resolver's base array (via a fresh New call)
// when rebuilding from retained source inputs, per the Finalizer/Enumerator
// Facade's clearCache() contract.
func (r *Resolver) ClearCache() {
	r.cache = make(map[string]*configarray.ConfigArray)
}

func (r *Resolver) resolveDir(dir string) (*configarray.ConfigArray, error) {
	if cached, ok := r.cache[dir]; ok {
		return cached, nil
	}

	parent := filepath.Dir(dir)

	// Filesystem root reached: dir has no distinct parent.
	if dir == "" || parent == dir {
		r.cache[dir] = r.base
		return r.base, nil
	}

	// Home-directory stop condition: only applies when home
	// differs from cwd. The personal config is applied later by the
	// Finalizer, not during the ancestor walk.
	if r.home != "" && dir == r.home && r.home != r.cwd {
		r.cache[dir] = r.base
		return r.base, nil
	}

	array, err := r.factory.LoadOnDirectory(dir, configfactory.LoadOnDirectoryOptions{})
	if err != nil {
		if isAccessDenied(err) {
			r.logger.Debug("access denied loading directory config, substituting base array",
				"dir", dir, "error", err)
			r.cache[dir] = r.base
			return r.base, nil
		}
		return nil, fmt.Errorf("ancestor: loading config for %s: %w", dir, err)
	}

	// root: true halts cascading immediately after loading this directory's
	// own config, before recursing upward.
	if array.Len() > 0 && array.IsRoot() {
		r.cache[dir] = array
		return array, nil
	}

	parentArray, err := r.resolveDir(parent)
	if err != nil {
		return nil, err
	}

	var result *configarray.ConfigArray
	if array.Len() > 0 {
		result = configarray.Concat(parentArray, array)
	} else {
		result = parentArray
	}

	r.cache[dir] = result
	return result, nil
}

// isAccessDenied reports whether err is the implementation-defined
// "access denied" filesystem condition: specifically fs.ErrPermission,
// not any other filesystem error class.
func isAccessDenied(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, os.ErrPermission)
}
