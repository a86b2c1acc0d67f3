package lintcascade

import (
	"iter"
	"path/filepath"

	"github.com/lintcascade/lintcascade/internal/ancestor"
	"github.com/lintcascade/lintcascade/internal/baseconfig"
	"github.com/lintcascade/lintcascade/internal/cliconfig"
	"github.com/lintcascade/lintcascade/internal/configarray"
	"github.com/lintcascade/lintcascade/internal/configfactory"
	"github.com/lintcascade/lintcascade/internal/fileiter"
	"github.com/lintcascade/lintcascade/internal/finalize"
	"github.com/lintcascade/lintcascade/internal/ignore"
)

// FileAndConfig is one resolved entry returned from IterateFiles: an
// absolute file path, its finalized configuration array, and whether it was
// explicitly named yet ignored.
type FileAndConfig struct {
	FilePath string
	Config   *configarray.ConfigArray
	Ignored  bool
}

// Enumerator is the public surface of the file-and-configuration resolver.
// It is not safe for concurrent use by multiple goroutines.
type Enumerator struct {
	opts    Options
	factory configfactory.Factory

	defaultIgnore  ignore.Matcher
	dotfilesIgnore ignore.Matcher

	resolver  *ancestor.Resolver
	iterator  *fileiter.Iterator
	finalizer *finalize.Finalizer

	cliArray *configarray.ConfigArray
}

// New constructs an Enumerator from opts.
func New(opts Options) (*Enumerator, error) {
	e := &Enumerator{opts: opts, factory: configfactory.NewDefaultFactory()}
	if err := e.build(); err != nil {
		return nil, err
	}
	return e, nil
}

// Cwd exposes the configured working directory.
func (e *Enumerator) Cwd() string {
	return e.opts.Cwd
}

// build (re)constructs every derived piece of state from e.opts, the
// retained source inputs. Called from New and ClearCache.
func (e *Enumerator) build() error {
	baseArray, err := baseconfig.Build(e.factory, e.opts.Base.toRawLayer(), e.opts.RuleDirs, e.opts.Cwd)
	if err != nil {
		return err
	}

	cliArray, err := cliconfig.Build(e.factory, e.opts.CLI.toRawLayer(), e.opts.ConfigFile)
	if err != nil {
		return err
	}
	e.cliArray = cliArray

	defaultIgnore, err := ignore.New(ignore.Options{
		Cwd:            e.opts.Cwd,
		IgnorePath:     e.opts.IgnorePath,
		IgnorePatterns: e.opts.IgnorePatterns,
		Dotfiles:       false,
	})
	if err != nil {
		return err
	}
	e.defaultIgnore = defaultIgnore

	dotfilesIgnore, err := ignore.New(ignore.Options{
		Cwd:            e.opts.Cwd,
		IgnorePath:     e.opts.IgnorePath,
		IgnorePatterns: e.opts.IgnorePatterns,
		Dotfiles:       true,
	})
	if err != nil {
		return err
	}
	e.dotfilesIgnore = dotfilesIgnore

	e.resolver = ancestor.New(ancestor.Options{
		Factory:     e.factory,
		Base:        baseArray,
		Cwd:         e.opts.Cwd,
		Home:        e.opts.Home,
		UseEslintrc: e.opts.UseEslintrc,
	})

	e.finalizer = finalize.New(finalize.Options{
		Factory:     e.factory,
		Home:        e.opts.Home,
		CLIArray:    cliArray,
		UseEslintrc: e.opts.UseEslintrc,
	})

	e.iterator = fileiter.New(fileiter.Options{
		Cwd:            e.opts.Cwd,
		Resolver:       e.resolver,
		Factory:        e.factory,
		DefaultIgnore:  e.defaultIgnore,
		DotfilesIgnore: e.dotfilesIgnore,
		Extensions:     e.opts.Extensions,
		GlobInputPaths: e.opts.GlobInputPaths,
		IgnoreEnabled:  e.opts.IgnoreEnabled,
	})

	return nil
}

// ClearCache rebuilds the base and CLI arrays from the retained source
// inputs and clears both the ancestor and finalize caches. Arrays returned
// after this call are never reference-equal to ones returned before it,
// even for identical inputs.
func (e *Enumerator) ClearCache() error {
	return e.build()
}

// IterateFiles expands patterns into a lazy sequence of finalized entries.
// Consumption may stop early by breaking the range loop; no further
// filesystem work is performed once that happens.
func (e *Enumerator) IterateFiles(patterns ...string) iter.Seq2[FileAndConfig, error] {
	return func(yield func(FileAndConfig, error) bool) {
		for entry, err := range e.iterator.Iterate(patterns) {
			if err != nil {
				yield(FileAndConfig{}, err)
				return
			}

			finalized, ferr := e.finalizer.Finalize(entry.Config, filepath.Dir(entry.FilePath))
			if ferr != nil {
				yield(FileAndConfig{}, ferr)
				return
			}

			fc := FileAndConfig{
				FilePath: entry.FilePath,
				Config:   finalized,
				Ignored:  entry.Flag == fileiter.FlagIgnored,
			}
			if !yield(fc, nil) {
				return
			}
		}
	}
}

// GetConfigArrayForFile resolves ancestors for filePath (resolved against
// the working directory if relative) and finalizes against its directory.
// With no argument, filePath defaults to "a.js" in the working directory --
// the documented hook for --print-config style callers that have no real
// file to resolve against.
func (e *Enumerator) GetConfigArrayForFile(filePath ...string) (*configarray.ConfigArray, error) {
	target := "a.js"
	if len(filePath) > 0 && filePath[0] != "" {
		target = filePath[0]
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(e.opts.Cwd, target)
	}

	raw, err := e.resolver.Resolve(target)
	if err != nil {
		return nil, err
	}
	return e.finalizer.Finalize(raw, filepath.Dir(target))
}
