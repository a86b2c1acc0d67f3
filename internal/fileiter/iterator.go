package fileiter

import (
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lintcascade/lintcascade/internal/ancestor"
	"github.com/lintcascade/lintcascade/internal/configarray"
	"github.com/lintcascade/lintcascade/internal/configfactory"
	"github.com/lintcascade/lintcascade/internal/ignore"
	"github.com/lintcascade/lintcascade/internal/lcerrors"
)

// Options configures an Iterator.
type Options struct {
	Cwd            string
	Resolver       *ancestor.Resolver
	Factory        configfactory.Factory
	DefaultIgnore  ignore.Matcher
	DotfilesIgnore ignore.Matcher
	Extensions     []string
	GlobInputPaths bool
	IgnoreEnabled  bool
}

// Iterator implements the File Iterator.
type Iterator struct {
	opts  Options
	extRe *regexp.Regexp
}

// New constructs an Iterator.
func New(opts Options) *Iterator {
	return &Iterator{opts: opts, extRe: BuildExtensionRegex(opts.Extensions)}
}

// Iterate returns a lazy, pull-based sequence of (Entry, error) over
// patterns. Consumption stops -- and no further filesystem work is
// performed -- the moment the caller's range loop breaks.
func (it *Iterator) Iterate(patterns []string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		seen := make(map[string]bool)

		for _, pattern := range patterns {
			if pattern == "" {
				continue
			}

			foundAny := false
			foundNonSilent := false
			consumerStopped := false

			handle := func(path string, config *configarray.ConfigArray, flag Flag) bool {
				foundAny = true
				if flag != FlagIgnoredSilently {
					foundNonSilent = true
				}
				if seen[path] {
					return true
				}
				seen[path] = true
				if flag == FlagIgnoredSilently {
					return true
				}
				if !yield(Entry{FilePath: path, Config: config, Flag: flag}, nil) {
					consumerStopped = true
					return false
				}
				return true
			}

			if err := it.dispatch(pattern, handle); err != nil {
				yield(Entry{}, err)
				return
			}
			if consumerStopped {
				return
			}

			if !foundAny {
				globDisabled := !it.opts.GlobInputPaths && isGlobPattern(pattern)
				yield(Entry{}, lcerrors.NewNoFilesFound(pattern, globDisabled))
				return
			}
			if !foundNonSilent {
				yield(Entry{}, lcerrors.NewAllFilesIgnored(pattern))
				return
			}
		}
	}
}

func (it *Iterator) matcherFor(pattern string) ignore.Matcher {
	if wantsDotfiles(pattern) {
		return it.opts.DotfilesIgnore
	}
	return it.opts.DefaultIgnore
}

func (it *Iterator) mode() ignore.Mode {
	if it.opts.IgnoreEnabled {
		return ignore.ModeAll
	}
	return ignore.ModeDefault
}

// dispatch resolves one pattern via glob, directory-walk, or single-file,
// in that fixed order: a pattern satisfies at most one strategy.
func (it *Iterator) dispatch(pattern string, handle func(string, *configarray.ConfigArray, Flag) bool) error {
	normalized := filepath.ToSlash(pattern)

	if it.opts.GlobInputPaths && isGlobPattern(normalized) {
		return it.dispatchGlob(pattern, normalized, handle)
	}

	absPath := pattern
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(it.opts.Cwd, pattern)
	}

	info, err := os.Stat(absPath)
	if err == nil && info.IsDir() {
		return it.dispatchDirectory(pattern, absPath, handle)
	}
	if err == nil {
		return it.dispatchDirectFile(pattern, absPath, handle)
	}
	return nil
}

func (it *Iterator) dispatchGlob(pattern, normalized string, handle func(string, *configarray.ConfigArray, Flag) bool) error {
	// doublestar matches the full absolute path against the glob, so the
	// glob itself must be made absolute on the same basis.
	absGlob := normalized
	if !filepath.IsAbs(absGlob) {
		absGlob = filepath.ToSlash(filepath.Join(it.opts.Cwd, normalized))
	}

	prefix, tail := splitGlobPattern(absGlob)
	recursive := isRecursiveTail(tail)

	topDir := filepath.FromSlash(prefix)

	initial, err := it.opts.Resolver.Resolve(filepath.Join(topDir, "x"))
	if err != nil {
		return err
	}

	matcher := it.matcherFor(pattern)
	_, err = it.walk(topDir, initial, true, recursive, matcher, absGlob, handle)
	return err
}

func (it *Iterator) dispatchDirectory(pattern, absDir string, handle func(string, *configarray.ConfigArray, Flag) bool) error {
	initial, err := it.opts.Resolver.Resolve(filepath.Join(absDir, "x"))
	if err != nil {
		return err
	}
	matcher := it.matcherFor(pattern)
	_, err = it.walk(absDir, initial, true, true, matcher, "", handle)
	return err
}

func (it *Iterator) dispatchDirectFile(pattern, absPath string, handle func(string, *configarray.ConfigArray, Flag) bool) error {
	config, err := it.opts.Resolver.Resolve(absPath)
	if err != nil {
		return err
	}
	// A directly-named file always goes through the default (dotfile-
	// excluding) instance: the with-dotfiles selection only applies to the
	// glob/walk that originated a discovery, not to an explicit path.
	matcher := it.opts.DefaultIgnore
	rel, err := filepath.Rel(it.opts.Cwd, absPath)
	if err != nil {
		rel = absPath
	}
	ignored := matcher.Contains(filepath.ToSlash(rel), it.mode())

	flag := FlagNone
	if ignored {
		flag = FlagIgnored
	}
	handle(absPath, config, flag)
	return nil
}

// walk recursively visits dir, selecting files by globPattern (glob origin,
// matched against the absolute path) or the extension regex
// (directory origin, globPattern == ""). It returns false if the consumer
// halted mid-walk.
//
// isTop marks the walk's starting directory, whose own configuration layer
// was already loaded by the Ancestor Resolver into parentConfig
// (dispatchGlob/dispatchDirectory resolve it before calling walk). Loading
// it again here via Factory.LoadOnDirectory would concatenate a duplicate
// copy of that same layer, so the top directory reuses parentConfig as-is;
// only descendant directories visited during recursion load their own
// layer.
func (it *Iterator) walk(dir string, parentConfig *configarray.ConfigArray, isTop, recursive bool, matcher ignore.Matcher, globPattern string, handle func(string, *configarray.ConfigArray, Flag) bool) (bool, error) {
	relDir, err := filepath.Rel(it.opts.Cwd, dir)
	if err != nil {
		relDir = dir
	}
	relDirSlash := filepath.ToSlash(relDir)
	if relDirSlash != "." && relDirSlash != "" {
		if matcher.Contains(relDirSlash, it.mode()) {
			return true, nil
		}
	}

	config := parentConfig
	if !isTop {
		childArray, err := it.opts.Factory.LoadOnDirectory(dir, configfactory.LoadOnDirectoryOptions{Parent: parentConfig})
		if err != nil {
			return true, err
		}
		if childArray.Len() > 0 {
			config = configarray.Concat(parentConfig, childArray)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return true, err
	}

	names := make([]string, len(entries))
	isDirEntry := make(map[string]bool, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
		isDirEntry[e.Name()] = e.IsDir()
	}
	sort.Strings(names)

	for _, name := range names {
		full := filepath.Join(dir, name)

		if isDirEntry[name] {
			if !recursive {
				continue
			}
			cont, err := it.walk(full, config, false, recursive, matcher, globPattern, handle)
			if err != nil {
				return true, err
			}
			if !cont {
				return false, nil
			}
			continue
		}

		rel, err := filepath.Rel(it.opts.Cwd, full)
		if err != nil {
			rel = full
		}
		relSlash := filepath.ToSlash(rel)

		var selected bool
		if globPattern != "" {
			selected, _ = doublestar.Match(globPattern, filepath.ToSlash(full))
		} else {
			selected = it.extRe.MatchString(full)
		}
		if !selected {
			continue
		}

		ignored := matcher.Contains(relSlash, it.mode())
		flag := FlagNone
		if ignored {
			flag = FlagIgnoredSilently
		}
		if !handle(full, config, flag) {
			return false, nil
		}
	}

	return true, nil
}
