// Package ignore implements the ignore predicate external collaborator: a
// path matcher that answers whether a given path should be excluded from
// discovery, with a "default-patterns-only" mode for the case where a caller
// named a file directly and the ignore flag is off.
package ignore

import (
	"log/slog"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Mode selects which pattern sources Contains consults.
type Mode int

const (
	// ModeAll consults every loaded source: built-in defaults, the ignore
	// file, and any inline patterns.
	ModeAll Mode = iota
	// ModeDefault consults only the built-in default patterns, used when a
	// file was named directly on the command line and --no-ignore was given:
	// user ignore files must not silently swallow an explicitly named file,
	// but the built-in defaults (dotfiles, .git, node_modules) still apply.
	ModeDefault
)

// Matcher is the ignore predicate contract: Contains(path, mode) -> bool.
type Matcher interface {
	Contains(path string, mode Mode) bool
}

// Options configures a Matcher.
type Options struct {
	// Cwd is the directory ignore-file paths are resolved relative to.
	Cwd string
	// IgnorePath is an explicit ignore-file path (".lintcascadeignore" found
	// by convention if empty and present in Cwd).
	IgnorePath string
	// IgnorePatterns are additional inline patterns (CLI --ignore-pattern).
	IgnorePatterns []string
	// Dotfiles, when true, excludes the built-in "exclude all dotfiles" rule
	// so paths like ".foo.js" are not filtered by default.
	Dotfiles bool
}

// compiled wraps the three pattern sources a Matcher draws on.
type compiled struct {
	defaults *gitignore.GitIgnore
	fromFile *gitignore.GitIgnore
	inline   *gitignore.GitIgnore
	hasFile  bool
	logger   *slog.Logger
}

// New builds a Matcher honoring opts. Two long-lived instances are expected
// to be constructed by the facade: one with opts.Dotfiles=false (the
// default) and one with opts.Dotfiles=true, selected per-pattern at the File
// Iterator level -- switching a Dotfiles flag per call would not
// preserve the user's own ignore-file patterns, which is why two full
// instances exist rather than one parameterized one.
func New(opts Options) (Matcher, error) {
	logger := slog.Default().With("component", "ignore")

	defaultLines := append([]string{}, defaultPatterns...)
	if !opts.Dotfiles {
		defaultLines = append(defaultLines, ".*")
	}
	defaults := gitignore.CompileIgnoreLines(defaultLines...)

	c := &compiled{defaults: defaults, logger: logger}

	ignoreFile := opts.IgnorePath
	if ignoreFile == "" {
		candidate := filepath.Join(opts.Cwd, ".lintcascadeignore")
		if fileExists(candidate) {
			ignoreFile = candidate
		}
	}
	if ignoreFile != "" {
		m, err := gitignore.CompileIgnoreFile(ignoreFile)
		if err == nil {
			c.fromFile = m
			c.hasFile = true
		} else {
			logger.Debug("ignore file unreadable, skipping", "path", ignoreFile, "error", err)
		}
	}

	if len(opts.IgnorePatterns) > 0 {
		c.inline = gitignore.CompileIgnoreLines(opts.IgnorePatterns...)
	}

	return c, nil
}

func (c *compiled) Contains(path string, mode Mode) bool {
	normalized := normalize(path)
	if normalized == "" {
		return false
	}

	if c.defaults.MatchesPath(normalized) {
		return true
	}
	if mode == ModeDefault {
		return false
	}
	if c.hasFile && c.fromFile.MatchesPath(normalized) {
		return true
	}
	if c.inline != nil && c.inline.MatchesPath(normalized) {
		return true
	}
	return false
}

func normalize(path string) string {
	p := filepath.ToSlash(path)
	p = strings.TrimPrefix(p, "./")
	if p == "." {
		return ""
	}
	return p
}

func fileExists(path string) bool {
	_, err := statFile(path)
	return err == nil
}
