// Package fileiter implements the File Iterator: it expands each
// input pattern into a lazy sequence of (path, config, flag) triples by
// dispatching to glob, directory-walk, or single-file strategies, honoring
// the ignore system and deduplicating across a single Iterate call.
package fileiter

import "github.com/lintcascade/lintcascade/internal/configarray"

// Flag classifies why an entry was (or wasn't) selected.
type Flag int

const (
	// FlagNone marks a target file: process it.
	FlagNone Flag = iota
	// FlagIgnoredSilently marks a glob/walk-discovered file that matched an
	// ignore rule; it is dropped before reaching the caller but still counts
	// toward the "found anything at all" bookkeeping for AllFilesIgnored.
	FlagIgnoredSilently
	// FlagIgnored marks a file the caller named directly that turned out to
	// be ignored; the caller must be told via Entry.Flag rather than the
	// entry being dropped silently.
	FlagIgnored
)

// Entry is one (path, config, flag) triple produced by the File Iterator.
type Entry struct {
	FilePath string
	Config   *configarray.ConfigArray
	Flag     Flag
}
