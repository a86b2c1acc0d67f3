package fileiter

import (
	"path/filepath"
	"regexp"
	"strings"
)

// globMetaChars are the characters that distinguish a glob pattern from a
// literal path.
const globMetaChars = "*?[{"

// isGlobPattern reports whether pattern contains an unescaped glob
// metacharacter. A backslash escapes the character immediately following
// it, so "foo\\*bar" is a literal path, not a glob.
func isGlobPattern(pattern string) bool {
	escaped := false
	for _, r := range pattern {
		if escaped {
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if strings.ContainsRune(globMetaChars, r) {
			return true
		}
	}
	return false
}

// splitGlobPattern splits a slash-normalized glob pattern into a non-glob
// parent prefix and the remaining glob tail. The prefix is the longest
// sequence of leading path segments containing no glob metacharacter.
func splitGlobPattern(pattern string) (prefix, tail string) {
	segments := strings.Split(pattern, "/")
	i := 0
	for ; i < len(segments); i++ {
		if isGlobPattern(segments[i]) {
			break
		}
	}
	prefix = strings.Join(segments[:i], "/")
	tail = strings.Join(segments[i:], "/")
	return prefix, tail
}

// isRecursiveTail reports whether a glob tail requires recursing into
// subdirectories: it contains "**" or any path separator.
func isRecursiveTail(tail string) bool {
	return strings.Contains(tail, "**") || strings.ContainsRune(tail, '/')
}

// dotfileOwnSegment matches a path segment of the form ".X" where X is
// neither a dot nor a slash, at the start of the pattern or right after a
// slash, i.e. a hidden entry at any level.
var dotfileOwnSegment = regexp.MustCompile(`(^|/)\.[^./]`)

// wantsDotfiles reports whether the originating pattern itself asks to see
// dotfiles: it begins with "." or contains a "/.[non-dot]" segment. When
// true, the File Iterator selects the "with-dotfiles" ignore instance for
// every entry this pattern discovers. A leading "./" is stripped first --
// it's an ordinary relative-path prefix, not a request to see dotfiles.
func wantsDotfiles(pattern string) bool {
	normalized := filepath.ToSlash(pattern)
	normalized = strings.TrimPrefix(normalized, "./")
	return strings.HasPrefix(normalized, ".") || dotfileOwnSegment.MatchString(normalized)
}
