package fileiter

import (
	"regexp"
	"strings"
)

// BuildExtensionRegex compiles the configured file extensions into the
// regex used to select files discovered by a plain directory walk (as
// opposed to glob-origin selection, which matches the glob itself).
func BuildExtensionRegex(extensions []string) *regexp.Regexp {
	if len(extensions) == 0 {
		extensions = []string{".js"}
	}
	parts := make([]string, len(extensions))
	for i, ext := range extensions {
		e := ext
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		parts[i] = regexp.QuoteMeta(e)
	}
	return regexp.MustCompile(`(?:` + strings.Join(parts, "|") + `)$`)
}
