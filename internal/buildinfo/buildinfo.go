// Package buildinfo holds build-time metadata injected via ldflags.
// cmd/lintcascade's main assigns these variables from its own
// ldflags-injected variables at startup, so values are injected there:
//
//	go build -ldflags "-X main.version=..." ./cmd/lintcascade
package buildinfo

import "runtime"

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
)

// OS returns the operating system (from runtime.GOOS).
func OS() string {
	return runtime.GOOS
}

// Arch returns the architecture (from runtime.GOARCH).
func Arch() string {
	return runtime.GOARCH
}
