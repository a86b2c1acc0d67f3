// Package main is the entry point for the lintcascade CLI tool.
package main

import (
	"os"

	"github.com/lintcascade/lintcascade/internal/buildinfo"
	"github.com/lintcascade/lintcascade/internal/cli"
)

// Build-time metadata injected via ldflags; see internal/buildinfo.
var (
	version   = "dev"
	commit    = "none"
	date      = "unknown"
	goVersion = "unknown"
)

func main() {
	buildinfo.Version = version
	buildinfo.Commit = commit
	buildinfo.Date = date
	buildinfo.GoVersion = goVersion

	os.Exit(cli.Execute())
}
