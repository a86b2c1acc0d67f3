package cli

import (
	"os"

	lintcascade "github.com/lintcascade/lintcascade"
)

// newEnumerator constructs an Enumerator from the currently resolved tool
// settings and the process's working/home directories.
func newEnumerator() (*lintcascade.Enumerator, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	home, _ := os.UserHomeDir()

	return lintcascade.New(lintcascade.Options{
		Cwd:            cwd,
		Home:           home,
		UseEslintrc:    !settings.NoEslintrc,
		IgnoreEnabled:  !settings.NoIgnore,
		GlobInputPaths: !settings.NoGlob,
		IgnorePath:     settings.IgnorePath,
		IgnorePatterns: settings.IgnorePatterns,
		Extensions:     settings.Extensions,
		RuleDirs:       settings.RuleDirs,
		ConfigFile:     settings.ConfigFile,
	})
}
