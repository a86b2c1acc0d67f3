package ignore

import "os"

// defaultPatterns are the built-in ignore patterns applied regardless of any
// user ignore file (sabhiram go-gitignore syntax). Dotfile exclusion is
// added separately in New so it can be toggled per Matcher instance.
var defaultPatterns = []string{
	".git/",
	"node_modules/",
	"bower_components/",
	"coverage/",
	"vendor/",
}

func statFile(path string) (os.FileInfo, error) {
	return os.Stat(path)
}
