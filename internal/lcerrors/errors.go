// Package lcerrors defines the structured error taxonomy surfaced to
// callers of the enumerator: each error carries a stable, machine-readable
// Code plus a MessageTemplate/MessageData pair so an enclosing CLI can
// render a localized message and map the failure to a process exit code.
package lcerrors

import "fmt"

// Code identifies the class of failure, for programmatic filtering by
// callers. A string code rather than a process exit code, since this
// package has no process-exit concept of its own -- the CLI layer maps
// Code to an exit status.
type Code string

const (
	CodeFileNotFound     Code = "file-not-found"
	CodeAllFilesIgnored  Code = "all-files-ignored"
	CodeNoConfigFound    Code = "no-config-found"
)

// Error is the structured error type returned by the enumerator facade.
type Error struct {
	Code            Code
	MessageTemplate string
	MessageData     map[string]any
	Err             error
}

// Error renders MessageTemplate, which is already fully rendered at
// construction time (see NewNoFilesFound etc.) rather than containing
// placeholders -- MessageData is carried alongside for callers that want to
// re-render the message in another locale.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.MessageTemplate, e.Err)
	}
	return e.MessageTemplate
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewNoFilesFound builds the NoFilesFound error. globDisabled is true iff
// pattern was a glob pattern but the enumerator was configured with
// globInputPaths=false.
func NewNoFilesFound(pattern string, globDisabled bool) *Error {
	msg := fmt.Sprintf("No files matching '%s' were found.", pattern)
	if globDisabled {
		msg = fmt.Sprintf("No files matching '%s' were found (glob was disabled).", pattern)
	}
	return &Error{
		Code:            CodeFileNotFound,
		MessageTemplate: msg,
		MessageData: map[string]any{
			"pattern":      pattern,
			"globDisabled": globDisabled,
		},
	}
}

// NewAllFilesIgnored builds the AllFilesIgnored error.
func NewAllFilesIgnored(pattern string) *Error {
	return &Error{
		Code:            CodeAllFilesIgnored,
		MessageTemplate: fmt.Sprintf("All files matched by '%s' are ignored.", pattern),
		MessageData: map[string]any{
			"pattern": pattern,
		},
	}
}

// NewConfigurationNotFound builds the ConfigurationNotFound error.
func NewConfigurationNotFound(dir string) *Error {
	return &Error{
		Code:            CodeNoConfigFound,
		MessageTemplate: fmt.Sprintf("No lintcascade configuration found on %s.", dir),
		MessageData: map[string]any{
			"directoryPath": dir,
		},
	}
}
