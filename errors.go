package lintcascade

import "github.com/lintcascade/lintcascade/internal/lcerrors"

// Error is the structured error type an Enumerator's operations return: a
// stable Code plus a rendered MessageTemplate/MessageData pair an enclosing
// CLI can use to report or localize the failure.
type Error = lcerrors.Error

// Code identifies the class of failure.
type Code = lcerrors.Code

const (
	CodeFileNotFound    = lcerrors.CodeFileNotFound
	CodeAllFilesIgnored = lcerrors.CodeAllFilesIgnored
	CodeNoConfigFound   = lcerrors.CodeNoConfigFound
)
