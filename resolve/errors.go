package resolve

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a malformed query. It is always raised before
// any filesystem access. Check with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// FilesystemError wraps a failure to list or stat files during resolution.
// The resolver never retries; the caller decides whether to.
type FilesystemError struct {
	Op   string // "walk", "stat" or "rel"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
