package workspace

import "errors"

// Sentinel errors for precondition failures. Callers match them with
// errors.Is; the wrapped message always carries the offending path.
var (
	ErrNotFound      = errors.New("not found")
	ErrNotADirectory = errors.New("not a directory")
	ErrIsADirectory  = errors.New("is a directory")
)
