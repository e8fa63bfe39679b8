package main

import "github.com/bytesradar/bytesradar/internal/core"

// exitError carries the process exit code alongside the error cobra
// prints, per §6's exit code table: 0 success, 1 generic, 2 invalid
// argument, 3 network error, 4 not found/branch access, 5 timeout.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitCodeForKind(kind core.ErrorKind) int {
	switch kind {
	case core.ErrInvalidReference:
		return 2
	case core.ErrNetworkError, core.ErrAuthError:
		return 3
	case core.ErrBranchAccessError:
		return 4
	case core.ErrTimeout:
		return 5
	case core.ErrCancelled, core.ErrCorruptArchive, core.ErrLimitExceeded:
		return 1
	default:
		return 1
	}
}

func exitCodeFor(err error) int {
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	return 1
}
