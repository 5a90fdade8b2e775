package civix

import (
	"errors"
)

// reportedError marks an error whose message is already part of the
// rendered report. The process still exits non-zero.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err has already been shown to the user
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
