package namelist

import (
	"errors"
	"fmt"
)

var (
	// ErrInputAccess matches every InputAccessError.
	ErrInputAccess = errors.New("input access error")

	// ErrOutputAccess matches every OutputAccessError.
	ErrOutputAccess = errors.New("output access error")

	// ErrNoJobs is returned by ProcessAll for an empty job list.
	ErrNoJobs = errors.New("no name lists to process")
)

// InputAccessError reports that the input list could not be opened or read.
type InputAccessError struct {
	Path  string
	Op    string
	Cause error
}

func (e *InputAccessError) Error() string {
	return fmt.Sprintf("cannot %s input %q: %v", e.Op, e.Path, e.Cause)
}

func (e *InputAccessError) Is(target error) bool {
	return target == ErrInputAccess
}

func (e *InputAccessError) Unwrap() error {
	return e.Cause
}

// OutputAccessError reports that the output list could not be created,
// written, flushed or closed.
type OutputAccessError struct {
	Path  string
	Op    string
	Cause error
}

func (e *OutputAccessError) Error() string {
	return fmt.Sprintf("cannot %s output %q: %v", e.Op, e.Path, e.Cause)
}

func (e *OutputAccessError) Is(target error) bool {
	return target == ErrOutputAccess
}

func (e *OutputAccessError) Unwrap() error {
	return e.Cause
}

func newInputError(path, op string, cause error) error {
	return &InputAccessError{Path: path, Op: op, Cause: cause}
}

func newOutputError(path, op string, cause error) error {
	return &OutputAccessError{Path: path, Op: op, Cause: cause}
}
