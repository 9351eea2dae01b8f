package sriov

import (
	"errors"
)

// Failure classes. Every error returned by this package wraps one of them.
var (
	ErrUnreadable   = errors.New("unreadable attribute")
	ErrPrecondition = errors.New("precondition not met")
	ErrWrite        = errors.New("write failed")
)

// Error describes a failed operation on an interface.
type Error struct {
	// Kind is one of the failure classes.
	Kind error
	// Msg describes the operation that failed.
	Msg string
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}

	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}

	return []error{e.Kind}
}

// Exit codes per failure class.
const (
	ExitOK           = 0
	ExitUnreadable   = 2
	ExitPrecondition = 3
	ExitWrite        = 4
)

// ExitCode maps an error to the exit code of its failure class.
// Errors of no known class map to ExitOK.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUnreadable):
		return ExitUnreadable
	case errors.Is(err, ErrPrecondition):
		return ExitPrecondition
	case errors.Is(err, ErrWrite):
		return ExitWrite
	}

	return ExitOK
}

// IsClassified reports whether err belongs to one of the failure classes.
func IsClassified(err error) bool {
	return errors.Is(err, ErrUnreadable) || errors.Is(err, ErrPrecondition) || errors.Is(err, ErrWrite)
}
