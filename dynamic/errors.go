package dynamic

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrTooManySteps is wrapped when a path exceeds Config.MaxSteps.
	ErrTooManySteps = errors.New("too many steps")
	// ErrNilLogger is returned by WithLogger(nil).
	ErrNilLogger = errors.New("dynamic: logger must not be nil")
	// ErrInvalidMaxSteps is returned for a negative step limit.
	ErrInvalidMaxSteps = errors.New("dynamic: max steps must not be negative")
	// ErrLossyNumber is wrapped by the TypeError raised when a number does
	// not fit the numeric slot it is written to.
	ErrLossyNumber = errors.New("number does not fit without loss")
)

// SyntaxError reports a path expression that cannot be compiled.
type SyntaxError struct {
	Expr string
	Pos  int
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("dynamic: invalid path %q at offset %d: %s", e.Expr, e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// TypeError is the panic value raised when an update has to write into a
// value that cannot hold the result, such as a field on a number or a string
// into an int slot. Reads never raise it.
type TypeError struct {
	Op    string
	Key   string
	Type  reflect.Type
	Value any
	Err   error
}

func (e *TypeError) Error() string {
	msg := fmt.Sprintf("dynamic: cannot %s %q on %v", e.Op, e.Key, e.Type)
	if e.Value != nil {
		msg += fmt.Sprintf(" with %T", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TypeError) Unwrap() error {
	return e.Err
}
