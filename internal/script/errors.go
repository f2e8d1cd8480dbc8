package script

import (
	"errors"
	"fmt"
)

// Script errors.
var (
	// ErrTimeout indicates a script ran past its execution timeout.
	ErrTimeout = errors.New("script: execution timeout")

	// ErrEmptySource indicates a script with no source was compiled.
	ErrEmptySource = errors.New("script: empty source")
)

// Error describes a failure compiling or running a script.
type Error struct {
	// Script is the script name.
	Script string

	// Op is the phase that failed: "read", "parse", "compile" or "run".
	Op string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("script %q: %s: %v", e.Script, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
