package dispatch

import (
	"errors"
	"fmt"
)

// ErrObserverPanic is matched by errors.Is for every *PanicError.
var ErrObserverPanic = errors.New("dispatch: observer panicked")

// ObserverError wraps a failure from one observer with its position in the
// dispatch pass.
type ObserverError struct {
	// Notification is the name of the notification being delivered.
	Notification string

	// Index is the observer's position in the snapshot.
	Index int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ObserverError) Error() string {
	return fmt.Sprintf("dispatch %q: observer %d: %v", e.Notification, e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *ObserverError) Unwrap() error {
	return e.Err
}

// PanicError wraps a recovered panic value as an error.
type PanicError struct {
	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("observer panic: %v", e.Value)
}

// Is allows errors.Is to match PanicError with ErrObserverPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrObserverPanic
}
