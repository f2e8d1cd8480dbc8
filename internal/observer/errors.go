package observer

import "errors"

// ErrInvalidBinding is returned when an observer is built without an
// invokable method or without a context.
var ErrInvalidBinding = errors.New("observer: invalid binding")
