package core

import "errors"

// Registry errors.
var (
	// ErrNilMediator indicates a nil mediator was registered.
	ErrNilMediator = errors.New("core: nil mediator")

	// ErrNilProxy indicates a nil proxy was registered.
	ErrNilProxy = errors.New("core: nil proxy")

	// ErrNilCommand indicates a nil command factory was registered or a
	// factory produced a nil command.
	ErrNilCommand = errors.New("core: nil command")
)
