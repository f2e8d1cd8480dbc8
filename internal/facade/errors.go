package facade

import "errors"

// Facade errors.
var (
	// ErrNotifierNotInitialized indicates a Notifier was used before a core
	// bound its key.
	ErrNotifierNotInitialized = errors.New("facade: notifier not initialized")

	// ErrCoreNotFound indicates the core a Notifier is bound to was removed.
	ErrCoreNotFound = errors.New("facade: core not found")
)
