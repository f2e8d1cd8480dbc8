// Package app builds and runs the cores described by a configuration.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrUnknownCore indicates a core key the application does not manage.
	ErrUnknownCore = errors.New("app: unknown core")

	// ErrCoreExists indicates a configured core key is already in use in the
	// registry by something else.
	ErrCoreExists = errors.New("app: core already exists")

	// ErrShutdown indicates the application was shut down.
	ErrShutdown = errors.New("app: shut down")
)

// InitError represents a failure building part of the application.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// SendError describes a notification that failed in a core.
type SendError struct {
	Core         string
	Notification string
	Err          error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send %s to core %s: %v", e.Notification, e.Core, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}
