package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnsupportedFormat indicates a file extension other than .toml,
	// .yaml or .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrInvalid is matched by every *ValidationError.
	ErrInvalid = errors.New("config: invalid configuration")
)

// ParseError represents an error while decoding a configuration file.
type ParseError struct {
	// Path is the file that failed to decode.
	Path string
	// Err is the decoder's error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes one invalid setting.
type ValidationError struct {
	// Path is the setting path, e.g. "cores[1].commands[0].notification".
	Path string
	// Message describes the problem.
	Message string
	// Value is the offending value, if any.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("invalid %s: %s (got %v)", e.Path, e.Message, e.Value)
	}
	return fmt.Sprintf("invalid %s: %s", e.Path, e.Message)
}

// Is allows errors.Is to match ValidationError with ErrInvalid.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}
