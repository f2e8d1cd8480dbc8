package app

import (
	"io"

	"github.com/dshills/mvcore/internal/facade"
	"github.com/dshills/mvcore/internal/logging"
)

// Options configures an Application.
type Options struct {
	// Registry holds the cores. Defaults to facade.Default().
	Registry *facade.Registry

	// Logger overrides the logger built from the configuration.
	Logger *logging.Logger

	// LogOutput is where the configured logger writes. Defaults to os.Stderr.
	LogOutput io.Writer
}

// Option configures an Application.
type Option func(*Options)

// WithRegistry sets the core registry.
func WithRegistry(r *facade.Registry) Option {
	return func(o *Options) {
		o.Registry = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithLogOutput sets where the configured logger writes.
func WithLogOutput(w io.Writer) Option {
	return func(o *Options) {
		o.LogOutput = w
	}
}
