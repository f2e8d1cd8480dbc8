package core

import (
	"github.com/dshills/mvcore/internal/dispatch"
	"github.com/dshills/mvcore/internal/logging"
	"github.com/dshills/mvcore/internal/metrics"
)

// Option configures a View, Controller or Model.
type Option func(*options)

type options struct {
	logger        *logging.Logger
	recorder      metrics.Recorder
	recoverPanics bool
	panicHandler  dispatch.PanicHandler
	binder        func(component any, key string)
}

func defaultOptions() options {
	return options{
		logger:   logging.Nop(),
		recorder: metrics.Nop{},
		binder:   Bind,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithPanicRecovery makes the View recover panicking observers and report
// them as errors. It has no effect on Controller or Model.
func WithPanicRecovery(enabled bool) Option {
	return func(o *options) {
		o.recoverPanics = enabled
	}
}

// WithPanicHandler sets a callback for recovered observer panics.
func WithPanicHandler(h dispatch.PanicHandler) Option {
	return func(o *options) {
		o.panicHandler = h
	}
}

// WithBinder replaces Bind as the hook that hands the core key to mediators,
// proxies and commands before they run.
func WithBinder(fn func(component any, key string)) Option {
	return func(o *options) {
		if fn != nil {
			o.binder = fn
		}
	}
}
