package facade

import (
	"github.com/dshills/mvcore/internal/core"
	"github.com/dshills/mvcore/internal/dispatch"
	"github.com/dshills/mvcore/internal/logging"
	"github.com/dshills/mvcore/internal/metrics"
)

// Option configures a core when GetInstance creates it.
type Option func(*options)

type options struct {
	logger        *logging.Logger
	recorder      metrics.Recorder
	recoverPanics bool
	panicHandler  dispatch.PanicHandler
	initializer   func(*Facade)
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   logging.Nop(),
		recorder: metrics.Nop{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) coreOptions(r *Registry) []core.Option {
	return []core.Option{
		core.WithBinder(r.bind),
		core.WithLogger(o.logger),
		core.WithRecorder(o.recorder),
		core.WithPanicRecovery(o.recoverPanics),
		core.WithPanicHandler(o.panicHandler),
	}
}

// WithLogger sets the logger for the core's registries.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder for the core.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithPanicRecovery turns panics in observers into errors returned from
// SendNotification.
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

// WithInitializer sets a function run once on a newly created core, after
// it is visible in the registry. Typical use is registering the core's
// commands, proxies and mediators.
func WithInitializer(fn func(*Facade)) Option {
	return func(o *options) {
		o.initializer = fn
	}
}
