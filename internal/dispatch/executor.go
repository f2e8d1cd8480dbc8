package dispatch

import (
	"runtime/debug"
	"time"

	"github.com/dshills/mvcore/internal/metrics"
	"github.com/dshills/mvcore/internal/observer"
)

// Result is the outcome of one observer delivery.
type Result struct {
	// Err is the observer's error, or a *PanicError when a panic was recovered.
	Err error

	// Panicked is true if the observer panicked and the panic was recovered.
	Panicked bool

	// Duration is how long the observer ran.
	Duration time.Duration
}

// IsSuccess returns true if the observer completed without error or panic.
func (r Result) IsSuccess() bool {
	return r.Err == nil && !r.Panicked
}

// PanicHandler is called with a recovered panic before it is turned into an error.
type PanicHandler func(n observer.Notification, recovered any, stack []byte)

// Executor runs observers for one core.
type Executor struct {
	core         string
	recover      bool
	recorder     metrics.Recorder
	panicHandler PanicHandler
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithPanicRecovery turns observer panics into *PanicError results.
func WithPanicRecovery(enabled bool) ExecutorOption {
	return func(e *Executor) {
		e.recover = enabled
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) ExecutorOption {
	return func(e *Executor) {
		if r != nil {
			e.recorder = r
		}
	}
}

// WithPanicHandler sets a callback for recovered panics.
// It only fires when panic recovery is enabled.
func WithPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		e.panicHandler = h
	}
}

// NewExecutor creates an executor that labels its metrics with core.
func NewExecutor(core string, opts ...ExecutorOption) *Executor {
	e := &Executor{
		core:     core,
		recorder: metrics.Nop{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RecoversPanics reports whether panic recovery is enabled.
func (e *Executor) RecoversPanics() bool {
	return e.recover
}

// Execute delivers n to a single observer.
func (e *Executor) Execute(n observer.Notification, o *observer.Observer) (result Result) {
	start := time.Now()
	completed := false

	defer func() {
		result.Duration = time.Since(start)

		if !completed && e.recover {
			if r := recover(); r != nil {
				stack := debug.Stack()
				result.Panicked = true
				result.Err = &PanicError{Value: r, Stack: stack}
				if e.panicHandler != nil {
					e.panicHandler(n, r, stack)
				}
			}
		}

		// A panic that is not recovered still counts as a failed delivery.
		err := result.Err
		if !completed && err == nil {
			err = ErrObserverPanic
		}
		e.recorder.ObserverNotified(e.core, n.Name(), result.Duration, err)
	}()

	result.Err = o.NotifyObserver(n)
	completed = true
	return result
}

// Deliver notifies every observer in snapshot in order and stops at the first
// failure, which is returned wrapped in an *ObserverError. Every context in
// the snapshot is pinned for the whole pass.
func (e *Executor) Deliver(n observer.Notification, snapshot []*observer.Observer) error {
	e.recorder.NotificationSent(e.core, n.Name())

	pinned := make([]*observer.Observer, len(snapshot))
	for i, o := range snapshot {
		pinned[i] = o.Pin()
	}

	for i, o := range pinned {
		result := e.Execute(n, o)
		if !result.IsSuccess() {
			return &ObserverError{Notification: n.Name(), Index: i, Err: result.Err}
		}
	}
	return nil
}
