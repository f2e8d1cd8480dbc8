package observer

import "weak"

// Observer delivers notifications to a method of a context object. The context
// is held through a weak pointer so a registered observer never extends the
// lifetime of the component it reports to.
type Observer struct {
	notify  func(Notification) error
	matches func(any) bool
	alive   func() bool
	pin     func() *Observer
}

// New binds method to context. The method receives the live context on every
// notification and must not capture the context itself, otherwise the weak
// reference is pointless.
//
// It returns ErrInvalidBinding when method or context is nil.
func New[T any](method func(*T, Notification) error, context *T) (*Observer, error) {
	if method == nil || context == nil {
		return nil, ErrInvalidBinding
	}

	ref := weak.Make(context)

	return &Observer{
		notify: func(n Notification) error {
			ctx := ref.Value()
			if ctx == nil {
				// Context was collected while still linked; nothing to deliver to.
				return nil
			}
			return method(ctx, n)
		},
		matches: func(obj any) bool {
			p, ok := obj.(*T)
			return ok && p != nil && p == ref.Value()
		},
		alive: func() bool {
			return ref.Value() != nil
		},
		pin: func() *Observer {
			return pinned(method, ref.Value())
		},
	}, nil
}

// pinned returns an observer holding ctx strongly. A nil ctx yields an
// observer that delivers nothing.
func pinned[T any](method func(*T, Notification) error, ctx *T) *Observer {
	o := &Observer{
		notify: func(n Notification) error {
			if ctx == nil {
				return nil
			}
			return method(ctx, n)
		},
		matches: func(obj any) bool {
			p, ok := obj.(*T)
			return ok && p != nil && p == ctx
		},
		alive: func() bool {
			return ctx != nil
		},
	}
	o.pin = func() *Observer { return o }
	return o
}

// MustNew is like New but panics on an invalid binding.
func MustNew[T any](method func(*T, Notification) error, context *T) *Observer {
	o, err := New(method, context)
	if err != nil {
		panic(err)
	}
	return o
}

// NotifyObserver invokes the bound method with n. It returns nil without
// calling anything when the context is gone.
func (o *Observer) NotifyObserver(n Notification) error {
	return o.notify(n)
}

// CompareNotifyContext reports whether obj is the same object as this
// observer's context.
func (o *Observer) CompareNotifyContext(obj any) bool {
	return o.matches(obj)
}

// Alive reports whether the context is still reachable.
func (o *Observer) Alive() bool {
	return o.alive()
}

// Pin returns an observer bound to the same method and context that keeps
// the context reachable for as long as the returned observer is. Dispatch
// pins a snapshot before the first delivery so that nothing a handler
// removes can be collected before its turn.
func (o *Observer) Pin() *Observer {
	return o.pin()
}
