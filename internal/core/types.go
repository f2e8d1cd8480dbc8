package core

import "github.com/dshills/mvcore/internal/observer"

// Mediator wraps a view component and reacts to the notifications it lists.
type Mediator interface {
	// MediatorName returns the unique name the mediator is registered under.
	MediatorName() string

	// ListNotificationInterests returns the notification names to observe.
	// It is read at registration and again at removal.
	ListNotificationInterests() []string

	// HandleNotification is called for every notification of interest.
	HandleNotification(n observer.Notification) error

	// OnRegister is called once after the mediator is registered.
	OnRegister()

	// OnRemove is called once after the mediator is removed.
	OnRemove()
}

// Proxy wraps a piece of application data.
type Proxy interface {
	// ProxyName returns the unique name the proxy is registered under.
	ProxyName() string

	// OnRegister is called after the proxy is registered.
	OnRegister()

	// OnRemove is called after the proxy is removed.
	OnRemove()
}

// Command is a stateless unit of work run once per matching notification.
type Command interface {
	Execute(n observer.Notification) error
}

// CommandFactory creates a fresh Command.
type CommandFactory func() Command

// CommandFunc adapts a function to the Command interface.
type CommandFunc func(n observer.Notification) error

// Execute calls f(n).
func (f CommandFunc) Execute(n observer.Notification) error {
	return f(n)
}

// Binder is implemented by components that need to know which core they
// belong to, typically by embedding facade.Notifier.
type Binder interface {
	InitializeNotifier(key string)
}

// Bind hands key to component if it implements Binder.
func Bind(component any, key string) {
	if b, ok := component.(Binder); ok {
		b.InitializeNotifier(key)
	}
}
