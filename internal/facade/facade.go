package facade

import (
	"github.com/dshills/mvcore/internal/core"
	"github.com/dshills/mvcore/internal/logging"
	"github.com/dshills/mvcore/internal/metrics"
	"github.com/dshills/mvcore/internal/observer"
)

// Facade is the single access point to one core.
type Facade struct {
	key        string
	view       *core.View
	controller *core.Controller
	model      *core.Model
	recorder   metrics.Recorder
	log        *logging.Logger
}

func newFacade(r *Registry, key string, o options) *Facade {
	coreOpts := o.coreOptions(r)
	view := core.NewView(key, coreOpts...)
	return &Facade{
		key:        key,
		view:       view,
		controller: core.NewController(key, view, coreOpts...),
		model:      core.NewModel(key, coreOpts...),
		recorder:   o.recorder,
		log:        o.logger.WithCore(key).WithComponent("facade"),
	}
}

// Key returns the core key.
func (f *Facade) Key() string { return f.key }

// View returns the core's View.
func (f *Facade) View() *core.View { return f.view }

// Controller returns the core's Controller.
func (f *Facade) Controller() *core.Controller { return f.controller }

// Model returns the core's Model.
func (f *Facade) Model() *core.Model { return f.model }

// RegisterCommand maps a notification name to a command factory.
func (f *Facade) RegisterCommand(name string, factory core.CommandFactory) error {
	return f.controller.RegisterCommand(name, factory)
}

// RemoveCommand unmaps a notification name.
func (f *Facade) RemoveCommand(name string) {
	f.controller.RemoveCommand(name)
}

// HasCommand reports whether a command is mapped to name.
func (f *Facade) HasCommand(name string) bool {
	return f.controller.HasCommand(name)
}

// RegisterProxy registers p, replacing any proxy with the same name.
func (f *Facade) RegisterProxy(p core.Proxy) error {
	return f.model.RegisterProxy(p)
}

// RetrieveProxy returns the proxy registered under name.
func (f *Facade) RetrieveProxy(name string) (core.Proxy, bool) {
	return f.model.RetrieveProxy(name)
}

// RemoveProxy unregisters the proxy under name.
func (f *Facade) RemoveProxy(name string) (core.Proxy, bool) {
	return f.model.RemoveProxy(name)
}

// HasProxy reports whether a proxy is registered under name.
func (f *Facade) HasProxy(name string) bool {
	return f.model.HasProxy(name)
}

// RegisterMediator registers m unless its name is already taken.
func (f *Facade) RegisterMediator(m core.Mediator) error {
	return f.view.RegisterMediator(m)
}

// RetrieveMediator returns the mediator registered under name.
func (f *Facade) RetrieveMediator(name string) (core.Mediator, bool) {
	return f.view.RetrieveMediator(name)
}

// RemoveMediator unregisters the mediator under name.
func (f *Facade) RemoveMediator(name string) (core.Mediator, bool) {
	return f.view.RemoveMediator(name)
}

// HasMediator reports whether a mediator is registered under name.
func (f *Facade) HasMediator(name string) bool {
	return f.view.HasMediator(name)
}

// RegisterObserver adds obs to the observers for name.
func (f *Facade) RegisterObserver(name string, obs *observer.Observer) {
	f.view.RegisterObserver(name, obs)
}

// RemoveObserver removes the observers for name bound to context.
func (f *Facade) RemoveObserver(name string, context any) {
	f.view.RemoveObserver(name, context)
}

// NotifyObservers dispatches n through the core.
func (f *Facade) NotifyObservers(n observer.Notification) error {
	return f.view.NotifyObservers(n)
}

// SendNotification builds a notification and dispatches it. The first
// failing observer's error is returned.
func (f *Facade) SendNotification(name string, body any, opts ...observer.NotificationOption) error {
	return f.NotifyObservers(observer.NewNotification(name, body, opts...))
}
