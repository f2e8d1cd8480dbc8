// Package mediator provides an embeddable base for core.Mediator
// implementations.
package mediator

import (
	"github.com/dshills/mvcore/internal/facade"
	"github.com/dshills/mvcore/internal/observer"
)

// DefaultName is used when New is given an empty name.
const DefaultName = "Mediator"

// Mediator implements core.Mediator with no interests and no-op hooks.
// Embed it and override what the concrete mediator needs.
type Mediator struct {
	facade.Notifier

	name          string
	viewComponent any
}

// New creates a Mediator for viewComponent.
func New(name string, viewComponent any) *Mediator {
	if name == "" {
		name = DefaultName
	}
	return &Mediator{name: name, viewComponent: viewComponent}
}

// MediatorName returns the registered name, or DefaultName for a Mediator
// built without New.
func (m *Mediator) MediatorName() string {
	if m.name == "" {
		return DefaultName
	}
	return m.name
}

// ViewComponent returns the wrapped view component.
func (m *Mediator) ViewComponent() any { return m.viewComponent }

// SetViewComponent replaces the wrapped view component.
func (m *Mediator) SetViewComponent(v any) { m.viewComponent = v }

// ListNotificationInterests returns no interests.
func (m *Mediator) ListNotificationInterests() []string { return nil }

// HandleNotification ignores n.
func (m *Mediator) HandleNotification(observer.Notification) error { return nil }

// OnRegister does nothing.
func (m *Mediator) OnRegister() {}

// OnRemove does nothing.
func (m *Mediator) OnRemove() {}
