package facade

import (
	"github.com/dshills/mvcore/internal/core"
	"github.com/dshills/mvcore/internal/observer"
)

// Notifier is embedded by commands, mediators and proxies that send
// notifications through their own core. The registries bind it through
// InitializeNotifier; until then its methods fail with
// ErrNotifierNotInitialized.
//
// A Notifier bound only through InitializeNotifier resolves its core in the
// default registry.
type Notifier struct {
	key      string
	registry *Registry
}

// InitializeNotifier binds the notifier to the core identified by key.
func (n *Notifier) InitializeNotifier(key string) {
	n.key = key
}

func (n *Notifier) bindRegistry(r *Registry) {
	n.registry = r
}

// BindComponent binds component to the same core as n, so commands built
// by a command run in the caller's core.
func (n *Notifier) BindComponent(component any) {
	if n.registry != nil {
		n.registry.bind(component, n.key)
		return
	}
	core.Bind(component, n.key)
}

// MultitonKey returns the bound core key, or "" if unbound.
func (n *Notifier) MultitonKey() string {
	return n.key
}

// Facade returns the bound core. It never creates a core; if the core was
// removed it returns ErrCoreNotFound.
func (n *Notifier) Facade() (*Facade, error) {
	if n.key == "" {
		return nil, ErrNotifierNotInitialized
	}
	r := n.registry
	if r == nil {
		r = defaultRegistry
	}
	f, ok := r.Lookup(n.key)
	if !ok {
		return nil, ErrCoreNotFound
	}
	return f, nil
}

// SendNotification sends a notification through the bound core.
func (n *Notifier) SendNotification(name string, body any, opts ...observer.NotificationOption) error {
	f, err := n.Facade()
	if err != nil {
		return err
	}
	return f.SendNotification(name, body, opts...)
}
