package core

import (
	"sync"

	"github.com/dshills/mvcore/internal/logging"
)

// Model holds the proxies of one core. It is safe for concurrent use.
type Model struct {
	key     string
	mu      sync.RWMutex
	proxies map[string]Proxy
	bind    func(component any, key string)
	log     *logging.Logger
}

// NewModel creates an empty Model.
func NewModel(key string, opts ...Option) *Model {
	o := buildOptions(opts)
	return &Model{
		key:     key,
		proxies: make(map[string]Proxy),
		bind:    o.binder,
		log:     o.logger.WithCore(key).WithComponent("model"),
	}
}

// RegisterProxy stores p under its name, replacing any proxy already there,
// then calls p.OnRegister.
func (m *Model) RegisterProxy(p Proxy) error {
	if p == nil {
		return ErrNilProxy
	}

	m.bind(p, m.key)

	name := p.ProxyName()
	m.mu.Lock()
	_, replaced := m.proxies[name]
	m.proxies[name] = p
	m.mu.Unlock()

	m.log.Debug("proxy registered", "proxy", name, "replaced", replaced)
	p.OnRegister()
	return nil
}

// RetrieveProxy returns the proxy registered under name.
func (m *Model) RetrieveProxy(name string) (Proxy, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.proxies[name]
	return p, ok
}

// HasProxy reports whether a proxy is registered under name.
func (m *Model) HasProxy(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.proxies[name]
	return ok
}

// RemoveProxy unregisters the proxy under name and calls its OnRemove.
func (m *Model) RemoveProxy(name string) (Proxy, bool) {
	m.mu.Lock()
	p, ok := m.proxies[name]
	if ok {
		delete(m.proxies, name)
	}
	m.mu.Unlock()

	if !ok {
		return nil, false
	}

	m.log.Debug("proxy removed", "proxy", name)
	p.OnRemove()
	return p, true
}
