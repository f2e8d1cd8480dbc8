// Package proxy provides an embeddable base for core.Proxy implementations.
package proxy

import "github.com/dshills/mvcore/internal/facade"

// DefaultName is used when New is given an empty name.
const DefaultName = "Proxy"

// Proxy implements core.Proxy around an arbitrary data value.
type Proxy struct {
	facade.Notifier

	name string
	data any
}

// New creates a Proxy holding data.
func New(name string, data any) *Proxy {
	if name == "" {
		name = DefaultName
	}
	return &Proxy{name: name, data: data}
}

// ProxyName returns the registered name.
func (p *Proxy) ProxyName() string { return p.name }

// Data returns the held value.
func (p *Proxy) Data() any { return p.data }

// SetData replaces the held value.
func (p *Proxy) SetData(data any) { p.data = data }

// OnRegister does nothing.
func (p *Proxy) OnRegister() {}

// OnRemove does nothing.
func (p *Proxy) OnRemove() {}
