package facade

import (
	"slices"
	"sync"

	"github.com/dshills/mvcore/internal/core"
)

// Registry maps core keys to their Facade. It is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	cores map[string]*Facade
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cores: make(map[string]*Facade),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package functions
// and by Notifier.
func Default() *Registry {
	return defaultRegistry
}

// GetInstance returns the Facade for key, creating the core if needed.
// Options are ignored when the core already exists.
func (r *Registry) GetInstance(key string, opts ...Option) *Facade {
	r.mu.Lock()
	if f, ok := r.cores[key]; ok {
		r.mu.Unlock()
		return f
	}

	o := buildOptions(opts)
	f := newFacade(r, key, o)
	r.cores[key] = f
	r.mu.Unlock()

	o.recorder.CoreCreated(key)
	f.log.Debug("core created")

	// Run without the lock so the initializer can use the registry.
	if o.initializer != nil {
		o.initializer(f)
	}
	return f
}

// Lookup returns the Facade for key without creating one.
func (r *Registry) Lookup(key string) (*Facade, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.cores[key]
	return f, ok
}

// HasCore reports whether a core exists for key.
func (r *Registry) HasCore(key string) bool {
	_, ok := r.Lookup(key)
	return ok
}

// RemoveCore forgets the core for key. Unknown keys are ignored.
func (r *Registry) RemoveCore(key string) {
	r.mu.Lock()
	f, ok := r.cores[key]
	if ok {
		delete(r.cores, key)
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	f.recorder.CoreRemoved(key)
	f.log.Debug("core removed")
}

// Keys returns the keys of all cores, sorted.
func (r *Registry) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.cores))
	for key := range r.cores {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// registryBinder is implemented by Notifier.
type registryBinder interface {
	bindRegistry(r *Registry)
}

// bind hands key and this registry to a component about to be registered or
// executed in one of its cores.
func (r *Registry) bind(component any, key string) {
	core.Bind(component, key)
	if rb, ok := component.(registryBinder); ok {
		rb.bindRegistry(r)
	}
}

// GetInstance returns the Facade for key from the default registry.
func GetInstance(key string, opts ...Option) *Facade {
	return defaultRegistry.GetInstance(key, opts...)
}

// Lookup returns the Facade for key from the default registry without
// creating one.
func Lookup(key string) (*Facade, bool) {
	return defaultRegistry.Lookup(key)
}

// HasCore reports whether the default registry has a core for key.
func HasCore(key string) bool {
	return defaultRegistry.HasCore(key)
}

// RemoveCore removes key from the default registry.
func RemoveCore(key string) {
	defaultRegistry.RemoveCore(key)
}

// Keys returns the core keys of the default registry.
func Keys() []string {
	return defaultRegistry.Keys()
}
