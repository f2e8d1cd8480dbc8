package core

import (
	"reflect"
	"slices"
	"sync"

	"github.com/dshills/mvcore/internal/dispatch"
	"github.com/dshills/mvcore/internal/logging"
	"github.com/dshills/mvcore/internal/observer"
)

// mediatorEntry is the observer context for a registered mediator. The View
// holds it strongly for as long as the mediator is registered.
type mediatorEntry struct {
	mediator Mediator
}

func (e *mediatorEntry) handle(n observer.Notification) error {
	return e.mediator.HandleNotification(n)
}

// View owns the mediators and observer lists of one core.
// It is safe for concurrent use.
type View struct {
	key       string
	mu        sync.RWMutex
	observers map[string][]*observer.Observer
	mediators map[string]*mediatorEntry
	exec      *dispatch.Executor
	bind      func(component any, key string)
	log       *logging.Logger
}

// NewView creates an empty View for the core identified by key.
func NewView(key string, opts ...Option) *View {
	o := buildOptions(opts)
	return &View{
		key:       key,
		observers: make(map[string][]*observer.Observer),
		mediators: make(map[string]*mediatorEntry),
		exec: dispatch.NewExecutor(key,
			dispatch.WithRecorder(o.recorder),
			dispatch.WithPanicRecovery(o.recoverPanics),
			dispatch.WithPanicHandler(o.panicHandler),
		),
		bind: o.binder,
		log:  o.logger.WithCore(key).WithComponent("view"),
	}
}

// Key returns the core key.
func (v *View) Key() string {
	return v.key
}

// RegisterObserver appends obs to the list for name. The same context may be
// registered more than once and is then notified once per registration.
func (v *View) RegisterObserver(name string, obs *observer.Observer) {
	if obs == nil {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.observers[name] = append(v.observers[name], obs)
}

// RemoveObserver removes every observer for name whose context is context.
// A registered mediator may be passed as context to drop its observer for
// name. The remaining observers keep their order.
func (v *View) RemoveObserver(name string, context any) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if entry := v.entryForLocked(context); entry != nil {
		v.removeObserverLocked(name, entry)
	}
	v.removeObserverLocked(name, context)
}

// entryForLocked returns the entry wrapping context when context is a
// registered mediator. It compares identities only and runs no mediator code.
func (v *View) entryForLocked(context any) *mediatorEntry {
	if _, ok := context.(Mediator); !ok {
		return nil
	}
	if t := reflect.TypeOf(context); !t.Comparable() {
		return nil
	}
	for _, entry := range v.mediators {
		if any(entry.mediator) == context {
			return entry
		}
	}
	return nil
}

func (v *View) removeObserverLocked(name string, context any) {
	list, ok := v.observers[name]
	if !ok {
		return
	}

	// Build a new slice; in-flight snapshots share nothing with it.
	kept := make([]*observer.Observer, 0, len(list))
	for _, obs := range list {
		if !obs.CompareNotifyContext(context) {
			kept = append(kept, obs)
		}
	}

	if len(kept) == 0 {
		delete(v.observers, name)
		return
	}
	v.observers[name] = kept
}

// NotifyObservers delivers n to a snapshot of the observers registered for
// n.Name(). Unobserved names are ignored. The first failing observer ends
// the pass and its error is returned.
func (v *View) NotifyObservers(n observer.Notification) error {
	v.mu.RLock()
	snapshot := slices.Clone(v.observers[n.Name()])
	v.mu.RUnlock()

	if len(snapshot) == 0 {
		return nil
	}

	if err := v.exec.Deliver(n, snapshot); err != nil {
		v.log.Warn("dispatch failed", "notification", n.Name(), "id", n.ID(), "error", err)
		return err
	}
	return nil
}

// HasObservers reports whether any observer is registered for name.
func (v *View) HasObservers(name string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.observers[name]) > 0
}

// RegisterMediator registers m under its name. If the name is taken the call
// does nothing and the existing mediator stays in place.
//
// The mediator's interests are read before it becomes visible, so a mediator
// whose binding or interest list fails is never left half registered.
func (v *View) RegisterMediator(m Mediator) error {
	if m == nil {
		return ErrNilMediator
	}

	name := m.MediatorName()
	if v.HasMediator(name) {
		v.log.Debug("mediator already registered", "mediator", name)
		return nil
	}

	// User code runs without the lock held.
	v.bind(m, v.key)
	interests := m.ListNotificationInterests()

	entry := &mediatorEntry{mediator: m}
	obs := observer.MustNew((*mediatorEntry).handle, entry)

	v.mu.Lock()
	if _, exists := v.mediators[name]; exists {
		v.mu.Unlock()
		v.log.Debug("mediator already registered", "mediator", name)
		return nil
	}
	v.mediators[name] = entry
	for _, interest := range interests {
		v.observers[interest] = append(v.observers[interest], obs)
	}
	v.mu.Unlock()

	v.log.Debug("mediator registered", "mediator", name, "interests", interests)
	m.OnRegister()
	return nil
}

// RetrieveMediator returns the mediator registered under name.
func (v *View) RetrieveMediator(name string) (Mediator, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	entry, ok := v.mediators[name]
	if !ok {
		return nil, false
	}
	return entry.mediator, true
}

// HasMediator reports whether a mediator is registered under name.
func (v *View) HasMediator(name string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, ok := v.mediators[name]
	return ok
}

// RemoveMediator unregisters the mediator under name, removes its observers
// for every name in its current interest list and calls OnRemove. It returns
// the removed mediator, or false if none was registered.
func (v *View) RemoveMediator(name string) (Mediator, bool) {
	v.mu.RLock()
	entry, ok := v.mediators[name]
	v.mu.RUnlock()
	if !ok {
		return nil, false
	}

	interests := entry.mediator.ListNotificationInterests()

	v.mu.Lock()
	if v.mediators[name] != entry {
		// Removed or replaced concurrently.
		v.mu.Unlock()
		return nil, false
	}
	for _, interest := range interests {
		v.removeObserverLocked(interest, entry)
	}
	delete(v.mediators, name)
	v.mu.Unlock()

	v.log.Debug("mediator removed", "mediator", name)
	entry.mediator.OnRemove()
	return entry.mediator, true
}

// MediatorNames returns the names of all registered mediators, sorted.
func (v *View) MediatorNames() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	names := make([]string, 0, len(v.mediators))
	for name := range v.mediators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
