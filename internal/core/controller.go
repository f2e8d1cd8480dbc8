package core

import (
	"fmt"
	"sync"

	"github.com/dshills/mvcore/internal/logging"
	"github.com/dshills/mvcore/internal/metrics"
	"github.com/dshills/mvcore/internal/observer"
)

// Controller maps notification names to command factories for one core.
// It is safe for concurrent use.
type Controller struct {
	key      string
	view     *View
	mu       sync.RWMutex
	commands map[string]CommandFactory
	recorder metrics.Recorder
	bind     func(component any, key string)
	log      *logging.Logger
}

// NewController creates a Controller that registers its observers with view.
func NewController(key string, view *View, opts ...Option) *Controller {
	o := buildOptions(opts)
	return &Controller{
		key:      key,
		view:     view,
		commands: make(map[string]CommandFactory),
		recorder: o.recorder,
		bind:     o.binder,
		log:      o.logger.WithCore(key).WithComponent("controller"),
	}
}

// RegisterCommand maps name to factory. The first registration for a name
// adds one observer to the View; later registrations only swap the factory,
// which takes effect for every dispatch that reaches the controller after
// this call returns.
func (c *Controller) RegisterCommand(name string, factory CommandFactory) error {
	if factory == nil {
		return ErrNilCommand
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, exists := c.commands[name]
	c.commands[name] = factory
	if !exists {
		c.view.RegisterObserver(name, observer.MustNew((*Controller).ExecuteCommand, c))
	}

	c.log.Debug("command registered", "notification", name, "replaced", exists)
	return nil
}

// ExecuteCommand creates and runs the command mapped to n.Name(). It does
// nothing if no command is mapped.
func (c *Controller) ExecuteCommand(n observer.Notification) error {
	c.mu.RLock()
	factory, ok := c.commands[n.Name()]
	c.mu.RUnlock()
	if !ok {
		return nil
	}

	cmd := factory()
	if cmd == nil {
		err := fmt.Errorf("%w: factory for %q", ErrNilCommand, n.Name())
		c.recorder.CommandExecuted(c.key, n.Name(), err)
		return err
	}

	c.bind(cmd, c.key)
	err := cmd.Execute(n)
	c.recorder.CommandExecuted(c.key, n.Name(), err)
	if err != nil {
		c.log.Debug("command failed", "notification", n.Name(), "error", err)
	}
	return err
}

// HasCommand reports whether a command is mapped to name.
func (c *Controller) HasCommand(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.commands[name]
	return ok
}

// RemoveCommand unmaps name and removes the controller's observer for it.
func (c *Controller) RemoveCommand(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.commands[name]; !ok {
		return
	}
	delete(c.commands, name)
	c.view.RemoveObserver(name, c)

	c.log.Debug("command removed", "notification", name)
}
