package app

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/dshills/mvcore/internal/config"
	"github.com/dshills/mvcore/internal/facade"
	"github.com/dshills/mvcore/internal/logging"
	"github.com/dshills/mvcore/internal/metrics"
	"github.com/dshills/mvcore/internal/observer"
)

// Application owns the cores built from a configuration.
type Application struct {
	registry *facade.Registry
	log      *logging.Logger
	prom     *metrics.Prometheus
	recorder metrics.Recorder

	mu       sync.Mutex
	cfg      *config.Config
	cores    []string
	shutdown bool
}

// New creates an Application for cfg. Logging and metrics are fixed here;
// Apply only rebuilds cores.
func New(cfg *config.Config, opts ...Option) (*Application, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Registry == nil {
		o.Registry = facade.Default()
	}

	logger := o.Logger
	if logger == nil {
		format, _ := logging.ParseFormat(cfg.Log.Format)
		logger = logging.New(logging.Config{
			Level:  logging.ParseLevel(cfg.Log.Level),
			Format: format,
			Output: o.LogOutput,
		})
	}

	a := &Application{
		registry: o.Registry,
		log:      logger.WithComponent("app"),
		recorder: metrics.Nop{},
		cfg:      cfg,
	}
	if cfg.Metrics.Enabled {
		a.prom = metrics.NewPrometheus(cfg.Metrics.Namespace)
		a.recorder = a.prom
	}
	return a, nil
}

// Bootstrap builds every configured core. On failure no core is left
// registered.
func (a *Application) Bootstrap() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.shutdown {
		return ErrShutdown
	}
	return a.build(a.cfg)
}

// Apply replaces the running cores with the ones described by cfg. Scripts
// are compiled before anything is torn down, so a broken configuration
// leaves the current cores running.
func (a *Application) Apply(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.shutdown {
		return ErrShutdown
	}

	plans, err := a.plan(cfg)
	if err != nil {
		return err
	}

	if cfg.Log != a.cfg.Log || cfg.Metrics != a.cfg.Metrics {
		a.log.Warn("log and metrics settings apply on restart only")
	}

	a.teardown()
	if err := a.install(plans, cfg.Dispatch); err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Info("configuration applied", "cores", len(a.cores))
	return nil
}

func (a *Application) build(cfg *config.Config) error {
	plans, err := a.plan(cfg)
	if err != nil {
		return err
	}
	if err := a.install(plans, cfg.Dispatch); err != nil {
		return err
	}
	a.log.Info("cores started", "cores", len(a.cores))
	return nil
}

// Send sends a notification through the core identified by key.
func (a *Application) Send(key, name string, body any, opts ...observer.NotificationOption) error {
	f, err := a.Facade(key)
	if err != nil {
		return err
	}
	if err := f.SendNotification(name, body, opts...); err != nil {
		return &SendError{Core: key, Notification: name, Err: err}
	}
	return nil
}

// Facade returns the facade of a managed core.
func (a *Application) Facade(key string) (*facade.Facade, error) {
	a.mu.Lock()
	managed := slices.Contains(a.cores, key)
	a.mu.Unlock()

	if !managed {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCore, key)
	}
	f, ok := a.registry.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q was removed", ErrUnknownCore, key)
	}
	return f, nil
}

// Keys returns the keys of the managed cores in configuration order.
func (a *Application) Keys() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return slices.Clone(a.cores)
}

// Config returns the configuration currently applied.
func (a *Application) Config() *config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.cfg
}

// Metrics returns the Prometheus recorder, or nil if metrics are disabled.
func (a *Application) Metrics() *metrics.Prometheus {
	return a.prom
}

// WriteMetrics writes the current metrics in the Prometheus text format.
// It writes nothing when metrics are disabled.
func (a *Application) WriteMetrics(w io.Writer) error {
	if a.prom == nil {
		return nil
	}
	return a.prom.WriteText(w)
}

// Shutdown removes every managed core. Later calls to Bootstrap or Apply
// fail with ErrShutdown.
func (a *Application) Shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.shutdown {
		return
	}
	a.shutdown = true
	a.teardown()
	a.log.Info("shut down")
}

// teardown removes the managed cores. Callers hold a.mu.
func (a *Application) teardown() {
	for _, key := range a.cores {
		a.registry.RemoveCore(key)
	}
	a.cores = nil
}
