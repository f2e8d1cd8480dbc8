package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/mvcore/internal/config"
	"github.com/dshills/mvcore/internal/core"
	"github.com/dshills/mvcore/internal/facade"
	"github.com/dshills/mvcore/internal/observer"
	"github.com/dshills/mvcore/internal/pattern/proxy"
	"github.com/dshills/mvcore/internal/script"
)

// corePlan is a core ready to install: every script is already compiled.
type corePlan struct {
	key      string
	proxies  []config.ProxyConfig
	commands []commandPlan
}

type commandPlan struct {
	notification string
	factory      core.CommandFactory
}

// plan compiles every command in cfg. Callers hold a.mu.
func (a *Application) plan(cfg *config.Config) ([]corePlan, error) {
	plans := make([]corePlan, 0, len(cfg.Cores))

	for _, cc := range cfg.Cores {
		if a.registry.HasCore(cc.Key) && !slices.Contains(a.cores, cc.Key) {
			return nil, &InitError{Component: "core " + cc.Key, Err: ErrCoreExists}
		}

		p := corePlan{key: cc.Key, proxies: cc.Proxies}
		for _, cmd := range cc.Commands {
			factory, err := a.compile(cc.Key, cmd)
			if err != nil {
				return nil, &InitError{
					Component: fmt.Sprintf("core %s command %s", cc.Key, cmd.Notification),
					Err:       err,
				}
			}
			p.commands = append(p.commands, commandPlan{notification: cmd.Notification, factory: factory})
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func (a *Application) compile(key string, cmd config.CommandConfig) (core.CommandFactory, error) {
	var s *script.Script
	var err error
	if cmd.Script != "" {
		s, err = script.LoadFile(cmd.Script)
	} else {
		s, err = script.Compile(key+"/"+cmd.Notification, cmd.Source)
	}
	if err != nil {
		return nil, err
	}

	opts := []script.Option{script.WithLogger(a.log.WithCore(key))}
	if d := cmd.TimeoutDuration(); d > 0 {
		opts = append(opts, script.WithTimeout(d))
	}
	return s.Factory(opts...), nil
}

// install registers the planned cores. If any core fails, the cores
// installed by this call are removed again. Callers hold a.mu.
func (a *Application) install(plans []corePlan, dc config.DispatchConfig) error {
	installed := make([]string, 0, len(plans))

	for _, p := range plans {
		var errs []error
		coreLog := a.log.WithCore(p.key)

		a.registry.GetInstance(p.key,
			facade.WithLogger(coreLog),
			facade.WithRecorder(a.recorder),
			facade.WithPanicRecovery(dc.RecoverPanics),
			facade.WithPanicHandler(func(n observer.Notification, recovered any, _ []byte) {
				coreLog.Error("observer panic", "notification", n.Name(), "panic", recovered)
			}),
			facade.WithInitializer(func(f *facade.Facade) {
				for _, pc := range p.proxies {
					errs = append(errs, f.RegisterProxy(proxy.New(pc.Name, pc.Data)))
				}
				for _, cp := range p.commands {
					errs = append(errs, f.RegisterCommand(cp.notification, cp.factory))
				}
			}),
		)
		installed = append(installed, p.key)

		if err := errors.Join(errs...); err != nil {
			for _, key := range installed {
				a.registry.RemoveCore(key)
			}
			return &InitError{Component: "core " + p.key, Err: err}
		}
		coreLog.Debug("core installed", "proxies", len(p.proxies), "commands", len(p.commands))
	}

	a.cores = installed
	return nil
}
