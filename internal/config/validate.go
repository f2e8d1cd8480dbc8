package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/mvcore/internal/logging"
)

// Validate checks cfg and returns every problem found, joined. Each problem
// is a *ValidationError.
func (c *Config) Validate() error {
	var errs []error
	add := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if _, ok := logging.LookupLevel(c.Log.Level); !ok {
		add("log.level", "must be debug, info, warn or error", c.Log.Level)
	}
	if _, ok := logging.ParseFormat(c.Log.Format); !ok {
		add("log.format", "must be text or json", c.Log.Format)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		add("metrics.namespace", "required when metrics are enabled", nil)
	}

	seen := make(map[string]bool, len(c.Cores))
	for i, core := range c.Cores {
		prefix := fmt.Sprintf("cores[%d]", i)
		switch {
		case core.Key == "":
			add(prefix+".key", "required", nil)
		case seen[core.Key]:
			add(prefix+".key", "duplicate core key", core.Key)
		}
		seen[core.Key] = true

		for j, p := range core.Proxies {
			if p.Name == "" {
				add(fmt.Sprintf("%s.proxies[%d].name", prefix, j), "required", nil)
			}
		}

		for j, cmd := range core.Commands {
			path := fmt.Sprintf("%s.commands[%d]", prefix, j)
			if cmd.Notification == "" {
				add(path+".notification", "required", nil)
			}
			if (cmd.Script == "") == (cmd.Source == "") {
				add(path, "exactly one of script or source is required", nil)
			}
			if cmd.Timeout != "" {
				if d, err := time.ParseDuration(cmd.Timeout); err != nil || d < 0 {
					add(path+".timeout", "must be a non-negative duration", cmd.Timeout)
				}
			}
		}
	}

	return errors.Join(errs...)
}
