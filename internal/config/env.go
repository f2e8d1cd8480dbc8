package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MVCORE_"

// LookupFunc looks up an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

type envBinding struct {
	name  string
	apply func(cfg *Config, value string) error
}

var envBindings = []envBinding{
	{EnvPrefix + "LOG_LEVEL", func(cfg *Config, v string) error {
		cfg.Log.Level = v
		return nil
	}},
	{EnvPrefix + "LOG_FORMAT", func(cfg *Config, v string) error {
		cfg.Log.Format = v
		return nil
	}},
	{EnvPrefix + "METRICS_ENABLED", func(cfg *Config, v string) error {
		b, err := strconv.ParseBool(v)
		cfg.Metrics.Enabled = b
		return err
	}},
	{EnvPrefix + "METRICS_NAMESPACE", func(cfg *Config, v string) error {
		cfg.Metrics.Namespace = v
		return nil
	}},
	{EnvPrefix + "RECOVER_PANICS", func(cfg *Config, v string) error {
		b, err := strconv.ParseBool(v)
		cfg.Dispatch.RecoverPanics = b
		return err
	}},
}

// EnvVars returns the names of the supported environment overrides.
func EnvVars() []string {
	names := make([]string, len(envBindings))
	for i, b := range envBindings {
		names[i] = b.name
	}
	return names
}

// ApplyEnv overrides cfg with any variables lookup finds. Empty values are
// treated as set.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for _, b := range envBindings {
		v, ok := lookup(b.name)
		if !ok {
			continue
		}
		if err := b.apply(cfg, v); err != nil {
			return fmt.Errorf("environment %s=%q: %w", b.name, v, err)
		}
	}
	return nil
}
