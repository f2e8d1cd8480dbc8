package config

import "time"

// Config is the top-level configuration.
type Config struct {
	Log      LogConfig      `toml:"log" yaml:"log"`
	Metrics  MetricsConfig  `toml:"metrics" yaml:"metrics"`
	Dispatch DispatchConfig `toml:"dispatch" yaml:"dispatch"`
	Cores    []CoreConfig   `toml:"cores" yaml:"cores"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// Format is text or json.
	Format string `toml:"format" yaml:"format"`
}

// MetricsConfig configures the Prometheus recorder.
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled" yaml:"enabled"`
	Namespace string `toml:"namespace" yaml:"namespace"`
}

// DispatchConfig configures notification dispatch.
type DispatchConfig struct {
	// RecoverPanics turns observer panics into errors.
	RecoverPanics bool `toml:"recover_panics" yaml:"recover_panics"`
}

// CoreConfig describes one core.
type CoreConfig struct {
	Key      string          `toml:"key" yaml:"key"`
	Proxies  []ProxyConfig   `toml:"proxies" yaml:"proxies"`
	Commands []CommandConfig `toml:"commands" yaml:"commands"`
}

// ProxyConfig registers a data proxy holding Data.
type ProxyConfig struct {
	Name string         `toml:"name" yaml:"name"`
	Data map[string]any `toml:"data" yaml:"data"`
}

// CommandConfig maps a notification to a Lua script. Exactly one of Script
// (a file path) or Source (inline Lua) is set.
type CommandConfig struct {
	Notification string `toml:"notification" yaml:"notification"`
	Script       string `toml:"script" yaml:"script"`
	Source       string `toml:"source" yaml:"source"`
	// Timeout is a Go duration string. Empty means the script default.
	Timeout string `toml:"timeout" yaml:"timeout"`
}

// TimeoutDuration returns the parsed Timeout, or zero if unset or invalid.
// Validate rejects invalid values.
func (c CommandConfig) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Namespace: "mvcore",
		},
	}
}

// Core returns the configuration for key.
func (c *Config) Core(key string) (CoreConfig, bool) {
	for _, core := range c.Cores {
		if core.Key == key {
			return core, true
		}
	}
	return CoreConfig{}, false
}

// CoreKeys returns the configured core keys in file order.
func (c *Config) CoreKeys() []string {
	keys := make([]string, len(c.Cores))
	for i, core := range c.Cores {
		keys[i] = core.Key
	}
	return keys
}
