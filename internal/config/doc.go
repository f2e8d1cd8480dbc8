// Package config loads mvcore configuration.
//
// A configuration file is TOML or YAML, chosen by extension. Load decodes it
// over Default, applies MVCORE_* environment overrides, resolves script
// paths relative to the file and validates the result:
//
//	cfg, err := config.Load("mvcore.toml")
//
// A minimal TOML file:
//
//	[log]
//	level = "debug"
//
//	[[cores]]
//	key = "appA"
//
//	[[cores.commands]]
//	notification = "GREET"
//	source = 'send("GREETED", "hello " .. notification.body)'
//
// Watcher reloads the file when it changes on disk.
package config
