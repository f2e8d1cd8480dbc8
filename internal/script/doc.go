// Package script runs Lua chunks as core commands.
//
// A Script is compiled once and can back any number of commands. Each
// execution gets its own sandboxed gopher-lua state, so commands stay
// stateless and never share a state across goroutines.
//
// The chunk sees these globals:
//
//	notification          table with name, type, id and body
//	send(name, body, type) sends a notification through the command's core
//	has_proxy(name)       reports whether the core has the proxy
//	has_mediator(name)    reports whether the core has the mediator
//	has_command(name)     reports whether the core maps the notification
//	proxy_data(name)      returns the data of a proxy exposing Data()
//	log(msg)              writes msg to the command's logger
//
// Raising a Lua error fails the command. The io, os, debug and package
// libraries are not available, and dofile, loadfile, load and loadstring are
// removed.
//
//	s, err := script.Compile("greet", `send("GREETED", "hello " .. notification.body)`)
//	...
//	f.RegisterCommand("GREET", s.Factory())
package script
