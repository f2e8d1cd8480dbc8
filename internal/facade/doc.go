// Package facade is the entry point to a core. It keeps one Facade per core
// key in a process-wide registry and forwards every operation to that core's
// View, Controller and Model.
//
// # Cores
//
// GetInstance returns the Facade for a key, creating it and its three
// registries on first use. RemoveCore forgets the key; the next GetInstance
// for it starts from an empty core.
//
//	f := facade.GetInstance("appA", facade.WithInitializer(func(f *facade.Facade) {
//	    _ = f.RegisterCommand("LOGIN", newLoginCommand)
//	}))
//	err := f.SendNotification("LOGIN", creds)
//
// Options only apply when the call creates the core.
//
// # Notifier
//
// Commands, mediators and proxies embed Notifier to reach their own core.
// The registries bind the core key before OnRegister or Execute runs.
//
//	type LoginCommand struct {
//	    facade.Notifier
//	}
//
//	func (c *LoginCommand) Execute(n observer.Notification) error {
//	    return c.SendNotification("LOGIN_DONE", n.Body())
//	}
package facade
