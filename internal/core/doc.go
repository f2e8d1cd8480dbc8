// Package core implements the three per-core registries: View, Controller
// and Model.
//
// A View owns the mediator table and the observer lists and performs
// notification dispatch. A Controller maps notification names to command
// factories and runs a fresh command for every matching notification. A
// Model holds proxies by name.
//
// # Dispatch
//
// NotifyObservers copies the observer list for a name under a read lock and
// delivers to the copy with the lock released. Handlers may register or
// remove observers and mediators while a dispatch is in flight; changes to
// the observer lists apply to the next dispatch, never to the current one,
// and every observer in the copy stays reachable until the pass ends.
// Command factories are looked up when the Controller's observer runs, so a
// factory swapped earlier in the same pass is already in effect.
//
// # Duplicate registration
//
//   - RegisterMediator with a name that is already taken is a no-op.
//   - RegisterProxy with a taken name replaces the old proxy.
//   - RegisterCommand with a taken name replaces the factory but keeps the
//     single standing observer, so the command still runs once per
//     notification.
//
// Components implementing Binder receive the core key before their
// OnRegister hook or Execute method runs.
package core
