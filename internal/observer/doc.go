// Package observer provides the two value types every core dispatch is built
// from: the Notification that travels between components and the Observer that
// binds a notification callback to the component that owns it.
//
// # Notifications
//
// A Notification carries a name, an optional body of any shape and an optional
// type tag. The tag lets unrelated observers reuse one notification name for
// different payload shapes:
//
//	n := observer.NewNotification("user.login", creds, observer.WithType("oauth"))
//
// # Observers
//
// An Observer holds its context through a weak pointer. The dispatch machinery
// never keeps a component alive on its own; once the context has been
// collected, notifying the observer is a silent no-op.
//
//	obs, err := observer.New((*Panel).onNotify, panel)
//
// The method receives the context as its first argument, so it must not close
// over the context itself. Observers are compared by context identity, which is
// what removal relies on.
package observer
