package observer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Notification is a named event value. It is created fresh for every dispatch
// and is not retained by the dispatch machinery after delivery completes.
type Notification struct {
	name      string
	body      any
	noteType  string
	id        string
	timestamp time.Time
}

// NotificationOption configures a Notification at construction.
type NotificationOption func(*Notification)

// WithType sets the optional type tag.
func WithType(noteType string) NotificationOption {
	return func(n *Notification) {
		n.noteType = noteType
	}
}

// WithID overrides the generated notification ID.
func WithID(id string) NotificationOption {
	return func(n *Notification) {
		if id != "" {
			n.id = id
		}
	}
}

// NewNotification creates a notification with the given name and body.
func NewNotification(name string, body any, opts ...NotificationOption) Notification {
	n := Notification{
		name:      name,
		body:      body,
		id:        uuid.NewString(),
		timestamp: time.Now(),
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// Name returns the notification name.
func (n Notification) Name() string { return n.name }

// Body returns the payload, which may be nil.
func (n Notification) Body() any { return n.body }

// Type returns the type tag, or "" when none was set.
func (n Notification) Type() string { return n.noteType }

// ID returns the unique notification ID.
func (n Notification) ID() string { return n.id }

// Timestamp returns when the notification was created.
func (n Notification) Timestamp() time.Time { return n.timestamp }

// String returns a human-readable description for logs.
func (n Notification) String() string {
	body := "nil"
	if n.body != nil {
		body = fmt.Sprintf("%v", n.body)
	}
	noteType := n.noteType
	if noteType == "" {
		noteType = "nil"
	}
	return fmt.Sprintf("Notification Name: %s\nBody: %s\nType: %s", n.name, body, noteType)
}
