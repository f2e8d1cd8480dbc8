package core

import (
	"github.com/dshills/mvcore/internal/observer"
)

// testMediator records what happens to it.
type testMediator struct {
	name      string
	interests []string
	received  []observer.Notification
	events    []string
	key       string
	onHandle  func(n observer.Notification) error
}

func newTestMediator(name string, interests ...string) *testMediator {
	return &testMediator{name: name, interests: interests}
}

func (m *testMediator) MediatorName() string                { return m.name }
func (m *testMediator) ListNotificationInterests() []string { return m.interests }
func (m *testMediator) OnRegister()                         { m.events = append(m.events, "register") }
func (m *testMediator) OnRemove()                           { m.events = append(m.events, "remove") }
func (m *testMediator) InitializeNotifier(key string)       { m.key = key }

func (m *testMediator) HandleNotification(n observer.Notification) error {
	m.received = append(m.received, n)
	if m.onHandle != nil {
		return m.onHandle(n)
	}
	return nil
}

type testProxy struct {
	name   string
	data   any
	events []string
	key    string
}

func (p *testProxy) ProxyName() string             { return p.name }
func (p *testProxy) OnRegister()                   { p.events = append(p.events, "register") }
func (p *testProxy) OnRemove()                     { p.events = append(p.events, "remove") }
func (p *testProxy) InitializeNotifier(key string) { p.key = key }

// listener is a plain observer context.
type listener struct {
	name  string
	order *[]string
	hook  func(n observer.Notification)
}

func (l *listener) handle(n observer.Notification) error {
	*l.order = append(*l.order, l.name)
	if l.hook != nil {
		l.hook(n)
	}
	return nil
}
