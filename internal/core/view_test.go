package core

import (
	"errors"
	"runtime"
	"slices"
	"testing"

	"github.com/dshills/mvcore/internal/dispatch"
	"github.com/dshills/mvcore/internal/observer"
)

func TestView_NotifyUnobserved(t *testing.T) {
	v := NewView("test")
	if err := v.NotifyObservers(observer.NewNotification("nobody", nil)); err != nil {
		t.Errorf("expected nil for unobserved name, got %v", err)
	}
}

func TestView_RegisterObserverOrder(t *testing.T) {
	v := NewView("test")
	var order []string

	// Observers hold their contexts weakly; keep them reachable here.
	var contexts []*listener
	for _, name := range []string{"a", "b", "c"} {
		l := &listener{name: name, order: &order}
		contexts = append(contexts, l)
		v.RegisterObserver("n", observer.MustNew((*listener).handle, l))
	}

	if err := v.NotifyObservers(observer.NewNotification("n", nil)); err != nil {
		t.Fatalf("NotifyObservers() failed: %v", err)
	}
	runtime.KeepAlive(contexts)
	if !slices.Equal(order, []string{"a", "b", "c"}) {
		t.Errorf("expected [a b c], got %v", order)
	}
}

func TestView_RegisterObserverTwice(t *testing.T) {
	v := NewView("test")
	var order []string
	l := &listener{name: "a", order: &order}

	v.RegisterObserver("n", observer.MustNew((*listener).handle, l))
	v.RegisterObserver("n", observer.MustNew((*listener).handle, l))

	_ = v.NotifyObservers(observer.NewNotification("n", nil))
	runtime.KeepAlive(l)
	if len(order) != 2 {
		t.Errorf("expected 2 deliveries, got %d", len(order))
	}
}

func TestView_RemoveObserver(t *testing.T) {
	v := NewView("test")
	var order []string
	a := &listener{name: "a", order: &order}
	b := &listener{name: "b", order: &order}
	c := &listener{name: "c", order: &order}

	v.RegisterObserver("n", observer.MustNew((*listener).handle, a))
	v.RegisterObserver("n", observer.MustNew((*listener).handle, b))
	v.RegisterObserver("n", observer.MustNew((*listener).handle, c))
	v.RegisterObserver("n", observer.MustNew((*listener).handle, b))

	v.RemoveObserver("n", b)

	_ = v.NotifyObservers(observer.NewNotification("n", nil))
	runtime.KeepAlive([]*listener{a, b, c})
	if !slices.Equal(order, []string{"a", "c"}) {
		t.Errorf("expected [a c], got %v", order)
	}
}

func TestView_RemoveLastObserverDeletesEntry(t *testing.T) {
	v := NewView("test")
	var order []string
	a := &listener{name: "a", order: &order}

	v.RegisterObserver("n", observer.MustNew((*listener).handle, a))
	v.RemoveObserver("n", a)

	if v.HasObservers("n") {
		t.Error("expected no observers")
	}
	if _, ok := v.observers["n"]; ok {
		t.Error("expected empty list to be deleted from the map")
	}

	// Unknown names are a no-op.
	v.RemoveObserver("unknown", a)
}

func TestView_SnapshotDuringDispatch(t *testing.T) {
	v := NewView("test")
	var order []string

	a := &listener{name: "a", order: &order}
	b := &listener{name: "b", order: &order}
	c := &listener{name: "c", order: &order}
	late := &listener{name: "late", order: &order}

	// b removes itself and a, and adds a new observer while the pass runs.
	b.hook = func(observer.Notification) {
		v.RemoveObserver("n", b)
		v.RemoveObserver("n", c)
		v.RegisterObserver("n", observer.MustNew((*listener).handle, late))
	}

	v.RegisterObserver("n", observer.MustNew((*listener).handle, a))
	v.RegisterObserver("n", observer.MustNew((*listener).handle, b))
	v.RegisterObserver("n", observer.MustNew((*listener).handle, c))

	if err := v.NotifyObservers(observer.NewNotification("n", nil)); err != nil {
		t.Fatalf("NotifyObservers() failed: %v", err)
	}
	if !slices.Equal(order, []string{"a", "b", "c"}) {
		t.Errorf("first pass: expected [a b c], got %v", order)
	}

	order = order[:0]
	_ = v.NotifyObservers(observer.NewNotification("n", nil))
	if !slices.Equal(order, []string{"a", "late"}) {
		t.Errorf("second pass: expected [a late], got %v", order)
	}
	runtime.KeepAlive([]*listener{a, b, c, late})
}

func TestView_FailFast(t *testing.T) {
	v := NewView("test")
	boom := errors.New("boom")

	first := newTestMediator("first", "n")
	first.onHandle = func(observer.Notification) error { return boom }
	second := newTestMediator("second", "n")

	if err := v.RegisterMediator(first); err != nil {
		t.Fatal(err)
	}
	if err := v.RegisterMediator(second); err != nil {
		t.Fatal(err)
	}

	err := v.NotifyObservers(observer.NewNotification("n", nil))
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(second.received) != 0 {
		t.Error("observer after the failing one should not be notified")
	}
}

func TestView_PanicRecovery(t *testing.T) {
	v := NewView("test", WithPanicRecovery(true))
	m := newTestMediator("m", "n")
	m.onHandle = func(observer.Notification) error { panic("bad") }
	_ = v.RegisterMediator(m)

	err := v.NotifyObservers(observer.NewNotification("n", nil))
	if !errors.Is(err, dispatch.ErrObserverPanic) {
		t.Errorf("expected ErrObserverPanic, got %v", err)
	}
}

func TestView_RegisterMediator(t *testing.T) {
	v := NewView("appA")
	m := newTestMediator("M", "ABC", "DEF")

	if err := v.RegisterMediator(m); err != nil {
		t.Fatalf("RegisterMediator() failed: %v", err)
	}

	if !v.HasMediator("M") {
		t.Error("expected mediator to be registered")
	}
	got, ok := v.RetrieveMediator("M")
	if !ok || got != m {
		t.Error("RetrieveMediator() returned wrong mediator")
	}
	if m.key != "appA" {
		t.Errorf("expected key appA, got %q", m.key)
	}
	if !slices.Equal(m.events, []string{"register"}) {
		t.Errorf("expected OnRegister once, got %v", m.events)
	}
	if !v.HasObservers("ABC") || !v.HasObservers("DEF") {
		t.Error("expected observers for every interest")
	}
}

func TestView_RegisterMediatorNil(t *testing.T) {
	if err := NewView("test").RegisterMediator(nil); !errors.Is(err, ErrNilMediator) {
		t.Errorf("expected ErrNilMediator, got %v", err)
	}
}

func TestView_RegisterMediatorDuplicate(t *testing.T) {
	v := NewView("test")
	original := newTestMediator("M", "n")
	duplicate := newTestMediator("M", "n")

	_ = v.RegisterMediator(original)
	if err := v.RegisterMediator(duplicate); err != nil {
		t.Fatalf("duplicate RegisterMediator() should not fail: %v", err)
	}

	got, _ := v.RetrieveMediator("M")
	if got != original {
		t.Error("duplicate registration replaced the original")
	}
	if len(duplicate.events) != 0 {
		t.Error("duplicate should not receive OnRegister")
	}

	_ = v.NotifyObservers(observer.NewNotification("n", nil))
	if len(original.received) != 1 || len(duplicate.received) != 0 {
		t.Errorf("expected only original notified, got %d/%d", len(original.received), len(duplicate.received))
	}
}

func TestView_RemoveMediator(t *testing.T) {
	v := NewView("test")
	m := newTestMediator("M", "ABC", "DEF", "GHI")
	other := newTestMediator("other", "ABC")
	_ = v.RegisterMediator(m)
	_ = v.RegisterMediator(other)

	_ = v.NotifyObservers(observer.NewNotification("ABC", map[string]int{"x": 1}))
	if len(m.received) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(m.received))
	}
	if body := m.received[0].Body().(map[string]int); body["x"] != 1 {
		t.Errorf("unexpected body %v", body)
	}

	removed, ok := v.RemoveMediator("M")
	if !ok || removed != m {
		t.Fatal("RemoveMediator() did not return the mediator")
	}
	if !slices.Equal(m.events, []string{"register", "remove"}) {
		t.Errorf("expected register then remove, got %v", m.events)
	}
	if v.HasMediator("M") {
		t.Error("mediator still registered")
	}
	if v.HasObservers("DEF") || v.HasObservers("GHI") {
		t.Error("observers left behind")
	}

	if err := v.NotifyObservers(observer.NewNotification("ABC", nil)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(m.received) != 1 {
		t.Error("removed mediator was notified")
	}
	if len(other.received) != 2 {
		t.Errorf("other mediator should still be notified, got %d", len(other.received))
	}
}

func TestView_RemoveMediatorRereadsInterests(t *testing.T) {
	v := NewView("test")
	m := newTestMediator("M", "a")
	_ = v.RegisterMediator(m)

	// Interests changed after registration; removal uses the current list.
	m.interests = []string{"a", "b"}
	v.RegisterObserver("b", observer.MustNew((*mediatorEntry).handle, v.mediators["M"]))

	v.RemoveMediator("M")
	if v.HasObservers("a") || v.HasObservers("b") {
		t.Error("expected observers for current interests to be removed")
	}
}

func TestView_RemoveMediatorUnknown(t *testing.T) {
	if _, ok := NewView("test").RemoveMediator("ghost"); ok {
		t.Error("expected false for unknown mediator")
	}
}

func TestView_RemoveMediatorDuringDispatch(t *testing.T) {
	v := NewView("test")
	first := newTestMediator("first", "n")
	second := newTestMediator("second", "n")

	first.onHandle = func(observer.Notification) error {
		v.RemoveMediator("second")
		// Nothing but the in-flight pass references second's entry now.
		runtime.GC()
		runtime.GC()
		return nil
	}
	_ = v.RegisterMediator(first)
	_ = v.RegisterMediator(second)

	_ = v.NotifyObservers(observer.NewNotification("n", nil))
	if len(second.received) != 1 {
		t.Error("second was in the snapshot and should still be notified")
	}

	_ = v.NotifyObservers(observer.NewNotification("n", nil))
	if len(second.received) != 1 {
		t.Error("second was removed and should not be notified again")
	}
}

func TestView_MediatorNames(t *testing.T) {
	v := NewView("test")
	_ = v.RegisterMediator(newTestMediator("b"))
	_ = v.RegisterMediator(newTestMediator("a"))

	if names := v.MediatorNames(); !slices.Equal(names, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", names)
	}
}

func TestView_RemoveObserverByMediator(t *testing.T) {
	v := NewView("test")
	m := newTestMediator("M", "a", "b")
	if err := v.RegisterMediator(m); err != nil {
		t.Fatalf("RegisterMediator() failed: %v", err)
	}

	v.RemoveObserver("a", m)

	if v.HasObservers("a") {
		t.Error("expected the mediator's observer for a to be removed")
	}
	if !v.HasObservers("b") {
		t.Error("expected the mediator's observer for b to stay")
	}

	_ = v.NotifyObservers(observer.NewNotification("a", nil))
	_ = v.NotifyObservers(observer.NewNotification("b", nil))
	if len(m.received) != 1 || m.received[0].Name() != "b" {
		t.Errorf("expected only b to be delivered, got %d notifications", len(m.received))
	}

	// Removing the mediator afterwards still cleans up what is left.
	if _, ok := v.RemoveMediator("M"); !ok {
		t.Fatal("expected mediator to be removed")
	}
	if v.HasObservers("b") {
		t.Error("expected no observers left for b")
	}
}

func TestView_RemoveObserverByUnregisteredMediator(t *testing.T) {
	v := NewView("test")
	registered := newTestMediator("M", "n")
	stranger := newTestMediator("M", "n")
	_ = v.RegisterMediator(registered)

	v.RemoveObserver("n", stranger)

	if !v.HasObservers("n") {
		t.Error("a mediator that is not registered must not match")
	}
}

// panickyMediator panics the first time its interests are read.
type panickyMediator struct {
	*testMediator
	calls int
}

func (m *panickyMediator) ListNotificationInterests() []string {
	m.calls++
	if m.calls == 1 {
		panic("interests unavailable")
	}
	return m.testMediator.ListNotificationInterests()
}

func TestView_RegisterMediatorPanicLeavesNothing(t *testing.T) {
	v := NewView("test")
	m := &panickyMediator{testMediator: newTestMediator("M", "n")}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected the interest panic to propagate")
			}
		}()
		_ = v.RegisterMediator(m)
	}()

	if v.HasMediator("M") {
		t.Fatal("a mediator that failed to register must not be visible")
	}
	if v.HasObservers("n") {
		t.Fatal("expected no observers after the failed registration")
	}

	if err := v.RegisterMediator(m); err != nil {
		t.Fatalf("RegisterMediator() retry failed: %v", err)
	}
	if !v.HasMediator("M") || !v.HasObservers("n") {
		t.Error("expected the retry to register the mediator and its observer")
	}
	if !slices.Equal(m.events, []string{"register"}) {
		t.Errorf("expected OnRegister once, got %v", m.events)
	}
}
