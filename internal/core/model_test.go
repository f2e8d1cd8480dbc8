package core

import (
	"errors"
	"slices"
	"testing"
)

func TestModel_RegisterProxy(t *testing.T) {
	m := NewModel("appA")
	p := &testProxy{name: "users", data: []string{"alice"}}

	if err := m.RegisterProxy(p); err != nil {
		t.Fatalf("RegisterProxy() failed: %v", err)
	}
	if !m.HasProxy("users") {
		t.Error("expected proxy to be registered")
	}
	got, ok := m.RetrieveProxy("users")
	if !ok || got != p {
		t.Error("RetrieveProxy() returned wrong proxy")
	}
	if p.key != "appA" {
		t.Errorf("expected key appA, got %q", p.key)
	}
	if !slices.Equal(p.events, []string{"register"}) {
		t.Errorf("expected OnRegister once, got %v", p.events)
	}
}

func TestModel_RegisterProxyNil(t *testing.T) {
	if err := NewModel("test").RegisterProxy(nil); !errors.Is(err, ErrNilProxy) {
		t.Errorf("expected ErrNilProxy, got %v", err)
	}
}

func TestModel_RegisterProxyOverwrites(t *testing.T) {
	m := NewModel("test")
	first := &testProxy{name: "p"}
	second := &testProxy{name: "p"}

	_ = m.RegisterProxy(first)
	_ = m.RegisterProxy(second)

	got, _ := m.RetrieveProxy("p")
	if got != second {
		t.Error("expected second registration to replace the first")
	}
}

func TestModel_RemoveProxy(t *testing.T) {
	m := NewModel("test")
	p := &testProxy{name: "p"}
	_ = m.RegisterProxy(p)

	removed, ok := m.RemoveProxy("p")
	if !ok || removed != p {
		t.Fatal("RemoveProxy() did not return the proxy")
	}
	if m.HasProxy("p") {
		t.Error("proxy still registered")
	}
	if !slices.Equal(p.events, []string{"register", "remove"}) {
		t.Errorf("expected register then remove, got %v", p.events)
	}

	if _, ok := m.RemoveProxy("p"); ok {
		t.Error("second RemoveProxy() should report false")
	}
}

func TestModel_RetrieveUnknown(t *testing.T) {
	if _, ok := NewModel("test").RetrieveProxy("ghost"); ok {
		t.Error("expected false for unknown proxy")
	}
}

func TestWithBinder(t *testing.T) {
	var bound []string
	binder := func(component any, key string) {
		bound = append(bound, key+":"+component.(*testProxy).name)
	}

	m := NewModel("appA", WithBinder(binder))
	_ = m.RegisterProxy(&testProxy{name: "p"})

	if !slices.Equal(bound, []string{"appA:p"}) {
		t.Errorf("expected custom binder to run, got %v", bound)
	}
}
