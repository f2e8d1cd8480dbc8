package command

import (
	"errors"
	"slices"
	"testing"

	"github.com/dshills/mvcore/internal/core"
	"github.com/dshills/mvcore/internal/facade"
	"github.com/dshills/mvcore/internal/observer"
)

var (
	_ core.Command = (*SimpleCommand)(nil)
	_ core.Command = (*MacroCommand)(nil)
)

type step struct {
	SimpleCommand
	name  string
	trace *[]string
	err   error
}

func (s *step) Execute(n observer.Notification) error {
	*s.trace = append(*s.trace, s.name+"@"+s.MultitonKey())
	return s.err
}

func stepFactory(name string, trace *[]string, err error) core.CommandFactory {
	return func() core.Command {
		return &step{name: name, trace: trace, err: err}
	}
}

func TestSimpleCommand(t *testing.T) {
	var c SimpleCommand
	if err := c.Execute(observer.NewNotification("n", nil)); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestMacroCommand_Order(t *testing.T) {
	var trace []string
	m := NewMacroCommand(stepFactory("a", &trace, nil))
	m.AddSubCommand(stepFactory("b", &trace, nil))
	m.InitializeNotifier("core1")

	if err := m.Execute(observer.NewNotification("n", nil)); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !slices.Equal(trace, []string{"a@core1", "b@core1"}) {
		t.Errorf("unexpected trace %v", trace)
	}
}

func TestMacroCommand_FailFast(t *testing.T) {
	var trace []string
	boom := errors.New("boom")
	m := NewMacroCommand(
		stepFactory("a", &trace, boom),
		stepFactory("b", &trace, nil),
	)

	err := m.Execute(observer.NewNotification("n", nil))
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(trace) != 1 {
		t.Errorf("expected b to be skipped, got %v", trace)
	}
}

func TestMacroCommand_NilSubCommand(t *testing.T) {
	m := NewMacroCommand(func() core.Command { return nil })
	if err := m.Execute(observer.NewNotification("n", nil)); !errors.Is(err, ErrNilSubCommand) {
		t.Errorf("expected ErrNilSubCommand, got %v", err)
	}

	m = NewMacroCommand(nil)
	if err := m.Execute(observer.NewNotification("n", nil)); !errors.Is(err, ErrNilSubCommand) {
		t.Errorf("expected ErrNilSubCommand for nil factory, got %v", err)
	}
}

func TestMacro_RegisteredWithFacade(t *testing.T) {
	const key = "macroCore"
	f := facade.GetInstance(key)
	defer facade.RemoveCore(key)

	var trace []string
	err := f.RegisterCommand("STARTUP", Macro(
		stepFactory("model", &trace, nil),
		stepFactory("view", &trace, nil),
	))
	if err != nil {
		t.Fatalf("RegisterCommand() failed: %v", err)
	}

	if err := f.SendNotification("STARTUP", nil); err != nil {
		t.Fatalf("SendNotification() failed: %v", err)
	}
	if err := f.SendNotification("STARTUP", nil); err != nil {
		t.Fatalf("SendNotification() failed: %v", err)
	}

	expected := []string{"model@macroCore", "view@macroCore", "model@macroCore", "view@macroCore"}
	if !slices.Equal(trace, expected) {
		t.Errorf("expected %v, got %v", expected, trace)
	}
}

func TestMacro_InstancesDoNotShareSubCommands(t *testing.T) {
	var trace []string
	subs := make([]core.CommandFactory, 1, 4)
	subs[0] = stepFactory("a", &trace, nil)

	factory := Macro(subs...)
	first := factory().(*MacroCommand)
	second := factory().(*MacroCommand)

	first.AddSubCommand(stepFactory("first-only", &trace, nil))
	second.AddSubCommand(stepFactory("second-only", &trace, nil))

	if err := first.Execute(observer.NewNotification("n", nil)); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !slices.Equal(trace, []string{"a@", "first-only@"}) {
		t.Errorf("expected [a@ first-only@], got %v", trace)
	}
	if subs[:2][1] != nil {
		t.Error("AddSubCommand wrote into the caller's backing array")
	}
}
