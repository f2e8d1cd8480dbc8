// Package command provides embeddable bases for core.Command
// implementations.
//
// SimpleCommand does nothing on its own; embed it to get a Notifier bound to
// the executing core. MacroCommand runs an ordered list of sub-commands, each
// created fresh from its factory:
//
//	f.RegisterCommand("STARTUP", command.Macro(
//	    newPrepModelCommand,
//	    newPrepViewCommand,
//	))
package command

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/mvcore/internal/core"
	"github.com/dshills/mvcore/internal/facade"
	"github.com/dshills/mvcore/internal/observer"
)

// ErrNilSubCommand indicates a sub-command factory returned nil.
var ErrNilSubCommand = errors.New("command: nil sub-command")

// SimpleCommand is a command that does nothing.
type SimpleCommand struct {
	facade.Notifier
}

// Execute does nothing.
func (c *SimpleCommand) Execute(observer.Notification) error { return nil }

// MacroCommand executes its sub-commands in order and stops at the first
// error.
type MacroCommand struct {
	facade.Notifier

	subCommands []core.CommandFactory
}

// NewMacroCommand creates a MacroCommand with the given sub-commands.
func NewMacroCommand(subCommands ...core.CommandFactory) *MacroCommand {
	return &MacroCommand{subCommands: slices.Clone(subCommands)}
}

// Macro returns a factory producing a new MacroCommand over subCommands for
// every notification.
func Macro(subCommands ...core.CommandFactory) core.CommandFactory {
	return func() core.Command {
		return NewMacroCommand(subCommands...)
	}
}

// AddSubCommand appends a sub-command factory.
func (m *MacroCommand) AddSubCommand(factory core.CommandFactory) {
	m.subCommands = append(m.subCommands, factory)
}

// Execute runs every sub-command with n. Each sub-command is bound to the
// same core as the macro before it runs.
func (m *MacroCommand) Execute(n observer.Notification) error {
	for i, factory := range m.subCommands {
		if factory == nil {
			return fmt.Errorf("%w: factory %d", ErrNilSubCommand, i)
		}
		cmd := factory()
		if cmd == nil {
			return fmt.Errorf("%w: factory %d", ErrNilSubCommand, i)
		}

		m.BindComponent(cmd)
		if err := cmd.Execute(n); err != nil {
			return fmt.Errorf("sub-command %d: %w", i, err)
		}
	}
	return nil
}
