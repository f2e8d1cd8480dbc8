package script

import (
	"context"
	"errors"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/mvcore/internal/facade"
	"github.com/dshills/mvcore/internal/observer"
)

// Command runs a Script for one notification. Create it through
// Script.Factory.
type Command struct {
	facade.Notifier

	script *Script
	cfg    commandConfig

	// sendErr keeps the Go error behind a failed send so it survives the
	// trip through a Lua error.
	sendErr error
}

// Execute runs the script in a fresh sandboxed state with n exposed as the
// notification global.
func (c *Command) Execute(n observer.Notification) error {
	L := newState()
	defer L.Close()

	ctx := context.Background()
	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}
	L.SetContext(ctx)

	c.sendErr = nil
	c.installGlobals(L, n)

	L.Push(L.NewFunctionFromProto(c.script.proto))
	err := L.PCall(0, 0, nil)
	if err == nil {
		return nil
	}

	switch {
	case c.sendErr != nil:
		err = c.sendErr
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		err = ErrTimeout
	}
	return &Error{Script: c.script.name, Op: "run", Err: err}
}

func (c *Command) installGlobals(L *lua.LState, n observer.Notification) {
	note := L.NewTable()
	note.RawSetString("name", lua.LString(n.Name()))
	note.RawSetString("type", lua.LString(n.Type()))
	note.RawSetString("id", lua.LString(n.ID()))
	note.RawSetString("body", toLua(L, n.Body()))
	L.SetGlobal("notification", note)

	L.SetGlobal("send", L.NewFunction(c.luaSend))
	L.SetGlobal("has_proxy", L.NewFunction(c.luaHas(func(f *facade.Facade, name string) bool {
		return f.HasProxy(name)
	})))
	L.SetGlobal("has_mediator", L.NewFunction(c.luaHas(func(f *facade.Facade, name string) bool {
		return f.HasMediator(name)
	})))
	L.SetGlobal("has_command", L.NewFunction(c.luaHas(func(f *facade.Facade, name string) bool {
		return f.HasCommand(name)
	})))
	L.SetGlobal("proxy_data", L.NewFunction(c.luaProxyData))
	L.SetGlobal("log", L.NewFunction(c.luaLog))
	L.SetGlobal("print", L.NewFunction(c.luaLog))
}

// luaSend implements send(name, body, type).
func (c *Command) luaSend(L *lua.LState) int {
	name := L.CheckString(1)
	body := toGo(L.Get(2))

	var opts []observer.NotificationOption
	if noteType := L.OptString(3, ""); noteType != "" {
		opts = append(opts, observer.WithType(noteType))
	}

	if err := c.SendNotification(name, body, opts...); err != nil {
		c.sendErr = err
		L.RaiseError("send %q: %s", name, err.Error())
	}
	return 0
}

func (c *Command) luaHas(check func(*facade.Facade, string) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		name := L.CheckString(1)
		f, err := c.Facade()
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		L.Push(lua.LBool(check(f, name)))
		return 1
	}
}

// dataHolder is implemented by proxies exposing a data value, such as
// proxy.Proxy.
type dataHolder interface {
	Data() any
}

// luaProxyData implements proxy_data(name). It returns nil when the proxy is
// missing or holds no data.
func (c *Command) luaProxyData(L *lua.LState) int {
	name := L.CheckString(1)
	f, err := c.Facade()
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}

	p, ok := f.RetrieveProxy(name)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	holder, ok := p.(dataHolder)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(toLua(L, holder.Data()))
	return 1
}

// luaLog joins its arguments with spaces, like print.
func (c *Command) luaLog(L *lua.LState) int {
	parts := make([]string, L.GetTop())
	for i := range parts {
		parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	c.cfg.logger.Info(strings.Join(parts, " "))
	return 0
}
