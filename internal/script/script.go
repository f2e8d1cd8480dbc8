package script

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"github.com/dshills/mvcore/internal/core"
	"github.com/dshills/mvcore/internal/logging"
)

// DefaultTimeout bounds a single script execution.
const DefaultTimeout = 5 * time.Second

// Script is a compiled Lua chunk. It is immutable and safe to share.
type Script struct {
	name  string
	proto *lua.FunctionProto
}

// Compile parses and compiles source. name is used in error messages and
// Lua stack traces.
func Compile(name, source string) (*Script, error) {
	if strings.TrimSpace(source) == "" {
		return nil, &Error{Script: name, Op: "parse", Err: ErrEmptySource}
	}

	chunk, err := parse.Parse(strings.NewReader(source), name)
	if err != nil {
		return nil, &Error{Script: name, Op: "parse", Err: err}
	}

	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, &Error{Script: name, Op: "compile", Err: err}
	}

	return &Script{name: name, proto: proto}, nil
}

// LoadFile reads and compiles the Lua file at path. The script is named after
// the file's base name.
func LoadFile(path string) (*Script, error) {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Script: name, Op: "read", Err: err}
	}
	return Compile(name, string(data))
}

// Name returns the script name.
func (s *Script) Name() string {
	return s.name
}

// Option configures commands created from a Script.
type Option func(*commandConfig)

type commandConfig struct {
	timeout time.Duration
	logger  *logging.Logger
}

// WithTimeout bounds each execution. Non-positive values disable the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *commandConfig) {
		c.timeout = d
	}
}

// WithLogger sets the logger behind the log and print globals.
func WithLogger(l *logging.Logger) Option {
	return func(c *commandConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Factory returns a CommandFactory producing a new Command for this script.
func (s *Script) Factory(opts ...Option) core.CommandFactory {
	cfg := commandConfig{
		timeout: DefaultTimeout,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.logger = cfg.logger.WithComponent("script").WithField("script", s.name)

	return func() core.Command {
		return &Command{script: s, cfg: cfg}
	}
}
