package main

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var errBadTarget = errors.New("target must look like core:NAME or core:NAME=body")

// target is one notification to send, parsed from a command-line argument.
type target struct {
	core string
	name string
	body any
}

// parseTarget parses core:NAME[=body]. The body is decoded as a YAML value,
// so numbers, lists and maps keep their shape; anything YAML rejects is sent
// as the raw string.
func parseTarget(arg string) (target, error) {
	key, rest, ok := strings.Cut(arg, ":")
	if !ok || key == "" {
		return target{}, fmt.Errorf("%w: %q", errBadTarget, arg)
	}

	name, raw, hasBody := strings.Cut(rest, "=")
	if name == "" {
		return target{}, fmt.Errorf("%w: %q", errBadTarget, arg)
	}

	t := target{core: key, name: name}
	if hasBody {
		t.body = decodeBody(raw)
	}
	return t, nil
}

func decodeBody(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		return raw
	}
	return v
}
