package config

import (
	"encoding/json"
	"os"
)

// EnvSource reads configuration from the process environment. It is always
// read-only: SetValue reports not applied and Save is a no-op. Lookups use
// the verbatim dotted key, optionally prefixed ("SH" + "_" + key).
type EnvSource struct {
	prefix string
	lookup func(string) (string, bool)
}

// NewEnvSource builds a source over the real process environment.
func NewEnvSource(prefix string) *EnvSource {
	return NewEnvSourceFrom(prefix, os.LookupEnv)
}

// NewEnvSourceFrom builds a source over an injected lookup, so tests can
// substitute a plain map for ambient process state.
func NewEnvSourceFrom(prefix string, lookup func(string) (string, bool)) *EnvSource {
	return &EnvSource{prefix: prefix, lookup: lookup}
}

// EnvKey returns the environment variable name for a config key.
func (e *EnvSource) EnvKey(key string) string {
	if e.prefix == "" {
		return key
	}
	return e.prefix + "_" + key
}

func (e *EnvSource) Value(key string) (any, bool) {
	raw, ok := e.lookup(e.EnvKey(key))
	if !ok {
		return nil, false
	}
	return raw, true
}

func (e *EnvSource) SetValue(string, any) bool { return false }

func (e *EnvSource) Save() error { return nil }

// decode parses the raw environment string into the requested shape. Strings
// convert as-is; anything else goes through JSON scanning, so "42" converts
// to an int and "true" to a bool. Values that fail to parse read as absent.
func (e *EnvSource) decode(key string, out any) bool {
	raw, ok := e.lookup(e.EnvKey(key))
	if !ok {
		return false
	}
	switch dst := out.(type) {
	case *string:
		*dst = raw
		return true
	case *any:
		*dst = raw
		return true
	default:
		return json.Unmarshal([]byte(raw), out) == nil
	}
}

func (e *EnvSource) source() {}
