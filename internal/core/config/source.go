// Package config implements layered configuration resolution: JSON documents
// and environment variables composed into one priority-ordered view with
// merged reads, routed writes, and batched persistence.
package config

import "encoding/json"

// Source is one configuration scope at runtime. It is a closed union with
// exactly three variants: *Document (mutable, persistable), *EnvSource
// (read-only process environment), and Absent (a scope that could not be
// located). The unexported methods keep the set closed.
type Source interface {
	// Value returns the raw value at key, if present.
	Value(key string) (any, bool)
	// SetValue stores a value at key. The return reports whether the write
	// applied; read-only and absent variants report false without erroring.
	SetValue(key string, value any) bool
	// Save persists in-memory state. Non-persistable variants no-op.
	Save() error

	decode(key string, out any) bool
	source()
}

// Get reads key from a source and converts it to T. A missing key, a stored
// null, or a value of the wrong shape all read as absent.
func Get[T any](s Source, key string) (T, bool) {
	var v T
	if !s.decode(key, &v) {
		var zero T
		return zero, false
	}
	return v, true
}

// Set converts value to its JSON tree form and stores it at key. It reports
// whether the write applied.
func Set[T any](s Source, key string, value T) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		return false
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return false
	}
	return s.SetValue(key, tree)
}

// Absent represents a scope that could not be located. Every read misses and
// every write reports not applied.
type Absent struct{}

func (Absent) Value(string) (any, bool)  { return nil, false }
func (Absent) SetValue(string, any) bool { return false }
func (Absent) Save() error               { return nil }
func (Absent) decode(string, any) bool   { return false }
func (Absent) source()                   {}
