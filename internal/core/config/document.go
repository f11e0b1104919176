package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"scriptherder.io/cli/internal/core/ports"
)

// Document is the JSON-backed configuration source. It holds the parsed
// top-level object in memory, remembers whether that state matches the
// backing store, and serializes with stable human-readable formatting
// (2-space indent, top-level keys in insertion order).
type Document struct {
	backing  ports.Backing
	data     map[string]any
	keys     []string
	canWrite bool
	synced   bool
}

// NewDocument wraps a backing without loading it. A document built over an
// in-memory backing with canWrite false becomes synced as soon as Load
// succeeds, since there is no external state to diverge from.
func NewDocument(backing ports.Backing, canWrite bool) *Document {
	return &Document{backing: backing, canWrite: canWrite}
}

// LoadDocument wraps a backing and loads it in one step.
func LoadDocument(backing ports.Backing, canWrite bool) (*Document, error) {
	d := NewDocument(backing, canWrite)
	if err := d.Load(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads the backing and parses it as a top-level JSON object. On
// failure the document keeps its previous state.
func (d *Document) Load() error {
	text, err := d.backing.Read()
	if err != nil {
		return fmt.Errorf("config: read: %w", err)
	}

	data, keys, err := decodeObject(text)
	if err != nil {
		return fmt.Errorf("config: parse: %w", err)
	}

	d.data = data
	d.keys = keys
	d.synced = true
	return nil
}

// Loaded reports whether the document holds any data, from a load or a set.
func (d *Document) Loaded() bool {
	return d.data != nil
}

// Synced reports whether the in-memory state matches the backing store's
// last-read-or-written state.
func (d *Document) Synced() bool {
	return d.synced
}

// Writable reports the document's write capability.
func (d *Document) Writable() bool {
	return d.canWrite
}

// Freeze downgrades the document to non-writable. There is no way back.
func (d *Document) Freeze() {
	d.canWrite = false
}

// Value returns the raw value at key in the top-level object. A stored JSON
// null reads as absent.
func (d *Document) Value(key string) (any, bool) {
	if d.data == nil {
		return nil, false
	}
	v, ok := d.data[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// SetValue stores a value at key, creating the top-level object if nothing
// was ever loaded, and marks the document out of sync.
func (d *Document) SetValue(key string, value any) bool {
	if d.data == nil {
		d.data = make(map[string]any)
	}
	if _, exists := d.data[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.data[key] = value
	d.synced = false
	return true
}

// Save serializes the value tree and writes it through the backing. Saving
// a non-writable document is ErrNotWritable; saving a document that never
// held data is a successful no-op.
func (d *Document) Save() error {
	if !d.canWrite {
		return ErrNotWritable
	}
	if d.data == nil {
		return nil
	}

	text, err := d.encode()
	if err != nil {
		return fmt.Errorf("config: serialize: %w", err)
	}
	if err := d.backing.Write(text); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}

	d.synced = true
	return nil
}

func (d *Document) decode(key string, out any) bool {
	v, ok := d.Value(key)
	if !ok {
		return false
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (d *Document) source() {}

// encode renders the top-level object with 2-space indentation, keys in
// insertion order.
func (d *Document) encode() (string, error) {
	if len(d.keys) == 0 {
		return "{}", nil
	}

	var b strings.Builder
	b.WriteString("{\n")
	for i, key := range d.keys {
		name, err := json.Marshal(key)
		if err != nil {
			return "", err
		}
		value, err := json.MarshalIndent(d.data[key], "  ", "  ")
		if err != nil {
			return "", err
		}
		b.WriteString("  ")
		b.Write(name)
		b.WriteString(": ")
		b.Write(value)
		if i < len(d.keys)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String(), nil
}

// decodeObject parses a top-level JSON object keeping the order in which its
// keys appear, which encoding/json's map decoding discards.
func decodeObject(text string) (map[string]any, []string, error) {
	dec := json.NewDecoder(strings.NewReader(text))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("top-level value is not an object")
	}

	data := make(map[string]any)
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key := tok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}
		if _, exists := data[key]; !exists {
			keys = append(keys, key)
		}
		data[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return data, keys, nil
}
