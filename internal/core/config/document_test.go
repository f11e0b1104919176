package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scriptherder.io/cli/internal/infrastructure/storage"
)

// bufferDoc builds a read-only document over an in-memory buffer, the way
// fixture scopes are built.
func bufferDoc(t *testing.T, text string) *Document {
	t.Helper()
	doc, err := LoadDocument(storage.NewMemoryBacking(text), false)
	require.NoError(t, err)
	return doc
}

// writableDoc builds a writable in-memory document.
func writableDoc(t *testing.T, text string) (*Document, *storage.MemoryBacking) {
	t.Helper()
	backing := storage.NewMemoryBacking(text)
	doc, err := LoadDocument(backing, true)
	require.NoError(t, err)
	return doc, backing
}

// TestDocument_Load_ParsesBuffer tests loading initial data
func TestDocument_Load_ParsesBuffer(t *testing.T) {
	doc := bufferDoc(t, `{ "key": "value" }`)

	assert.True(t, doc.Loaded())
	assert.True(t, doc.Synced(), "a freshly loaded document matches its backing")
	assert.False(t, doc.Writable())

	v, ok := doc.Value("key")
	require.True(t, ok)
	assert.Equal(t, "value", v)
}

// TestDocument_Load_Failures tests the read and parse failure paths
func TestDocument_Load_Failures(t *testing.T) {
	tests := []struct {
		name        string
		doc         *Document
		description string
	}{
		{
			name:        "MissingFile_ShouldFail",
			doc:         NewDocument(storage.NewFileBacking(filepath.Join(t.TempDir(), "missing.json")), true),
			description: "a failing backing read surfaces as an error",
		},
		{
			name:        "EmptyText_ShouldFail",
			doc:         NewDocument(storage.NewMemoryBacking(""), true),
			description: "empty text is not valid JSON",
		},
		{
			name:        "MalformedJSON_ShouldFail",
			doc:         NewDocument(storage.NewMemoryBacking(`{"key":`), true),
			description: "truncated JSON must not load",
		},
		{
			name:        "NonObjectRoot_ShouldFail",
			doc:         NewDocument(storage.NewMemoryBacking(`[1, 2]`), true),
			description: "the top level must be an object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Load()
			assert.Error(t, err, tt.description)
			assert.False(t, tt.doc.Loaded(), "a failed load leaves the document unloaded")
		})
	}
}

// TestDocument_Value_AbsentAndNull tests that a stored null is
// indistinguishable from a missing key.
func TestDocument_Value_AbsentAndNull(t *testing.T) {
	doc := bufferDoc(t, `{ "nulled": null }`)

	_, ok := doc.Value("missing")
	assert.False(t, ok)

	_, ok = doc.Value("nulled")
	assert.False(t, ok, "JSON null reads as absent")

	_, ok = Get[string](doc, "nulled")
	assert.False(t, ok, "JSON null reads as absent for typed access too")
}

// TestDocument_SetValue_CreatesAndUpdates tests object creation and dirty
// tracking.
func TestDocument_SetValue_CreatesAndUpdates(t *testing.T) {
	doc := NewDocument(storage.NewMemoryBacking(""), true)
	require.False(t, doc.Loaded())

	doc.SetValue("key", "value")
	assert.True(t, doc.Loaded(), "the first set creates the top-level object")
	assert.False(t, doc.Synced())

	v, ok := doc.Value("key")
	require.True(t, ok)
	assert.Equal(t, "value", v)

	doc.SetValue("key", "new_value")
	v, _ = doc.Value("key")
	assert.Equal(t, "new_value", v)
}

// TestDocument_SyncedTransitions tests the synced flag across load, set and
// save.
func TestDocument_SyncedTransitions(t *testing.T) {
	doc, _ := writableDoc(t, `{}`)
	assert.True(t, doc.Synced())

	doc.SetValue("key", "value")
	assert.False(t, doc.Synced(), "any set marks the document out of sync")

	require.NoError(t, doc.Save())
	assert.True(t, doc.Synced(), "a successful save marks the document synced")
}

// TestDocument_Save_NotWritable tests the write-forbidden path
func TestDocument_Save_NotWritable(t *testing.T) {
	doc, _ := writableDoc(t, `{ "key": "value" }`)
	doc.SetValue("key", "changed")
	doc.Freeze()

	err := doc.Save()
	assert.ErrorIs(t, err, ErrNotWritable)
	assert.False(t, doc.Synced(), "a forbidden save must not touch the synced flag")
}

// TestDocument_Save_NoData tests that saving an empty document is a no-op
func TestDocument_Save_NoData(t *testing.T) {
	backing := storage.NewMemoryBacking("")
	doc := NewDocument(backing, true)

	require.NoError(t, doc.Save())
	assert.Equal(t, "", backing.Data, "a no-op save must not write")
}

// TestDocument_Save_WritesFormatted tests the serialized form: 2-space
// indent, keys in insertion order.
func TestDocument_Save_WritesFormatted(t *testing.T) {
	backing := storage.NewMemoryBacking("")
	doc := NewDocument(backing, true)
	doc.SetValue("key", "value")

	require.NoError(t, doc.Save())
	assert.Equal(t, "{\n  \"key\": \"value\"\n}", backing.Data)
}

// TestDocument_Save_KeepsInsertionOrder tests ordering across set and reload
func TestDocument_Save_KeepsInsertionOrder(t *testing.T) {
	backing := storage.NewMemoryBacking("")
	doc := NewDocument(backing, true)
	doc.SetValue("zebra", 1)
	doc.SetValue("alpha", 2)
	doc.SetValue("zebra", 3)

	require.NoError(t, doc.Save())
	assert.Equal(t, "{\n  \"zebra\": 3,\n  \"alpha\": 2\n}", backing.Data,
		"overwriting a key must not move it")

	reloaded, err := LoadDocument(backing, true)
	require.NoError(t, err)
	reloaded.SetValue("omega", 4)
	require.NoError(t, reloaded.Save())
	assert.Equal(t, "{\n  \"zebra\": 3,\n  \"alpha\": 2,\n  \"omega\": 4\n}", backing.Data,
		"reload must preserve the stored key order")
}

// TestDocument_TypedAccess tests conversion at the typed boundary
func TestDocument_TypedAccess(t *testing.T) {
	doc := bufferDoc(t, `{ "count": 10, "name": "sherd", "flag": true }`)

	n, ok := Get[int](doc, "count")
	require.True(t, ok)
	assert.Equal(t, 10, n)

	s, ok := Get[string](doc, "name")
	require.True(t, ok)
	assert.Equal(t, "sherd", s)

	b, ok := Get[bool](doc, "flag")
	require.True(t, ok)
	assert.True(t, b)

	_, ok = Get[int](doc, "name")
	assert.False(t, ok, "a wrong-shape value reads as absent, not as an error")

	_, ok = Get[string](doc, "missing")
	assert.False(t, ok)
}

// TestDocument_TypedSet tests that typed writes store the JSON tree form
func TestDocument_TypedSet(t *testing.T) {
	doc, backing := writableDoc(t, `{}`)

	require.True(t, Set(doc, "count", 42))
	require.True(t, Set(doc, "name", "sherd"))

	n, ok := Get[int](doc, "count")
	require.True(t, ok)
	assert.Equal(t, 42, n)

	require.NoError(t, doc.Save())
	assert.Equal(t, "{\n  \"count\": 42,\n  \"name\": \"sherd\"\n}", backing.Data)
}
