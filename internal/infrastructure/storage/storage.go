// Package storage provides the filesystem and in-memory backings used by
// configuration documents.
package storage

import (
	"os"

	"scriptherder.io/cli/internal/core/ports"
)

// FileBacking persists a document to a single file.
type FileBacking struct {
	Path string
}

func NewFileBacking(path string) *FileBacking {
	return &FileBacking{Path: path}
}

func (f *FileBacking) Read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *FileBacking) Write(data string) error {
	return os.WriteFile(f.Path, []byte(data), 0o644)
}

// MemoryBacking holds a document's serialized form in memory. Useful for
// fixtures and for scopes that have no file behind them.
type MemoryBacking struct {
	Data string
}

func NewMemoryBacking(data string) *MemoryBacking {
	return &MemoryBacking{Data: data}
}

func (m *MemoryBacking) Read() (string, error) {
	return m.Data, nil
}

func (m *MemoryBacking) Write(data string) error {
	m.Data = data
	return nil
}

var (
	_ ports.Backing = (*FileBacking)(nil)
	_ ports.Backing = (*MemoryBacking)(nil)
)
