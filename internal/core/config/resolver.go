package config

import (
	"iter"

	"scriptherder.io/cli/internal/core/priority"
)

// Resolver composes sources into one logical view. Reads return the first
// value found in ascending priority order, writes route to the first mutable
// source, and Sync persists every dirty persistable source.
type Resolver struct {
	sources *priority.List[Source]
}

func NewResolver() *Resolver {
	return &Resolver{sources: priority.NewList[Source]()}
}

// RegisterDefault appends the source below everything registered so far:
// among defaults, earlier registrations outrank later ones.
func (r *Resolver) RegisterDefault(s Source) {
	r.sources.Append(s)
}

// RegisterTop inserts the source above everything registered so far,
// regardless of how the rest were registered.
func (r *Resolver) RegisterTop(s Source) {
	r.sources.Prepend(s)
}

// Sources iterates the registered sources in descending precedence order.
func (r *Resolver) Sources() iter.Seq[Source] {
	return r.sources.All()
}

// Value returns the raw value for key from the highest-precedence source
// that defines it. Absence everywhere is a miss, not an error.
func (r *Resolver) Value(key string) (any, bool) {
	return priority.MapFirst(r.sources, func(s Source) (any, bool) {
		return s.Value(key)
	})
}

// SetValue stores the value in the highest-precedence mutable source. With
// no mutable source registered the write is inert and reports not applied.
func (r *Resolver) SetValue(key string, value any) bool {
	doc, ok := r.firstDocument()
	if !ok {
		return false
	}
	return doc.SetValue(key, value)
}

// Sync saves every document source that is writable and out of sync,
// collecting one outcome per attempted save in precedence order. A failed
// save does not stop later sources from being attempted; callers must
// inspect every element to know whether persistence fully succeeded.
func (r *Resolver) Sync() []error {
	return priority.CollectEach(r.sources, func(s Source) (error, bool) {
		doc, ok := s.(*Document)
		if !ok || doc.Synced() || !doc.Writable() {
			return nil, false
		}
		return doc.Save(), true
	})
}

func (r *Resolver) firstDocument() (*Document, bool) {
	s, ok := r.sources.First(func(s Source) bool {
		_, isDoc := s.(*Document)
		return isDoc
	})
	if !ok {
		return nil, false
	}
	return s.(*Document), true
}

// Resolve reads key through the resolver with conversion to T. Each source
// applies its own conversion, so a value that has the wrong shape in one
// source falls through to the next.
func Resolve[T any](r *Resolver, key string) (T, bool) {
	return priority.MapFirst(r.sources, func(s Source) (T, bool) {
		return Get[T](s, key)
	})
}

// Put writes a typed value through the resolver into the first mutable
// source, reporting whether the write applied.
func Put[T any](r *Resolver, key string, value T) bool {
	doc, ok := r.firstDocument()
	if !ok {
		return false
	}
	return Set[T](doc, key, value)
}
