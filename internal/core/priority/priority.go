// Package priority provides a sparse, integer-slotted ordered collection.
//
// Items occupy arbitrary (possibly negative) integer slots and are always
// visited in ascending slot order. Because the collection tracks its current
// lowest and highest occupied slots, inserting a new item that outranks (or
// is outranked by) everything already present is a constant-time operation
// that never renumbers existing entries.
package priority

import (
	"iter"
	"sort"
)

// List is a collection of items keyed by integer slot. Lower slots are
// visited first. The zero value is ready to use.
type List[T any] struct {
	items   map[int]T
	lowest  int
	highest int
}

// NewList returns an empty list.
func NewList[T any]() *List[T] {
	return &List[T]{items: make(map[int]T)}
}

// Len returns the number of occupied slots.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Lowest returns the lowest occupied slot, or 0 for an empty list.
func (l *List[T]) Lowest() int {
	return l.lowest
}

// Highest returns the highest occupied slot, or 0 for an empty list.
func (l *List[T]) Highest() int {
	return l.highest
}

// At returns the item at the given slot.
func (l *List[T]) At(slot int) (T, bool) {
	item, ok := l.items[slot]
	return item, ok
}

// Set places an item at the given slot, overwriting any previous occupant,
// and widens the tracked slot bounds as needed.
func (l *List[T]) Set(slot int, item T) {
	if l.items == nil {
		l.items = make(map[int]T)
	}
	l.items[slot] = item

	if slot > l.highest {
		l.highest = slot
	}
	if slot < l.lowest {
		l.lowest = slot
	}
}

// Append inserts the item one past the highest occupied slot, so it is
// visited after every item already present.
func (l *List[T]) Append(item T) {
	l.Set(l.highest+1, item)
}

// Prepend inserts the item one before the lowest occupied slot, so it is
// visited ahead of every item already present.
func (l *List[T]) Prepend(item T) {
	l.Set(l.lowest-1, item)
}

// sortedSlots snapshots the occupied slots in ascending order.
func (l *List[T]) sortedSlots() []int {
	slots := make([]int, 0, len(l.items))
	for s := range l.items {
		slots = append(slots, s)
	}
	sort.Ints(slots)
	return slots
}

// All iterates the items in ascending slot order. The sequence is restartable
// and reflects the collection at the moment All is called.
func (l *List[T]) All() iter.Seq[T] {
	slots := l.sortedSlots()
	return func(yield func(T) bool) {
		for _, s := range slots {
			if !yield(l.items[s]) {
				return
			}
		}
	}
}

// First returns the first item, in ascending slot order, satisfying match.
func (l *List[T]) First(match func(T) bool) (T, bool) {
	for item := range l.All() {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// MapFirst applies fn to each item in ascending slot order and returns the
// first produced result. Later items are not visited once a result is found.
func MapFirst[T, U any](l *List[T], fn func(T) (U, bool)) (U, bool) {
	for item := range l.All() {
		if out, ok := fn(item); ok {
			return out, true
		}
	}
	var zero U
	return zero, false
}

// CollectEach applies fn to every item in ascending slot order and returns
// all produced results, in visit order. Unlike MapFirst it never
// short-circuits.
func CollectEach[T, U any](l *List[T], fn func(T) (U, bool)) []U {
	var out []U
	for item := range l.All() {
		if u, ok := fn(item); ok {
			out = append(out, u)
		}
	}
	return out
}
