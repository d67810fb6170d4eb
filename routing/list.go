package routing

import "slices"

// Entry is a single value registered in a [List].
type Entry[T any] struct {
	Value   T
	removed bool
}

// Removed reports whether this [Entry] has been removed from its [List].
func (e *Entry[T]) Removed() bool {
	return e.removed
}

// List is an ordered collection of entries owned by a [Node].
// The same List is shared between the graph and any cached match results that reference it.
//
// Note that a List is not concurrency safe.
type List[T any] struct {
	entries []*Entry[T]
}

// Append adds a value to the end of the [List] and returns its [Entry] for later removal.
func (l *List[T]) Append(val T) *Entry[T] {
	e := &Entry[T]{Value: val}
	l.entries = append(l.entries, e)
	return e
}

// Remove removes the first occurrence of the given [Entry], compared by identity.
// Returns false if the entry was not present, which makes repeated calls a no-op.
func (l *List[T]) Remove(e *Entry[T]) bool {
	if e == nil {
		return false
	}
	idx := slices.Index(l.entries, e)
	if idx < 0 {
		return false
	}
	e.removed = true
	l.entries = slices.Delete(l.entries, idx, idx+1)
	return true
}

// Len returns the number of entries currently in the [List].
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Entries returns a snapshot of the current entries in insertion order.
// Entries removed after the snapshot is taken will report [Entry.Removed].
func (l *List[T]) Entries() []*Entry[T] {
	if l.Len() == 0 {
		return nil
	}
	return slices.Clone(l.entries)
}

// Values returns a snapshot of the current entry values in insertion order.
func (l *List[T]) Values() []T {
	if l.Len() == 0 {
		return nil
	}
	vals := make([]T, len(l.entries))
	for i, e := range l.entries {
		vals[i] = e.Value
	}
	return vals
}
