package ring

import "github.com/saylorsolutions/topicbus/assert"

// Ring is a fixed-capacity log that holds the most recent items pushed to it.
// Once capacity is reached, each push discards the oldest item.
//
// Note that a Ring is not concurrency safe.
type Ring[T any] struct {
	capacity int
	start    int
	end      int
	items    []T
}

// New creates a [Ring] that holds at most capacity items.
// This will panic if capacity is not positive.
func New[T any](capacity int) *Ring[T] {
	assert.True("ring capacity must be positive", capacity > 0)
	return &Ring[T]{
		capacity: capacity,
		items:    make([]T, 0, min(capacity, 64)),
	}
}

// Push appends an item to the log, overwriting the oldest item if the [Ring] is full.
func (r *Ring[T]) Push(item T) {
	if r.end-r.start >= r.capacity {
		r.start++
		if r.start >= r.capacity {
			r.start = 0
			r.end = r.capacity - 1
		}
	}
	idx := r.end % r.capacity
	if idx == len(r.items) {
		r.items = append(r.items, item)
	} else {
		r.items[idx] = item
	}
	r.end++
}

// Slice returns a copy of the items in the order they were pushed, oldest first.
func (r *Ring[T]) Slice() []T {
	first := r.items[r.start:min(r.end, r.capacity)]
	second := r.items[:max(r.end-r.capacity, 0)]
	out := make([]T, 0, len(first)+len(second))
	out = append(out, first...)
	return append(out, second...)
}

// Len returns the number of items currently held.
func (r *Ring[T]) Len() int {
	return min(r.end, r.capacity) - r.start + max(r.end-r.capacity, 0)
}

// Cap returns the maximum number of items the [Ring] will hold.
func (r *Ring[T]) Cap() int {
	return r.capacity
}
