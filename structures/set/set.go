package set

// Set is a collection of unique comparable values.
// The zero value is usable with Add, which will allocate as needed.
type Set[T comparable] map[T]struct{}

// New creates a new [Set] from the given values.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts one or more values, returning the (possibly newly allocated) [Set].
func (s Set[T]) Add(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	s[val] = struct{}{}
	for _, v := range others {
		s[v] = struct{}{}
	}
	return s
}

// Insert adds val and reports whether it was absent before the call.
// This is useful for "seen" tracking where membership check and insertion happen together.
func (s Set[T]) Insert(val T) bool {
	if _, ok := s[val]; ok {
		return false
	}
	s[val] = struct{}{}
	return true
}

// Remove deletes one or more values, if present.
func (s Set[T]) Remove(val T, others ...T) Set[T] {
	delete(s, val)
	for _, v := range others {
		delete(s, v)
	}
	return s
}

// Has reports whether val is in the [Set].
func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// Slice returns the values in the [Set] in no particular order, or nil if it's empty.
func (s Set[T]) Slice() []T {
	if len(s) == 0 {
		return nil
	}
	vals := make([]T, 0, len(s))
	for val := range s {
		vals = append(vals, val)
	}
	return vals
}
