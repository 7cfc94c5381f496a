// Package orderedset provides a set with O(1) add, remove and membership
// whose iteration order is stable for a given set state.
//
// Elements are kept in a dense slice with a position map. Removal moves the
// last element into the freed slot, so the order after a removal differs from
// insertion order but is still deterministic.
package orderedset

import "iter"

// Set is an insertion-ordered set. The zero value is ready to use.
type Set[T comparable] struct {
	pos   map[T]int
	items []T
}

// New creates a set with room for n elements.
func New[T comparable](n int) *Set[T] {
	if n < 0 {
		n = 0
	}
	return &Set[T]{
		pos:   make(map[T]int, n),
		items: make([]T, 0, n),
	}
}

// Add inserts v. It reports whether v was not already present.
func (s *Set[T]) Add(v T) bool {
	if _, ok := s.pos[v]; ok {
		return false
	}
	if s.pos == nil {
		s.pos = make(map[T]int)
	}
	s.pos[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Remove deletes v. It reports whether v was present.
func (s *Set[T]) Remove(v T) bool {
	i, ok := s.pos[v]
	if !ok {
		return false
	}
	last := len(s.items) - 1
	if i != last {
		moved := s.items[last]
		s.items[i] = moved
		s.pos[moved] = i
	}
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	delete(s.pos, v)
	return true
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.pos[v]
	return ok
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// At returns the i-th element in iteration order.
// The second result is false if i is out of range.
func (s *Set[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// Values returns a copy of the elements in iteration order.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// All iterates the elements in order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns an independent copy with the same iteration order.
func (s *Set[T]) Clone() *Set[T] {
	c := New[T](len(s.items))
	for _, v := range s.items {
		c.pos[v] = len(c.items)
		c.items = append(c.items, v)
	}
	return c
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	clear(s.pos)
	clear(s.items)
	s.items = s.items[:0]
}
