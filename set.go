package colser

import "iter"

// OrderedSet is a set that iterates in order of first insertion. Adding a
// value that is already present leaves its position unchanged.
//
// An OrderedSet is not safe for concurrent mutation.
type OrderedSet[T comparable] struct {
	index  map[T]int
	values []T
}

// NewOrderedSet returns an empty set with room for capacity values.
func NewOrderedSet[T comparable](capacity int) *OrderedSet[T] {
	return &OrderedSet[T]{
		index:  make(map[T]int, capacity),
		values: make([]T, 0, capacity),
	}
}

// SetOf builds a set from values, dropping later duplicates.
func SetOf[T comparable](values ...T) *OrderedSet[T] {
	s := NewOrderedSet[T](len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *OrderedSet[T]) Add(v T) bool {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.values)
	s.values = append(s.values, v)
	return true
}

// Contains reports whether v is in the set.
func (s *OrderedSet[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[v]
	return ok
}

// Remove deletes v and reports whether it was present. Later values keep
// their relative order.
func (s *OrderedSet[T]) Remove(v T) bool {
	if s == nil {
		return false
	}
	i, ok := s.index[v]
	if !ok {
		return false
	}
	delete(s.index, v)
	s.values = append(s.values[:i], s.values[i+1:]...)
	for j := i; j < len(s.values); j++ {
		s.index[s.values[j]] = j
	}
	return true
}

// Len returns the number of values. A nil set is empty.
func (s *OrderedSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Values returns a copy of the values in iteration order.
func (s *OrderedSet[T]) Values() []T {
	if s == nil {
		return []T{}
	}
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

// All iterates the values in order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports whether both sets hold the same values in the same order.
func (s *OrderedSet[T]) Equal(other *OrderedSet[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if s.values[i] != other.values[i] {
			return false
		}
	}
	return true
}
