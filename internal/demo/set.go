package demo

import "slices"

// Set is an unordered collection of distinct values.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	s.Add(items...)
	return s
}

func (s Set[T]) Add(items ...T) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

func (s Set[T]) Len() int { return len(s) }

// Equal reports whether both sets hold exactly the same members.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for item := range s {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// ListsEqual compares element by element, so order matters.
func ListsEqual[T comparable](a, b []T) bool {
	return slices.Equal(a, b)
}

// SetsEqual ignores order and duplicates.
func SetsEqual[T comparable](a, b []T) bool {
	return NewSet(a...).Equal(NewSet(b...))
}
