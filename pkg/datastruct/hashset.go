package datastruct

import "iter"

// HashSet is an unordered unique element container backed by an open hash table.
// Add, Has and Remove run in average O(1).
// Iteration order is unspecified and may change after any mutation.
// The zero value is ready to use.
type HashSet[T comparable] struct {
	table hashTable[T, struct{}]
}

// NewHashSet creates a HashSet from the received values.
func NewHashSet[T comparable](vs ...T) *HashSet[T] {
	var s HashSet[T]
	s.Add(vs...)
	return &s
}

func (s *HashSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.table.len()
}

// Add stores the received values, and reports how many were actually added.
// Values already present count as zero.
func (s *HashSet[T]) Add(vs ...T) int {
	var added int
	for _, v := range vs {
		if s.table.insert(v, struct{}{}) {
			added++
		}
	}
	return added
}

func (s *HashSet[T]) Has(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.table.lookup(v)
	return ok
}

// Remove deletes the value, and reports whether it was present.
func (s *HashSet[T]) Remove(v T) bool {
	_, ok := s.table.delete(v)
	return ok
}

func (s *HashSet[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.Iter() {
		out = append(out, v)
	}
	return out
}

// Iter walks the elements in an unspecified order.
func (s *HashSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for v := range s.table.iter() {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *HashSet[T]) Clear() {
	s.table.clear()
}

// Dup creates an independent copy with freshly allocated entries.
func (s *HashSet[T]) Dup() *HashSet[T] {
	return &HashSet[T]{table: s.table.dup()}
}

// Union adds every element of the sequence, and reports how many were actually added.
func (s *HashSet[T]) Union(vs iter.Seq[T]) int {
	var added int
	for v := range vs {
		added += s.Add(v)
	}
	return added
}

// Intersect keeps only the elements present in the received sequence,
// and reports how many elements were removed.
func (s *HashSet[T]) Intersect(vs iter.Seq[T]) int {
	keep := make(map[T]struct{})
	for v := range vs {
		keep[v] = struct{}{}
	}
	var toRemove []T
	for v := range s.Iter() {
		if _, ok := keep[v]; !ok {
			toRemove = append(toRemove, v)
		}
	}
	for _, v := range toRemove {
		s.table.delete(v)
	}
	return len(toRemove)
}

// Subtract removes every element of the sequence, and reports how many were present.
func (s *HashSet[T]) Subtract(vs iter.Seq[T]) int {
	var removed int
	for v := range vs {
		if s.Remove(v) {
			removed++
		}
	}
	return removed
}

var _ SetInterface[int] = (*HashSet[int])(nil)
