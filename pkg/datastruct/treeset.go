package datastruct

import (
	"iter"

	"go.llib.dev/containerkit/pkg/compare"
	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered unique element container backed by a red-black tree.
// Add, Has and Remove run in O(log N); iteration yields the elements in ascending order.
//
// Use NewTreeSet or NewTreeSetOf to create one; the zero value has no element ordering.
type TreeSet[T comparable] struct {
	tree rbTree[T, struct{}]
}

// NewTreeSet creates a TreeSet ordered by the natural ordering of its element type.
func NewTreeSet[T constraints.Ordered](vs ...T) *TreeSet[T] {
	s := NewTreeSetOf[T](compare.Default[T]())
	s.Add(vs...)
	return s
}

// NewTreeSetOf creates a TreeSet ordered by the received comparison function.
func NewTreeSetOf[T comparable](cmp compare.Func[T]) *TreeSet[T] {
	return &TreeSet[T]{tree: rbTree[T, struct{}]{cmp: cmp}}
}

func (s *TreeSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.tree.len()
}

// Add stores the received values, and reports how many were actually added.
// Values already present count as zero.
func (s *TreeSet[T]) Add(vs ...T) int {
	var added int
	for _, v := range vs {
		if s.tree.insert(v, struct{}{}) {
			added++
		}
	}
	return added
}

func (s *TreeSet[T]) Has(v T) bool {
	_, ok := s.tree.lookup(v)
	return ok
}

// Remove deletes the value, and reports whether it was present.
func (s *TreeSet[T]) Remove(v T) bool {
	_, ok := s.tree.delete(v)
	return ok
}

// Min returns the smallest element.
func (s *TreeSet[T]) Min() (T, bool) {
	v, _, ok := s.tree.min()
	return v, ok
}

// Max returns the greatest element.
func (s *TreeSet[T]) Max() (T, bool) {
	v, _, ok := s.tree.max()
	return v, ok
}

// ToSlice returns the elements in ascending order.
func (s *TreeSet[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.Iter() {
		out = append(out, v)
	}
	return out
}

// Iter walks the elements in ascending order.
func (s *TreeSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for v := range s.tree.iter() {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *TreeSet[T]) Clear() {
	s.tree.clear()
}

// Dup creates an independent copy with freshly allocated nodes.
func (s *TreeSet[T]) Dup() *TreeSet[T] {
	return &TreeSet[T]{tree: s.tree.dup()}
}

// Union adds every element of the sequence, and reports how many were actually added.
func (s *TreeSet[T]) Union(vs iter.Seq[T]) int {
	var added int
	for v := range vs {
		added += s.Add(v)
	}
	return added
}

// Intersect keeps only the elements present in the received sequence,
// and reports how many elements were removed.
func (s *TreeSet[T]) Intersect(vs iter.Seq[T]) int {
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
		s.tree.delete(v)
	}
	return len(toRemove)
}

// Subtract removes every element of the sequence, and reports how many were present.
func (s *TreeSet[T]) Subtract(vs iter.Seq[T]) int {
	var removed int
	for v := range vs {
		if s.Remove(v) {
			removed++
		}
	}
	return removed
}

var _ SetInterface[int] = (*TreeSet[int])(nil)
