package datastruct

import (
	"iter"

	"go.llib.dev/containerkit/pkg/compare"
	"golang.org/x/exp/constraints"
)

// TreeBag is an ordered multiset backed by a red-black tree of per-value counts.
// Equal values are stored once with their multiplicity.
// Its convenient element is the minimum, which makes Get and Take deterministic.
//
// Use NewTreeBag or NewTreeBagOf to create one; the zero value has no element ordering.
type TreeBag[T comparable] struct {
	tree rbTree[T, int]
	size int
}

// NewTreeBag creates a TreeBag ordered by the natural ordering of its element type.
func NewTreeBag[T constraints.Ordered](vs ...T) *TreeBag[T] {
	b := NewTreeBagOf[T](compare.Default[T]())
	b.Add(vs...)
	return b
}

// NewTreeBagOf creates a TreeBag ordered by the received comparison function.
func NewTreeBagOf[T comparable](cmp compare.Func[T]) *TreeBag[T] {
	return &TreeBag[T]{tree: rbTree[T, int]{cmp: cmp}}
}

// Len tells the total element count, multiplicity included.
func (b *TreeBag[T]) Len() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Distinct tells how many distinct values the bag holds.
func (b *TreeBag[T]) Distinct() int {
	if b == nil {
		return 0
	}
	return b.tree.len()
}

func (b *TreeBag[T]) Add(vs ...T) {
	for _, v := range vs {
		if count, ok := b.tree.lookup(v); ok {
			b.tree.update(v, count+1)
		} else {
			b.tree.insert(v, 1)
		}
		b.size++
	}
}

// Count returns the current multiplicity of the value.
func (b *TreeBag[T]) Count(v T) int {
	if b == nil {
		return 0
	}
	count, _ := b.tree.lookup(v)
	return count
}

// Remove deletes one instance of the value, and reports whether it was present.
func (b *TreeBag[T]) Remove(v T) bool {
	count, ok := b.tree.lookup(v)
	if !ok {
		return false
	}
	if count == 1 {
		b.tree.delete(v)
	} else {
		b.tree.update(v, count-1)
	}
	b.size--
	return true
}

// RemoveAll deletes every instance of the value, and reports how many were removed.
func (b *TreeBag[T]) RemoveAll(v T) int {
	count, ok := b.tree.delete(v)
	if !ok {
		return 0
	}
	b.size -= count
	return count
}

// Get returns one instance of the minimum element.
// Calling it on an empty bag is a precondition violation (ErrEmpty).
func (b *TreeBag[T]) Get() T {
	v, _, ok := b.tree.min()
	if !ok {
		panic(ErrEmpty)
	}
	return v
}

// Take removes and returns one instance of the minimum element.
// Calling it on an empty bag is a precondition violation (ErrEmpty).
func (b *TreeBag[T]) Take() T {
	v := b.Get()
	b.Remove(v)
	return v
}

// ToSlice returns every instance in ascending order, equal values adjacent.
func (b *TreeBag[T]) ToSlice() []T {
	out := make([]T, 0, b.Len())
	for v := range b.Iter() {
		out = append(out, v)
	}
	return out
}

// Iter yields every instance: a value with multiplicity n is yielded n times in a row.
func (b *TreeBag[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if b == nil {
			return
		}
		for v, count := range b.tree.iter() {
			for i := 0; i < count; i++ {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func (b *TreeBag[T]) Clear() {
	b.tree.clear()
	b.size = 0
}

// Dup creates an independent copy with freshly allocated nodes.
func (b *TreeBag[T]) Dup() *TreeBag[T] {
	return &TreeBag[T]{tree: b.tree.dup(), size: b.size}
}

var _ Bag[int] = (*TreeBag[int])(nil)

// HashBag is an unordered multiset backed by an open hash table of per-value counts.
// Equal values are stored once with their multiplicity.
// Its convenient element is an arbitrary O(1) pick,
// which is not deterministic across mutations.
// The zero value is ready to use.
type HashBag[T comparable] struct {
	table hashTable[T, int]
	size  int
}

// NewHashBag creates a HashBag from the received values.
func NewHashBag[T comparable](vs ...T) *HashBag[T] {
	var b HashBag[T]
	b.Add(vs...)
	return &b
}

// Len tells the total element count, multiplicity included.
func (b *HashBag[T]) Len() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Distinct tells how many distinct values the bag holds.
func (b *HashBag[T]) Distinct() int {
	if b == nil {
		return 0
	}
	return b.table.len()
}

func (b *HashBag[T]) Add(vs ...T) {
	for _, v := range vs {
		if count, ok := b.table.lookup(v); ok {
			b.table.update(v, count+1)
		} else {
			b.table.insert(v, 1)
		}
		b.size++
	}
}

// Count returns the current multiplicity of the value.
func (b *HashBag[T]) Count(v T) int {
	if b == nil {
		return 0
	}
	count, _ := b.table.lookup(v)
	return count
}

// Remove deletes one instance of the value, and reports whether it was present.
func (b *HashBag[T]) Remove(v T) bool {
	count, ok := b.table.lookup(v)
	if !ok {
		return false
	}
	if count == 1 {
		b.table.delete(v)
	} else {
		b.table.update(v, count-1)
	}
	b.size--
	return true
}

// RemoveAll deletes every instance of the value, and reports how many were removed.
func (b *HashBag[T]) RemoveAll(v T) int {
	count, ok := b.table.delete(v)
	if !ok {
		return 0
	}
	b.size -= count
	return count
}

// Get returns one instance of an arbitrary element:
// whichever the traversal order currently yields first.
// Calling it on an empty bag is a precondition violation (ErrEmpty).
func (b *HashBag[T]) Get() T {
	v, _, ok := b.table.first()
	if !ok {
		panic(ErrEmpty)
	}
	return v
}

// Take removes and returns one instance of an arbitrary element.
// Calling it on an empty bag is a precondition violation (ErrEmpty).
func (b *HashBag[T]) Take() T {
	v := b.Get()
	b.Remove(v)
	return v
}

// ToSlice returns every instance, equal values adjacent, in an unspecified order.
func (b *HashBag[T]) ToSlice() []T {
	out := make([]T, 0, b.Len())
	for v := range b.Iter() {
		out = append(out, v)
	}
	return out
}

// Iter yields every instance: a value with multiplicity n is yielded n times in a row.
func (b *HashBag[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if b == nil {
			return
		}
		for v, count := range b.table.iter() {
			for i := 0; i < count; i++ {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func (b *HashBag[T]) Clear() {
	b.table.clear()
	b.size = 0
}

// Dup creates an independent copy with freshly allocated entries.
func (b *HashBag[T]) Dup() *HashBag[T] {
	return &HashBag[T]{table: b.table.dup(), size: b.size}
}

var _ Bag[int] = (*HashBag[int])(nil)
