package datastruct

import (
	"iter"

	"go.llib.dev/containerkit/pkg/option"
	"go.llib.dev/containerkit/pkg/slicekit"
)

// ArrayList is a contiguous, index addressable container.
// The zero value is ready to use.
//
// Lookup and update by index is O(1), Append is amortized O(1),
// Insert and Delete at an index is O(n).
// The backing storage grows geometrically and never shrinks on removal,
// to avoid thrashing on repeated remove/append cycles.
type ArrayList[T any] struct {
	vs    []T
	views []*ArrayView[T]
}

type ArrayListConfig struct {
	Capacity int
}

type ArrayListOption = option.Option[ArrayListConfig]

// WithCapacity preallocates backing storage for the given element count.
func WithCapacity(n int) ArrayListOption {
	return option.Func[ArrayListConfig](func(c *ArrayListConfig) {
		c.Capacity = n
	})
}

func NewArrayList[T any](opts ...ArrayListOption) *ArrayList[T] {
	c := option.Use(opts)
	var l ArrayList[T]
	if 0 < c.Capacity {
		l.vs = make([]T, 0, c.Capacity)
	}
	return &l
}

// Len tells the current element count.
func (l *ArrayList[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.vs)
}

// At returns the element on the given index.
// An index outside of [0, Len) is a precondition violation (ErrOutOfRange).
func (l *ArrayList[T]) At(index int) T {
	l.mustBeInBounds(index)
	return l.vs[index]
}

// Lookup returns the element on the given index,
// and reports back whether the index was within bounds.
func (l *ArrayList[T]) Lookup(index int) (T, bool) {
	return slicekit.Lookup(l.vs, index)
}

// Set overwrites the element on the given index,
// and reports whether the index was within bounds.
func (l *ArrayList[T]) Set(index int, val T) bool {
	if index < 0 || len(l.vs) <= index {
		return false
	}
	l.vs[index] = val
	return true
}

func (l *ArrayList[T]) Append(vs ...T) {
	if len(vs) == 0 {
		return
	}
	l.grow(len(vs))
	l.vs = append(l.vs, vs...)
}

// Insert places the values before the element currently on the given index.
// Inserting at index Len appends. It reports whether the index was within bounds.
func (l *ArrayList[T]) Insert(index int, vs ...T) bool {
	if index < 0 || len(l.vs) < index {
		return false
	}
	if len(vs) == 0 {
		return true
	}
	l.grow(len(vs))
	var zero T
	for range vs {
		l.vs = append(l.vs, zero)
	}
	copy(l.vs[index+len(vs):], l.vs[index:])
	copy(l.vs[index:], vs)
	l.viewsOnInsert(index, len(vs))
	return true
}

// Delete removes the element on the given index by shifting the elements after it,
// and reports whether the index was within bounds.
// Every view that overlaps the index shrinks with the removal.
func (l *ArrayList[T]) Delete(index int) bool {
	if index < 0 || len(l.vs) <= index {
		return false
	}
	l.deleteAt(index)
	return true
}

func (l *ArrayList[T]) deleteAt(index int) {
	copy(l.vs[index:], l.vs[index+1:])
	l.truncate(len(l.vs) - 1)
	l.viewsOnDelete(index)
}

// Clear removes every element. The backing storage capacity is retained.
func (l *ArrayList[T]) Clear() {
	l.truncate(0)
	for _, w := range l.views {
		w.lo, w.hi = 0, 0
	}
}

func (l *ArrayList[T]) ToSlice() []T {
	var out []T
	return append(out, l.vs...)
}

// Dup creates an independent copy with freshly allocated backing storage.
// Element values are not deep copied. Views are not carried over.
func (l *ArrayList[T]) Dup() *ArrayList[T] {
	dup := &ArrayList[T]{vs: make([]T, len(l.vs), cap(l.vs))}
	copy(dup.vs, l.vs)
	return dup
}

func (l *ArrayList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for _, v := range l.vs {
			if !yield(v) {
				return
			}
		}
	}
}

func (l *ArrayList[T]) Iter2() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		for i, v := range l.vs {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Slice returns a live view on the [lo, hi) sub-range.
// The view shares the list's backing storage:
// removing an element through the view removes it from the list,
// and structural changes on the list move or shrink the view's window.
// A range where lo < 0 or hi < lo or Len < hi is a precondition violation (ErrOutOfRange).
func (l *ArrayList[T]) Slice(lo, hi int) *ArrayView[T] {
	if lo < 0 || hi < lo || len(l.vs) < hi {
		panic(ErrOutOfRange)
	}
	w := &ArrayView[T]{list: l, lo: lo, hi: hi}
	l.views = append(l.views, w)
	return w
}

func (l *ArrayList[T]) mustBeInBounds(index int) {
	if index < 0 || len(l.vs) <= index {
		panic(ErrOutOfRange)
	}
}

// grow ensures room for n more elements, doubling the capacity when exceeded.
func (l *ArrayList[T]) grow(n int) {
	need := len(l.vs) + n
	if need <= cap(l.vs) {
		return
	}
	newCap := cap(l.vs)
	if newCap == 0 {
		newCap = 4
	}
	for newCap < need {
		newCap *= 2
	}
	vs := make([]T, len(l.vs), newCap)
	copy(vs, l.vs)
	l.vs = vs
}

// truncate shortens the list to n elements,
// zeroing the cut tail so removed values are released.
func (l *ArrayList[T]) truncate(n int) {
	var zero T
	for i := n; i < len(l.vs); i++ {
		l.vs[i] = zero
	}
	l.vs = l.vs[:n]
}

func (l *ArrayList[T]) viewsOnInsert(index, n int) {
	for _, w := range l.views {
		if index <= w.lo {
			w.lo += n
			w.hi += n
		} else if index < w.hi {
			w.hi += n
		}
	}
}

func (l *ArrayList[T]) viewsOnDelete(index int) {
	for _, w := range l.views {
		if index < w.lo {
			w.lo--
		}
		if index < w.hi {
			w.hi--
		}
	}
}

// ArrayView is a live window over a sub-range of an ArrayList.
// It owns no elements; reads and writes go through to the parent list.
type ArrayView[T any] struct {
	list   *ArrayList[T]
	lo, hi int
}

// Len tells the current window length.
func (w *ArrayView[T]) Len() int { return w.hi - w.lo }

// At returns the element on the given view relative index.
// An index outside of [0, Len) is a precondition violation (ErrOutOfRange).
func (w *ArrayView[T]) At(index int) T {
	if index < 0 || w.Len() <= index {
		panic(ErrOutOfRange)
	}
	return w.list.vs[w.lo+index]
}

// Lookup returns the element on the given view relative index,
// and reports back whether the index was within bounds.
func (w *ArrayView[T]) Lookup(index int) (T, bool) {
	return slicekit.Lookup(w.list.vs[w.lo:w.hi], index)
}

// Set overwrites the element on the given view relative index through to the parent,
// and reports whether the index was within bounds.
func (w *ArrayView[T]) Set(index int, val T) bool {
	if index < 0 || w.Len() <= index {
		return false
	}
	w.list.vs[w.lo+index] = val
	return true
}

// Delete removes the element on the given view relative index from the parent list.
// The window and every other overlapping view shrink accordingly.
func (w *ArrayView[T]) Delete(index int) bool {
	if index < 0 || w.Len() <= index {
		return false
	}
	w.list.deleteAt(w.lo + index)
	return true
}

func (w *ArrayView[T]) ToSlice() []T {
	var out []T
	return append(out, w.list.vs[w.lo:w.hi]...)
}

func (w *ArrayView[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := w.lo; i < w.hi; i++ {
			if !yield(w.list.vs[i]) {
				return
			}
		}
	}
}

// Slice returns a view on the sub-range of this view, registered on the parent list.
func (w *ArrayView[T]) Slice(lo, hi int) *ArrayView[T] {
	if lo < 0 || hi < lo || w.Len() < hi {
		panic(ErrOutOfRange)
	}
	return w.list.Slice(w.lo+lo, w.lo+hi)
}

var _ Sequence[any] = (*ArrayList[any])(nil)
