package datastruct

import (
	"iter"
	"slices"

	"go.llib.dev/containerkit/pkg/arena"
	"go.llib.dev/containerkit/pkg/compare"
	"go.llib.dev/containerkit/pkg/slicekit"
	"golang.org/x/exp/constraints"
)

// LinkedList is a doubly linked container with cursor stable elements.
// The zero value is ready to use.
//
// Nodes live in an arena and link to each other through arena references,
// so a Cursor survives insertions anywhere in the list
// and removals of any element other than its own.
// Removing the cursor's own element turns that cursor stale;
// the removal hands back a fresh cursor on the next remaining element.
type LinkedList[T any] struct {
	nodes      arena.Arena[llNode[T]]
	head, tail arena.Ref
}

type llNode[T any] struct {
	value      T
	prev, next arena.Ref
}

// Len tells the current element count.
func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.nodes.Len()
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) arena.Ref {
	ref := ll.nodes.Alloc(llNode[T]{value: v, prev: ll.tail})
	if ll.tail.IsNil() {
		ll.head = ref
	} else {
		ll.node(ll.tail).next = ref
	}
	ll.tail = ref
	return ref
}

// Prepend adds the values to the beginning of the list.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	if len(vs) == 0 {
		return
	}
	for _, v := range slicekit.IterReverse(vs) {
		ll.prepend(v)
	}
}

func (ll *LinkedList[T]) prepend(v T) arena.Ref {
	ref := ll.nodes.Alloc(llNode[T]{value: v, next: ll.head})
	if ll.head.IsNil() {
		ll.tail = ref
	} else {
		ll.node(ll.head).prev = ref
	}
	ll.head = ref
	return ref
}

// Shift removes and returns the first element.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head.IsNil() {
		var zero T
		return zero, false
	}
	return ll.unlink(ll.head), true
}

// Pop removes and returns the last element.
func (ll *LinkedList[T]) Pop() (T, bool) {
	if ll.tail.IsNil() {
		var zero T
		return zero, false
	}
	return ll.unlink(ll.tail), true
}

// Lookup returns the element on the given index, walking the links, O(n).
func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.Len() <= index {
		var zero T
		return zero, false
	}
	for i, v := range ll.Iter2() {
		if i == index {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (ll *LinkedList[T]) ToSlice() []T {
	var vs []T
	for v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *LinkedList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; !current.IsNil(); {
			n := ll.node(current)
			if !yield(n.value) {
				return
			}
			current = n.next
		}
	}
}

func (ll *LinkedList[T]) Iter2() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if ll == nil {
			return
		}
		var index int
		for current := ll.head; !current.IsNil(); index++ {
			n := ll.node(current)
			if !yield(index, n.value) {
				return
			}
			current = n.next
		}
	}
}

// Clear removes every element and releases their nodes.
func (ll *LinkedList[T]) Clear() {
	for !ll.head.IsNil() {
		ll.unlink(ll.head)
	}
}

// Dup creates an independent copy with freshly allocated nodes.
// Element values are not deep copied; cursors of the original do not designate into the copy.
func (ll *LinkedList[T]) Dup() *LinkedList[T] {
	var dup LinkedList[T]
	for v := range ll.Iter() {
		dup.append(v)
	}
	return &dup
}

// Concat creates a new list holding the elements of the receiver followed by the elements of oth.
// The result has freshly created nodes referencing the same element values;
// both operands are left unmodified and stay independent from the result.
func (ll *LinkedList[T]) Concat(oth *LinkedList[T]) *LinkedList[T] {
	var out LinkedList[T]
	for v := range ll.Iter() {
		out.append(v)
	}
	for v := range oth.Iter() {
		out.append(v)
	}
	return &out
}

// Sort orders the elements in place in O(N log N).
// The order of equal elements is kept when cmp is a total order.
func (ll *LinkedList[T]) Sort(cmp compare.Func[T]) {
	vs := ll.ToSlice()
	slices.SortStableFunc(vs, cmp)
	var i int
	for current := ll.head; !current.IsNil(); i++ {
		n := ll.node(current)
		n.value = vs[i]
		current = n.next
	}
}

// SortOrdered sorts the list by the natural ordering of its element type.
func SortOrdered[T constraints.Ordered](ll *LinkedList[T]) {
	ll.Sort(compare.Default[T]())
}

// First returns a cursor designating the first element, or the end cursor when the list is empty.
func (ll *LinkedList[T]) First() Cursor[T] {
	return Cursor[T]{list: ll, ref: ll.head}
}

// Last returns a cursor designating the last element, or the end cursor when the list is empty.
func (ll *LinkedList[T]) Last() Cursor[T] {
	return Cursor[T]{list: ll, ref: ll.tail}
}

// FindBy walks the list and returns a cursor on the first element the predicate accepts,
// or the end cursor when there is none.
func (ll *LinkedList[T]) FindBy(pred func(T) bool) Cursor[T] {
	for current := ll.head; !current.IsNil(); {
		n := ll.node(current)
		if pred(n.value) {
			return Cursor[T]{list: ll, ref: current}
		}
		current = n.next
	}
	return Cursor[T]{list: ll}
}

// Find returns a cursor on the first element equal to the given value,
// or the end cursor when the value is absent.
func Find[T comparable](ll *LinkedList[T], v T) Cursor[T] {
	return ll.FindBy(func(got T) bool { return got == v })
}

// InsertAfter places the values right after the cursor's element in O(1) per value,
// and returns a cursor on the last inserted element.
// Existing cursors are unaffected. A stale or end cursor is a precondition violation.
func (ll *LinkedList[T]) InsertAfter(c Cursor[T], vs ...T) Cursor[T] {
	ref := ll.mustResolve(c)
	if len(vs) == 0 {
		return c
	}
	for _, v := range vs {
		ref = ll.insertAfterRef(ref, v)
	}
	return Cursor[T]{list: ll, ref: ref}
}

// InsertBefore places the values right before the cursor's element in O(1) per value,
// and returns a cursor on the first inserted element.
func (ll *LinkedList[T]) InsertBefore(c Cursor[T], vs ...T) Cursor[T] {
	ref := ll.mustResolve(c)
	if len(vs) == 0 {
		return c
	}
	out := Cursor[T]{list: ll}
	for i, v := range slicekit.IterReverse(vs) {
		ref = ll.insertBeforeRef(ref, v)
		if i == 0 {
			out.ref = ref
		}
	}
	return out
}

// Remove unlinks the cursor's element in O(1).
// The received cursor turns stale; the returned cursor designates
// the next remaining element, or it is the end cursor when there is none.
// Cursors on other elements are unaffected.
// A stale or end cursor is a precondition violation (ErrStaleCursor).
func (ll *LinkedList[T]) Remove(c Cursor[T]) Cursor[T] {
	ref := ll.mustResolve(c)
	next := ll.node(ref).next
	ll.unlink(ref)
	return Cursor[T]{list: ll, ref: next}
}

func (ll *LinkedList[T]) insertAfterRef(ref arena.Ref, v T) arena.Ref {
	next := ll.node(ref).next
	if next.IsNil() {
		return ll.append(v)
	}
	newRef := ll.nodes.Alloc(llNode[T]{value: v, prev: ref, next: next})
	ll.node(ref).next = newRef
	ll.node(next).prev = newRef
	return newRef
}

func (ll *LinkedList[T]) insertBeforeRef(ref arena.Ref, v T) arena.Ref {
	prev := ll.node(ref).prev
	if prev.IsNil() {
		return ll.prepend(v)
	}
	newRef := ll.nodes.Alloc(llNode[T]{value: v, prev: prev, next: ref})
	ll.node(prev).next = newRef
	ll.node(ref).prev = newRef
	return newRef
}

// unlink detaches the node and releases its arena slot,
// which turns every cursor of this element stale.
func (ll *LinkedList[T]) unlink(ref arena.Ref) T {
	n := ll.node(ref)
	value, prev, next := n.value, n.prev, n.next
	if prev.IsNil() {
		ll.head = next
	} else {
		ll.node(prev).next = next
	}
	if next.IsNil() {
		ll.tail = prev
	} else {
		ll.node(next).prev = prev
	}
	ll.nodes.Free(ref)
	return value
}

func (ll *LinkedList[T]) node(ref arena.Ref) *llNode[T] {
	n, ok := ll.nodes.Lookup(ref)
	if !ok {
		panic(ErrStaleCursor)
	}
	return n
}

func (ll *LinkedList[T]) mustResolve(c Cursor[T]) arena.Ref {
	if c.list != ll {
		panic(ErrStaleCursor)
	}
	if _, ok := ll.nodes.Lookup(c.ref); !ok {
		panic(ErrStaleCursor)
	}
	return c.ref
}

// Cursor is a non owning locator of one element inside a LinkedList.
// The zero Cursor and any cursor whose element was removed are stale.
type Cursor[T any] struct {
	list *LinkedList[T]
	ref  arena.Ref
}

// Valid reports whether the cursor currently designates an element.
func (c Cursor[T]) Valid() bool {
	if c.list == nil {
		return false
	}
	_, ok := c.list.nodes.Lookup(c.ref)
	return ok
}

// Value returns the designated element,
// and reports false for a stale or end cursor.
func (c Cursor[T]) Value() (T, bool) {
	if c.list == nil {
		var zero T
		return zero, false
	}
	n, ok := c.list.nodes.Lookup(c.ref)
	if !ok {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Next returns a cursor on the element after this one,
// or the end cursor when this is the last element.
func (c Cursor[T]) Next() Cursor[T] {
	n, ok := c.resolve()
	if !ok {
		return Cursor[T]{list: c.list}
	}
	return Cursor[T]{list: c.list, ref: n.next}
}

// Prev returns a cursor on the element before this one,
// or the end cursor when this is the first element.
func (c Cursor[T]) Prev() Cursor[T] {
	n, ok := c.resolve()
	if !ok {
		return Cursor[T]{list: c.list}
	}
	return Cursor[T]{list: c.list, ref: n.prev}
}

func (c Cursor[T]) resolve() (*llNode[T], bool) {
	if c.list == nil {
		return nil, false
	}
	return c.list.nodes.Lookup(c.ref)
}

var _ List[any] = (*LinkedList[any])(nil)
