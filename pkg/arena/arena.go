// Package arena provides slot based storage for containerkit's node backed containers.
//
// Containers keep their nodes in an Arena and link them through Ref values
// instead of raw pointers. A Ref is an index paired with a slot generation,
// so a reference to a removed node can be recognised as stale
// rather than silently resolving to whatever reuses its memory.
package arena

// Arena is a generic slot storage with free list based recycling.
// The zero value is ready to use.
type Arena[T any] struct {
	slots []slot[T]
	free  []int
	count int
}

type slot[T any] struct {
	value T
	gen   uint32
	used  bool
}

// Ref designates a single slot within an Arena.
// The zero Ref is the null reference.
type Ref struct {
	index int
	gen   uint32
}

// IsNil reports whether the Ref is the null reference.
func (r Ref) IsNil() bool { return r.gen == 0 }

// Alloc stores the value in a free slot and returns a Ref designating it.
func (a *Arena[T]) Alloc(v T) Ref {
	var index int
	if n := len(a.free); 0 < n {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		index = len(a.slots) - 1
	}
	s := &a.slots[index]
	s.value = v
	s.gen++
	s.used = true
	a.count++
	return Ref{index: index, gen: s.gen}
}

// Free releases the slot the Ref designates, and recycles it for later Alloc calls.
// It reports whether the Ref was valid at the time of the call.
// Freeing bumps the slot generation, so the released Ref and its copies turn stale.
func (a *Arena[T]) Free(r Ref) bool {
	s, ok := a.at(r)
	if !ok {
		return false
	}
	var zero T
	s.value = zero
	s.gen++
	s.used = false
	a.free = append(a.free, r.index)
	a.count--
	return true
}

// Lookup resolves the Ref into a pointer of the stored value.
// A stale or null Ref reports false.
func (a *Arena[T]) Lookup(r Ref) (*T, bool) {
	s, ok := a.at(r)
	if !ok {
		return nil, false
	}
	return &s.value, true
}

// Len tells how many slots are currently in use.
func (a *Arena[T]) Len() int { return a.count }

func (a *Arena[T]) at(r Ref) (*slot[T], bool) {
	if r.IsNil() {
		return nil, false
	}
	if r.index < 0 || len(a.slots) <= r.index {
		return nil, false
	}
	s := &a.slots[r.index]
	if !s.used || s.gen != r.gen {
		return nil, false
	}
	return s, true
}
