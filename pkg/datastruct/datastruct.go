// Package datastruct provides generic container implementations:
// an index addressable array list with live sub-range views,
// a cursor stable doubly linked list,
// ordered map/set containers backed by a red-black tree,
// unordered map/set containers backed by an open hash table,
// and multiset variants on both backing engines.
//
// Containers are single writer structures; none of them synchronises internally.
// Mutating a container while a traversal on it is in progress is not supported,
// with one exception: the purge traversal (see Purger),
// which can remove the currently visited element through the engine's own removal.
package datastruct

import (
	"iter"

	"go.llib.dev/containerkit/pkg/errorkit"
)

const (
	// ErrOutOfRange signals an index or sub-range outside of the container's current bounds.
	// It is a precondition violation, delivered by panic.
	ErrOutOfRange errorkit.Error = "datastruct: index out of range"
	// ErrEmpty signals convenience element access on an empty container.
	// It is a precondition violation, delivered by panic.
	ErrEmpty errorkit.Error = "datastruct: container is empty"
	// ErrStaleCursor signals the use of a cursor whose element was already removed,
	// or a cursor that belongs to a different container.
	// It is a precondition violation, delivered by panic.
	ErrStaleCursor errorkit.Error = "datastruct: stale cursor"
)

// Sizer is implemented by containers that know their element count in constant time.
type Sizer interface {
	Len() int
}

type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Iter() iter.Seq[T]
	Sizer
}

type Sequence[T any] interface {
	List[T]
	Lookup(index int) (T, bool)
	Set(index int, val T) bool
	Insert(index int, vs ...T) bool
	Delete(index int) bool
}

// KVS stands for Key Value Store, and a common interface for map[K]V like containers.
type KVS[K comparable, V any] interface {
	Lookup(key K) (V, bool)
	Get(key K) V
	Set(key K, val V)
	Delete(key K) bool
	Keys() []K
	ToMap() map[K]V
	Iter() iter.Seq2[K, V]
	Sizer
}

// SetInterface is the common contract of the unique element containers.
// Add reports how many values were actually added;
// values already present count as zero.
type SetInterface[T comparable] interface {
	Add(vs ...T) int
	Has(v T) bool
	Remove(v T) bool
	ToSlice() []T
	Iter() iter.Seq[T]
	Sizer
}

// Bag is the common contract of the multiset containers.
// A Bag permits multiplicity: equal values are stored with their count.
type Bag[T comparable] interface {
	Add(vs ...T)
	Count(v T) int
	Remove(v T) bool
	RemoveAll(v T) int
	// Get returns one instance of the container's convenient element.
	// Calling it on an empty Bag is a precondition violation (ErrEmpty).
	Get() T
	// Take removes and returns one instance of the container's convenient element.
	// Calling it on an empty Bag is a precondition violation (ErrEmpty).
	Take() T
	Iter() iter.Seq[T]
	Sizer
}

// Purger is a traversal that can also remove visited elements.
//
//	p := c.Purger()
//	for p.Next() {
//		if unwanted(p.Value()) {
//			p.MarkForRemoval()
//		}
//	}
//	p.Close()
//
// Every element is visited exactly once, regardless of marks set on other elements.
// Marking is idempotent. A marked element is removed on advancing past it,
// using the engine's native removal; Close finalises a mark on the last visited element.
type Purger[T any] interface {
	Next() bool
	Value() T
	MarkForRemoval()
	Close()
}

// AddSeq adds every element of the sequence to the set, and reports how many were actually added.
func AddSeq[T comparable](s SetInterface[T], i iter.Seq[T]) int {
	var added int
	for v := range i {
		added += s.Add(v)
	}
	return added
}
