package datastruct

import (
	"iter"

	"go.llib.dev/containerkit/pkg/compare"
	"golang.org/x/exp/constraints"
)

// TreeMap is an ordered key-value container backed by a red-black tree.
// Lookup, Set, Insert and Delete run in O(log N);
// iteration yields the entries in ascending key order.
//
// Use NewTreeMap or NewTreeMapOf to create one; the zero value has no key ordering.
type TreeMap[K comparable, V any] struct {
	tree rbTree[K, V]
}

// NewTreeMap creates a TreeMap ordered by the natural ordering of its key type.
func NewTreeMap[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return NewTreeMapOf[K, V](compare.Default[K]())
}

// NewTreeMapOf creates a TreeMap ordered by the received comparison function.
func NewTreeMapOf[K comparable, V any](cmp compare.Func[K]) *TreeMap[K, V] {
	return &TreeMap[K, V]{tree: rbTree[K, V]{cmp: cmp}}
}

func (m *TreeMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.tree.len()
}

func (m *TreeMap[K, V]) Lookup(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	return m.tree.lookup(key)
}

func (m *TreeMap[K, V]) Get(key K) V {
	v, _ := m.Lookup(key)
	return v
}

func (m *TreeMap[K, V]) Has(key K) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Set stores the value under the key, overwriting a present entry.
func (m *TreeMap[K, V]) Set(key K, val V) {
	m.tree.update(key, val)
}

// Insert stores the value under the key only when the key is absent,
// and reports whether the entry was added.
func (m *TreeMap[K, V]) Insert(key K, val V) bool {
	return m.tree.insert(key, val)
}

// Delete removes the key, and reports whether it was present.
func (m *TreeMap[K, V]) Delete(key K) bool {
	_, ok := m.tree.delete(key)
	return ok
}

// Min returns the entry with the smallest key.
func (m *TreeMap[K, V]) Min() (K, V, bool) {
	return m.tree.min()
}

// Max returns the entry with the greatest key.
func (m *TreeMap[K, V]) Max() (K, V, bool) {
	return m.tree.max()
}

// Keys returns the keys in ascending order.
func (m *TreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for k := range m.Iter() {
		keys = append(keys, k)
	}
	return keys
}

// KeysSeq is a live view of the keys in ascending order;
// each traversal reads through to the map's current content.
func (m *TreeMap[K, V]) KeysSeq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.Iter() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *TreeMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.Iter() {
		out[k] = v
	}
	return out
}

// Iter walks the entries in ascending key order.
func (m *TreeMap[K, V]) Iter() iter.Seq2[K, V] {
	if m == nil {
		return func(yield func(K, V) bool) {}
	}
	return m.tree.iter()
}

func (m *TreeMap[K, V]) Clear() {
	m.tree.clear()
}

// Dup creates an independent copy with freshly allocated nodes.
// Element values are not deep copied.
func (m *TreeMap[K, V]) Dup() *TreeMap[K, V] {
	return &TreeMap[K, V]{tree: m.tree.dup()}
}

// Merge stores every entry of the source, overwriting present keys,
// and reports how many keys were newly added.
func (m *TreeMap[K, V]) Merge(src iter.Seq2[K, V]) int {
	var added int
	for k, v := range src {
		if m.tree.update(k, v) {
			added++
		}
	}
	return added
}

// Intersect keeps only the entries whose key is present in the received key sequence,
// and reports how many entries were removed.
func (m *TreeMap[K, V]) Intersect(keys iter.Seq[K]) int {
	keep := make(map[K]struct{})
	for k := range keys {
		keep[k] = struct{}{}
	}
	var toRemove []K
	for k := range m.Iter() {
		if _, ok := keep[k]; !ok {
			toRemove = append(toRemove, k)
		}
	}
	for _, k := range toRemove {
		m.tree.delete(k)
	}
	return len(toRemove)
}

// RemoveKeys deletes every received key, and reports how many were present.
func (m *TreeMap[K, V]) RemoveKeys(keys iter.Seq[K]) int {
	var removed int
	for k := range keys {
		if _, ok := m.tree.delete(k); ok {
			removed++
		}
	}
	return removed
}

var _ KVS[string, any] = (*TreeMap[string, any])(nil)
