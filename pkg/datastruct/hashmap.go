package datastruct

import "iter"

// HashMap is an unordered key-value container backed by an open hash table.
// Lookup, Set, Insert and Delete run in average O(1).
// Iteration order is unspecified and may change after any mutation.
// The zero value is ready to use.
type HashMap[K comparable, V any] struct {
	table hashTable[K, V]
}

func (m *HashMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.table.len()
}

func (m *HashMap[K, V]) Lookup(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	return m.table.lookup(key)
}

func (m *HashMap[K, V]) Get(key K) V {
	v, _ := m.Lookup(key)
	return v
}

func (m *HashMap[K, V]) Has(key K) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Set stores the value under the key, overwriting a present entry.
func (m *HashMap[K, V]) Set(key K, val V) {
	m.table.update(key, val)
}

// Insert stores the value under the key only when the key is absent,
// and reports whether the entry was added.
func (m *HashMap[K, V]) Insert(key K, val V) bool {
	return m.table.insert(key, val)
}

// Delete removes the key, and reports whether it was present.
func (m *HashMap[K, V]) Delete(key K) bool {
	_, ok := m.table.delete(key)
	return ok
}

func (m *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for k := range m.Iter() {
		keys = append(keys, k)
	}
	return keys
}

// KeysSeq is a live view of the keys;
// each traversal reads through to the map's current content, in an unspecified order.
func (m *HashMap[K, V]) KeysSeq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.Iter() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *HashMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.Iter() {
		out[k] = v
	}
	return out
}

// Iter walks the entries in an unspecified order.
func (m *HashMap[K, V]) Iter() iter.Seq2[K, V] {
	if m == nil {
		return func(yield func(K, V) bool) {}
	}
	return m.table.iter()
}

func (m *HashMap[K, V]) Clear() {
	m.table.clear()
}

// Dup creates an independent copy with freshly allocated entries.
// Element values are not deep copied.
func (m *HashMap[K, V]) Dup() *HashMap[K, V] {
	return &HashMap[K, V]{table: m.table.dup()}
}

// Merge stores every entry of the source, overwriting present keys,
// and reports how many keys were newly added.
func (m *HashMap[K, V]) Merge(src iter.Seq2[K, V]) int {
	var added int
	for k, v := range src {
		if m.table.update(k, v) {
			added++
		}
	}
	return added
}

// Intersect keeps only the entries whose key is present in the received key sequence,
// and reports how many entries were removed.
func (m *HashMap[K, V]) Intersect(keys iter.Seq[K]) int {
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
		m.table.delete(k)
	}
	return len(toRemove)
}

// RemoveKeys deletes every received key, and reports how many were present.
func (m *HashMap[K, V]) RemoveKeys(keys iter.Seq[K]) int {
	var removed int
	for k := range keys {
		if _, ok := m.table.delete(k); ok {
			removed++
		}
	}
	return removed
}

var _ KVS[string, any] = (*HashMap[string, any])(nil)
