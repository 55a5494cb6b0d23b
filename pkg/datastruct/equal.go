package datastruct

import "iter"

// EqualList reports whether the two lists hold equal elements in the same order.
// Any two implementations of List are comparable with each other.
func EqualList[T comparable](a, b List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.Iter())
	defer stop()
	for av := range a.Iter() {
		bv, ok := next()
		if !ok || av != bv {
			return false
		}
	}
	return true
}

// EqualKVS reports whether the two key-value stores hold the same entries,
// regardless of the engine behind them or their iteration order.
func EqualKVS[K, V comparable](a, b KVS[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.Iter() {
		bv, ok := b.Lookup(k)
		if !ok || v != bv {
			return false
		}
	}
	return true
}

// EqualSet reports whether the two sets hold the same elements,
// regardless of the engine behind them or their iteration order.
func EqualSet[T comparable](a, b SetInterface[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for v := range a.Iter() {
		if !b.Has(v) {
			return false
		}
	}
	return true
}

// EqualBag reports whether the two bags hold the same values
// with the same multiplicities.
func EqualBag[T comparable](a, b Bag[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	seen := map[T]struct{}{}
	for v := range a.Iter() {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		if a.Count(v) != b.Count(v) {
			return false
		}
	}
	return true
}
