package datastruct

import (
	"hash/maphash"
	"iter"

	"go.llib.dev/containerkit/pkg/arena"
)

// hashTable is the unordered engine behind HashMap, HashSet and HashBag:
// a bucket chained open hash table over the built-in equality of comparable keys.
//
// Entries live in an arena, with the chain links expressed as arena references.
// Every stored entry is reachable from the bucket its key hashes into.
// The table grows (doubling the bucket count and rehashing) once the load factor
// passes 0.75, keeping lookup average O(1) and insert amortized O(1).
// Iteration order is unspecified and may change after any mutation.
type hashTable[K comparable, V any] struct {
	seed    maphash.Seed
	buckets []arena.Ref
	entries arena.Arena[htEntry[K, V]]
	// firstHint is a lower bound on the index of the first non empty bucket.
	// Every bucket below it is empty. It keeps first amortized O(1):
	// first advances it past the empty buckets it skips,
	// add lowers it when an entry lands below it, and rehashing resets it.
	firstHint int
}

type htEntry[K comparable, V any] struct {
	key   K
	value V
	next  arena.Ref
}

const (
	htInitialBuckets = 8
	// numerator/denominator of the maximum load factor
	htMaxLoadNum = 3
	htMaxLoadDen = 4
)

func (t *hashTable[K, V]) len() int { return t.entries.Len() }

func (t *hashTable[K, V]) init() {
	if t.buckets == nil {
		t.seed = maphash.MakeSeed()
		t.buckets = make([]arena.Ref, htInitialBuckets)
	}
}

func (t *hashTable[K, V]) bucketOf(key K) int {
	return int(maphash.Comparable(t.seed, key) & uint64(len(t.buckets)-1))
}

func (t *hashTable[K, V]) lookup(key K) (V, bool) {
	if e, _, _ := t.find(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// find returns the entry of the key together with its chain predecessor and bucket index.
func (t *hashTable[K, V]) find(key K) (entry *htEntry[K, V], prev arena.Ref, bucket int) {
	if t.buckets == nil {
		return nil, arena.Ref{}, 0
	}
	bucket = t.bucketOf(key)
	for ref := t.buckets[bucket]; !ref.IsNil(); {
		e, ok := t.entries.Lookup(ref)
		if !ok {
			break
		}
		if e.key == key {
			return e, prev, bucket
		}
		prev = ref
		ref = e.next
	}
	return nil, arena.Ref{}, bucket
}

// insert adds the entry, and reports false as a no-op on an already present key.
func (t *hashTable[K, V]) insert(key K, value V) bool {
	t.init()
	if e, _, _ := t.find(key); e != nil {
		return false
	}
	t.add(key, value)
	return true
}

// update sets the value of the key, inserting it when absent,
// and reports whether an insert happened.
func (t *hashTable[K, V]) update(key K, value V) bool {
	t.init()
	if e, _, _ := t.find(key); e != nil {
		e.value = value
		return false
	}
	t.add(key, value)
	return true
}

func (t *hashTable[K, V]) add(key K, value V) {
	t.maybeGrow()
	bucket := t.bucketOf(key)
	ref := t.entries.Alloc(htEntry[K, V]{key: key, value: value, next: t.buckets[bucket]})
	t.buckets[bucket] = ref
	if bucket < t.firstHint {
		t.firstHint = bucket
	}
}

// delete removes the key and returns its value. Absent key is a reported no-op.
func (t *hashTable[K, V]) delete(key K) (V, bool) {
	e, prev, bucket := t.find(key)
	if e == nil {
		var zero V
		return zero, false
	}
	value := e.value
	if prev.IsNil() {
		ref := t.buckets[bucket]
		t.buckets[bucket] = e.next
		t.entries.Free(ref)
	} else {
		p, _ := t.entries.Lookup(prev)
		ref := p.next
		p.next = e.next
		t.entries.Free(ref)
	}
	if t.entries.Len() == 0 {
		t.firstHint = len(t.buckets)
	}
	return value, true
}

// first returns an arbitrary entry: whichever the traversal order currently yields first.
// The pick is not deterministic across mutations.
func (t *hashTable[K, V]) first() (K, V, bool) {
	for ; t.firstHint < len(t.buckets); t.firstHint++ {
		head := t.buckets[t.firstHint]
		if head.IsNil() {
			continue
		}
		if e, ok := t.entries.Lookup(head); ok {
			return e.key, e.value, true
		}
	}
	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}

// iter walks the entries in an unspecified order.
func (t *hashTable[K, V]) iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, head := range t.buckets {
			for ref := head; !ref.IsNil(); {
				e, ok := t.entries.Lookup(ref)
				if !ok {
					break
				}
				if !yield(e.key, e.value) {
					return
				}
				ref = e.next
			}
		}
	}
}

func (t *hashTable[K, V]) clear() {
	*t = hashTable[K, V]{}
}

func (t *hashTable[K, V]) dup() hashTable[K, V] {
	var out hashTable[K, V]
	for k, v := range t.iter() {
		out.insert(k, v)
	}
	return out
}

func (t *hashTable[K, V]) maybeGrow() {
	if (t.entries.Len()+1)*htMaxLoadDen <= len(t.buckets)*htMaxLoadNum {
		return
	}
	old := t.buckets
	t.buckets = make([]arena.Ref, 2*len(old))
	t.firstHint = 0
	for _, head := range old {
		for ref := head; !ref.IsNil(); {
			e, ok := t.entries.Lookup(ref)
			if !ok {
				break
			}
			next := e.next
			bucket := t.bucketOf(e.key)
			e.next = t.buckets[bucket]
			t.buckets[bucket] = ref
			ref = next
		}
	}
}
