package datastruct

import "go.llib.dev/containerkit/pkg/arena"

// The purge traversal is the one supported way to mutate a container mid-iteration.
// Each engine implements it with its native removal:
// the array list batches marked elements into a single compaction pass,
// the linked list and the hash table unlink in O(1),
// and the tree re-descends by key in O(log N).
// Marking is idempotent; a marked element is removed on advancing past it,
// and Close finalises a trailing mark.

// Purger returns a purge traversal over the list's elements.
// The whole traversal costs O(n) regardless of how many elements get marked.
func (l *ArrayList[T]) Purger() *ArrayPurger[T] {
	return &ArrayPurger[T]{list: l, read: -1}
}

// ArrayPurger is the purge traversal of an ArrayList.
type ArrayPurger[T any] struct {
	list   *ArrayList[T]
	read   int
	write  int
	marked bool
	closed bool
}

func (p *ArrayPurger[T]) Next() bool {
	if p.closed {
		return false
	}
	if 0 <= p.read {
		p.settle()
	}
	p.read++
	if len(p.list.vs) <= p.read {
		p.finish()
		return false
	}
	return true
}

func (p *ArrayPurger[T]) Value() T {
	p.mustHaveCurrent()
	return p.list.vs[p.read]
}

func (p *ArrayPurger[T]) MarkForRemoval() {
	p.mustHaveCurrent()
	p.marked = true
}

func (p *ArrayPurger[T]) Close() {
	if p.closed {
		return
	}
	if p.read < 0 {
		p.closed = true
		return
	}
	if p.read < len(p.list.vs) {
		p.settle()
		// the unvisited tail is kept
		n := copy(p.list.vs[p.write:], p.list.vs[p.read+1:])
		p.write += n
	}
	p.finish()
}

// settle compacts the current element: kept elements slide down to the write
// position, dropped ones adjust the overlapping views exactly as a one-by-one
// removal at the element's compacted index would.
func (p *ArrayPurger[T]) settle() {
	if p.marked {
		p.list.viewsOnDelete(p.write)
		p.marked = false
		return
	}
	p.list.vs[p.write] = p.list.vs[p.read]
	p.write++
}

func (p *ArrayPurger[T]) finish() {
	p.closed = true
	p.list.truncate(p.write)
}

func (p *ArrayPurger[T]) mustHaveCurrent() {
	if p.closed || p.read < 0 || len(p.list.vs) <= p.read {
		panic(ErrStaleCursor)
	}
}

var _ Purger[any] = (*ArrayPurger[any])(nil)

// Purger returns a purge traversal over the list's elements in link order.
func (ll *LinkedList[T]) Purger() *ListPurger[T] {
	return &ListPurger[T]{list: ll}
}

// ListPurger is the purge traversal of a LinkedList.
type ListPurger[T any] struct {
	list    *LinkedList[T]
	current arena.Ref
	marked  bool
	started bool
	closed  bool
}

func (p *ListPurger[T]) Next() bool {
	if p.closed {
		return false
	}
	var next arena.Ref
	if !p.started {
		p.started = true
		next = p.list.head
	} else {
		next = p.list.node(p.current).next
		if p.marked {
			p.list.unlink(p.current)
			p.marked = false
		}
	}
	p.current = next
	if next.IsNil() {
		p.closed = true
		return false
	}
	return true
}

func (p *ListPurger[T]) Value() T {
	return p.node().value
}

func (p *ListPurger[T]) MarkForRemoval() {
	_ = p.node()
	p.marked = true
}

func (p *ListPurger[T]) Close() {
	if p.closed {
		return
	}
	if p.started && p.marked {
		p.list.unlink(p.current)
		p.marked = false
	}
	p.closed = true
}

func (p *ListPurger[T]) node() *llNode[T] {
	if p.closed || !p.started {
		panic(ErrStaleCursor)
	}
	return p.list.node(p.current)
}

var _ Purger[any] = (*ListPurger[any])(nil)

// treePurger walks an rbTree in ascending key order,
// advancing by successor queries so the current entry's removal
// cannot skip or revisit any other entry.
type treePurger[K, V any] struct {
	tree    *rbTree[K, V]
	key     K
	value   V
	marked  bool
	started bool
	closed  bool
	removed int
}

func (p *treePurger[K, V]) next() bool {
	if p.closed {
		return false
	}
	var (
		k  K
		v  V
		ok bool
	)
	if !p.started {
		p.started = true
		k, v, ok = p.tree.min()
	} else {
		k, v, ok = p.tree.successor(p.key)
		p.settle()
	}
	if !ok {
		p.closed = true
		return false
	}
	p.key, p.value = k, v
	return true
}

func (p *treePurger[K, V]) settle() {
	if p.marked {
		p.tree.delete(p.key)
		p.removed++
		p.marked = false
	}
}

func (p *treePurger[K, V]) close() {
	if p.closed {
		return
	}
	if p.started {
		p.settle()
	}
	p.closed = true
}

func (p *treePurger[K, V]) mustHaveCurrent() {
	if p.closed || !p.started {
		panic(ErrStaleCursor)
	}
}

// Purger returns a purge traversal over the map's entries in ascending key order.
func (m *TreeMap[K, V]) Purger() *TreeMapPurger[K, V] {
	return &TreeMapPurger[K, V]{inner: treePurger[K, V]{tree: &m.tree}}
}

// TreeMapPurger is the purge traversal of a TreeMap.
type TreeMapPurger[K comparable, V any] struct {
	inner treePurger[K, V]
}

func (p *TreeMapPurger[K, V]) Next() bool { return p.inner.next() }

func (p *TreeMapPurger[K, V]) Key() K {
	p.inner.mustHaveCurrent()
	return p.inner.key
}

func (p *TreeMapPurger[K, V]) Value() V {
	p.inner.mustHaveCurrent()
	return p.inner.value
}

func (p *TreeMapPurger[K, V]) MarkForRemoval() {
	p.inner.mustHaveCurrent()
	p.inner.marked = true
}

func (p *TreeMapPurger[K, V]) Close() { p.inner.close() }

// Purger returns a purge traversal over the set's elements in ascending order.
func (s *TreeSet[T]) Purger() *TreeSetPurger[T] {
	return &TreeSetPurger[T]{inner: treePurger[T, struct{}]{tree: &s.tree}}
}

// TreeSetPurger is the purge traversal of a TreeSet.
type TreeSetPurger[T comparable] struct {
	inner treePurger[T, struct{}]
}

func (p *TreeSetPurger[T]) Next() bool { return p.inner.next() }

func (p *TreeSetPurger[T]) Value() T {
	p.inner.mustHaveCurrent()
	return p.inner.key
}

func (p *TreeSetPurger[T]) MarkForRemoval() {
	p.inner.mustHaveCurrent()
	p.inner.marked = true
}

func (p *TreeSetPurger[T]) Close() { p.inner.close() }

var _ Purger[int] = (*TreeSetPurger[int])(nil)

// hashPurger walks a hashTable chain by chain.
// The next entry reference is captured before the current one may get removed,
// and removal never triggers a rehash, so the walk stays consistent.
type hashPurger[K comparable, V any] struct {
	table   *hashTable[K, V]
	bucket  int
	current arena.Ref
	next    arena.Ref
	marked  bool
	started bool
	closed  bool
}

func (p *hashPurger[K, V]) nextEntry() bool {
	if p.closed {
		return false
	}
	if !p.started {
		p.started = true
		p.bucket = -1
	} else {
		p.settle()
	}
	for {
		if !p.next.IsNil() {
			p.current = p.next
			e, ok := p.table.entries.Lookup(p.current)
			if ok {
				p.next = e.next
				return true
			}
		}
		p.bucket++
		if p.table.buckets == nil || len(p.table.buckets) <= p.bucket {
			p.closed = true
			return false
		}
		p.next = p.table.buckets[p.bucket]
	}
}

func (p *hashPurger[K, V]) settle() {
	if !p.marked {
		return
	}
	p.marked = false
	if e, ok := p.table.entries.Lookup(p.current); ok {
		p.table.delete(e.key)
	}
}

func (p *hashPurger[K, V]) close() {
	if p.closed {
		return
	}
	if p.started {
		p.settle()
	}
	p.closed = true
}

func (p *hashPurger[K, V]) entry() *htEntry[K, V] {
	if p.closed || !p.started {
		panic(ErrStaleCursor)
	}
	e, ok := p.table.entries.Lookup(p.current)
	if !ok {
		panic(ErrStaleCursor)
	}
	return e
}

// Purger returns a purge traversal over the map's entries in an unspecified order.
func (m *HashMap[K, V]) Purger() *HashMapPurger[K, V] {
	return &HashMapPurger[K, V]{inner: hashPurger[K, V]{table: &m.table}}
}

// HashMapPurger is the purge traversal of a HashMap.
type HashMapPurger[K comparable, V any] struct {
	inner hashPurger[K, V]
}

func (p *HashMapPurger[K, V]) Next() bool { return p.inner.nextEntry() }

func (p *HashMapPurger[K, V]) Key() K { return p.inner.entry().key }

func (p *HashMapPurger[K, V]) Value() V { return p.inner.entry().value }

func (p *HashMapPurger[K, V]) MarkForRemoval() {
	_ = p.inner.entry()
	p.inner.marked = true
}

func (p *HashMapPurger[K, V]) Close() { p.inner.close() }

// Purger returns a purge traversal over the set's elements in an unspecified order.
func (s *HashSet[T]) Purger() *HashSetPurger[T] {
	return &HashSetPurger[T]{inner: hashPurger[T, struct{}]{table: &s.table}}
}

// HashSetPurger is the purge traversal of a HashSet.
type HashSetPurger[T comparable] struct {
	inner hashPurger[T, struct{}]
}

func (p *HashSetPurger[T]) Next() bool { return p.inner.nextEntry() }

func (p *HashSetPurger[T]) Value() T { return p.inner.entry().key }

func (p *HashSetPurger[T]) MarkForRemoval() {
	_ = p.inner.entry()
	p.inner.marked = true
}

func (p *HashSetPurger[T]) Close() { p.inner.close() }

var _ Purger[int] = (*HashSetPurger[int])(nil)

// Purger returns a purge traversal over the bag's instances in ascending order.
// A value with multiplicity n is visited n times; marking removes that one instance.
func (b *TreeBag[T]) Purger() *TreeBagPurger[T] {
	return &TreeBagPurger[T]{bag: b}
}

// TreeBagPurger is the purge traversal of a TreeBag.
type TreeBagPurger[T comparable] struct {
	bag       *TreeBag[T]
	key       T
	count     int // multiplicity of the current value at entry
	visitLeft int // instances of the current value still to visit, current included
	marks     int // marked instances of the current value
	marked    bool
	started   bool
	closed    bool
}

func (p *TreeBagPurger[T]) Next() bool {
	if p.closed {
		return false
	}
	if !p.started {
		p.started = true
		k, c, ok := p.bag.tree.min()
		if !ok {
			p.closed = true
			return false
		}
		p.enter(k, c)
		return true
	}
	p.settleInstance()
	p.visitLeft--
	if 0 < p.visitLeft {
		return true
	}
	k, c, ok := p.bag.tree.successor(p.key)
	p.settleValue()
	if !ok {
		p.closed = true
		return false
	}
	p.enter(k, c)
	return true
}

func (p *TreeBagPurger[T]) Value() T {
	p.mustHaveCurrent()
	return p.key
}

func (p *TreeBagPurger[T]) MarkForRemoval() {
	p.mustHaveCurrent()
	p.marked = true
}

func (p *TreeBagPurger[T]) Close() {
	if p.closed {
		return
	}
	if p.started {
		p.settleInstance()
		p.settleValue()
	}
	p.closed = true
}

func (p *TreeBagPurger[T]) enter(key T, count int) {
	p.key = key
	p.count = count
	p.visitLeft = count
	p.marks = 0
}

func (p *TreeBagPurger[T]) settleInstance() {
	if p.marked {
		p.marks++
		p.marked = false
	}
}

// settleValue applies the accumulated marks of the current value
// with a single native removal or count update.
func (p *TreeBagPurger[T]) settleValue() {
	if p.marks == 0 {
		return
	}
	if remaining := p.count - p.marks; 0 < remaining {
		p.bag.tree.update(p.key, remaining)
	} else {
		p.bag.tree.delete(p.key)
	}
	p.bag.size -= p.marks
	p.marks = 0
}

func (p *TreeBagPurger[T]) mustHaveCurrent() {
	if p.closed || !p.started {
		panic(ErrStaleCursor)
	}
}

var _ Purger[int] = (*TreeBagPurger[int])(nil)

// Purger returns a purge traversal over the bag's instances in an unspecified order.
// A value with multiplicity n is visited n times; marking removes that one instance.
func (b *HashBag[T]) Purger() *HashBagPurger[T] {
	return &HashBagPurger[T]{bag: b, inner: hashPurger[T, int]{table: &b.table}}
}

// HashBagPurger is the purge traversal of a HashBag.
type HashBagPurger[T comparable] struct {
	bag       *HashBag[T]
	inner     hashPurger[T, int]
	count     int
	visitLeft int
	marks     int
	marked    bool
	started   bool
	closed    bool
}

func (p *HashBagPurger[T]) Next() bool {
	if p.closed {
		return false
	}
	if p.started {
		p.settleInstance()
		p.visitLeft--
		if 0 < p.visitLeft {
			return true
		}
		p.settleValue()
	}
	p.started = true
	if !p.inner.nextEntry() {
		p.closed = true
		return false
	}
	e := p.inner.entry()
	p.count = e.value
	p.visitLeft = e.value
	p.marks = 0
	return true
}

func (p *HashBagPurger[T]) Value() T {
	p.mustHaveCurrent()
	return p.inner.entry().key
}

func (p *HashBagPurger[T]) MarkForRemoval() {
	p.mustHaveCurrent()
	p.marked = true
}

func (p *HashBagPurger[T]) Close() {
	if p.closed {
		return
	}
	if p.started && 0 < p.visitLeft {
		p.settleInstance()
		p.settleValue()
	}
	p.closed = true
	p.inner.close()
}

func (p *HashBagPurger[T]) settleInstance() {
	if p.marked {
		p.marks++
		p.marked = false
	}
}

func (p *HashBagPurger[T]) settleValue() {
	if p.marks == 0 {
		return
	}
	key := p.inner.entry().key
	if remaining := p.count - p.marks; 0 < remaining {
		p.bag.table.update(key, remaining)
	} else {
		p.bag.table.delete(key)
	}
	p.bag.size -= p.marks
	p.marks = 0
}

func (p *HashBagPurger[T]) mustHaveCurrent() {
	if p.closed || !p.started || p.visitLeft <= 0 {
		panic(ErrStaleCursor)
	}
}

var _ Purger[int] = (*HashBagPurger[int])(nil)
