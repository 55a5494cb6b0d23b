package datastruct

import (
	"iter"

	"go.llib.dev/containerkit/pkg/compare"
)

// rbTree is the ordered engine behind TreeMap, TreeSet and TreeBag:
// a left-leaning red-black tree over a total order on keys.
//
// Invariants kept between operations:
// in-order traversal yields keys in ascending order,
// no right-leaning red link exists, no two consecutive red left links exist,
// and every root-to-leaf path holds the same number of black links,
// which bounds the height to O(log N).
type rbTree[K, V any] struct {
	root *rbNode[K, V]
	cmp  compare.Func[K]
	size int
}

type rbNode[K, V any] struct {
	key         K
	value       V
	left, right *rbNode[K, V]
	red         bool
}

func (t *rbTree[K, V]) compare(a, b K) int {
	return t.cmp(a, b)
}

func (t *rbTree[K, V]) len() int { return t.size }

func (t *rbTree[K, V]) lookup(key K) (V, bool) {
	n := t.root
	for n != nil {
		switch cmp := t.compare(key, n.key); {
		case compare.IsLess(cmp):
			n = n.left
		case compare.IsMore(cmp):
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// insert adds the key-value entry, and reports false as a no-op on an already present key.
func (t *rbTree[K, V]) insert(key K, value V) bool {
	if _, ok := t.lookup(key); ok {
		return false
	}
	t.root = t.put(t.root, key, value)
	t.root.red = false
	t.size++
	return true
}

// update sets the value of the key, inserting it when absent,
// and reports whether an insert happened.
func (t *rbTree[K, V]) update(key K, value V) bool {
	n := t.root
	for n != nil {
		switch cmp := t.compare(key, n.key); {
		case compare.IsLess(cmp):
			n = n.left
		case compare.IsMore(cmp):
			n = n.right
		default:
			n.value = value
			return false
		}
	}
	t.root = t.put(t.root, key, value)
	t.root.red = false
	t.size++
	return true
}

// put assumes the key is absent.
func (t *rbTree[K, V]) put(h *rbNode[K, V], key K, value V) *rbNode[K, V] {
	if h == nil {
		return &rbNode[K, V]{key: key, value: value, red: true}
	}
	if cmp := t.compare(key, h.key); compare.IsLess(cmp) {
		h.left = t.put(h.left, key, value)
	} else {
		h.right = t.put(h.right, key, value)
	}
	return fixUp(h)
}

// delete removes the key and returns its value. Absent key is a reported no-op.
func (t *rbTree[K, V]) delete(key K) (V, bool) {
	value, ok := t.lookup(key)
	if !ok {
		return value, false
	}
	t.root = t.del(t.root, key)
	if t.root != nil {
		t.root.red = false
	}
	t.size--
	return value, true
}

// del assumes the key is present under h.
func (t *rbTree[K, V]) del(h *rbNode[K, V], key K) *rbNode[K, V] {
	if compare.IsLess(t.compare(key, h.key)) {
		if !isRed(h.left) && h.left != nil && !isRed(h.left.left) {
			h = moveRedLeft(h)
		}
		h.left = t.del(h.left, key)
	} else {
		if isRed(h.left) {
			h = rotateRight(h)
		}
		if compare.IsEqual(t.compare(key, h.key)) && h.right == nil {
			return nil
		}
		if !isRed(h.right) && h.right != nil && !isRed(h.right.left) {
			h = moveRedRight(h)
		}
		if compare.IsEqual(t.compare(key, h.key)) {
			m := minNode(h.right)
			h.key, h.value = m.key, m.value
			h.right = deleteMin(h.right)
		} else {
			h.right = t.del(h.right, key)
		}
	}
	return fixUp(h)
}

func (t *rbTree[K, V]) min() (K, V, bool) {
	if t.root == nil {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	n := minNode(t.root)
	return n.key, n.value, true
}

func (t *rbTree[K, V]) max() (K, V, bool) {
	if t.root == nil {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// successor returns the entry with the smallest key strictly greater than the received one.
func (t *rbTree[K, V]) successor(key K) (K, V, bool) {
	var (
		found bool
		sK    K
		sV    V
	)
	n := t.root
	for n != nil {
		if compare.IsLess(t.compare(key, n.key)) {
			sK, sV, found = n.key, n.value, true
			n = n.left
		} else {
			n = n.right
		}
	}
	return sK, sV, found
}

// iter walks the entries in ascending key order.
func (t *rbTree[K, V]) iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inorder(t.root, yield)
	}
}

func inorder[K, V any](n *rbNode[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !inorder(n.left, yield) {
		return false
	}
	if !yield(n.key, n.value) {
		return false
	}
	return inorder(n.right, yield)
}

func (t *rbTree[K, V]) clear() {
	t.root = nil
	t.size = 0
}

func (t *rbTree[K, V]) dup() rbTree[K, V] {
	return rbTree[K, V]{
		root: dupNode(t.root),
		cmp:  t.cmp,
		size: t.size,
	}
}

func dupNode[K, V any](n *rbNode[K, V]) *rbNode[K, V] {
	if n == nil {
		return nil
	}
	return &rbNode[K, V]{
		key:   n.key,
		value: n.value,
		left:  dupNode(n.left),
		right: dupNode(n.right),
		red:   n.red,
	}
}

func isRed[K, V any](n *rbNode[K, V]) bool {
	return n != nil && n.red
}

func rotateLeft[K, V any](h *rbNode[K, V]) *rbNode[K, V] {
	x := h.right
	h.right = x.left
	x.left = h
	x.red = h.red
	h.red = true
	return x
}

func rotateRight[K, V any](h *rbNode[K, V]) *rbNode[K, V] {
	x := h.left
	h.left = x.right
	x.right = h
	x.red = h.red
	h.red = true
	return x
}

func flipColors[K, V any](h *rbNode[K, V]) {
	h.red = !h.red
	if h.left != nil {
		h.left.red = !h.left.red
	}
	if h.right != nil {
		h.right.red = !h.right.red
	}
}

// fixUp restores the left-leaning invariants on the way back up.
func fixUp[K, V any](h *rbNode[K, V]) *rbNode[K, V] {
	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}
	return h
}

func moveRedLeft[K, V any](h *rbNode[K, V]) *rbNode[K, V] {
	flipColors(h)
	if h.right != nil && isRed(h.right.left) {
		h.right = rotateRight(h.right)
		h = rotateLeft(h)
		flipColors(h)
	}
	return h
}

func moveRedRight[K, V any](h *rbNode[K, V]) *rbNode[K, V] {
	flipColors(h)
	if h.left != nil && isRed(h.left.left) {
		h = rotateRight(h)
		flipColors(h)
	}
	return h
}

func minNode[K, V any](n *rbNode[K, V]) *rbNode[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func deleteMin[K, V any](h *rbNode[K, V]) *rbNode[K, V] {
	if h.left == nil {
		return nil
	}
	if !isRed(h.left) && !isRed(h.left.left) {
		h = moveRedLeft(h)
	}
	h.left = deleteMin(h.left)
	return fixUp(h)
}
