// Package iterkit provides lazy iterator composition.
//
// # Summary
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// This approach helps to design data consumers that are not dependent on the concrete implementation of the data source,
// while still allowing for the composition and various actions on the received data stream.
// The combinators in this package own no elements;
// they read through to a base sequence on each traversal,
// so a derived sequence observes the mutations made on its base between traversals
// and is invalidated under the same rules as that base.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterkit

import (
	"iter"
	"slices"

	"go.llib.dev/containerkit/pkg/option"
)

// SingleUseSeq is an iter.Seq[T] that can only iterated once.
// After iteration, it is expected to yield no more values.
//
// Most iterators provide the ability to walk an entire sequence:
// when called, the iterator does any setup necessary to start the sequence,
// then calls yield on successive elements of the sequence, and then cleans up before returning.
// Calling the iterator again walks the sequence again.
//
// SingleUseSeq iterators break that convention, providing the ability to walk a sequence only once.
// If an iterator Sequence is single use,
// it should either has comments for functions or methods that it return single-use iterators
// or it should use the SingleUseSeq to clearly express it with a return type.
type SingleUseSeq[T any] = iter.Seq[T]

// SingleUseSeq2 is an iter.Seq2[K, V] that can only iterated once.
// After iteration, it is expected to yield no more values.
// For more information on single use sequences, please read the documentation of SingleUseSeq.
type SingleUseSeq2[K, V any] = iter.Seq2[K, V]

// Filter produces only the elements for which the filter predicate holds.
// It is lazy and single pass; the predicate is re-evaluated on every traversal,
// so the result is restartable whenever the base sequence is restartable.
func Filter[T any](i iter.Seq[T], filter func(T) bool) iter.Seq[T] {
	if i == nil {
		return Empty[T]()
	}
	return func(yield func(T) bool) {
		for v := range i {
			if filter(v) {
				if !yield(v) {
					break
				}
			}
		}
	}
}

// Filter2 is the keyed variant of Filter.
func Filter2[K, V any](i iter.Seq2[K, V], filter func(k K, v V) bool) iter.Seq2[K, V] {
	if i == nil {
		return Empty2[K, V]()
	}
	return func(yield func(K, V) bool) {
		for k, v := range i {
			if filter(k, v) {
				if !yield(k, v) {
					break
				}
			}
		}
	}
}

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// The base sequence is never mutated.
func Map[To any, From any](i iter.Seq[From], transform func(From) To) iter.Seq[To] {
	if i == nil {
		return Empty[To]()
	}
	return func(yield func(To) bool) {
		for v := range i {
			if !yield(transform(v)) {
				break
			}
		}
	}
}

// Map2 is the keyed variant of Map.
func Map2[OKey, OVal, IKey, IVal any](i iter.Seq2[IKey, IVal], transform func(IKey, IVal) (OKey, OVal)) iter.Seq2[OKey, OVal] {
	if i == nil {
		return Empty2[OKey, OVal]()
	}
	return func(yield func(OKey, OVal) bool) {
		for k, v := range i {
			if !yield(transform(k, v)) {
				return
			}
		}
	}
}

// Concat chains the received sequences into one logical traversal,
// visiting each base sequence fully before advancing to the next.
func Concat[T any](is ...iter.Seq[T]) iter.Seq[T] {
	if len(is) == 0 {
		return Empty[T]()
	}
	return func(yield func(T) bool) {
		for _, i := range is {
			if i == nil {
				continue
			}
			for v := range i {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Concat2 is the keyed variant of Concat.
func Concat2[K, V any](is ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	if len(is) == 0 {
		return Empty2[K, V]()
	}
	return func(yield func(K, V) bool) {
		for _, i := range is {
			if i == nil {
				continue
			}
			for k, v := range i {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Empty iterator is used to represent nil result with Null object pattern
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Empty2 iterator is used to represent nil result with Null object pattern
func Empty2[T1, T2 any]() iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {}
}

func Slice[T any](slice []T) iter.Seq[T] {
	return slices.Values(slice)
}

// SingleValue creates an iterator that yields one single element.
func SingleValue[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) { yield(v) }
}

func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

type KVMapFunc[KV any, K, V any] func(K, V) KV

func Collect2[K, V, KV any](i iter.Seq2[K, V], m KVMapFunc[KV, K, V]) []KV {
	if i == nil {
		return nil
	}
	var es []KV
	for k, v := range i {
		es = append(es, m(k, v))
	}
	return es
}

type KV[K, V any] struct {
	K K
	V V
}

func FromKV[K, V any](kvs []KV[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, kv := range kvs {
			if !yield(kv.K, kv.V) {
				return
			}
		}
	}
}

func CollectKV[K, V any](i iter.Seq2[K, V]) []KV[K, V] {
	return Collect2(i, func(k K, v V) KV[K, V] {
		return KV[K, V]{K: k, V: v}
	})
}

// Collect2Map will collect an iter.Seq2 into a map.
func Collect2Map[K comparable, V any](i iter.Seq2[K, V]) map[K]V {
	if i == nil {
		return nil
	}
	var out = make(map[K]V)
	for k, v := range i {
		out[k] = v
	}
	return out
}

func Reduce[R, T any](i iter.Seq[T], initial R, fn func(R, T) R) R {
	var v = initial
	for c := range i {
		v = fn(v, c)
	}
	return v
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](i iter.Seq[T]) int {
	var total int
	for range i {
		total++
	}
	return total
}

func Count2[K, V any](i iter.Seq2[K, V]) int {
	var total int
	for range i {
		total++
	}
	return total
}

// First decode the first next value of the iterator and close the iterator
func First[T any](i iter.Seq[T]) (T, bool) {
	for v := range i {
		return v, true
	}
	var zero T
	return zero, false
}

// First2 decode the first next value of the iterator and close the iterator
func First2[K, V any](i iter.Seq2[K, V]) (K, V, bool) {
	for k, v := range i {
		return k, v, true
	}
	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}

func Last[T any](i iter.Seq[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	for v := range i {
		last = v
		ok = true
	}
	return last, ok
}

func Limit[V any](i iter.Seq[V], n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		next, stop := iter.Pull(i)
		defer stop()
		for limit := n; 0 < limit; limit-- {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}

func Offset[V any](i iter.Seq[V], offset int) iter.Seq[V] {
	return func(yield func(V) bool) {
		next, stop := iter.Pull(i)
		defer stop()
		for i := 0; i < offset; i++ {
			v, ok := next()
			if !ok {
				return
			}
			_ = v // dispose
		}
		for {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Reverse will reverse the iteration direction.
//
// # WARNING
//
// It does not work with infinite iterators,
// as it requires to collect all values before it can reverse the elements.
func Reverse[T any](i iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var vs []T = Collect(i)
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}
}

// FromPull turns a pull style next function back into a range-able sequence.
// The stop functions run when the traversal finishes,
// so the result is consumable only once.
func FromPull[T any](next func() (T, bool), stops ...func()) SingleUseSeq[T] {
	return func(yield func(T) bool) {
		for _, stop := range stops {
			defer stop()
		}
		for {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromPull2 is the keyed variant of FromPull.
func FromPull2[K, V any](next func() (K, V, bool), stops ...func()) SingleUseSeq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, stop := range stops {
			defer stop()
		}
		for {
			k, v, ok := next()
			if !ok {
				break
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

func Batch[T any](i iter.Seq[T], opts ...BatchOption) iter.Seq[[]T] {
	c := option.Use(opts)
	size := c.getSize()
	return func(yield func([]T) bool) {
		var vs = make([]T, 0, size)
		var flush = func() bool {
			var cont bool = true
			if 0 < len(vs) {
				cont = yield(vs)
				vs = make([]T, 0, size)
			}
			return cont
		}
		for v := range i {
			vs = append(vs, v)
			if size <= len(vs) {
				if !flush() {
					return
				}
			}
		}
		flush()
	}
}

type BatchConfig struct {
	Size int
}

type BatchOption = option.Option[BatchConfig]

func BatchSize(n int) BatchOption {
	return option.Func[BatchConfig](func(c *BatchConfig) {
		c.Size = n
	})
}

func (c BatchConfig) getSize() int {
	const defaultBatchSize = 64
	if c.Size <= 0 {
		return defaultBatchSize
	}
	return c.Size
}
