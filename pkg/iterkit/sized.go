package iterkit

import "iter"

// Sized couples a restartable sequence with an optional constant time length report.
//
// Derived sequences keep the length capability only when it remains computable in O(1):
// concatenation can sum the operand lengths, while filtering and mapping cannot
// know their yield count without running the predicate/transform, so they drop it.
type Sized[T any] struct {
	Seq iter.Seq[T]
	// Count returns the current element count of the sequence.
	// A nil Count means the length is not known in constant time.
	Count func() int
}

// Iter returns the underlying sequence.
func (s Sized[T]) Iter() iter.Seq[T] {
	if s.Seq == nil {
		return Empty[T]()
	}
	return s.Seq
}

// Len reports the sequence length when it is computable in constant time.
func (s Sized[T]) Len() (int, bool) {
	if s.Count == nil {
		return 0, false
	}
	return s.Count(), true
}

type sizedSource[T any] interface {
	Iter() iter.Seq[T]
	Len() int
}

// SizedOf lifts a container into a Sized sequence.
// The length report reads through to the container, so it stays live across mutations.
func SizedOf[T any](src sizedSource[T]) Sized[T] {
	return Sized[T]{
		Seq:   func(yield func(T) bool) { src.Iter()(yield) },
		Count: src.Len,
	}
}

// SizedOfSlice lifts a slice into a Sized sequence.
func SizedOfSlice[T any](vs []T) Sized[T] {
	return Sized[T]{
		Seq:   Slice(vs),
		Count: func() int { return len(vs) },
	}
}

// FilterSized filters a sized sequence.
// The result never carries a length, as the predicate cost is unknown a priori.
func FilterSized[T any](s Sized[T], filter func(T) bool) Sized[T] {
	return Sized[T]{Seq: Filter(s.Iter(), filter)}
}

// MapSized transforms a sized sequence.
// The result never carries a length, as the transform cost is unknown a priori.
func MapSized[To, From any](s Sized[From], transform func(From) To) Sized[To] {
	return Sized[To]{Seq: Map(s.Iter(), transform)}
}

// ConcatSized chains sized sequences.
// The result carries a length only when every operand does.
func ConcatSized[T any](ss ...Sized[T]) Sized[T] {
	var seqs = make([]iter.Seq[T], 0, len(ss))
	for _, s := range ss {
		seqs = append(seqs, s.Iter())
	}
	out := Sized[T]{Seq: Concat(seqs...)}
	for _, s := range ss {
		if s.Count == nil {
			return out
		}
	}
	out.Count = func() int {
		var total int
		for _, s := range ss {
			total += s.Count()
		}
		return total
	}
	return out
}
