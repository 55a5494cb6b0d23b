// Package slicekit provides utilities working with slices.
package slicekit

import "iter"

// Map will do a mapping from an input type into an output type.
func Map[O, I any](s []I, fn func(I) O) []O {
	if s == nil {
		return nil
	}
	var out = make([]O, len(s))
	for index, v := range s {
		out[index] = fn(v)
	}
	return out
}

// Reduce iterates over a slice, combining elements using the reducer function.
func Reduce[O, I any](s []I, initial O, fn func(O, I) O) O {
	var result = initial
	for _, v := range s {
		result = fn(result, v)
	}
	return result
}

// Merge will merge every received slice into a single one.
func Merge[T any](slices ...[]T) []T {
	var out []T
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// Clone creates a copy of the source slice.
func Clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// First returns the first element of the slice.
func First[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[0], true
}

// Last returns the last element of the slice.
func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// Lookup will return a slice element based on its index,
// and report back if the index was valid.
func Lookup[T any](s []T, index int) (T, bool) {
	if index < 0 || len(s) <= index {
		var zero T
		return zero, false
	}
	return s[index], true
}

// Contains reports whether a value is present in the slice.
func Contains[T comparable](s []T, v T) bool {
	for _, got := range s {
		if got == v {
			return true
		}
	}
	return false
}

// Filter returns the slice elements for which the filter function reported true.
func Filter[T any](s []T, filter func(T) bool) []T {
	var out []T
	for _, v := range s {
		if filter(v) {
			out = append(out, v)
		}
	}
	return out
}

// IterReverse iterates the slice elements in reverse order.
func IterReverse[T any](s []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(s) - 1; 0 <= i; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}
