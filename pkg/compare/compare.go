// Package compare defines how ordering based comparison is expressed in containerkit.
package compare

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Interface defines how comparison can be implemented.
//
// Types implementing this interface must provide a Compare method that defines the ordering or equivalence of values.
// This pattern is useful when working with:
// 1. Custom user-defined types requiring comparison logic
// 2. Encapsulated values needing semantic comparisons
// 3. Comparison-agnostic systems (e.g., sorting algorithms)
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}

// Func is a comparison function that reports the ordering between two values.
type Func[T any] func(a, b T) int

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

// Default returns the natural ordering comparison function of an ordered type.
func Default[T constraints.Ordered]() Func[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		default:
			return 0
		}
	}
}

func Numbers[T constraints.Integer | constraints.Float](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}
