// Package negative selects the strictly negative values of a signed integer
// sequence, preserving their order.
//
// Example:
//
//	out := negative.Filter([]int{3, -1, 0, -2})
//	// out == []int{-1, -2}
package negative

import (
	"golang.org/x/exp/constraints"

	"github.com/charmingruby/negfilt/seq"
)

// Number is any signed integer type, including named types built on one.
type Number interface {
	constraints.Signed
}

var sample = []int32{3, -1, 4, -2, 5, -3, 6, -4}

// IsNegative reports whether v < 0. Zero is not negative.
func IsNegative[T Number](v T) bool {
	return v < 0
}

// Filter returns the negative elements of in, in their original relative
// order. The result is never nil and never aliases in; a nil or empty input
// yields an empty slice.
//
// Example:
//
//	Filter([]int64{1, 2, 3}) // []int64{}
func Filter[T Number](in []T) []T {
	return seq.Filter(in, IsNegative[T])
}

// Iter lazily yields the negative values pulled from it.
//
// Example:
//
//	it := Iter(seq.FromSlice([]int{-1, 2, -3}))
//	seq.ToSlice(it) // []int{-1, -3}
func Iter[T Number](it seq.Iterator[T]) seq.Iterator[T] {
	return seq.FilterIter(it, IsNegative[T])
}

// Sample returns a fresh copy of the demonstration input.
func Sample() []int32 {
	out := make([]int32, len(sample))
	copy(out, sample)
	return out
}
