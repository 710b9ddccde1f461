package seq

import "github.com/samber/lo"

// Map transforms each element using fn and returns a new slice with the same
// length as input.
func Map[A any, B any](in []A, fn func(A) B) []B {
	if len(in) == 0 {
		return []B{}
	}
	return lo.Map(in, func(v A, _ int) B {
		return fn(v)
	})
}

// Filter keeps values satisfying predicate, in input order. The returned slice
// shares no backing array with the input and is never nil.
func Filter[T any](in []T, predicate func(T) bool) []T {
	if len(in) == 0 {
		return []T{}
	}
	return lo.Filter(in, func(v T, _ int) bool {
		return predicate(v)
	})
}

// Count reports how many elements satisfy predicate.
func Count[T any](in []T, predicate func(T) bool) int {
	return lo.CountBy(in, predicate)
}

// Any reports whether any element satisfies predicate.
func Any[T any](in []T, predicate func(T) bool) bool {
	return lo.SomeBy(in, predicate)
}

// All reports whether all elements satisfy predicate. It is true for an empty
// slice.
func All[T any](in []T, predicate func(T) bool) bool {
	return lo.EveryBy(in, predicate)
}
