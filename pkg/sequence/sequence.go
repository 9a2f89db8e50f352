// pkg/sequence/sequence.go

// Package sequence provides map, filter and reduce over slices.
// None of the functions modify their input, and all of them apply the
// caller's function strictly left to right, once per element.
package sequence

import "errors"

// ErrEmptySequence is returned by Reduce when the input is empty and no
// initial accumulator was supplied.
var ErrEmptySequence = errors.New("reduce of empty sequence with no initial value")

// Map returns a new slice with f applied to every element of seq.
// Whatever f returns is stored as is, including zero values and nil
// pointers; a transform that forgets to produce a value yields a slice of
// those.
func Map[T, U any](seq []T, f func(T) U) []U {
	out := make([]U, len(seq))
	for i, v := range seq {
		out[i] = f(v)
	}
	return out
}

// MapIndexed is Map with the element index passed to f.
func MapIndexed[T, U any](seq []T, f func(int, T) U) []U {
	out := make([]U, len(seq))
	for i, v := range seq {
		out[i] = f(i, v)
	}
	return out
}

// Filter returns the elements of seq for which pred is true, in their
// original order.
func Filter[T any](seq []T, pred func(T) bool) []T {
	out := make([]T, 0, len(seq))
	for _, v := range seq {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// FilterTruthy keeps the elements for which f returns a truthy value, as
// decided by Truthy. It exists to reproduce predicate code that returns a
// value instead of a condition:
//
//	FilterTruthy([]int{1, 2, 3}, func(n int) int { return n * 2 }) // [1 2 3]
func FilterTruthy[T, V any](seq []T, f func(T) V) []T {
	return Filter(seq, func(v T) bool { return Truthy(f(v)) })
}

// Compact drops every falsy element.
func Compact[T any](seq []T) []T {
	return Filter(seq, func(v T) bool { return Truthy(v) })
}

// Reduce folds seq left to right using seq[0] as the starting accumulator.
// It returns ErrEmptySequence when seq is empty.
func Reduce[T any](seq []T, f func(acc, cur T) T) (T, error) {
	if len(seq) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	return ReduceWith(seq[1:], f, seq[0]), nil
}

// ReduceWith folds the whole of seq left to right starting from initial.
// An empty seq returns initial unchanged.
func ReduceWith[T, A any](seq []T, f func(acc A, cur T) A, initial A) A {
	acc := initial
	for _, v := range seq {
		acc = f(acc, v)
	}
	return acc
}
