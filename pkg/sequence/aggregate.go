// pkg/sequence/aggregate.go

package sequence

import "golang.org/x/exp/constraints"

// Number is the set of element types SumBy can total.
type Number interface {
	constraints.Integer | constraints.Float
}

// GroupBy collects the elements of seq into slices keyed by key(elem).
// Elements keep their relative order inside each group.
func GroupBy[T any, K comparable](seq []T, key func(T) K) map[K][]T {
	return ReduceWith(seq, func(acc map[K][]T, cur T) map[K][]T {
		k := key(cur)
		acc[k] = append(acc[k], cur)
		return acc
	}, make(map[K][]T))
}

// SumBy totals value(elem) per key(elem).
func SumBy[T any, K comparable, N Number](seq []T, key func(T) K, value func(T) N) map[K]N {
	return ReduceWith(seq, func(acc map[K]N, cur T) map[K]N {
		acc[key(cur)] += value(cur)
		return acc
	}, make(map[K]N))
}
