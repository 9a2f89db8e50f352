// pkg/state/state.go

package state

import "golang.org/x/exp/constraints"

// StateLayer is the record a closure owns. Current is the mutable value,
// Baseline is fixed when the layer is created.
type StateLayer[T constraints.Integer] struct {
	Current  T
	Baseline T
}

// NewStateLayer returns a layer whose current value and baseline are both initial.
func NewStateLayer[T constraints.Integer](initial T) *StateLayer[T] {
	return &StateLayer[T]{Current: initial, Baseline: initial}
}

// Increment returns a copy of the layer with Current advanced by one.
func (s StateLayer[T]) Increment() StateLayer[T] {
	return StateLayer[T]{Current: s.Current + 1, Baseline: s.Baseline}
}

// ------------------------------
// Counter Factory
// ------------------------------

// MakeCounter returns a handle over a fresh integer initialised to start.
// Each call of the handle returns the current value and then increments it.
// Handles from separate MakeCounter calls never share state, even when
// start is the same.
func MakeCounter[T constraints.Integer](start T) func() T {
	layer := NewStateLayer(start)
	return func() T {
		v := layer.Current
		*layer = layer.Increment()
		return v
	}
}

// MakeTally is the increment-then-report variant of MakeCounter:
// MakeTally(0) yields 1, 2, 3, ...
func MakeTally[T constraints.Integer](start T) func() T {
	layer := NewStateLayer(start)
	return func() T {
		*layer = layer.Increment()
		return layer.Current
	}
}
