// pkg/state/stateful.go

package state

import "golang.org/x/exp/constraints"

// StatefulCounter bundles Increment, Decrement and Reset over one StateLayer.
// The three operations see each other's writes. They are not atomic; a
// caller sharing a handle between goroutines must serialise access itself.
type StatefulCounter[T constraints.Integer] struct {
	layer *StateLayer[T]
}

// MakeStatefulCounter creates a handle whose baseline is initial.
func MakeStatefulCounter[T constraints.Integer](initial T) *StatefulCounter[T] {
	return &StatefulCounter[T]{layer: NewStateLayer(initial)}
}

// Increment adds one and returns the new value.
func (c *StatefulCounter[T]) Increment() T {
	c.layer.Current++
	return c.layer.Current
}

// Decrement subtracts one and returns the new value.
func (c *StatefulCounter[T]) Decrement() T {
	c.layer.Current--
	return c.layer.Current
}

// Reset restores the baseline and returns it.
func (c *StatefulCounter[T]) Reset() T {
	c.layer.Current = c.layer.Baseline
	return c.layer.Current
}

// Snapshot returns a copy of the owned layer.
func (c *StatefulCounter[T]) Snapshot() StateLayer[T] {
	return *c.layer
}
