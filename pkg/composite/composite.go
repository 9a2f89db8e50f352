// pkg/composite/composite.go
package composite

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/Feralthedogg/semantics/pkg/effect"
	"github.com/Feralthedogg/semantics/pkg/sequence"
)

// ErrContractViolation is wrapped by every contract failure in a chain.
var ErrContractViolation = errors.New("contract violation")

// Numeric is a type constraint for numeric types.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Add is a type-safe function that adds two numeric values.
func Add[T Numeric](a, b T) T {
	return a + b
}

// Multiply is a type-safe function that multiplies two numeric values.
func Multiply[T Numeric](a, b T) T {
	return a * b
}

// Composite chains sequence transformations with deferred log effects and
// a contract over the current sequence. The first failure stops the chain;
// later steps pass it through untouched.
type Composite[T any] struct {
	value      []T
	effects    []effect.Effect
	contractFn func([]T) bool
	err        error
	logger     *zap.Logger
}

// Return wraps a sequence into a Composite. Effects log through logger;
// nil means a no-op logger.
func Return[T any](value []T, logger *zap.Logger) Composite[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Composite[T]{value: value, logger: logger}
}

func (m Composite[T]) holds() bool {
	return m.contractFn == nil || m.contractFn(m.value)
}

// Bind chains the current composite with f, combining effects. The
// contract of the result is f's when it set one, otherwise the current one.
func (m Composite[T]) Bind(f func([]T) Composite[T]) Composite[T] {
	if m.err != nil {
		return m
	}
	if !m.holds() {
		m.err = fmt.Errorf("%w before Bind: invalid value", ErrContractViolation)
		return m
	}
	next := f(m.value)
	if next.err != nil {
		m.err = fmt.Errorf("error in Bind: %w", next.err)
		return m
	}
	contractFn := next.contractFn
	if contractFn == nil {
		contractFn = m.contractFn
	}
	return Composite[T]{
		value:      next.value,
		effects:    slices.Concat(m.effects, next.effects),
		contractFn: contractFn,
		logger:     m.logger,
	}
}

// Map applies f to every element.
func (m Composite[T]) Map(f func(T) T) Composite[T] {
	return m.Bind(func(seq []T) Composite[T] {
		out := sequence.Map(seq, f)
		return Return(out, m.logger).WithEffect(m.step("map", len(seq), len(out)))
	})
}

// Filter keeps the elements pred accepts.
func (m Composite[T]) Filter(pred func(T) bool) Composite[T] {
	return m.Bind(func(seq []T) Composite[T] {
		out := sequence.Filter(seq, pred)
		return Return(out, m.logger).WithEffect(m.step("filter", len(seq), len(out)))
	})
}

// WithEffect appends a side effect to the composite chain.
func (m Composite[T]) WithEffect(e effect.Effect) Composite[T] {
	m.effects = append(slices.Clip(m.effects), e)
	return m
}

// WithContract sets a contract function to validate the current sequence.
func (m Composite[T]) WithContract(fn func([]T) bool) Composite[T] {
	m.contractFn = fn
	return m
}

// Run returns the final sequence, the accumulated effects and any error.
// Effects are returned, not performed.
func (m Composite[T]) Run() ([]T, []effect.Effect, error) {
	if m.err != nil {
		return m.value, m.effects, m.err
	}
	if !m.holds() {
		return m.value, m.effects, fmt.Errorf("final %w", ErrContractViolation)
	}
	return m.value, m.effects, nil
}

func (m Composite[T]) step(op string, in, out int) effect.Effect {
	return effect.NewLogEffect(m.logger, "sequence step",
		zap.String("op", op), zap.Int("in", in), zap.Int("out", out))
}

// ------------------------------
// Terminal operations
// ------------------------------

// MapTo runs m and maps its sequence to another element type.
func MapTo[T, U any](m Composite[T], f func(T) U) Composite[U] {
	seq, effs, err := m.Run()
	if err != nil {
		return Composite[U]{effects: effs, err: err, logger: m.logger}
	}
	out := sequence.Map(seq, f)
	return Composite[U]{
		value:   out,
		effects: append(slices.Clip(effs), m.step("map", len(seq), len(out))),
		logger:  m.logger,
	}
}

// Fold runs m and reduces its sequence from initial.
func Fold[T, A any](m Composite[T], f func(A, T) A, initial A) (A, []effect.Effect, error) {
	seq, effs, err := m.Run()
	if err != nil {
		return initial, effs, err
	}
	acc := sequence.ReduceWith(seq, f, initial)
	return acc, append(slices.Clip(effs), m.step("reduce", len(seq), 1)), nil
}

// Reduce runs m and reduces its sequence without an initial value. An
// empty sequence fails with sequence.ErrEmptySequence.
func Reduce[T any](m Composite[T], f func(T, T) T) (T, []effect.Effect, error) {
	seq, effs, err := m.Run()
	if err != nil {
		var zero T
		return zero, effs, err
	}
	acc, err := sequence.Reduce(seq, f)
	if err != nil {
		return acc, effs, err
	}
	return acc, append(slices.Clip(effs), m.step("reduce", len(seq), 1)), nil
}

// Sum totals the sequence; an empty sequence sums to zero.
func Sum[T Numeric](m Composite[T]) (T, []effect.Effect, error) {
	return Fold(m, Add[T], 0)
}

// Product multiplies the sequence together; an empty sequence yields one.
func Product[T Numeric](m Composite[T]) (T, []effect.Effect, error) {
	return Fold(m, Multiply[T], 1)
}
