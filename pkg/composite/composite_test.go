package composite

import (
	"errors"
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Feralthedogg/semantics/pkg/effect"
	"github.com/Feralthedogg/semantics/pkg/sequence"
)

func TestMapFilterSum(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	m := Return([]int{1, 2, 3, 4, 5, 6}, logger).
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * n })

	total, effs, err := Sum(m)
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	if total != 4+16+36 {
		t.Fatalf("Sum() = %d, want 56", total)
	}
	if logs.Len() != 0 {
		t.Fatalf("effects ran before Perform: %d entries", logs.Len())
	}
	if err := effect.PerformAll(effs); err != nil {
		t.Fatalf("PerformAll() error = %v", err)
	}

	entries := logs.All()
	var ops []string
	for _, e := range entries {
		ops = append(ops, e.ContextMap()["op"].(string))
	}
	if want := []string{"filter", "map", "reduce"}; !slices.Equal(ops, want) {
		t.Fatalf("logged ops = %v, want %v", ops, want)
	}
	if got := entries[0].ContextMap()["out"]; got != int64(3) {
		t.Errorf("filter out = %v, want 3", got)
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	in := []int{3, 1, 2}
	out, _, err := Return(in, nil).Map(func(n int) int { return n * 10 }).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(in, []int{3, 1, 2}) {
		t.Errorf("input mutated to %v", in)
	}
	if !slices.Equal(out, []int{30, 10, 20}) {
		t.Errorf("Run() = %v", out)
	}
}

func TestContractShortCircuits(t *testing.T) {
	mapped := 0
	m := Return([]int{1, 2, 3}, nil).
		WithContract(func(seq []int) bool { return len(seq) > 0 }).
		Filter(func(n int) bool { return n > 10 }).
		Map(func(n int) int {
			mapped++
			return n
		})

	_, _, err := m.Run()
	if !errors.Is(err, ErrContractViolation) {
		t.Fatalf("Run() error = %v, want ErrContractViolation", err)
	}
	if mapped != 0 {
		t.Errorf("Map ran %d times after the contract failed", mapped)
	}
}

func TestFinalContract(t *testing.T) {
	_, _, err := Return([]int{}, nil).
		WithContract(func(seq []int) bool { return len(seq) > 0 }).
		Run()
	if !errors.Is(err, ErrContractViolation) {
		t.Fatalf("Run() error = %v, want ErrContractViolation", err)
	}
}

func TestBindPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	m := Return([]string{"a"}, nil).Bind(func(seq []string) Composite[string] {
		return Composite[string]{err: boom}
	})
	if _, _, err := m.Run(); !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want boom", err)
	}
	if _, _, err := Fold(m, func(acc int, s string) int { return acc + len(s) }, 0); !errors.Is(err, boom) {
		t.Fatalf("Fold() error = %v, want boom", err)
	}
}

func TestReduceEmpty(t *testing.T) {
	m := Return([]int{1, 3}, nil).Filter(func(n int) bool { return n%2 == 0 })
	_, _, err := Reduce(m, Add[int])
	if !errors.Is(err, sequence.ErrEmptySequence) {
		t.Fatalf("Reduce() error = %v, want ErrEmptySequence", err)
	}
	total, _, err := Sum(m)
	if err != nil || total != 0 {
		t.Fatalf("Sum() = %d, %v; want 0, nil", total, err)
	}
}

func TestProductAndMapTo(t *testing.T) {
	p, _, err := Product(Return([]float64{1.5, 2, 4}, nil))
	if err != nil || p != 12 {
		t.Fatalf("Product() = %v, %v; want 12, nil", p, err)
	}

	words, effs, err := MapTo(Return([]int{1, 22, 333}, nil), func(n int) int { return n % 10 }).Run()
	if err != nil {
		t.Fatalf("MapTo().Run() error = %v", err)
	}
	if !slices.Equal(words, []int{1, 2, 3}) {
		t.Errorf("MapTo() = %v", words)
	}
	if len(effs) != 1 {
		t.Errorf("len(effects) = %d, want 1", len(effs))
	}
}

func TestEffectSlicesAreIndependent(t *testing.T) {
	base := Return([]int{1}, nil).WithEffect(effect.EffectFunc(func() error { return nil }))
	a := base.WithEffect(effect.EffectFunc(func() error { return errors.New("a") }))
	b := base.WithEffect(effect.EffectFunc(func() error { return nil }))

	_, effA, _ := a.Run()
	_, effB, _ := b.Run()
	if err := effect.PerformAll(effA); err == nil {
		t.Error("a's effects lost their failing effect")
	}
	if err := effect.PerformAll(effB); err != nil {
		t.Errorf("b's effects = %v, want nil", err)
	}
}

func TestAddMultiply(t *testing.T) {
	if got := Add(2, 3); got != 5 {
		t.Errorf("Add(2, 3) = %d", got)
	}
	if got := Multiply[uint8](4, 5); got != 20 {
		t.Errorf("Multiply(4, 5) = %d", got)
	}
}
