// main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Feralthedogg/semantics/pkg/composite"
	"github.com/Feralthedogg/semantics/pkg/config"
	"github.com/Feralthedogg/semantics/pkg/effect"
	"github.com/Feralthedogg/semantics/pkg/hoist"
	"github.com/Feralthedogg/semantics/pkg/logging"
	"github.com/Feralthedogg/semantics/pkg/sequence"
	"github.com/Feralthedogg/semantics/pkg/state"
)

func main() {
	configFile := pflag.StringP("config", "c", "", "config file (default ./semantics.yaml)")
	pflag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Options{
		Environment: cfg.Environment,
		Level:       cfg.Log.Level,
		File:        cfg.Log.File,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	demos := map[string]func(*config.Config, *zap.Logger) error{
		"counter":  counterDemo,
		"stateful": statefulDemo,
		"loop":     loopDemo,
		"hoisting": hoistingDemo,
		"sequence": sequenceDemo,
		"pipeline": pipelineDemo,
	}
	for _, name := range config.KnownDemos {
		if !cfg.Enabled(name) {
			continue
		}
		if err := demos[name](cfg, logger.Named(name)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// ---------------------------
// Closures
// ---------------------------

func counterDemo(cfg *config.Config, logger *zap.Logger) error {
	start := cfg.Counter.Start

	// Two factory calls, two independent counters.
	logger.Info("fresh counters",
		zap.Int("first", state.MakeCounter(start)()),
		zap.Int("second", state.MakeCounter(start)()))

	counter := state.MakeCounter(start)
	calls := []int{counter(), counter(), counter()}
	logger.Info("reused counter", zap.Ints("calls", calls))

	tally := state.MakeTally(0)
	logger.Info("tally", zap.Ints("calls", []int{tally(), tally(), tally()}))
	return nil
}

func statefulDemo(cfg *config.Config, logger *zap.Logger) error {
	c := state.MakeStatefulCounter(cfg.Stateful.Initial)
	ops := []string{"increment", "increment", "decrement", "reset", "increment"}
	results := sequence.Map(ops, func(op string) int {
		switch op {
		case "increment":
			return c.Increment()
		case "decrement":
			return c.Decrement()
		default:
			return c.Reset()
		}
	})
	logger.Info("stateful counter",
		zap.Int("baseline", c.Snapshot().Baseline),
		zap.Strings("ops", ops),
		zap.Ints("results", results))
	return nil
}

func loopDemo(_ *config.Config, logger *zap.Logger) error {
	for _, mode := range []state.CaptureMode{state.SharedBinding, state.PerIteration} {
		fns := state.CaptureLoop(3, mode)
		seen := sequence.Map(fns, func(fn func() int) int { return fn() })
		logger.Info("loop closures", zap.Stringer("binding", mode), zap.Ints("values", seen))
	}
	return nil
}

// ---------------------------
// Hoisting
// ---------------------------

func hoistingDemo(cfg *config.Config, logger *zap.Logger) error {
	for _, r := range hoist.Rules() {
		logger.Debug("rule",
			zap.Stringer("kind", r.Kind),
			zap.Bool("hoisted", r.Hoisted),
			zap.String("before_definition", string(r.BeforeDefinition)),
			zap.Stringer("attach", r.Attach))
	}

	names := cfg.Scenarios
	if len(names) == 0 {
		names = hoist.ScenarioNames()
	}
	var programs []*hoist.Program
	for _, name := range names {
		p, err := hoist.Scenario(name)
		if err != nil {
			return err
		}
		programs = append(programs, p)
	}
	for _, file := range cfg.Programs {
		p, err := hoist.Load(file)
		if err != nil {
			return err
		}
		programs = append(programs, p)
	}

	var mismatches []string
	for _, p := range programs {
		outcomes, err := p.Check()
		if err != nil {
			return err
		}
		for _, o := range outcomes {
			fields := []zap.Field{
				zap.String("program", p.Name),
				zap.String("name", o.Access.Name),
				zap.String("scope", o.Access.Scope),
				zap.Int("position", o.Access.Position),
				zap.Bool("call", o.Access.Call),
				zap.String("verdict", string(o.Verdict)),
			}
			if o.Err != nil {
				fields = append(fields, zap.NamedError("outcome", o.Err))
			} else {
				fields = append(fields, zap.String("value", fmt.Sprint(o.Value)))
			}
			logger.Info("access", fields...)
			if !o.Expected() {
				mismatches = append(mismatches, fmt.Sprintf("%s: %s@%d is %s, expected %s",
					p.Name, o.Access.Name, o.Access.Position, o.Verdict, o.Access.Expect))
			}
		}
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("unexpected outcomes:\n%s", strings.Join(mismatches, "\n"))
	}
	return nil
}

// ---------------------------
// Sequences
// ---------------------------

type cartLine struct {
	Product  string
	Price    int
	Quantity int
}

func sequenceDemo(_ *config.Config, logger *zap.Logger) error {
	numbers := []int{1, 2, 3, 4, 5, 6}
	logger.Info("map", zap.Ints("squared", sequence.Map(numbers, func(n int) int { return n * n })))
	logger.Info("filter", zap.Ints("even", sequence.Filter(numbers, func(n int) bool { return n%2 == 0 })))
	logger.Info("filter truthy",
		zap.Ints("n*2", sequence.FilterTruthy([]int{1, 2, 3}, func(n int) int { return n * 2 })))

	sum := sequence.ReduceWith(numbers, func(acc, n int) int { return acc + n }, 0)
	logger.Info("reduce", zap.Int("sum", sum))

	if _, err := sequence.Reduce([]int{}, func(acc, n int) int { return acc + n }); err != nil {
		logger.Info("reduce without initial", zap.Error(err))
	}

	cart := []cartLine{{"Laptop", 60000, 1}, {"Mouse", 1500, 2}, {"Keyboard", 3000, 1}}
	total := sequence.ReduceWith(cart, func(acc int, l cartLine) int { return acc + l.Price*l.Quantity }, 0)
	logger.Info("cart total", zap.Int("total", total))

	reversed := sequence.ReduceWith(strings.Split("hello", ""), func(acc, ch string) string { return ch + acc }, "")
	logger.Info("reverse", zap.String("reversed", reversed))
	return nil
}

func pipelineDemo(_ *config.Config, logger *zap.Logger) error {
	m := composite.Return([]int{1, 2, 3, 4, 5, 6}, logger).
		WithContract(func(seq []int) bool { return len(seq) > 0 }).
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * 10 })

	total, effects, err := composite.Sum(m)
	if err != nil {
		return err
	}
	if err := effect.PerformAll(effects); err != nil {
		return err
	}
	logger.Info("pipeline", zap.Int("total", total))
	return nil
}
