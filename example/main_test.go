package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Feralthedogg/semantics/pkg/config"
)

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	return cfg
}

func TestRunAllDemos(t *testing.T) {
	cfg := defaultConfig(t)
	if err := run(cfg, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("run() error = %v", err)
	}
}

func TestCounterDemoLogs(t *testing.T) {
	cfg := defaultConfig(t)
	core, logs := observer.New(zapcore.InfoLevel)
	if err := counterDemo(cfg, zap.New(core)); err != nil {
		t.Fatalf("counterDemo() error = %v", err)
	}
	entry := logs.FilterMessage("reused counter").All()
	if len(entry) != 1 {
		t.Fatalf("got %d reused counter entries", len(entry))
	}
	calls, ok := entry[0].ContextMap()["calls"].([]any)
	if !ok || len(calls) != 3 || calls[0] != 20 || calls[2] != 22 {
		t.Fatalf("calls = %#v, want [20 21 22]", entry[0].ContextMap()["calls"])
	}
}

func TestHoistingDemoReportsMismatch(t *testing.T) {
	cfg := defaultConfig(t)
	file := filepath.Join(t.TempDir(), "wrong.yaml")
	doc := `
name: wrong
scopes: [{name: g, kind: function}]
declarations: [{name: b, kind: let, scope: g, position: 2}]
accesses: [{name: b, scope: g, position: 1, expect: undefined}]
`
	if err := os.WriteFile(file, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.Scenarios = []string{"var-hoisting"}
	cfg.Programs = []string{file}

	err := hoistingDemo(cfg, zap.NewNop())
	if err == nil || !strings.Contains(err.Error(), "wrong: b@1 is uninitialized, expected undefined") {
		t.Fatalf("hoistingDemo() error = %v", err)
	}
}
