package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cwbudde/algo-qnn/internal/cpu"
	"github.com/cwbudde/algo-qnn/nn/conv"
)

func TestRunBench(t *testing.T) {
	cfg := benchConfig{geom: conv.NewGeometry(8, 3, 4, 3, 1, 1), iterations: 2, seed: 7}
	results, err := runBench(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(conv.Kernels()) {
		t.Fatalf("got %d results, want one per kernel", len(results))
	}
	for _, r := range results {
		if r.MACs != 8*8*4*3*3*3 {
			t.Fatalf("%s: MACs = %d", r.Kernel, r.MACs)
		}
	}

	var buf bytes.Buffer
	if err := printBench(&buf, results); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "generic") {
		t.Fatalf("missing generic row:\n%s", buf.String())
	}
}

func TestRunBenchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := benchConfig{geom: conv.NewGeometry(4, 1, 1, 1, 0, 1), iterations: 1}
	if _, err := runBench(ctx, cfg); err == nil {
		t.Fatal("expected context error")
	}
}

func TestMACsPerSecond(t *testing.T) {
	r := benchResult{PerCall: time.Millisecond, MACs: 1000}
	if got := r.MACsPerSecond(); got != 1e6 {
		t.Fatalf("MACsPerSecond() = %v, want 1e6", got)
	}
	if (benchResult{}).MACsPerSecond() != 0 {
		t.Fatal("zero duration must report 0")
	}
}

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	if err := printInfo(&buf, cpu.DetectFeatures()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"architecture:", "selected:", "generic"} {
		if !strings.Contains(out, want) {
			t.Fatalf("info output missing %q:\n%s", want, out)
		}
	}
}
