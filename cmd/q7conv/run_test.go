package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/cwbudde/algo-qnn/nn/conv"
)

func TestRunLayer(t *testing.T) {
	lf, err := decodeLayerFile(strings.NewReader(strideLayer))
	if err != nil {
		t.Fatal(err)
	}

	res, err := runLayer(lf, runOptions{verify: true, fracBits: 3})
	if err != nil {
		t.Fatalf("runLayer: %v", err)
	}

	if res.Kernel != conv.SelectedKernel() {
		t.Fatalf("kernel = %q, want %q", res.Kernel, conv.SelectedKernel())
	}
	if res.DimOut != 2 || res.ChOut != 1 {
		t.Fatalf("shape = %dx%d", res.DimOut, res.ChOut)
	}
	for i, v := range res.Output {
		if v != 8 {
			t.Fatalf("output[%d] = %d, want 8", i, v)
		}
		if res.Dequantized[i] != 1 {
			t.Fatalf("dequantized[%d] = %v, want 1", i, res.Dequantized[i])
		}
	}
	if len(res.Verified) != len(conv.Kernels()) {
		t.Fatalf("verified %v, want every kernel", res.Verified)
	}
}

func TestRunLayerKernelFlag(t *testing.T) {
	lf, err := decodeLayerFile(strings.NewReader(strideLayer))
	if err != nil {
		t.Fatal(err)
	}

	res, err := runLayer(lf, runOptions{kernel: "generic", fracBits: -1})
	if err != nil {
		t.Fatal(err)
	}
	if res.Kernel != "generic" || res.Dequantized != nil {
		t.Fatalf("unexpected result %+v", res)
	}

	if _, err := runLayer(lf, runOptions{kernel: "helium", fracBits: -1}); !errors.Is(err, conv.ErrUnknownKernel) {
		t.Fatalf("expected ErrUnknownKernel, got %v", err)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	res := &runResult{Kernel: "generic", DimOut: 1, ChOut: 2, Output: []int8{-3, 4}}
	if err := writeJSON(&buf, res); err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if _, ok := decoded["verified"]; ok {
		t.Fatal("empty verified list must be omitted")
	}
	out, ok := decoded["output"].([]any)
	if !ok || len(out) != 2 || out[0].(float64) != -3 {
		t.Fatalf("output not encoded as numbers: %s", buf.String())
	}
}

func TestAppRun(t *testing.T) {
	path := writeLayer(t, strideLayer)
	args := []string{"q7conv", "run", "--layer", path, "--verify"}
	if err := newApp().Run(context.Background(), args); err != nil {
		t.Fatalf("run: %v", err)
	}
}
