package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-qnn/internal/testutil"
)

// Benchmark every registered kernel on CIFAR-10-sized layers.
func BenchmarkConvolveHWCQ7Basic(b *testing.B) {
	sizes := []layerCase{
		{dimIn: 32, chIn: 3, chOut: 32, k: 5, pad: 2, stride: 1, outShift: 9},
		{dimIn: 16, chIn: 32, chOut: 16, k: 5, pad: 2, stride: 1, outShift: 9},
		{dimIn: 8, chIn: 16, chOut: 32, k: 5, pad: 2, stride: 1, outShift: 9},
		{dimIn: 28, chIn: 1, chOut: 8, k: 3, pad: 0, stride: 2, outShift: 7},
	}

	for _, c := range sizes {
		g := c.geometry()
		in := testutil.DeterministicQ7(1, g.InputLen())
		wt := testutil.DeterministicQ7(2, g.WeightLen())
		bias := testutil.DeterministicQ7(3, c.chOut)
		out := make([]int8, g.OutputLen())
		bufA := make([]int16, g.BufferALen())

		for _, k := range Kernels() {
			b.Run(fmt.Sprintf("%s/%s", k.Name(), c), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(g.InputLen()))
				for i := 0; i < b.N; i++ {
					k.ConvolveHWCQ7Basic(in, c.dimIn, c.chIn, wt, c.chOut, c.k, c.pad, c.stride,
						bias, c.biasShift, c.outShift, out, g.DimOut, bufA, nil)
				}
			})
		}
	}
}

func BenchmarkLayerForward(b *testing.B) {
	g := NewGeometry(32, 3, 32, 5, 2, 1)
	l, err := NewLayer(g, testutil.DeterministicQ7(2, g.WeightLen()), testutil.DeterministicQ7(3, g.ChOut), 0, 9)
	if err != nil {
		b.Fatal(err)
	}
	in := testutil.DeterministicQ7(1, g.InputLen())
	out := make([]int8, g.OutputLen())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Forward(out, in)
	}
}
