// Package dsp implements the im2col Q7 convolution for cores with a packed
// dual 16-bit multiply-accumulate.
//
// Receptive fields are widened to Q15 into the caller's scratch buffer and
// consumed two output pixels at a time by a fused matrix-multiply kernel; a
// trailing odd pixel goes through the single-column kernel.
package dsp

import (
	"github.com/cwbudde/algo-qnn/nn/conv/internal/arch/registry"
	"github.com/cwbudde/algo-qnn/nn/core"
)

// ConvolveHWC runs the im2col kernel with a batch of two columns.
// a.BufferA must hold at least 2*ChIn*DimKernel*DimKernel values.
func ConvolveHWC(a registry.Args) {
	convolveBatched(&a, 2)
}

// convolveBatched unrolls batch output pixels (1 or 2) into BufferA before
// each multiply. Both batch sizes produce identical output.
func convolveBatched(a *registry.Args, batch int) {
	numCol := a.ChIn * a.DimKernel * a.DimKernel
	buf := a.BufferA[:batch*numCol]
	out := a.Output

	filled := 0
	for y := 0; y < a.DimOut; y++ {
		for x := 0; x < a.DimOut; x++ {
			im2col(buf[filled*numCol:(filled+1)*numCol], a, y, x)
			filled++

			if filled == batch {
				if batch == 2 {
					out = MatMultKernelQ7Q15(a.Weights, buf, a.ChOut, numCol,
						a.BiasShift, a.OutShift, a.Bias, out)
				} else {
					out = MatMultColumnQ7Q15(a.Weights, buf, a.ChOut, numCol,
						a.BiasShift, a.OutShift, a.Bias, out)
				}
				filled = 0
			}
		}
	}

	// left-over because of an odd number of output pixels
	if filled != 0 {
		MatMultColumnQ7Q15(a.Weights, buf, a.ChOut, numCol,
			a.BiasShift, a.OutShift, a.Bias, out)
	}
}

// im2col writes the receptive field of output pixel (outY, outX) into dst,
// one ChIn-long run per kernel tap. Taps in the padding are zero.
func im2col(dst []int16, a *registry.Args, outY, outX int) {
	chIn, dimIn := a.ChIn, a.DimIn
	y0 := outY*a.Stride - a.Padding
	x0 := outX*a.Stride - a.Padding

	p := 0
	for ky := y0; ky < y0+a.DimKernel; ky++ {
		for kx := x0; kx < x0+a.DimKernel; kx++ {
			seg := dst[p : p+chIn]
			if ky < 0 || ky >= dimIn || kx < 0 || kx >= dimIn {
				core.FillQ15(seg, 0)
			} else {
				core.Q7ToQ15NoShift(seg, a.Input[(ky*dimIn+kx)*chIn:][:chIn])
			}
			p += chIn
		}
	}
}
