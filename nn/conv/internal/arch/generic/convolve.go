// Package generic implements the portable reference Q7 convolution.
package generic

import (
	"github.com/cwbudde/algo-qnn/nn/conv/internal/arch/registry"
	"github.com/cwbudde/algo-qnn/nn/core"
)

// ConvolveHWC is the direct convolution used on cores without a dual
// multiply-accumulate. BufferA is not touched.
func ConvolveHWC(a registry.Args) {
	in, wt, bias, out := a.Input, a.Weights, a.Bias, a.Output
	dimIn, chIn, chOut := a.DimIn, a.ChIn, a.ChOut
	k, stride, pad, dimOut := a.DimKernel, a.Stride, a.Padding, a.DimOut
	rowLen := chIn * k * k

	for i := 0; i < chOut; i++ {
		wtRow := wt[i*rowLen : (i+1)*rowLen]
		for j := 0; j < dimOut; j++ {
			for l := 0; l < dimOut; l++ {
				sum := core.BiasAccumulator(bias[i], a.BiasShift, a.OutShift)
				for m := 0; m < k; m++ {
					inRow := stride*j + m - pad
					if inRow < 0 || inRow >= dimIn {
						continue
					}
					for n := 0; n < k; n++ {
						inCol := stride*l + n - pad
						if inCol < 0 || inCol >= dimIn {
							continue
						}
						px := in[(inRow*dimIn+inCol)*chIn:][:chIn]
						w := wtRow[(m*k+n)*chIn:][:chIn]
						for c, v := range px {
							sum += int32(v) * int32(w[c])
						}
					}
				}
				out[i+(j*dimOut+l)*chOut] = core.Requantize(sum, a.OutShift)
			}
		}
	}
}
