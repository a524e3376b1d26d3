//go:build q7debug

package conv

import "github.com/cwbudde/algo-qnn/nn/conv/internal/arch/registry"

const debugAssertions = true

// debugCheck panics when the call violates the caller contract.
func debugCheck(a *registry.Args) {
	g := Geometry{
		DimIn:     a.DimIn,
		ChIn:      a.ChIn,
		ChOut:     a.ChOut,
		DimKernel: a.DimKernel,
		Padding:   a.Padding,
		Stride:    a.Stride,
		DimOut:    a.DimOut,
	}
	if err := g.ValidateBuffers(a.Input, a.Weights, a.Bias, a.Output, a.BufferA); err != nil {
		panic(err)
	}
}
