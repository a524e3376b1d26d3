package conv

import (
	"errors"
	"fmt"
)

// Errors returned by geometry validation.
var (
	ErrInvalidGeometry = errors.New("conv: invalid geometry")
	ErrOutputDim       = errors.New("conv: output dimension inconsistent with geometry")
	ErrLengthMismatch  = errors.New("conv: buffer length mismatch")
	ErrBufferSize      = errors.New("conv: scratch buffer too small")
)

// OutputDim returns the output width of a square convolution:
// (dimIn + 2*padding - dimKernel)/stride + 1.
func OutputDim(dimIn, padding, dimKernel, stride int) int {
	return (dimIn+2*padding-dimKernel)/stride + 1
}

// BufferASize returns the minimum im2col scratch length, two Q15 receptive
// fields.
func BufferASize(chIn, dimKernel int) int {
	return 2 * chIn * dimKernel * dimKernel
}

// Geometry describes the shape parameters of one convolution.
type Geometry struct {
	DimIn     int
	ChIn      int
	ChOut     int
	DimKernel int
	Padding   int
	Stride    int
	DimOut    int
}

// NewGeometry returns a Geometry with DimOut derived from the other fields.
func NewGeometry(dimIn, chIn, chOut, dimKernel, padding, stride int) Geometry {
	g := Geometry{
		DimIn:     dimIn,
		ChIn:      chIn,
		ChOut:     chOut,
		DimKernel: dimKernel,
		Padding:   padding,
		Stride:    stride,
	}
	if stride > 0 {
		g.DimOut = OutputDim(dimIn, padding, dimKernel, stride)
	}
	return g
}

// InputLen returns the required input tensor length.
func (g Geometry) InputLen() int { return g.DimIn * g.DimIn * g.ChIn }

// WeightLen returns the required weight tensor length.
func (g Geometry) WeightLen() int { return g.ChOut * g.DimKernel * g.DimKernel * g.ChIn }

// OutputLen returns the required output tensor length.
func (g Geometry) OutputLen() int { return g.DimOut * g.DimOut * g.ChOut }

// BufferALen returns the required im2col scratch length.
func (g Geometry) BufferALen() int { return BufferASize(g.ChIn, g.DimKernel) }

// Validate checks the scalar constraints of the caller contract.
func (g Geometry) Validate() error {
	switch {
	case g.DimIn < 1:
		return fmt.Errorf("%w: dimIn must be >= 1: %d", ErrInvalidGeometry, g.DimIn)
	case g.ChIn < 1:
		return fmt.Errorf("%w: chIn must be >= 1: %d", ErrInvalidGeometry, g.ChIn)
	case g.ChOut < 1:
		return fmt.Errorf("%w: chOut must be >= 1: %d", ErrInvalidGeometry, g.ChOut)
	case g.DimKernel < 1:
		return fmt.Errorf("%w: dimKernel must be >= 1: %d", ErrInvalidGeometry, g.DimKernel)
	case g.Stride < 1:
		return fmt.Errorf("%w: stride must be >= 1: %d", ErrInvalidGeometry, g.Stride)
	case g.Padding < 0:
		return fmt.Errorf("%w: padding must be >= 0: %d", ErrInvalidGeometry, g.Padding)
	case g.DimIn+2*g.Padding < g.DimKernel:
		return fmt.Errorf("%w: kernel %d larger than padded input %d",
			ErrInvalidGeometry, g.DimKernel, g.DimIn+2*g.Padding)
	}

	if want := OutputDim(g.DimIn, g.Padding, g.DimKernel, g.Stride); g.DimOut != want {
		return fmt.Errorf("%w: dimOut %d, want %d", ErrOutputDim, g.DimOut, want)
	}

	return nil
}

// ValidateBuffers checks g and the lengths of every buffer against it.
func (g Geometry) ValidateBuffers(in, wt, bias, out []int8, bufA []int16) error {
	if err := g.Validate(); err != nil {
		return err
	}

	switch {
	case len(in) < g.InputLen():
		return fmt.Errorf("%w: input %d, want %d", ErrLengthMismatch, len(in), g.InputLen())
	case len(wt) < g.WeightLen():
		return fmt.Errorf("%w: weights %d, want %d", ErrLengthMismatch, len(wt), g.WeightLen())
	case len(bias) < g.ChOut:
		return fmt.Errorf("%w: bias %d, want %d", ErrLengthMismatch, len(bias), g.ChOut)
	case len(out) < g.OutputLen():
		return fmt.Errorf("%w: output %d, want %d", ErrLengthMismatch, len(out), g.OutputLen())
	case len(bufA) < g.BufferALen():
		return fmt.Errorf("%w: bufA %d, want %d", ErrBufferSize, len(bufA), g.BufferALen())
	}

	return nil
}
