package conv

import (
	"errors"
	"fmt"
)

// ErrInvalidShift is returned for shift amounts that do not fit a 32-bit
// accumulator.
var ErrInvalidShift = errors.New("conv: invalid shift")

// maxShift is the largest shift that keeps Round well defined.
const maxShift = 31

// Layer is a reusable Q7 convolution with fixed weights. The geometry is
// validated once by NewLayer; Forward then runs the kernel without
// allocating.
//
// A Layer owns its scratch buffer and must not be used by concurrent
// goroutines. Distinct Layers are independent.
type Layer struct {
	geom      Geometry
	weights   []int8
	bias      []int8
	biasShift uint
	outShift  uint
	bufA      []int16
	kernel    *Kernel
}

// NewLayer validates geom against the weights and bias and prepares the
// scratch buffer.
func NewLayer(geom Geometry, weights, bias []int8, biasShift, outShift uint, opts ...LayerOption) (*Layer, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if len(weights) != geom.WeightLen() {
		return nil, fmt.Errorf("%w: weights %d, want %d", ErrLengthMismatch, len(weights), geom.WeightLen())
	}
	if len(bias) != geom.ChOut {
		return nil, fmt.Errorf("%w: bias %d, want %d", ErrLengthMismatch, len(bias), geom.ChOut)
	}
	if biasShift > maxShift || outShift > maxShift {
		return nil, fmt.Errorf("%w: biasShift %d, outShift %d (max %d)", ErrInvalidShift, biasShift, outShift, maxShift)
	}

	cfg := applyLayerOptions(opts...)

	l := &Layer{
		geom:      geom,
		weights:   weights,
		bias:      bias,
		biasShift: biasShift,
		outShift:  outShift,
		bufA:      cfg.bufA,
	}

	if l.bufA == nil {
		l.bufA = make([]int16, geom.BufferALen())
	} else if len(l.bufA) < geom.BufferALen() {
		return nil, fmt.Errorf("%w: bufA %d, want %d", ErrBufferSize, len(l.bufA), geom.BufferALen())
	}

	if cfg.kernel != "" {
		k, err := KernelByName(cfg.kernel)
		if err != nil {
			return nil, err
		}
		l.kernel = &k
	}

	return l, nil
}

// Geometry returns the layer geometry.
func (l *Layer) Geometry() Geometry { return l.geom }

// KernelName returns the kernel Forward runs.
func (l *Layer) KernelName() string {
	if l.kernel != nil {
		return l.kernel.Name()
	}
	return SelectedKernel()
}

// Forward convolves src into dst. src must hold InputLen and dst OutputLen
// codes of the layer geometry.
func (l *Layer) Forward(dst, src []int8) error {
	g := l.geom
	if len(src) != g.InputLen() {
		return fmt.Errorf("%w: input %d, want %d", ErrLengthMismatch, len(src), g.InputLen())
	}
	if len(dst) != g.OutputLen() {
		return fmt.Errorf("%w: output %d, want %d", ErrLengthMismatch, len(dst), g.OutputLen())
	}

	var st Status
	if l.kernel != nil {
		st = l.kernel.ConvolveHWCQ7Basic(src, g.DimIn, g.ChIn, l.weights, g.ChOut, g.DimKernel, g.Padding, g.Stride,
			l.bias, l.biasShift, l.outShift, dst, g.DimOut, l.bufA, nil)
	} else {
		st = ConvolveHWCQ7Basic(src, g.DimIn, g.ChIn, l.weights, g.ChOut, g.DimKernel, g.Padding, g.Stride,
			l.bias, l.biasShift, l.outShift, dst, g.DimOut, l.bufA, nil)
	}
	if st != StatusSuccess {
		return fmt.Errorf("conv: kernel returned %s", st)
	}

	return nil
}
