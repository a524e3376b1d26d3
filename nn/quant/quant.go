package quant

import (
	"errors"
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-qnn/nn/core"
)

// Errors returned by the tensor conversions.
var (
	ErrLengthMismatch = errors.New("quant: length mismatch")
	ErrNoScales       = errors.New("quant: no channel scales")
)

// Scale returns 2^-fracBits, the value of one Q7 step.
func Scale(fracBits uint) float64 {
	return math.Ldexp(1, -int(fracBits))
}

// QuantizeValue converts x to a Q7 code with fracBits fractional bits.
func QuantizeValue(x float64, fracBits uint) int8 {
	if math.IsNaN(x) {
		return 0
	}
	v := math.Round(math.Ldexp(x, int(fracBits)))
	switch {
	case v > core.Q7Max:
		return core.Q7Max
	case v < core.Q7Min:
		return core.Q7Min
	}
	return core.SaturateQ7(int32(v))
}

// Quantize converts src into dst. Only min(len(dst), len(src)) elements are
// written.
func Quantize(dst []int8, src []float64, fracBits uint) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = QuantizeValue(src[i], fracBits)
	}
}

// Dequantize converts src into dst. Only min(len(dst), len(src)) elements
// are written.
func Dequantize(dst []float64, src []int8, fracBits uint) {
	n := min(len(dst), len(src))
	dst = dst[:n]
	for i := range dst {
		dst[i] = float64(src[i])
	}
	vecmath.ScaleBlock(dst, dst, Scale(fracBits))
}

// DequantizeHWC converts a channel-innermost tensor, multiplying every code
// of channel c by scales[c]. len(src) must be a multiple of len(scales) and
// dst must hold len(src) values.
func DequantizeHWC(dst []float64, src []int8, scales []float64) error {
	ch := len(scales)
	if ch == 0 {
		return ErrNoScales
	}
	if len(src)%ch != 0 {
		return fmt.Errorf("%w: %d codes not a multiple of %d channels", ErrLengthMismatch, len(src), ch)
	}
	if len(dst) < len(src) {
		return fmt.Errorf("%w: dst %d, want %d", ErrLengthMismatch, len(dst), len(src))
	}

	for p := 0; p < len(src); p += ch {
		px := dst[p : p+ch]
		for c, q := range src[p : p+ch] {
			px[c] = float64(q)
		}
		vecmath.MulBlockInPlace(px, scales)
	}

	return nil
}
