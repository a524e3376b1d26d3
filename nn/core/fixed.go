package core

const (
	// Q7Min and Q7Max bound an 8-bit signed fixed-point code.
	Q7Min = -128
	Q7Max = 127
)

// Round returns the round-to-nearest constant added before a right shift
// by shift bits: half of 1<<shift, or 0 when shift is 0. Computed unsigned
// so shift 31 yields 1<<30.
func Round(shift uint) int32 {
	return int32((uint32(1) << shift) >> 1)
}

// Saturate clips x to the signed range of the given bit width, like the
// SSAT instruction. bits must be in [1, 32].
func Saturate(x int32, bits uint) int32 {
	if bits >= 32 {
		return x
	}
	hi := int32(1)<<(bits-1) - 1
	lo := -hi - 1
	if x > hi {
		return hi
	}
	if x < lo {
		return lo
	}
	return x
}

// SaturateQ7 clips x to [-128, 127].
func SaturateQ7(x int32) int8 {
	return int8(Saturate(x, 8))
}

// Requantize shifts an accumulator right by shift bits (arithmetic) and
// saturates it to a Q7 code. The rounding constant is expected to be part of
// acc already.
func Requantize(acc int32, shift uint) int8 {
	return SaturateQ7(acc >> shift)
}

// BiasAccumulator returns the initial accumulator for one output element:
// the bias scaled by biasShift plus the rounding constant for outShift.
func BiasAccumulator(bias int8, biasShift, outShift uint) int32 {
	return int32(bias)<<biasShift + Round(outShift)
}

// Q7ToQ15NoShift sign-extends src into dst without scaling.
// Only min(len(dst), len(src)) elements are converted.
func Q7ToQ15NoShift(dst []int16, src []int8) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		dst[i] = int16(src[i])
		dst[i+1] = int16(src[i+1])
		dst[i+2] = int16(src[i+2])
		dst[i+3] = int16(src[i+3])
	}
	for ; i < n; i++ {
		dst[i] = int16(src[i])
	}
}

// FillQ15 sets every element of dst to v.
func FillQ15(dst []int16, v int16) {
	for i := range dst {
		dst[i] = v
	}
}
