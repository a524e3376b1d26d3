// Package core contains the fixed-point primitives shared by every quantized
// kernel: round-to-nearest constants, arithmetic shifts, signed saturation and
// Q7 to Q15 widening.
//
// All kernels build their accumulators with [BiasAccumulator] and finish them
// with [Requantize], so two kernels that agree on the sum of products agree on
// the output byte.
package core
