// Package conv provides quantized (Q7) 2D convolution for channel-interleaved
// (HWC) feature maps, the hot loop of small-footprint neural-network
// inference.
//
// Inputs, weights and bias are 8-bit signed fixed-point codes. Every output
// element is computed as
//
//	acc = bias<<biasShift + round(outShift) + Σ in·wt
//	out = saturate8(acc >> outShift)
//
// where round(s) is half of 1<<s. Values outside [-128, 127] are clipped.
//
// # Layout
//
// All tensors are flat slices with the channel dimension innermost:
//
//	input   (dimIn, dimIn, chIn)                at (y*dimIn+x)*chIn + c
//	weights (chOut, dimKernel, dimKernel, chIn)
//	output  (dimOut, dimOut, chOut)             at (y*dimOut+x)*chOut + c
//
// # Kernels
//
// Two functionally identical kernels are registered:
//
//   - "dsp": expands two receptive fields at a time into a Q15 scratch buffer
//     (im2col) and multiplies them against the weights with packed dual
//     16-bit multiply-accumulates. Selected on amd64 and arm64.
//   - "generic": direct reference convolution. Selected on every other
//     target, with the purego build tag, or when CPU features force it.
//
// [ConvolveHWCQ7Basic] dispatches to the best kernel for the running CPU;
// [KernelByName] runs a specific one. Both produce byte-identical output.
//
// # Caller contract
//
// Like the kernel libraries it mirrors, [ConvolveHWCQ7Basic] performs no
// allocation and no validation: dimOut must equal [OutputDim] of the other
// parameters and bufA must hold [BufferASize] values. Use [Geometry.Validate]
// or a [Layer] to check a configuration once up front, or build with the
// q7debug tag to assert on every call.
package conv
