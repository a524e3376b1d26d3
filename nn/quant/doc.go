// Package quant converts between float64 values and Q7 codes.
//
// A Q7 code q with fracBits fractional bits represents q / 2^fracBits.
// Quantize rounds to nearest (halves away from zero) and saturates to
// [-128, 127]; NaN maps to 0.
//
// DequantizeHWC applies one scale per channel to a channel-innermost tensor,
// the layout produced by nn/conv.
package quant
