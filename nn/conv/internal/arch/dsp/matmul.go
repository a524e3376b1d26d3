package dsp

import "github.com/cwbudde/algo-qnn/nn/core"

// MatMultKernelQ7Q15 multiplies the weight matrix (chOut rows of numCol Q7
// values) with the two im2col columns held in bufA[:2*numCol].
//
// Results for the first column are written to out[:chOut] and for the second
// to out[chOut:2*chOut]. Output channels are processed two at a time so each
// loaded column pair feeds four accumulators. The returned slice starts right
// after the last written byte.
func MatMultKernelQ7Q15(wt []int8, bufA []int16, chOut, numCol int,
	biasShift, outShift uint, bias []int8, out []int8,
) []int8 {
	colA := bufA[:numCol]
	colB := bufA[numCol : 2*numCol]
	out2 := out[chOut : 2*chOut]

	i := 0
	for ; i+1 < chOut; i += 2 {
		rowA := wt[i*numCol : (i+1)*numCol]
		rowB := wt[(i+1)*numCol : (i+2)*numCol]

		sum := core.BiasAccumulator(bias[i], biasShift, outShift)
		sum2 := sum
		sum3 := core.BiasAccumulator(bias[i+1], biasShift, outShift)
		sum4 := sum3

		j := 0
		for ; j+3 < numCol; j += 4 {
			a11, a12 := readAndPad(rowA[j:])
			a21, a22 := readAndPad(rowB[j:])

			b1 := readQ15x2(colA[j:])
			b2 := readQ15x2(colB[j:])
			sum = smlad(a11, b1, sum)
			sum2 = smlad(a11, b2, sum2)
			sum3 = smlad(a21, b1, sum3)
			sum4 = smlad(a21, b2, sum4)

			b1 = readQ15x2(colA[j+2:])
			b2 = readQ15x2(colB[j+2:])
			sum = smlad(a12, b1, sum)
			sum2 = smlad(a12, b2, sum2)
			sum3 = smlad(a22, b1, sum3)
			sum4 = smlad(a22, b2, sum4)
		}
		for ; j < numCol; j++ {
			wa, wb := int32(rowA[j]), int32(rowB[j])
			xa, xb := int32(colA[j]), int32(colB[j])
			sum += wa * xa
			sum2 += wa * xb
			sum3 += wb * xa
			sum4 += wb * xb
		}

		out[i] = core.Requantize(sum, outShift)
		out[i+1] = core.Requantize(sum3, outShift)
		out2[i] = core.Requantize(sum2, outShift)
		out2[i+1] = core.Requantize(sum4, outShift)
	}

	// odd output channel
	if i < chOut {
		row := wt[i*numCol : (i+1)*numCol]
		sum := core.BiasAccumulator(bias[i], biasShift, outShift)
		sum2 := sum

		j := 0
		for ; j+3 < numCol; j += 4 {
			a1, a2 := readAndPad(row[j:])
			sum = smlad(a1, readQ15x2(colA[j:]), sum)
			sum2 = smlad(a1, readQ15x2(colB[j:]), sum2)
			sum = smlad(a2, readQ15x2(colA[j+2:]), sum)
			sum2 = smlad(a2, readQ15x2(colB[j+2:]), sum2)
		}
		for ; j < numCol; j++ {
			w := int32(row[j])
			sum += w * int32(colA[j])
			sum2 += w * int32(colB[j])
		}

		out[i] = core.Requantize(sum, outShift)
		out2[i] = core.Requantize(sum2, outShift)
	}

	return out[2*chOut:]
}

// MatMultColumnQ7Q15 is the single-column form of MatMultKernelQ7Q15: it
// writes out[:chOut] from the column in bufA[:numCol] and returns out[chOut:].
func MatMultColumnQ7Q15(wt []int8, bufA []int16, chOut, numCol int,
	biasShift, outShift uint, bias []int8, out []int8,
) []int8 {
	col := bufA[:numCol]

	for i := 0; i < chOut; i++ {
		row := wt[i*numCol : (i+1)*numCol]
		sum := core.BiasAccumulator(bias[i], biasShift, outShift)

		j := 0
		for ; j+3 < numCol; j += 4 {
			a1, a2 := readAndPad(row[j:])
			sum = smlad(a1, readQ15x2(col[j:]), sum)
			sum = smlad(a2, readQ15x2(col[j+2:]), sum)
		}
		for ; j < numCol; j++ {
			sum += int32(row[j]) * int32(col[j])
		}

		out[i] = core.Requantize(sum, outShift)
	}

	return out[chOut:]
}
