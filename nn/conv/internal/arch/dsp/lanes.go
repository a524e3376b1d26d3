package dsp

// q15x2 packs two Q15 lanes into one 32-bit word, lane 0 in the low half,
// the operand layout of the dual multiply-accumulate instructions.
type q15x2 uint32

func pack(lo, hi int16) q15x2 {
	return q15x2(uint32(uint16(lo)) | uint32(uint16(hi))<<16)
}

func (p q15x2) lo() int32 { return int32(int16(uint16(p))) }
func (p q15x2) hi() int32 { return int32(int16(uint16(p >> 16))) }

// smlad returns acc + x.lo*y.lo + x.hi*y.hi with 32-bit wraparound.
func smlad(x, y q15x2, acc int32) int32 {
	return acc + x.lo()*y.lo() + x.hi()*y.hi()
}

// readQ15x2 loads src[0] and src[1] as one packed word.
func readQ15x2(src []int16) q15x2 {
	_ = src[1]
	return pack(src[0], src[1])
}

// readAndPad sign-extends four Q7 values into two packed words,
// (src[0], src[1]) and (src[2], src[3]).
func readAndPad(src []int8) (q15x2, q15x2) {
	_ = src[3]
	return pack(int16(src[0]), int16(src[1])), pack(int16(src[2]), int16(src[3]))
}
