package testutil

import "math/rand"

// DeterministicQ7 returns length Q7 codes drawn uniformly from [-128, 127]
// with a fixed seed.
func DeterministicQ7(seed int64, length int) []int8 {
	return DeterministicQ7Range(seed, -128, 127, length)
}

// DeterministicQ7Range returns length codes drawn uniformly from [lo, hi].
func DeterministicQ7Range(seed int64, lo, hi int8, length int) []int8 {
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make([]int8, length)
	rng := rand.New(rand.NewSource(seed))
	span := int(hi) - int(lo) + 1
	for i := range out {
		out[i] = int8(int(lo) + rng.Intn(span))
	}
	return out
}

// ConstQ7 returns length copies of value.
func ConstQ7(value int8, length int) []int8 {
	out := make([]int8, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// ImpulseQ7 returns a zero tensor with value at pos.
func ImpulseQ7(length, pos int, value int8) []int8 {
	out := make([]int8, length)
	if pos >= 0 && pos < length {
		out[pos] = value
	}
	return out
}
