package core

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		shift uint
		want  int32
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{7, 64},
		{15, 16384},
		{30, 1 << 29},
		{31, 1 << 30},
	}

	for _, tt := range tests {
		if got := Round(tt.shift); got != tt.want {
			t.Errorf("Round(%d) = %d, want %d", tt.shift, got, tt.want)
		}
	}
}

func TestSaturateQ7(t *testing.T) {
	tests := []struct {
		in   int32
		want int8
	}{
		{0, 0},
		{127, 127},
		{128, 127},
		{1 << 20, 127},
		{-128, -128},
		{-129, -128},
		{-1 << 20, -128},
		{-5, -5},
	}

	for _, tt := range tests {
		if got := SaturateQ7(tt.in); got != tt.want {
			t.Errorf("SaturateQ7(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSaturateQ7Range(t *testing.T) {
	for x := int32(-300); x <= 300; x++ {
		want := min(max(x, Q7Min), Q7Max)
		if got := int32(SaturateQ7(x)); got != want {
			t.Fatalf("SaturateQ7(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestSaturateWidths(t *testing.T) {
	if got := Saturate(40000, 16); got != 32767 {
		t.Errorf("Saturate(40000, 16) = %d, want 32767", got)
	}
	if got := Saturate(-40000, 16); got != -32768 {
		t.Errorf("Saturate(-40000, 16) = %d, want -32768", got)
	}
	if got := Saturate(-7, 32); got != -7 {
		t.Errorf("Saturate(-7, 32) = %d, want -7", got)
	}
}

func TestRequantizeRoundsToNearest(t *testing.T) {
	// sum of products 5, shift 1: (5+1)>>1 = 3, truncation would give 2.
	acc := BiasAccumulator(0, 0, 1) + 5
	if got := Requantize(acc, 1); got != 3 {
		t.Fatalf("Requantize = %d, want 3", got)
	}
}

func TestRequantizeNegativeArithmeticShift(t *testing.T) {
	// -5 + 1 = -4, -4 >> 1 = -2
	acc := BiasAccumulator(0, 0, 1) - 5
	if got := Requantize(acc, 1); got != -2 {
		t.Fatalf("Requantize = %d, want -2", got)
	}
}

func TestBiasAccumulator(t *testing.T) {
	tests := []struct {
		name                string
		bias                int8
		biasShift, outShift uint
		want                int32
	}{
		{"bias shift only", 3, 2, 0, 12},
		{"with rounding", 3, 2, 3, 16},
		{"negative bias", -4, 3, 0, -32},
		{"zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BiasAccumulator(tt.bias, tt.biasShift, tt.outShift); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQ7ToQ15NoShift(t *testing.T) {
	src := []int8{-128, -1, 0, 1, 127, -7, 9}
	dst := make([]int16, len(src)+2)
	FillQ15(dst, 99)

	Q7ToQ15NoShift(dst, src)

	for i, v := range src {
		if dst[i] != int16(v) {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], v)
		}
	}
	if dst[len(src)] != 99 || dst[len(src)+1] != 99 {
		t.Error("conversion wrote past len(src)")
	}
}
