//go:build q7debug

package conv

import (
	"errors"
	"testing"
)

func TestDebugAssertionsPanicOnBadGeometry(t *testing.T) {
	if !debugAssertions {
		t.Fatal("q7debug build without assertions")
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutputDim) {
			t.Fatalf("expected ErrOutputDim panic, got %v", r)
		}
	}()

	out := make([]int8, 4)
	ConvolveHWCQ7Basic([]int8{1, 2, 3, 4}, 2, 1, []int8{1}, 1, 1, 0, 1, []int8{0}, 0, 0, out, 3, make([]int16, 2), nil)
}

func TestDebugAssertionsPanicOnSmallBuffer(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrBufferSize) {
			t.Fatalf("expected ErrBufferSize panic, got %v", r)
		}
	}()

	out := make([]int8, 4)
	ConvolveHWCQ7Basic([]int8{1, 2, 3, 4}, 2, 1, []int8{1}, 1, 1, 0, 1, []int8{0}, 0, 0, out, 2, make([]int16, 1), nil)
}
