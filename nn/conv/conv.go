package conv

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-qnn/internal/cpu"
	"github.com/cwbudde/algo-qnn/nn/conv/internal/arch/registry"
)

// Status is the result code of a kernel call.
type Status int

const (
	// StatusSuccess is returned by every successful call.
	StatusSuccess Status = 0

	// StatusArgError is reserved for argument errors. The basic kernel
	// never returns it.
	StatusArgError Status = -1

	// StatusNoImpl is reserved for unsupported configurations. The basic
	// kernel never returns it.
	StatusNoImpl Status = -2
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusArgError:
		return "argument error"
	case StatusNoImpl:
		return "not implemented"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ErrUnknownKernel is returned when no kernel is registered under a name.
var ErrUnknownKernel = errors.New("conv: unknown kernel")

var (
	convolveImpl     registry.ConvolveFn
	convolveName     string
	convolveInitOnce sync.Once
)

func initConvolveKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("conv: no ConvolveHWC kernel registered (missing generic fallback?)")
	}

	if entry.ConvolveHWC == nil {
		panic("conv: selected kernel missing ConvolveHWC")
	}

	convolveImpl = entry.ConvolveHWC
	convolveName = entry.Name
}

// ConvolveHWCQ7Basic convolves the Q7 input feature map in (dimIn x dimIn x
// chIn) with wt (chOut x dimKernel x dimKernel x chIn), adds bias and writes
// the requantized result to out (dimOut x dimOut x chOut).
//
// bufA is im2col scratch of at least BufferASize(chIn, dimKernel) values;
// its contents are undefined afterwards. bufB is reserved and may be nil.
// The geometry is not checked (see the package documentation). The call does
// not allocate and always returns StatusSuccess.
func ConvolveHWCQ7Basic(in []int8, dimIn, chIn int, wt []int8, chOut, dimKernel, padding, stride int,
	bias []int8, biasShift, outShift uint, out []int8, dimOut int, bufA []int16, bufB []int8,
) Status {
	convolveInitOnce.Do(initConvolveKernel)

	a := registry.Args{
		Input: in, DimIn: dimIn, ChIn: chIn,
		Weights: wt, ChOut: chOut, DimKernel: dimKernel, Padding: padding, Stride: stride,
		Bias: bias, BiasShift: biasShift, OutShift: outShift,
		Output: out, DimOut: dimOut,
		BufferA: bufA, BufferB: bufB,
	}
	debugCheck(&a)
	convolveImpl(a)

	return StatusSuccess
}

// Kernel is a registered convolution implementation.
type Kernel struct {
	name     string
	level    cpu.SIMDLevel
	priority int
	fn       registry.ConvolveFn
}

func kernelFromEntry(e *registry.OpEntry) Kernel {
	return Kernel{name: e.Name, level: e.SIMDLevel, priority: e.Priority, fn: e.ConvolveHWC}
}

// Name returns the registry name, e.g. "dsp" or "generic".
func (k Kernel) Name() string { return k.name }

// Level returns the instruction-set capability the kernel requires.
func (k Kernel) Level() string { return k.level.String() }

// Priority returns the selection priority; higher wins.
func (k Kernel) Priority() int { return k.priority }

// Supported reports whether the running CPU can use the kernel for dispatch.
// Every kernel is portable Go and can be called directly regardless.
func (k Kernel) Supported() bool {
	return cpu.Supports(cpu.DetectFeatures(), k.level)
}

// ConvolveHWCQ7Basic runs this kernel with the same contract as the
// package-level function.
func (k Kernel) ConvolveHWCQ7Basic(in []int8, dimIn, chIn int, wt []int8, chOut, dimKernel, padding, stride int,
	bias []int8, biasShift, outShift uint, out []int8, dimOut int, bufA []int16, bufB []int8,
) Status {
	a := registry.Args{
		Input: in, DimIn: dimIn, ChIn: chIn,
		Weights: wt, ChOut: chOut, DimKernel: dimKernel, Padding: padding, Stride: stride,
		Bias: bias, BiasShift: biasShift, OutShift: outShift,
		Output: out, DimOut: dimOut,
		BufferA: bufA, BufferB: bufB,
	}
	debugCheck(&a)
	k.fn(a)

	return StatusSuccess
}

// Kernels returns every registered kernel, highest priority first.
func Kernels() []Kernel {
	entries := registry.Global.ListEntries()
	out := make([]Kernel, 0, len(entries))
	for i := range entries {
		out = append(out, kernelFromEntry(&entries[i]))
	}
	return out
}

// KernelByName returns the kernel registered under name.
func KernelByName(name string) (Kernel, error) {
	entry := registry.Global.Find(name)
	if entry == nil {
		return Kernel{}, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	return kernelFromEntry(entry), nil
}

// SelectedKernel returns the name of the kernel ConvolveHWCQ7Basic dispatches to.
func SelectedKernel() string {
	convolveInitOnce.Do(initConvolveKernel)
	return convolveName
}
