package dsp

import (
	"github.com/cwbudde/algo-qnn/internal/cpu"
	"github.com/cwbudde/algo-qnn/nn/conv/internal/arch/registry"
)

// init registers the im2col kernel. It is only selected on hosts reporting a
// packed dual 16-bit multiply-accumulate.
//
// Priority: 10 (preferred over generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:        "dsp",
		SIMDLevel:   cpu.SIMDDSP,
		Priority:    10,
		ConvolveHWC: ConvolveHWC,
	})
}
