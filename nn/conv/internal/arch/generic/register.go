package generic

import (
	"github.com/cwbudde/algo-qnn/internal/cpu"
	"github.com/cwbudde/algo-qnn/nn/conv/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:        "generic",
		SIMDLevel:   cpu.SIMDNone,
		Priority:    0,
		ConvolveHWC: ConvolveHWC,
	})
}
