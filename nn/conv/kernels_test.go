package conv

import (
	"sync"

	// register both kernels on every architecture
	_ "github.com/cwbudde/algo-qnn/nn/conv/internal/arch/dsp"
	_ "github.com/cwbudde/algo-qnn/nn/conv/internal/arch/generic"
)

func resetConvolveDispatchForTest() {
	convolveImpl = nil
	convolveName = ""
	convolveInitOnce = sync.Once{}
}
