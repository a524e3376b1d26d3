//go:build amd64 && !purego

package conv

import (
	_ "github.com/cwbudde/algo-qnn/nn/conv/internal/arch/dsp"      // register im2col dual-MAC kernel
	_ "github.com/cwbudde/algo-qnn/nn/conv/internal/arch/generic"  // register reference kernel
	_ "github.com/cwbudde/algo-qnn/nn/conv/internal/arch/registry" // initialize kernel registry
)
