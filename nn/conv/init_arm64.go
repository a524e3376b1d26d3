//go:build arm64 && !purego

package conv

import (
	_ "github.com/cwbudde/algo-qnn/nn/conv/internal/arch/dsp"
	_ "github.com/cwbudde/algo-qnn/nn/conv/internal/arch/generic"
	_ "github.com/cwbudde/algo-qnn/nn/conv/internal/arch/registry"
)
