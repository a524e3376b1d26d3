//go:build !amd64 && !arm64

package conv

import (
	_ "github.com/cwbudde/algo-qnn/nn/conv/internal/arch/generic"
	_ "github.com/cwbudde/algo-qnn/nn/conv/internal/arch/registry"
)
