//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on amd64 systems.
//
// SSE2 is part of the x86-64 baseline and carries PMADDWD, so HasDSP follows it.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasDSP:       cpu.X86.HasSSE2,
		Architecture: runtime.GOARCH,
	}
}
