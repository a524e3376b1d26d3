//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on arm64 systems.
//
// ASIMD is mandatory on ARMv8 and provides widening multiply-accumulate.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		HasDSP:       cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
