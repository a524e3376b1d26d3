// Package cpu provides CPU feature detection for quantized kernel selection.
//
// The convolution kernels only care about one capability: whether the core can
// multiply-accumulate two packed 16-bit lanes into a 32-bit accumulator in a
// single instruction (SMLAD on Cortex-M DSP cores, PMADDWD on x86-64, SMLAL on
// ARMv8 Advanced SIMD). Hosts that have it get the im2col kernel, everything
// else runs the reference kernel.
//
// Detection is performed lazily on the first call to DetectFeatures and cached.
package cpu

import (
	"sync"
)

// SIMDLevel identifies the instruction-set capability a kernel requires.
type SIMDLevel int

const (
	// SIMDNone is the portable scalar baseline.
	SIMDNone SIMDLevel = iota

	// SIMDDSP requires a packed dual 16-bit multiply-accumulate.
	SIMDDSP
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDDSP:
		return "DSP"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// Informational; kernels select on HasDSP.
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// HasDSP reports a packed dual 16-bit multiply-accumulate.
	HasDSP bool

	// ForceGeneric disables every optimized kernel.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection in tests.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasDSP reports whether the im2col dual-MAC kernel can be used on this host.
func HasDSP() bool {
	return DetectFeatures().HasDSP
}

// SetForcedFeatures overrides CPU feature detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features satisfy the given SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDDSP:
		return features.HasDSP
	default:
		return false
	}
}
