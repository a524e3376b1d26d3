// Package registry holds the Q7 convolution kernel implementations available
// to the conv package. Kernel packages register from init(); conv resolves the
// best entry for the running CPU once.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-qnn/internal/cpu"
)

// Args carries one HWC Q7 convolution call. All slices are caller-owned;
// kernels write Output and use BufferA as scratch, nothing else is modified.
type Args struct {
	Input     []int8 // (DimIn, DimIn, ChIn)
	DimIn     int
	ChIn      int
	Weights   []int8 // (ChOut, DimKernel, DimKernel, ChIn)
	ChOut     int
	DimKernel int
	Padding   int
	Stride    int
	Bias      []int8 // (ChOut)
	BiasShift uint
	OutShift  uint
	Output    []int8 // (DimOut, DimOut, ChOut)
	DimOut    int
	BufferA   []int16
	BufferB   []int8 // reserved, unused by the basic kernels
}

// ConvolveFn computes one convolution described by a.
type ConvolveFn func(a Args)

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	Name        string
	SIMDLevel   cpu.SIMDLevel
	Priority    int
	ConvolveHWC ConvolveFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil if none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Find returns the entry registered under name regardless of CPU support.
func (r *OpRegistry) Find(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

// ListEntries returns a copy of entries sorted by priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by descending priority. Must hold r.mu.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}
