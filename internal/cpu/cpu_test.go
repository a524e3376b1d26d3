package cpu

import "testing"

func TestSIMDLevelString(t *testing.T) {
	tests := []struct {
		level SIMDLevel
		want  string
	}{
		{SIMDNone, "None"},
		{SIMDDSP, "DSP"},
		{SIMDLevel(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"generic always supported", Features{}, SIMDNone, true},
		{"dsp with HasDSP", Features{HasDSP: true}, SIMDDSP, true},
		{"dsp without HasDSP", Features{HasSSE2: true}, SIMDDSP, false},
		{"dsp with HasNEON only", Features{HasNEON: true}, SIMDDSP, false},
		{"force generic blocks dsp", Features{HasDSP: true, ForceGeneric: true}, SIMDDSP, false},
		{"force generic allows none", Features{ForceGeneric: true}, SIMDNone, true},
		{"unknown level", Features{HasDSP: true}, SIMDLevel(42), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestForcedFeatures(t *testing.T) {
	SetForcedFeatures(Features{HasDSP: true, Architecture: "thumbv7em"})
	defer ResetDetection()

	f := DetectFeatures()
	if !f.HasDSP || f.Architecture != "thumbv7em" {
		t.Fatalf("forced features not returned: %+v", f)
	}
	if !HasDSP() {
		t.Fatal("HasDSP() = false with forced DSP feature")
	}

	ResetDetection()
	if DetectFeatures().Architecture == "thumbv7em" {
		t.Fatal("ResetDetection did not clear forced features")
	}
}

func TestDetectFeaturesCached(t *testing.T) {
	defer ResetDetection()

	a := DetectFeatures()
	b := DetectFeatures()
	if a != b {
		t.Fatalf("detection not stable: %+v vs %+v", a, b)
	}
	if a.Architecture == "" {
		t.Fatal("Architecture not populated")
	}
}
