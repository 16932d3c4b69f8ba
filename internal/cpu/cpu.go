// Package cpu reports the SIMD features the blake3 backends can use.
package cpu

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

var simd = []struct {
	name string
	id   cpuid.FeatureID
}{
	{"SSE2", cpuid.SSE2},
	{"SSE4.1", cpuid.SSE4},
	{"AVX2", cpuid.AVX2},
	{"AVX-512F", cpuid.AVX512F},
	{"AVX-512VL", cpuid.AVX512VL},
	{"NEON", cpuid.ASIMD},
}

func init() {
	// some arm64 features require explicit detection
	if runtime.GOARCH == "arm64" {
		cpuid.DetectARM()
	}
}

// Brand returns the CPU brand name, or the architecture when unknown.
func Brand() string {
	if cpuid.CPU.BrandName != "" {
		return cpuid.CPU.BrandName
	}
	return runtime.GOARCH
}

// Features returns the supported SIMD feature names.
func Features() []string {
	var features []string
	for _, f := range simd {
		if cpuid.CPU.Supports(f.id) {
			features = append(features, f.name)
		}
	}
	return features
}
