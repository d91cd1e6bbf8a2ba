// Package simd provides wide-word scanning primitives used by the matcher.
//
// The implementations are pure Go (SWAR: SIMD within a register). CPU
// features reported by golang.org/x/sys/cpu pick between a 32-byte unrolled
// loop, which keeps four independent loads in flight on wide cores, and the
// plain 8-byte loop.
package simd

import "golang.org/x/sys/cpu"

// CPU feature flags sampled once at package initialization.
var (
	// hasWideLoads reports whether four 64-bit loads per iteration pay off.
	// True on x86-64 with AVX2 and on arm64 with ASIMD.
	hasWideLoads = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
)

// wideThreshold is the minimum input length for the unrolled loop.
const wideThreshold = 32

// Features describes the scanning tier selected for this CPU.
// It is meant for diagnostics output.
func Features() string {
	if hasWideLoads {
		return "swar-32"
	}
	return "swar-8"
}
