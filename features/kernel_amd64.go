//go:build !noasm && amd64

package features

import "github.com/klauspost/cpuid/v2"

func init() {
	// AVX2 class cores have the execution ports to overlap four independent
	// scalar accumulators; the loop itself is plain Go.
	if cpuid.CPU.Supports(cpuid.AVX2, cpuid.FMA3) {
		dot = dotUnrolled
		kernel = "unrolled4"
	}
}
