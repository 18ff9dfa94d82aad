//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	// The vector kernels rely on FMA alongside AVX2.
	available[AVX2] = cpu.X86.HasAVX2 && cpu.X86.HasFMA
	available[AVX512] = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
	initCapabilities()
}
