//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	available[NEON] = cpu.ARM64.HasASIMD
	available[SVE2] = cpu.ARM64.HasSVE2
	initCapabilities()
}
