package simd

import (
	"os"
	"runtime"
	"strings"
)

// EnvOverride is the environment variable consulted at startup to force an ISA.
const EnvOverride = "TENSOREVAL_SIMD"

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents pure Go implementation (no SIMD).
	Generic ISA = iota
	// NEON represents ARM64 NEON (128-bit SIMD, ASIMD).
	NEON
	// SVE2 represents ARM64 SVE2 (scalable vectors, 128-2048 bit).
	SVE2
	// AVX2 represents x86-64 AVX2 (256-bit SIMD with FMA).
	AVX2
	// AVX512 represents x86-64 AVX-512 (512-bit SIMD).
	AVX512

	numISA
)

var isaNames = [numISA]string{
	Generic: "generic",
	NEON:    "neon",
	SVE2:    "sve2",
	AVX2:    "avx2",
	AVX512:  "avx512",
}

// Detection preference per architecture, best first.
var preference = map[string][]ISA{
	"amd64": {AVX512, AVX2},
	"arm64": {SVE2, NEON},
}

// String returns the lower-case name of the ISA.
func (i ISA) String() string {
	if i < numISA {
		return isaNames[i]
	}
	return "unknown"
}

// ParseISA parses a name produced by String. Unknown names yield Generic
// and false.
func ParseISA(s string) (ISA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range isaNames {
		if name == s {
			return ISA(i), true //nolint:gosec // bounded by numISA
		}
	}
	return Generic, false
}

// Written once by the platform init.
var (
	available = [numISA]bool{Generic: true}
	activeISA ISA
)

// initCapabilities picks the active ISA once the platform init has filled
// in available.
func initCapabilities() {
	defer selectKernels()

	if isa, ok := ParseISA(os.Getenv(EnvOverride)); ok && available[isa] {
		activeISA = isa
		return
	}
	activeISA = selectBestISA(runtime.GOARCH, runtime.GOOS)
}

func selectBestISA(goarch, goos string) ISA {
	for _, isa := range preference[goarch] {
		// Apple's SVE2 support is emulated, NEON is faster there.
		if isa == SVE2 && goos == "darwin" {
			continue
		}
		if available[isa] {
			return isa
		}
	}
	return Generic
}

// IsAvailable reports whether the CPU supports isa.
func IsAvailable(isa ISA) bool {
	return isa < numISA && available[isa]
}

// Available lists the supported instruction sets in ISA order.
func Available() []ISA {
	out := make([]ISA, 0, numISA)
	for i, ok := range available {
		if ok {
			out = append(out, ISA(i)) //nolint:gosec // bounded by numISA
		}
	}
	return out
}

// ActiveISA returns the ISA the dispatching kernels are bound to.
func ActiveISA() ISA {
	return activeISA
}
