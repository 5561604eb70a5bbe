package lane

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the register width class selected for this
// process. The pure Go ops emulate whatever width is selected; the level
// mainly controls batch sizing and reports what the hardware offers.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, 128-bit emulated batches.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2-class hardware (128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2-class hardware (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512-class hardware (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON

	// DispatchSVE indicates ARM SVE (scalable vector).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the batch width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current level.
// Set by init() in dispatch_*.go files.
var currentName string

// hasComplexAbs2 reports whether the vectorized squared-magnitude
// primitive (Abs2Less) may be used. Decided once at process start; the
// LERP_NO_COMPLEX_ABS2 environment variable forces it off so the scalar
// fallback path can be exercised on any machine.
var hasComplexAbs2 bool

func init() {
	hasComplexAbs2 = !envBool("LERP_NO_COMPLEX_ABS2")
}

// CurrentLevel returns the register width class being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the batch width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// HasComplexAbs2 reports whether the squared-magnitude primitive is
// available for complex vectors. When false, vectorized complex kernels
// must unpack to scalars instead of using Abs2Less.
func HasComplexAbs2() bool {
	return hasComplexAbs2
}

// NoSimdEnv checks if the LERP_NO_SIMD environment variable is set.
// When set, batches shrink to the 128-bit scalar baseline regardless of
// CPU capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	return envBool("LERP_NO_SIMD")
}

func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of float lanes per batch for type T at the
// current width.
//
// For example, with AVX2 (32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Floats]() int {
	var dummy T
	return currentWidth / int(unsafe.Sizeof(dummy))
}

// MaxLanesC returns the number of complex lanes per batch for type T at
// the current width. A complex lane occupies both components, so
// complex64 gets half the lanes of float32.
func MaxLanesC[T Complexes]() int {
	var dummy T
	return currentWidth / int(unsafe.Sizeof(dummy))
}
