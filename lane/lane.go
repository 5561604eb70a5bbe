// Package lane provides the portable vector-register abstraction used by
// the lerp kernels. It follows the Highway design philosophy: kernels are
// written once against Vec/Mask and run at whatever register width the
// current dispatch level provides, with pure Go lane-by-lane semantics as
// the reference behavior.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lerp/lane"
//
//	a := lane.Load(data1)
//	b := lane.Load(data2)
//	d := lane.Sub(a, b)
//	lane.Store(d, output)
package lane

// Floats is a constraint for the floating-point element types the kernels
// support.
type Floats interface {
	~float32 | ~float64
}

// Complexes is a constraint for the complex floating-point element types.
// Complex lanes get their own vector and ops (CVec, SubC, ...) because the
// Floats ops rely on ordered comparison, which is not defined for complex
// values.
type Complexes interface {
	~complex64 | ~complex128
}

// Vec is a portable vector handle over floating-point lanes.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Floats] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the lane.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a comparison operation. It selects lanes
// in IfThenElse without branching.
//
// Mask instances should not be created directly; use comparison operations
// like LessThan.
type Mask[T Floats] struct {
	// bits stores which lanes are active (true).
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// CVec is a portable vector handle over complex lanes. A lane holds one
// complex value (both components).
//
// CVec instances should not be created directly; use LoadC, SetC, or ZeroC.
type CVec[T Complexes] struct {
	data []T
}

// NumLanes returns the number of complex lanes in this vector.
func (v CVec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
func (v CVec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
func (v CVec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// CMask represents the result of a real-domain comparison broadcast back
// to complex lanes, e.g. a squared-magnitude threshold test. One bit covers
// both components of a lane.
type CMask[T Complexes] struct {
	bits []bool
}

// NumLanes returns the number of complex lanes in this mask.
func (m CMask[T]) NumLanes() int {
	return len(m.bits)
}

// GetBit returns whether lane i is active.
func (m CMask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
