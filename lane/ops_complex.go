// Copyright 2025 go-lerp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lane

// Complex lane operations. These mirror the float ops but work on CVec.
// Ordered comparison is not defined for complex values, so the only
// comparison offered is Abs2Less, which compares squared magnitudes in the
// real-component domain and broadcasts the result back into a complex-lane
// mask. Abs2Less is the capability-gated primitive: callers must check
// HasComplexAbs2 before relying on a vectorized path built around it.

// LoadC creates a complex vector by loading data from a slice.
func LoadC[T Complexes](src []T) CVec[T] {
	n := min(len(src), MaxLanesC[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return CVec[T]{data: data}
}

// StoreC writes a complex vector's data to a slice.
func StoreC[T Complexes](v CVec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// SetC creates a complex vector with all lanes set to the same value.
func SetC[T Complexes](value T) CVec[T] {
	n := MaxLanesC[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return CVec[T]{data: data}
}

// ZeroC creates a complex vector with all lanes set to zero.
func ZeroC[T Complexes]() CVec[T] {
	n := MaxLanesC[T]()
	data := make([]T, n)
	return CVec[T]{data: data}
}

// SubC performs element-wise complex subtraction.
func SubC[T Complexes](a, b CVec[T]) CVec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return CVec[T]{data: result}
}

// MulAddC computes a*b + c per lane in complex arithmetic. Each component
// is rounded in the lane's component precision, exactly as the scalar
// expression a*b + c would round.
func MulAddC[T Complexes](a, b, c CVec[T]) CVec[T] {
	n := min(len(c.data), min(len(b.data), len(a.data)))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return CVec[T]{data: result}
}

// Abs2Less compares each lane's squared magnitude re²+im² against limit.
// The squared magnitude is computed in the lane's component precision
// (float32 for complex64, float64 for complex128) before the widened
// comparison, so the result agrees bit-for-bit with the equivalent scalar
// test. NaN components make the comparison false.
//
// Availability of a vectorized equivalent is reported by HasComplexAbs2;
// callers that find it unavailable must fall back to per-lane scalar code.
func Abs2Less[T Complexes](v CVec[T], limit float64) CMask[T] {
	bits := make([]bool, len(v.data))
	for i, z := range v.data {
		switch c := any(z).(type) {
		case complex64:
			re, im := real(c), imag(c)
			bits[i] = re*re+im*im < float32(limit)
		case complex128:
			re, im := real(c), imag(c)
			bits[i] = re*re+im*im < limit
		}
	}
	return CMask[T]{bits: bits}
}

// IfThenElseC performs conditional selection on complex lanes: a where
// mask is true, b otherwise. Both components of a lane follow the lane's
// mask bit.
func IfThenElseC[T Complexes](mask CMask[T], a, b CVec[T]) CVec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return CVec[T]{data: result}
}
