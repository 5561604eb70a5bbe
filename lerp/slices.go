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

package lerp

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned when the element type of the inputs
	// is not a floating-point or complex floating-point type.
	ErrUnsupportedType = errors.New("lerp: unsupported element type")

	// ErrTypeMismatch is returned when the inputs do not share one
	// element type, or the weight cannot be converted to it.
	ErrTypeMismatch = errors.New("lerp: mismatched element types")
)

// Slices dispatches on the dynamic element type of dst and interpolates
// dst[i] = lerp(start[i], end[i], w). dst, start, and end must be slices
// of one element type drawn from float32, float64, complex64, or
// complex128. weight is either a single value convertible to that element
// type or a slice of it (tensor weight).
//
// Any other element type fails with ErrUnsupportedType before any output
// is written; mixed input types fail with ErrTypeMismatch. Once dispatch
// succeeds the computation cannot fail.
func Slices(dst, start, end, weight any) error {
	switch d := dst.(type) {
	case []float32:
		s, e, err := sameType[float32](start, end)
		if err != nil {
			return err
		}
		switch w := weight.(type) {
		case float32:
			ScalarWeight(d, s, e, w)
		case float64:
			ScalarWeight(d, s, e, float32(w))
		case []float32:
			TensorWeight(d, s, e, w)
		default:
			return weightError(d, weight)
		}
	case []float64:
		s, e, err := sameType[float64](start, end)
		if err != nil {
			return err
		}
		switch w := weight.(type) {
		case float64:
			ScalarWeight(d, s, e, w)
		case float32:
			ScalarWeight(d, s, e, float64(w))
		case []float64:
			TensorWeight(d, s, e, w)
		default:
			return weightError(d, weight)
		}
	case []complex64:
		s, e, err := sameType[complex64](start, end)
		if err != nil {
			return err
		}
		switch w := weight.(type) {
		case complex64:
			ScalarWeightComplex(d, s, e, w)
		case complex128:
			ScalarWeightComplex(d, s, e, complex64(w))
		case float64:
			ScalarWeightComplex(d, s, e, complex(float32(w), 0))
		case []complex64:
			TensorWeightComplex(d, s, e, w)
		default:
			return weightError(d, weight)
		}
	case []complex128:
		s, e, err := sameType[complex128](start, end)
		if err != nil {
			return err
		}
		switch w := weight.(type) {
		case complex128:
			ScalarWeightComplex(d, s, e, w)
		case complex64:
			ScalarWeightComplex(d, s, e, complex128(w))
		case float64:
			ScalarWeightComplex(d, s, e, complex(w, 0))
		case []complex128:
			TensorWeightComplex(d, s, e, w)
		default:
			return weightError(d, weight)
		}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, dst)
	}
	return nil
}

// sameType asserts that start and end are slices of the element type
// selected by dst's dispatch.
func sameType[T any](start, end any) ([]T, []T, error) {
	s, ok := start.([]T)
	if !ok {
		return nil, nil, fmt.Errorf("%w: start is %T", ErrTypeMismatch, start)
	}
	e, ok := end.([]T)
	if !ok {
		return nil, nil, fmt.Errorf("%w: end is %T", ErrTypeMismatch, end)
	}
	return s, e, nil
}

func weightError(dst, weight any) error {
	return fmt.Errorf("%w: weight %T for %T elements", ErrTypeMismatch, weight, dst)
}
