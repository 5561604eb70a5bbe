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
	"github.com/ajroetker/go-lerp/lane"
	"github.com/ajroetker/go-lerp/loop"
	"github.com/ajroetker/go-lerp/workerpool"
)

// The kernels pair a per-element closure with a per-batch closure and hand
// both to the loop drivers. Scalar-weight kernels hoist the weight once
// and broadcast it into a constant batch reused across all iterations;
// tensor-weight kernels read a weight per element. All kernels operate
// over the minimum length of their slices and write only dst.

// ScalarWeight interpolates dst[i] = Lerp(start[i], end[i], weight) with a
// single weight applied to every element pair.
func ScalarWeight[T lane.Floats](dst, start, end []T, weight T) {
	weightVec := lane.Set(weight)
	loop.Apply2(dst, start, end,
		func(s, e T) T {
			return Lerp(s, e, weight)
		},
		func(s, e lane.Vec[T]) lane.Vec[T] {
			return lerpVec(s, e, weightVec)
		})
}

// TensorWeight interpolates dst[i] = Lerp(start[i], end[i], weight[i])
// with one weight per element.
func TensorWeight[T lane.Floats](dst, start, end, weight []T) {
	loop.Apply3(dst, start, end, weight,
		func(s, e, w T) T {
			return Lerp(s, e, w)
		},
		func(s, e, w lane.Vec[T]) lane.Vec[T] {
			return lerpVec(s, e, w)
		})
}

// ScalarWeightComplex is ScalarWeight for complex element types.
func ScalarWeightComplex[T lane.Complexes](dst, start, end []T, weight T) {
	weightVec := lane.SetC(weight)
	loop.ApplyC2(dst, start, end,
		func(s, e T) T {
			return LerpComplex(s, e, weight)
		},
		func(s, e lane.CVec[T]) lane.CVec[T] {
			return lerpCVec(s, e, weightVec)
		})
}

// TensorWeightComplex is TensorWeight for complex element types.
func TensorWeightComplex[T lane.Complexes](dst, start, end, weight []T) {
	loop.ApplyC3(dst, start, end, weight,
		func(s, e, w T) T {
			return LerpComplex(s, e, w)
		},
		func(s, e, w lane.CVec[T]) lane.CVec[T] {
			return lerpCVec(s, e, w)
		})
}

// ParallelScalarWeight runs ScalarWeight across the pool on disjoint
// subranges. Results are bit-identical to the serial kernel.
func ParallelScalarWeight[T lane.Floats](pool *workerpool.Pool, dst, start, end []T, weight T) {
	weightVec := lane.Set(weight)
	loop.ParallelApply2(pool, dst, start, end,
		func(s, e T) T {
			return Lerp(s, e, weight)
		},
		func(s, e lane.Vec[T]) lane.Vec[T] {
			return lerpVec(s, e, weightVec)
		})
}

// ParallelTensorWeight runs TensorWeight across the pool on disjoint
// subranges.
func ParallelTensorWeight[T lane.Floats](pool *workerpool.Pool, dst, start, end, weight []T) {
	loop.ParallelApply3(pool, dst, start, end, weight,
		func(s, e, w T) T {
			return Lerp(s, e, w)
		},
		func(s, e, w lane.Vec[T]) lane.Vec[T] {
			return lerpVec(s, e, w)
		})
}

// ParallelScalarWeightComplex runs ScalarWeightComplex across the pool.
func ParallelScalarWeightComplex[T lane.Complexes](pool *workerpool.Pool, dst, start, end []T, weight T) {
	weightVec := lane.SetC(weight)
	loop.ParallelApplyC2(pool, dst, start, end,
		func(s, e T) T {
			return LerpComplex(s, e, weight)
		},
		func(s, e lane.CVec[T]) lane.CVec[T] {
			return lerpCVec(s, e, weightVec)
		})
}

// ParallelTensorWeightComplex runs TensorWeightComplex across the pool.
func ParallelTensorWeightComplex[T lane.Complexes](pool *workerpool.Pool, dst, start, end, weight []T) {
	loop.ParallelApplyC3(pool, dst, start, end, weight,
		func(s, e, w T) T {
			return LerpComplex(s, e, w)
		},
		func(s, e, w lane.CVec[T]) lane.CVec[T] {
			return lerpCVec(s, e, w)
		})
}
