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

// Package lerp computes linear interpolation between two same-shaped
// numeric slices, with a weight that is either a single scalar or an
// element-wise slice.
//
// The naive formula start + weight*(end-start) loses precision when weight
// is near 1 and start, end are far apart: the scaled difference cancels
// against start. The kernels here classify each weight by magnitude and
// anchor the interpolation at whichever endpoint keeps the multiplied
// difference small:
//
//	|weight| < 0.5:  start + weight*(end-start)
//	otherwise:       end + (weight-1)*(end-start)
//
// Both branches are algebraically the same value; the second computes it
// with a small coefficient when weight is large. A fused multiply-add
// performs the scale-and-accumulate in one rounding step, so the batch
// path and the per-element path produce bit-identical results.
package lerp

import (
	"math"

	"github.com/ajroetker/go-lerp/lane"
)

// weightSmall reports whether |w| < 0.5, selecting the start-anchored
// branch. NaN weights compare false and take the end-anchored branch,
// which propagates the NaN unchanged.
func weightSmall[T lane.Floats](w T) bool {
	if w < 0 {
		w = -w
	}
	return w < 0.5
}

// fma computes a*b + c with a single rounding step, matching lane.FMA
// lane-for-lane: float32 computes in float64 and rounds once at the end.
func fma[T lane.Floats](a, b, c T) T {
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// Lerp returns the linear interpolation of start and end at weight,
// start + weight*(end-start), evaluated through the anchored form.
// Weights outside [0, 1] extrapolate.
func Lerp[T lane.Floats](start, end, weight T) T {
	if weightSmall(weight) {
		return fma(weight, end-start, start)
	}
	return fma(weight-1, end-start, end)
}

// isWeightSmall computes the batch form of weightSmall: a mask selecting
// the lanes whose weight magnitude is below 0.5.
func isWeightSmall[T lane.Floats](weight lane.Vec[T]) lane.Mask[T] {
	return lane.LessThan(lane.Abs(weight), lane.Set(T(0.5)))
}

// lerpVec computes Lerp for a whole batch: blend the coefficient and the
// anchor by the weight-magnitude mask, then one fused multiply-add.
func lerpVec[T lane.Floats](start, end, weight lane.Vec[T]) lane.Vec[T] {
	mask := isWeightSmall(weight)
	coeff := lane.IfThenElse(mask, weight, lane.Sub(weight, lane.Set(T(1))))
	base := lane.IfThenElse(mask, start, end)
	return lane.FMA(coeff, lane.Sub(end, start), base)
}
