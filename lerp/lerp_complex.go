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

import "github.com/ajroetker/go-lerp/lane"

// Complex weights are classified by squared magnitude: |w|² < 0.25 is the
// same cut as |w| < 0.5 without a square root, and it stays in the
// real-component domain where comparison is defined. When the vectorized
// squared-magnitude primitive is unavailable (lane.HasComplexAbs2 is
// false), the batch path unpacks to scalars instead; the two strategies
// are bit-identical because every component operation rounds the same way.

// maxComplexLanes is the widest complex batch any dispatch level produces:
// 64-byte registers hold 8 complex64 lanes.
const maxComplexLanes = 8

// weightSmallComplex reports whether |w|² < 0.25, computed in the
// component precision of T.
func weightSmallComplex[T lane.Complexes](w T) bool {
	switch z := any(w).(type) {
	case complex64:
		re, im := real(z), imag(z)
		return re*re+im*im < 0.25
	case complex128:
		re, im := real(z), imag(z)
		return re*re+im*im < 0.25
	default:
		return false
	}
}

// LerpComplex returns the linear interpolation of start and end at weight
// for complex element types, through the same anchored form as Lerp.
// Complex arithmetic has no fused multiply-add; each component rounds per
// operation, identically in the scalar and batch paths.
func LerpComplex[T lane.Complexes](start, end, weight T) T {
	coeff, base := weight, start
	if !weightSmallComplex(weight) {
		coeff, base = weight-1, end
	}
	return coeff*(end-start) + base
}

// lerpCVecDirect computes LerpComplex for a whole batch using the
// squared-magnitude comparison primitive. Requires lane.HasComplexAbs2.
func lerpCVecDirect[T lane.Complexes](start, end, weight lane.CVec[T]) lane.CVec[T] {
	mask := lane.Abs2Less(weight, 0.25)
	coeff := lane.IfThenElseC(mask, weight, lane.SubC(weight, lane.SetC(T(1))))
	base := lane.IfThenElseC(mask, start, end)
	return lane.MulAddC(coeff, lane.SubC(end, start), base)
}

// lerpCVecFallback unpacks the batch to scalars, applies LerpComplex per
// lane, and repacks. Buffers are fixed-size and stack-resident.
func lerpCVecFallback[T lane.Complexes](start, end, weight lane.CVec[T]) lane.CVec[T] {
	var startArr, endArr, weightArr, resultArr [maxComplexLanes]T

	n := start.NumLanes()
	start.Store(startArr[:n])
	end.Store(endArr[:n])
	weight.Store(weightArr[:n])

	for i := 0; i < n; i++ {
		resultArr[i] = LerpComplex(startArr[i], endArr[i], weightArr[i])
	}
	return lane.LoadC(resultArr[:n])
}

// lerpCVec is the batch formula for complex lanes. The strategy is fixed
// for the life of the process by lane.HasComplexAbs2.
func lerpCVec[T lane.Complexes](start, end, weight lane.CVec[T]) lane.CVec[T] {
	if lane.HasComplexAbs2() {
		return lerpCVecDirect(start, end, weight)
	}
	return lerpCVecFallback(start, end, weight)
}
