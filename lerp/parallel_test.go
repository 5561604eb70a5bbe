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
	"math/rand"
	"testing"

	"github.com/ajroetker/go-lerp/workerpool"
)

// The parallel kernels split the index space across workers; because every
// path is bit-identical, the result must equal the serial kernel exactly.
func TestParallelKernelsMatchSerial(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	rng := rand.New(rand.NewSource(11))
	const n = 1037 // deliberately not a lane multiple

	start := fill64(rng, n, 1e6)
	end := fill64(rng, n, 1e6)
	weight := fill64(rng, n, 4)

	serial := make([]float64, n)
	parallel := make([]float64, n)

	ScalarWeight(serial, start, end, 0.625)
	ParallelScalarWeight(pool, parallel, start, end, 0.625)
	for i := 0; i < n; i++ {
		if !sameBits64(serial[i], parallel[i]) {
			t.Fatalf("scalar-weight: parallel[%d] = %v, serial = %v", i, parallel[i], serial[i])
		}
	}

	TensorWeight(serial, start, end, weight)
	ParallelTensorWeight(pool, parallel, start, end, weight)
	for i := 0; i < n; i++ {
		if !sameBits64(serial[i], parallel[i]) {
			t.Fatalf("tensor-weight: parallel[%d] = %v, serial = %v", i, parallel[i], serial[i])
		}
	}
}

func TestParallelComplexKernelsMatchSerial(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	rng := rand.New(rand.NewSource(12))
	const n = 513

	start := fillC128(rng, n, 1e6)
	end := fillC128(rng, n, 1e6)
	weight := fillC128(rng, n, 2)

	serial := make([]complex128, n)
	parallel := make([]complex128, n)

	ScalarWeightComplex(serial, start, end, complex(0.7, -0.1))
	ParallelScalarWeightComplex(pool, parallel, start, end, complex(0.7, -0.1))
	for i := 0; i < n; i++ {
		if !sameBitsC128(serial[i], parallel[i]) {
			t.Fatalf("scalar-weight: parallel[%d] = %v, serial = %v", i, parallel[i], serial[i])
		}
	}

	TensorWeightComplex(serial, start, end, weight)
	ParallelTensorWeightComplex(pool, parallel, start, end, weight)
	for i := 0; i < n; i++ {
		if !sameBitsC128(serial[i], parallel[i]) {
			t.Fatalf("tensor-weight: parallel[%d] = %v, serial = %v", i, parallel[i], serial[i])
		}
	}
}
