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

// Package loop drives element-wise kernels over slices. A kernel supplies
// two callables: a per-element function and a per-batch function operating
// on a full register width of lanes. The drivers walk the output in memory
// order and invoke exactly one of the two per position: the batch function
// for full-width runs, the element function for the remainder. Kernels must
// guarantee the two agree bit-for-bit at every position.
//
// All drivers operate over the minimum length of the supplied slices and
// write only to dst, so they are safe to run concurrently on disjoint
// subranges.
package loop

import (
	"github.com/ajroetker/go-lerp/lane"
	"github.com/ajroetker/go-lerp/workerpool"
)

// Apply2 computes dst[i] = f(a[i], b[i]) using batch for full-width runs
// and elem for the tail.
func Apply2[T lane.Floats](dst, a, b []T,
	elem func(a, b T) T,
	batch func(a, b lane.Vec[T]) lane.Vec[T],
) {
	n := min(len(dst), min(len(a), len(b)))
	lanes := lane.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := lane.Load(a[i:])
		vb := lane.Load(b[i:])
		lane.Store(batch(va, vb), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = elem(a[i], b[i])
	}
}

// Apply3 computes dst[i] = f(a[i], b[i], c[i]) using batch for full-width
// runs and elem for the tail.
func Apply3[T lane.Floats](dst, a, b, c []T,
	elem func(a, b, c T) T,
	batch func(a, b, c lane.Vec[T]) lane.Vec[T],
) {
	n := min(min(len(dst), len(a)), min(len(b), len(c)))
	lanes := lane.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := lane.Load(a[i:])
		vb := lane.Load(b[i:])
		vc := lane.Load(c[i:])
		lane.Store(batch(va, vb, vc), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = elem(a[i], b[i], c[i])
	}
}

// ApplyC2 is Apply2 over complex lanes.
func ApplyC2[T lane.Complexes](dst, a, b []T,
	elem func(a, b T) T,
	batch func(a, b lane.CVec[T]) lane.CVec[T],
) {
	n := min(len(dst), min(len(a), len(b)))
	lanes := lane.MaxLanesC[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := lane.LoadC(a[i:])
		vb := lane.LoadC(b[i:])
		lane.StoreC(batch(va, vb), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = elem(a[i], b[i])
	}
}

// ApplyC3 is Apply3 over complex lanes.
func ApplyC3[T lane.Complexes](dst, a, b, c []T,
	elem func(a, b, c T) T,
	batch func(a, b, c lane.CVec[T]) lane.CVec[T],
) {
	n := min(min(len(dst), len(a)), min(len(b), len(c)))
	lanes := lane.MaxLanesC[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := lane.LoadC(a[i:])
		vb := lane.LoadC(b[i:])
		vc := lane.LoadC(c[i:])
		lane.StoreC(batch(va, vb, vc), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = elem(a[i], b[i], c[i])
	}
}

// alignedChunk sizes pool chunks as a lane multiple, so only the final
// chunk carries a tail.
func alignedChunk(n, lanes, workers int) int {
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers
	if lanes > 1 {
		chunk = ((chunk + lanes - 1) / lanes) * lanes
	}
	return chunk
}

// ParallelApply2 runs Apply2 across the pool, splitting the index space
// into lane-aligned chunks. The kernel callables must be pure: they are
// invoked concurrently on disjoint subranges.
func ParallelApply2[T lane.Floats](pool *workerpool.Pool, dst, a, b []T,
	elem func(a, b T) T,
	batch func(a, b lane.Vec[T]) lane.Vec[T],
) {
	n := min(len(dst), min(len(a), len(b)))
	chunk := alignedChunk(n, lane.MaxLanes[T](), pool.NumWorkers())
	pool.ParallelForAtomicBatched(n, chunk, func(start, end int) {
		Apply2(dst[start:end], a[start:end], b[start:end], elem, batch)
	})
}

// ParallelApply3 runs Apply3 across the pool, splitting the index space
// into lane-aligned chunks.
func ParallelApply3[T lane.Floats](pool *workerpool.Pool, dst, a, b, c []T,
	elem func(a, b, c T) T,
	batch func(a, b, c lane.Vec[T]) lane.Vec[T],
) {
	n := min(min(len(dst), len(a)), min(len(b), len(c)))
	chunk := alignedChunk(n, lane.MaxLanes[T](), pool.NumWorkers())
	pool.ParallelForAtomicBatched(n, chunk, func(start, end int) {
		Apply3(dst[start:end], a[start:end], b[start:end], c[start:end], elem, batch)
	})
}

// ParallelApplyC2 runs ApplyC2 across the pool.
func ParallelApplyC2[T lane.Complexes](pool *workerpool.Pool, dst, a, b []T,
	elem func(a, b T) T,
	batch func(a, b lane.CVec[T]) lane.CVec[T],
) {
	n := min(len(dst), min(len(a), len(b)))
	chunk := alignedChunk(n, lane.MaxLanesC[T](), pool.NumWorkers())
	pool.ParallelForAtomicBatched(n, chunk, func(start, end int) {
		ApplyC2(dst[start:end], a[start:end], b[start:end], elem, batch)
	})
}

// ParallelApplyC3 runs ApplyC3 across the pool.
func ParallelApplyC3[T lane.Complexes](pool *workerpool.Pool, dst, a, b, c []T,
	elem func(a, b, c T) T,
	batch func(a, b, c lane.CVec[T]) lane.CVec[T],
) {
	n := min(min(len(dst), len(a)), min(len(b), len(c)))
	chunk := alignedChunk(n, lane.MaxLanesC[T](), pool.NumWorkers())
	pool.ParallelForAtomicBatched(n, chunk, func(start, end int) {
		ApplyC3(dst[start:end], a[start:end], b[start:end], c[start:end], elem, batch)
	})
}
