// Command lerpinfo prints the detected vector configuration and, with
// -bench, times the interpolation kernels on this machine.
//
// Usage:
//
//	lerpinfo [flags]
//
// Examples:
//
//	lerpinfo
//	lerpinfo -bench
//	lerpinfo -bench -size 1048576 -workers 8
//	LERP_NO_SIMD=1 lerpinfo -bench
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/ajroetker/go-lerp/lane"
	"github.com/ajroetker/go-lerp/lerp"
	"github.com/ajroetker/go-lerp/workerpool"
)

func main() {
	bench := flag.Bool("bench", false, "run kernel micro-benchmarks")
	size := flag.Int("size", 1<<20, "element count per benchmark run")
	iters := flag.Int("iters", 50, "benchmark iterations per kernel")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "worker count for parallel kernels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lerpinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the detected vector configuration and optionally times\n")
		fmt.Fprintf(os.Stderr, "the interpolation kernels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  LERP_NO_SIMD=1          force the scalar dispatch level\n")
		fmt.Fprintf(os.Stderr, "  LERP_NO_COMPLEX_ABS2=1  force the complex unpack fallback\n")
	}
	flag.Parse()

	printConfig()

	if *bench {
		fmt.Println()
		runBenchmarks(*size, *iters, *workers)
	}
}

func printConfig() {
	strategy := "direct (packed magnitude compare)"
	if !lane.HasComplexAbs2() {
		strategy = "fallback (unpack, scalar, repack)"
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Dispatch level\t%s\n", lane.CurrentName())
	fmt.Fprintf(tw, "Vector width\t%d bytes\n", lane.CurrentWidth())
	fmt.Fprintf(tw, "Lanes float32\t%d\n", lane.MaxLanes[float32]())
	fmt.Fprintf(tw, "Lanes float64\t%d\n", lane.MaxLanes[float64]())
	fmt.Fprintf(tw, "Lanes complex64\t%d\n", lane.MaxLanesC[complex64]())
	fmt.Fprintf(tw, "Lanes complex128\t%d\n", lane.MaxLanesC[complex128]())
	fmt.Fprintf(tw, "Complex strategy\t%s\n", strategy)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func runBenchmarks(size, iters, workers int) {
	if size <= 0 || iters <= 0 {
		fmt.Fprintf(os.Stderr, "error: -size and -iters must be positive\n")
		os.Exit(1)
	}

	pool := workerpool.New(workers)
	defer pool.Close()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tElements\tTime/op\tThroughput\n")
	fmt.Fprintf(tw, "------\t--------\t-------\t----------\n")

	reportRow(tw, "ScalarWeight float32", size, 4, benchFloats[float32](size, iters))
	reportRow(tw, "ScalarWeight float64", size, 8, benchFloats[float64](size, iters))
	reportRow(tw, "ScalarWeightComplex complex64", size, 8, benchComplex[complex64](size, iters))
	reportRow(tw, "ScalarWeightComplex complex128", size, 16, benchComplex[complex128](size, iters))

	name := fmt.Sprintf("ParallelScalarWeight float64 (%d workers)", pool.NumWorkers())
	reportRow(tw, name, size, 8, benchParallel(size, iters, pool))

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func reportRow(tw *tabwriter.Writer, name string, size, elemBytes int, perOp time.Duration) {
	bytesPerOp := float64(size) * float64(elemBytes) * 3 // two inputs, one output
	gbps := bytesPerOp / perOp.Seconds() / 1e9
	fmt.Fprintf(tw, "%s\t%d\t%v\t%.2f GB/s\n", name, size, perOp, gbps)
}

func benchFloats[T lane.Floats](size, iters int) time.Duration {
	start, end, dst := make([]T, size), make([]T, size), make([]T, size)
	for i := range start {
		start[i] = T(i)
		end[i] = T(size - i)
	}

	lerp.ScalarWeight(dst, start, end, T(0.25)) // warm up
	t0 := time.Now()
	for i := 0; i < iters; i++ {
		lerp.ScalarWeight(dst, start, end, T(0.25))
	}
	return time.Since(t0) / time.Duration(iters)
}

func benchComplex[T lane.Complexes](size, iters int) time.Duration {
	start, end, dst := make([]T, size), make([]T, size), make([]T, size)
	for i := range start {
		start[i] = T(complex(float64(i), 1))
		end[i] = T(complex(float64(size-i), -1))
	}
	w := T(complex(0.25, 0.1))

	lerp.ScalarWeightComplex(dst, start, end, w)
	t0 := time.Now()
	for i := 0; i < iters; i++ {
		lerp.ScalarWeightComplex(dst, start, end, w)
	}
	return time.Since(t0) / time.Duration(iters)
}

func benchParallel(size, iters int, pool *workerpool.Pool) time.Duration {
	start, end, dst := make([]float64, size), make([]float64, size), make([]float64, size)
	for i := range start {
		start[i] = float64(i)
		end[i] = float64(size - i)
	}

	lerp.ParallelScalarWeight(pool, dst, start, end, 0.75)
	t0 := time.Now()
	for i := 0; i < iters; i++ {
		lerp.ParallelScalarWeight(pool, dst, start, end, 0.75)
	}
	return time.Since(t0) / time.Duration(iters)
}
