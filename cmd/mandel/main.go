// Copyright 2026 go-kernels Authors
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

// Command mandel computes the Mandelbrot set over a square window and
// reports timing, with optional per-point decomposition and an optional
// iteration-count histogram.
//
// Usage:
//
//	mandel [-i maxiter] [-w windowsize] [-x x0] [-y y0] [-s size] [-hist] [-points]
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ajroetker/go-kernels/kern/mandelbrot"
	"github.com/ajroetker/go-kernels/kern/workerpool"
)

var (
	maxiter   = flag.Int("i", 1000, "maximum number of iterations at each point")
	window    = flag.Int("w", 800, "size of the square image to compute, in pixels")
	centerX   = flag.Float64("x", 0, "real part of the window center")
	centerY   = flag.Float64("y", 0, "imaginary part of the window center")
	size      = flag.Float64("s", 2, "half-side of the square to compute")
	histogram = flag.Bool("hist", false, "compute the histogram of iteration counts")
	byPoint   = flag.Bool("points", false, "decompose per point instead of per row batch")
)

func main() {
	flag.Parse()

	p := mandelbrot.Params{
		Width:      *window,
		Height:     *window,
		CenterReal: *centerX,
		CenterImag: *centerY,
		Size:       *size,
		MaxIter:    *maxiter,
	}

	fmt.Printf("Computation of the Mandelbrot set with:\n")
	fmt.Printf("    center = (%g, %g)\n    size = %g\n    maximum iterations = %d\n",
		p.CenterReal, p.CenterImag, p.Size, p.MaxIter)

	pool := workerpool.New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	var (
		img  *mandelbrot.Image
		hist []int64
		err  error
	)
	start := time.Now()
	switch {
	case *histogram:
		img, hist, err = mandelbrot.RenderHistogram(pool, p)
	case *byPoint:
		img, err = mandelbrot.RenderPoints(pool, p)
	default:
		img, err = mandelbrot.Render(pool, p)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mandel: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Total execution time: %.6fs\n", time.Since(start).Seconds())

	inSet := 0
	for _, k := range img.Iters {
		if k == int32(p.MaxIter) {
			inSet++
		}
	}
	fmt.Printf("Mandelbrot set: computed (%d of %d points reached maxiter)\n",
		inSet, len(img.Iters))

	if hist != nil {
		var mass int64
		for _, c := range hist {
			mass += c
		}
		fmt.Printf("Histogram for Mandelbrot set: computed (%d buckets, %d samples)\n",
			len(hist), mass)
	}
}
