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

// Package mandelbrot computes escape-time iteration counts for the
// Mandelbrot set over a pixel grid. Every pixel is independent, so the grid
// parallelizes trivially; the package offers a row-batched decomposition
// (cheap per-item cost, batched stealing) and a per-point decomposition
// (maximal balancing for zoomed regions where neighboring points diverge at
// very different depths).
package mandelbrot

import (
	"fmt"
	"sync/atomic"

	"github.com/ajroetker/go-kernels/kern/workerpool"
)

// escapeRadiusSq is |z|^2 at which iteration stops; points are examined in
// the plane [-2, 2] x [-2, 2], so the escape radius is 2.
const escapeRadiusSq = 4.0

// rowBatch is the number of image rows handed to a worker per steal.
const rowBatch = 4

// Params describes the region and resolution to compute: a square of side
// 2*Size centered at (CenterReal, CenterImag), sampled on a Width x Height
// grid, iterating at most MaxIter times per point.
type Params struct {
	Width, Height          int
	CenterReal, CenterImag float64
	Size                   float64
	MaxIter                int
}

// Validate reports the first parameter error, or nil.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("mandelbrot: window %dx%d is not positive", p.Width, p.Height)
	}
	if p.MaxIter <= 0 {
		return fmt.Errorf("mandelbrot: MaxIter %d is not positive", p.MaxIter)
	}
	if p.Size <= 0 {
		return fmt.Errorf("mandelbrot: Size %g is not positive", p.Size)
	}
	return nil
}

// Image holds per-pixel iteration counts in row-major order. Counts are in
// [1, MaxIter]; a pixel that never escapes holds MaxIter.
type Image struct {
	Width, Height int
	Iters         []int32
}

// At returns the iteration count at (row, col).
func (img *Image) At(row, col int) int32 {
	return img.Iters[row*img.Width+col]
}

// Render computes the image with a row-batched decomposition: workers steal
// batches of rows from a shared counter. A nil pool computes sequentially.
func Render(pool *workerpool.Pool, p Params) (*Image, error) {
	img, err := newImage(p)
	if err != nil {
		return nil, err
	}

	pool.ParallelForAtomicBatched(p.Height, rowBatch, func(start, end int) {
		for row := start; row < end; row++ {
			renderRow(img, p, row, nil)
		}
	})
	return img, nil
}

// RenderPoints computes the image with a per-point decomposition: workers
// steal individual pixels. The output is identical to Render; only the task
// granularity differs.
func RenderPoints(pool *workerpool.Pool, p Params) (*Image, error) {
	img, err := newImage(p)
	if err != nil {
		return nil, err
	}

	pool.ParallelForAtomic(p.Width*p.Height, func(i int) {
		row, col := i/p.Width, i%p.Width
		img.Iters[i] = iterate(p, row, col)
	})
	return img, nil
}

// RenderHistogram is Render plus an iteration-count histogram accumulated
// during the parallel sweep. hist[k-1] counts the pixels that took exactly k
// iterations; pixels in the same bucket may be computed by different
// workers, so buckets are incremented atomically.
func RenderHistogram(pool *workerpool.Pool, p Params) (*Image, []int64, error) {
	img, err := newImage(p)
	if err != nil {
		return nil, nil, err
	}

	hist := make([]int64, p.MaxIter)
	pool.ParallelForAtomicBatched(p.Height, rowBatch, func(start, end int) {
		for row := start; row < end; row++ {
			renderRow(img, p, row, hist)
		}
	})
	return img, hist, nil
}

func newImage(p Params) (*Image, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Image{
		Width:  p.Width,
		Height: p.Height,
		Iters:  make([]int32, p.Width*p.Height),
	}, nil
}

func renderRow(img *Image, p Params, row int, hist []int64) {
	base := row * p.Width
	for col := 0; col < p.Width; col++ {
		k := iterate(p, row, col)
		img.Iters[base+col] = k
		if hist != nil {
			atomic.AddInt64(&hist[k-1], 1)
		}
	}
}

// iterate runs z <- z^2 + c from z = 0 until divergence or MaxIter, and
// returns the iteration count. Rows are flipped so larger imaginary parts
// appear at the top of the image.
func iterate(p Params, row, col int) int32 {
	scaleReal := 2 * p.Size / float64(p.Width)
	scaleImag := 2 * p.Size / float64(p.Height)
	cReal := (p.CenterReal - p.Size) + float64(col)*scaleReal
	cImag := (p.CenterImag - p.Size) + float64(p.Height-1-row)*scaleImag

	var zReal, zImag float64
	var k int32
	for {
		t := zReal*zReal - zImag*zImag + cReal
		zImag = 2*zReal*zImag + cImag
		zReal = t
		k++
		if zReal*zReal+zImag*zImag >= escapeRadiusSq || k >= int32(p.MaxIter) {
			return k
		}
	}
}
