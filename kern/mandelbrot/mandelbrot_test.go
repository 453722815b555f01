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

package mandelbrot

import (
	"slices"
	"testing"

	"github.com/ajroetker/go-kernels/kern/workerpool"
)

func defaultParams() Params {
	return Params{Width: 64, Height: 64, Size: 2, MaxIter: 100}
}

func TestRenderInteriorPoint(t *testing.T) {
	// The origin is in the set and must hit MaxIter.
	p := Params{Width: 3, Height: 3, Size: 0.001, MaxIter: 50}
	img, err := Render(nil, p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.At(1, 1); got != 50 {
		t.Errorf("center pixel iterations = %d, want 50", got)
	}
}

func TestRenderEscapedPoint(t *testing.T) {
	// A window centered far outside the set escapes immediately everywhere.
	p := Params{Width: 4, Height: 4, Size: 0.1, MaxIter: 100, CenterReal: 10}
	img, err := Render(nil, p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i, k := range img.Iters {
		if k != 1 {
			t.Errorf("Iters[%d] = %d, want 1", i, k)
		}
	}
}

func TestRenderCountsInRange(t *testing.T) {
	p := defaultParams()
	img, err := Render(nil, p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i, k := range img.Iters {
		if k < 1 || k > int32(p.MaxIter) {
			t.Errorf("Iters[%d] = %d, out of [1, %d]", i, k, p.MaxIter)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	// Sequential, row-parallel, and point-parallel renders must agree
	// pixel for pixel.
	p := defaultParams()
	pool := workerpool.New(4)
	defer pool.Close()

	seq, err := Render(nil, p)
	if err != nil {
		t.Fatalf("Render(nil): %v", err)
	}
	rows, err := Render(pool, p)
	if err != nil {
		t.Fatalf("Render(pool): %v", err)
	}
	points, err := RenderPoints(pool, p)
	if err != nil {
		t.Fatalf("RenderPoints: %v", err)
	}

	if !slices.Equal(seq.Iters, rows.Iters) {
		t.Error("row-parallel render differs from sequential")
	}
	if !slices.Equal(seq.Iters, points.Iters) {
		t.Error("point-parallel render differs from sequential")
	}
}

func TestRenderHistogram(t *testing.T) {
	p := defaultParams()
	pool := workerpool.New(4)
	defer pool.Close()

	img, hist, err := RenderHistogram(pool, p)
	if err != nil {
		t.Fatalf("RenderHistogram: %v", err)
	}

	if len(hist) != p.MaxIter {
		t.Fatalf("histogram has %d buckets, want %d", len(hist), p.MaxIter)
	}

	var mass int64
	for _, c := range hist {
		mass += c
	}
	if want := int64(p.Width * p.Height); mass != want {
		t.Errorf("histogram mass = %d, want %d", mass, want)
	}

	// The histogram must agree with the image it was built from.
	recount := make([]int64, p.MaxIter)
	for _, k := range img.Iters {
		recount[k-1]++
	}
	if !slices.Equal(hist, recount) {
		t.Error("histogram does not match image iteration counts")
	}
}

func TestParamsValidate(t *testing.T) {
	bad := []Params{
		{Width: 0, Height: 8, Size: 2, MaxIter: 10},
		{Width: 8, Height: -1, Size: 2, MaxIter: 10},
		{Width: 8, Height: 8, Size: 2, MaxIter: 0},
		{Width: 8, Height: 8, Size: 0, MaxIter: 10},
	}
	for i, p := range bad {
		if _, err := Render(nil, p); err == nil {
			t.Errorf("case %d: Render accepted invalid params %+v", i, p)
		}
	}
}
