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

// Package kern holds the shared numeric type constraints for the kernel
// packages in this repository.
//
// Each kernel under kern/ is an independent teaching exercise in
// shared-memory parallelism: a recursive fork-join multisort
// (kern/multisort), an escape-time Mandelbrot renderer (kern/mandelbrot),
// and an iterative Jacobi stencil solver (kern/solver). The kernels share
// no state; they share only these constraints and the scheduling
// primitives in kern/taskgroup and kern/workerpool.
package kern

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Scalars is a constraint for all element types the kernels operate on.
type Scalars interface {
	Floats | Integers
}
