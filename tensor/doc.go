// Copyright 2025 QuantGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor types used by the quantization
// gradient engine.
//
// # Overview
//
// Tensors are flat row-major buffers with shape and runtime type
// information. This package provides:
//   - RawTensor: the low-level representation the engine computes on
//   - Tensor[T, B]: a generic type-safe view for host code
//   - Backend: the compute interface implemented by backend/cpu
//   - Shape, DataType, Device: core type definitions
//
// # Basic Usage
//
//	backend := cpu.New()
//	x := tensor.FromSlice(tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6}, backend)
//	y := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//
// All backend operations are pure: operands are never mutated and every
// result is freshly allocated, so tensors may be shared across
// concurrent backward passes.
package tensor
