// Copyright 2025 QuantGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU compute backend for the gradient engine.
package cpu

import (
	internalcpu "github.com/qat-ml/quantgrad/internal/backend/cpu"
	"github.com/qat-ml/quantgrad/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go implementations of all tensor
// operations, with large element-wise kernels chunked across a worker
// pool.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend with parallel kernels enabled.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU backend that runs every kernel on the
// calling goroutine. Useful for benchmarking and deterministic profiles.
func NewSequential() *Backend {
	return internalcpu.NewSequential()
}
