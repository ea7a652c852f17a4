// Copyright 2025 QuantGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package quantsim provides the public API of the fake-quantization
// gradient engine.
//
// # Overview
//
// The engine computes the backward pass of quantization-simulation ops
// for quantization-aware training. It implements the straight-through
// estimator for the input gradient and closed-form range-learning
// gradients for the encoding boundaries, on symmetric and asymmetric
// grids, per tensor or per channel.
//
// # Basic Usage
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{0.3, 1.7, -0.4}, tensor.Shape{3}, backend)
//	grad, _ := tensor.FromSlice([]float32{1, 1, 1}, tensor.Shape{3}, backend)
//	encMin := tensor.Scalar[float32](-1, backend)
//	encMax := tensor.Scalar[float32](1, backend)
//
//	dx, dMin, dMax := quantsim.RangeLearningGrad(
//		x.Raw(), 8, quantsim.OpModeQuantDequant,
//		encMin.Raw(), encMax.Raw(), false, grad.Raw(), backend)
//
// Hosts integrating with a graph executor dispatch positionally instead,
// through Gradient and the OpInput contract.
package quantsim
