// Copyright 2025 QuantGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package quantsim

import (
	"github.com/qat-ml/quantgrad/internal/quantsim/grad"
	"github.com/qat-ml/quantgrad/tensor"
)

// GradientFn computes the gradients of one quantize op variant from a
// positional input slice. The returned slice is aligned to the OpInput
// contract, with nil marking inputs that take no gradient.
type GradientFn = grad.GradientFn

// Gradient looks up the backward function registered for an op kind.
func Gradient(kind OpKind) (GradientFn, bool) {
	return grad.Gradient(kind)
}

// QuantizeGrad is the backward pass of the per-tensor quantize op: the
// straight-through input gradient masked to [min, max]. When the target
// data type is not an integer grid the gradient passes through whole.
func QuantizeGrad(x, encodingMin, encodingMax *tensor.RawTensor, opMode OpMode, isIntDataType bool, g *tensor.RawTensor, b tensor.Backend) *tensor.RawTensor {
	return grad.QuantizeGrad(x, encodingMin, encodingMax, opMode, isIntDataType, g, b)
}

// QuantizeRecurrentParamGrad is the backward pass of the recurrent-weight
// quantize op.
func QuantizeRecurrentParamGrad(x, encodingMin, encodingMax *tensor.RawTensor, opMode OpMode, g *tensor.RawTensor, b tensor.Backend) *tensor.RawTensor {
	return grad.QuantizeRecurrentParamGrad(x, encodingMin, encodingMax, opMode, g, b)
}

// RangeLearningGrad is the backward pass of the per-tensor range-learning
// quantize op. It returns the input gradient and the Float64 gradients of
// the scalar encoding boundaries.
func RangeLearningGrad(x *tensor.RawTensor, bitWidth int, opMode OpMode, encodingMin, encodingMax *tensor.RawTensor, useSymmetric bool, g *tensor.RawTensor, b tensor.Backend) (dx, dMin, dMax *tensor.RawTensor) {
	return grad.RangeLearningGrad(x, bitWidth, opMode, encodingMin, encodingMax, useSymmetric, g, b)
}

// RangeLearningPerChannelGrad is the backward pass of the per-channel
// range-learning quantize op. Encodings hold one boundary pair per
// channel; depthwise weights fold their trailing two axes into the
// channel axis first.
func RangeLearningPerChannelGrad(x *tensor.RawTensor, bitWidth int, opMode OpMode, encodingMin, encodingMax *tensor.RawTensor, useSymmetric, isIntDataType bool, axisHandling AxisHandling, g *tensor.RawTensor, b tensor.Backend) (dx, dMin, dMax *tensor.RawTensor) {
	return grad.RangeLearningPerChannelGrad(x, bitWidth, opMode, encodingMin, encodingMax, useSymmetric, isIntDataType, axisHandling, g, b)
}
