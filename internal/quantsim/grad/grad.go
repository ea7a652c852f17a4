package grad

import (
	"github.com/qat-ml/quantgrad/internal/quantsim"
	"github.com/qat-ml/quantgrad/internal/tensor"
)

// QuantizeGrad is the backward pass of the per-tensor quantize op. The op
// learns no range, so only the input gradient exists: the straight-through
// mask over [min, max]. When the target data type is not an integer grid
// the forward pass was an identity and the gradient passes through whole.
func QuantizeGrad(x, encodingMin, encodingMax *tensor.RawTensor, opMode quantsim.OpMode, isIntDataType bool, grad *tensor.RawTensor, b tensor.Backend) *tensor.RawTensor {
	if !isIntDataType {
		return grad.Clone()
	}
	return straightThroughDx(x, encodingMin, encodingMax, opMode, grad, b)
}

// QuantizeRecurrentParamGrad is the backward pass of the recurrent-weight
// quantize op. It shares the straight-through mask with QuantizeGrad;
// recurrent weights are always quantized to an integer grid, so there is
// no data-type gate.
func QuantizeRecurrentParamGrad(x, encodingMin, encodingMax *tensor.RawTensor, opMode quantsim.OpMode, grad *tensor.RawTensor, b tensor.Backend) *tensor.RawTensor {
	return straightThroughDx(x, encodingMin, encodingMax, opMode, grad, b)
}

// RangeLearningGrad is the backward pass of the per-tensor range-learning
// quantize op. Besides the straight-through input gradient it returns the
// closed-form gradients of the scalar encoding boundaries, as Float64.
func RangeLearningGrad(x *tensor.RawTensor, bitWidth int, opMode quantsim.OpMode, encodingMin, encodingMax *tensor.RawTensor, useSymmetric bool, grad *tensor.RawTensor, b tensor.Backend) (dx, dMin, dMax *tensor.RawTensor) {
	dt := x.DType()
	encMin := castTo(encodingMin, dt, b)
	encMax := castTo(encodingMax, dt, b)

	dMin, dMax, dx = calculateGradients(x, bitWidth, encMin, encMax, useSymmetric, opMode, grad, b)
	return dx, dMin, dMax
}

// RangeLearningPerChannelGrad is the backward pass of the per-channel
// range-learning quantize op. Encodings hold one boundary pair per
// channel; depthwise weights fold their trailing two axes into the
// channel axis first, and the input gradient is unfolded on return.
//
// When the target data type is not an integer grid the forward pass was
// an identity: the gradient passes through and no encoding gradients
// exist.
func RangeLearningPerChannelGrad(x *tensor.RawTensor, bitWidth int, opMode quantsim.OpMode, encodingMin, encodingMax *tensor.RawTensor, useSymmetric, isIntDataType bool, axisHandling quantsim.AxisHandling, grad *tensor.RawTensor, b tensor.Backend) (dx, dMin, dMax *tensor.RawTensor) {
	if !isIntDataType {
		return grad.Clone(), nil, nil
	}

	originalShape := x.Shape().Clone()
	xc := combineLastTwoAxes(x, axisHandling, b)
	gc := combineLastTwoAxes(grad, axisHandling, b)

	dt := x.DType()
	encMin := castTo(encodingMin, dt, b)
	encMax := castTo(encodingMax, dt, b)

	dMin, dMax, dx = calculateGradients(xc, bitWidth, encMin, encMax, useSymmetric, opMode, gc, b)
	dx = splitCombinedAxes(dx, originalShape, axisHandling, b)
	return dx, dMin, dMax
}
