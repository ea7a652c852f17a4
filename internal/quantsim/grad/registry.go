package grad

import (
	"fmt"

	"github.com/qat-ml/quantgrad/internal/quantsim"
	"github.com/qat-ml/quantgrad/internal/tensor"
)

// GradientFn computes the gradients of one quantize op variant. The
// inputs slice follows the positional contract of quantsim.OpInput; the
// returned slice is aligned to it, with nil marking inputs that take no
// gradient.
type GradientFn func(inputs []*tensor.RawTensor, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor

var gradients = map[quantsim.OpKind]GradientFn{
	quantsim.KindQuantize:                quantizeGradient,
	quantsim.KindQuantizeRecurrentParam:  quantizeRecurrentParamGradient,
	quantsim.KindRangeLearning:           rangeLearningGradient,
	quantsim.KindRangeLearningPerChannel: rangeLearningPerChannelGradient,
}

// Gradient looks up the backward function registered for an op kind.
func Gradient(kind quantsim.OpKind) (GradientFn, bool) {
	fn, ok := gradients[kind]
	return fn, ok
}

func quantizeGradient(inputs []*tensor.RawTensor, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	checkArity("quantize", inputs, quantsim.NumPerTensorInputs)

	dx := QuantizeGrad(
		inputs[quantsim.InputTensor],
		inputs[quantsim.InputEncodingMin],
		inputs[quantsim.InputEncodingMax],
		scalarOpMode(inputs[quantsim.InputOpMode]),
		scalarBool(inputs[quantsim.InputIsIntDataType]),
		grad, b)

	out := make([]*tensor.RawTensor, quantsim.NumPerTensorInputs)
	out[quantsim.InputTensor] = dx
	return out
}

func quantizeRecurrentParamGradient(inputs []*tensor.RawTensor, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	checkArity("quantizeRecurrentParam", inputs, quantsim.NumPerTensorInputs)

	dx := QuantizeRecurrentParamGrad(
		inputs[quantsim.InputTensor],
		inputs[quantsim.InputEncodingMin],
		inputs[quantsim.InputEncodingMax],
		scalarOpMode(inputs[quantsim.InputOpMode]),
		grad, b)

	out := make([]*tensor.RawTensor, quantsim.NumPerTensorInputs)
	out[quantsim.InputTensor] = dx
	return out
}

func rangeLearningGradient(inputs []*tensor.RawTensor, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	checkArity("rangeLearning", inputs, quantsim.NumPerTensorInputs)

	dx, dMin, dMax := RangeLearningGrad(
		inputs[quantsim.InputTensor],
		scalarInt(inputs[quantsim.InputBitWidth]),
		scalarOpMode(inputs[quantsim.InputOpMode]),
		inputs[quantsim.InputEncodingMin],
		inputs[quantsim.InputEncodingMax],
		scalarBool(inputs[quantsim.InputUseSymmetric]),
		grad, b)

	out := make([]*tensor.RawTensor, quantsim.NumPerTensorInputs)
	out[quantsim.InputTensor] = dx
	out[quantsim.InputEncodingMin] = dMin
	out[quantsim.InputEncodingMax] = dMax
	return out
}

func rangeLearningPerChannelGradient(inputs []*tensor.RawTensor, grad *tensor.RawTensor, b tensor.Backend) []*tensor.RawTensor {
	checkArity("rangeLearningPerChannel", inputs, quantsim.NumPerChannelInputs)

	dx, dMin, dMax := RangeLearningPerChannelGrad(
		inputs[quantsim.InputTensor],
		scalarInt(inputs[quantsim.InputBitWidth]),
		scalarOpMode(inputs[quantsim.InputOpMode]),
		inputs[quantsim.InputEncodingMin],
		inputs[quantsim.InputEncodingMax],
		scalarBool(inputs[quantsim.InputUseSymmetric]),
		scalarBool(inputs[quantsim.InputIsIntDataType]),
		quantsim.AxisHandling(scalarInt(inputs[quantsim.InputAxisHandling])),
		grad, b)

	out := make([]*tensor.RawTensor, quantsim.NumPerChannelInputs)
	out[quantsim.InputTensor] = dx
	out[quantsim.InputEncodingMin] = dMin
	out[quantsim.InputEncodingMax] = dMax
	return out
}

func checkArity(name string, inputs []*tensor.RawTensor, want int) {
	if len(inputs) != want {
		panic(fmt.Sprintf("%s: got %d inputs, want %d", name, len(inputs), want))
	}
}

func scalarOpMode(t *tensor.RawTensor) quantsim.OpMode {
	return quantsim.OpMode(scalarInt(t))
}

func scalarInt(t *tensor.RawTensor) int {
	return int(scalarValue(t))
}

func scalarBool(t *tensor.RawTensor) bool {
	if t.DType() == tensor.Bool {
		return t.AsBool()[0]
	}
	return scalarValue(t) != 0
}
