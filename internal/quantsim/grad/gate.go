package grad

import (
	"github.com/qat-ml/quantgrad/internal/quantsim"
	"github.com/qat-ml/quantgrad/internal/tensor"
)

// calculateGradients runs both grid calculators and selects by symmetry,
// then applies the op-mode gate. Both branches are evaluated
// unconditionally so the cost and allocation profile of a backward step
// does not depend on per-quantizer flags.
//
// In pass-through mode the op was an identity forward, so dx is the
// incoming gradient and the encoding gradients are zero.
func calculateGradients(x *tensor.RawTensor, bitWidth int, encMin, encMax *tensor.RawTensor, symmetric bool, opMode quantsim.OpMode, grad *tensor.RawTensor, b tensor.Backend) (dMin, dMax, dx *tensor.RawTensor) {
	axes := reductionAxes(x.Shape().Rank(), encMin.Shape().Rank())

	symMin, symMax, symDx := symmetricGradients(x, bitWidth, encMin, encMax, grad, axes, b)
	asymMin, asymMax, asymDx := asymmetricGradients(x, bitWidth, encMin, encMax, grad, axes, b)

	dMin, dMax, dx = asymMin, asymMax, asymDx
	if symmetric {
		dMin, dMax, dx = symMin, symMax, symDx
	}

	if opMode == quantsim.OpModePassThrough {
		dx = grad.Clone()
		dMin = zerosFloat64Like(encMin)
		dMax = zerosFloat64Like(encMax)
	}
	return dMin, dMax, dx
}

// straightThroughDx is the input gradient of the plain quantize ops, which
// learn no range: the gradient passes where x sits inside [min, max]
// (bounds inclusive) and is zeroed outside. Pass-through mode forwards the
// gradient untouched.
func straightThroughDx(x, encMin, encMax *tensor.RawTensor, opMode quantsim.OpMode, grad *tensor.RawTensor, b tensor.Backend) *tensor.RawTensor {
	if opMode == quantsim.OpModePassThrough {
		return grad.Clone()
	}

	ones := fullLike(x, 1)
	zeros := fullLike(x, 0)
	below := b.Where(b.LowerEqual(x, fullLike(x, scalarValue(encMax))), ones, zeros)
	mask := b.Where(b.GreaterEqual(x, fullLike(x, scalarValue(encMin))), below, zeros)
	return b.Mul(mask, grad)
}
