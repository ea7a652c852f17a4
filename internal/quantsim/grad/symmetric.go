package grad

import (
	"math"

	"github.com/qat-ml/quantgrad/internal/tensor"
)

// symmetricGradients computes the range-learning gradients for a symmetric
// grid. The grid is centered on zero, so the step derives from max alone
// and the min gradient is the exact negation of the max gradient.
//
// Encodings must already share x's dtype. The returned dMin and dMax are
// widened to Float64; dx keeps x's dtype.
func symmetricGradients(x *tensor.RawTensor, bitWidth int, encMin, encMax, grad *tensor.RawTensor, axes []int, b tensor.Backend) (dMin, dMax, dx *tensor.RawTensor) {
	dt := x.DType()
	numSteps := numStepsFor(bitWidth)
	halfSteps := numSteps / 2
	floorHalf := math.Floor(halfSteps)
	offset := -math.Ceil(halfSteps)

	encMaxC := clampEncodingMax(encMin, encMax, b)
	delta := b.DivScalar(encMaxC, scalarOf(dt, floorHalf))

	xDiv := b.Div(x, delta)
	xRound := b.SubScalar(b.Round(xDiv), scalarOf(dt, offset))
	xQuant := b.Clip(xRound, 0, numSteps)

	mask := gridMask(xRound, numSteps, b)
	dx = b.Mul(mask, grad)

	// dmax = (sum[(xQuant+offset)*grad] - sum[mask*(x/delta)*grad]) / floor(n/2)
	quantTerm := b.SumAxes(b.Mul(b.AddScalar(xQuant, scalarOf(dt, offset)), grad), axes)
	realTerm := b.SumAxes(b.Mul(b.Mul(mask, xDiv), grad), axes)
	dMaxWork := b.DivScalar(b.Sub(quantTerm, realTerm), scalarOf(dt, floorHalf))

	dMax = b.Cast(dMaxWork, tensor.Float64)
	dMin = b.MulScalar(dMax, float64(-1))
	return dMin, dMax, dx
}
