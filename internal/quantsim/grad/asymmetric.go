package grad

import (
	"math"

	"github.com/qat-ml/quantgrad/internal/tensor"
)

// asymmetricGradients computes the range-learning gradients for an
// asymmetric grid spanning [min, max]. Min and max move independently,
// coupled through the shared step size and the rounded zero point.
//
// Encodings must already share x's dtype. The returned dMin and dMax are
// widened to Float64; dx keeps x's dtype.
func asymmetricGradients(x *tensor.RawTensor, bitWidth int, encMin, encMax, grad *tensor.RawTensor, axes []int, b tensor.Backend) (dMin, dMax, dx *tensor.RawTensor) {
	dt := x.DType()
	numSteps := numStepsFor(bitWidth)

	encMaxC := clampEncodingMax(encMin, encMax, b)
	width := b.Sub(encMaxC, encMin)
	delta := b.DivScalar(width, scalarOf(dt, numSteps))

	// Zero point, rounded and clipped onto the grid.
	bZero := b.Clip(b.Round(b.Div(b.MulScalar(encMin, scalarOf(dt, -1)), delta)), 0, numSteps)
	offset := b.MulScalar(bZero, scalarOf(dt, -1))

	xDiv := b.Div(x, delta)
	xRound := b.Sub(b.Round(xDiv), offset)
	xQuant := b.Clip(xRound, 0, numSteps)

	mask := gridMask(xRound, numSteps, b)
	dx = b.Mul(mask, grad)

	// gradScale = (xQuant + offset - mask*x/delta) * grad
	inner := b.Sub(b.Add(xQuant, offset), b.Div(b.Mul(x, mask), delta))
	gradScale := b.Mul(inner, grad)

	// gradOffset = (delta * grad) * (1 - mask); only clipped elements
	// contribute to the zero-point term.
	gradOffset := b.Mul(b.Mul(delta, grad), b.Sub(fullLike(mask, 1), mask))

	term1 := b.DivScalar(b.SumAxes(gradScale, axes), scalarOf(dt, numSteps))
	term2 := b.MulScalar(b.Div(b.SumAxes(gradOffset, axes), b.Mul(width, width)), scalarOf(dt, numSteps))

	dMinWork := b.Add(b.MulScalar(term1, scalarOf(dt, -1)), b.Mul(encMaxC, term2))
	dMaxWork := b.Sub(term1, b.Mul(encMin, term2))

	dMin = b.Cast(dMinWork, tensor.Float64)
	dMax = b.Cast(dMaxWork, tensor.Float64)
	return dMin, dMax, dx
}

// numStepsFor returns the integer range size of a bit width.
func numStepsFor(bitWidth int) float64 {
	return math.Pow(2, float64(bitWidth)) - 1
}
