package main

import (
	"math"

	"github.com/qat-ml/quantgrad/quantsim"
)

// quantDequant simulates the forward quantize-dequantize pass of one
// encoding over a float64 vector.
func quantDequant(x []float64, e quantsim.Encoding) []float64 {
	c := e.Clamped()
	delta := c.Delta()
	offset := c.Offset()
	numSteps := c.NumSteps()

	out := make([]float64, len(x))
	for i, v := range x {
		q := math.Round(v/delta) - offset
		q = math.Min(math.Max(q, 0), numSteps)
		out[i] = delta * (q + offset)
	}
	return out
}

// quantizationMSE returns the mean squared error introduced by one
// quantize-dequantize round trip.
func quantizationMSE(x []float64, e quantsim.Encoding) float64 {
	if len(x) == 0 {
		return 0
	}
	out := quantDequant(x, e)
	var acc float64
	for i := range x {
		d := out[i] - x[i]
		acc += d * d
	}
	return acc / float64(len(x))
}

// referenceGradients recomputes the per-tensor range-learning gradients
// with plain float64 loops, independent of the tensor backend. It is the
// yardstick gradcheck compares the engine against.
func referenceGradients(x, grad []float64, e quantsim.Encoding) (dx []float64, dMin, dMax float64) {
	c := e.Clamped()
	delta := c.Delta()
	offset := c.Offset()
	numSteps := c.NumSteps()

	dx = make([]float64, len(x))
	var gradScale, gradOffset float64
	for i := range x {
		xDiv := x[i] / delta
		xRound := math.Round(xDiv) - offset
		xQuant := math.Min(math.Max(xRound, 0), numSteps)
		mask := 0.0
		if xRound >= 0 && xRound <= numSteps {
			mask = 1
		}
		g := grad[i]
		dx[i] = mask * g
		gradScale += (xQuant+offset)*g - mask*xDiv*g
		gradOffset += delta * g * (1 - mask)
	}

	if e.Symmetric {
		dMax = gradScale / math.Floor(numSteps/2)
		return dx, -dMax, dMax
	}

	width := c.Max - c.Min
	term1 := gradScale / numSteps
	term2 := numSteps * gradOffset / (width * width)
	dMin = -term1 + c.Max*term2
	dMax = term1 - c.Min*term2
	return dx, dMin, dMax
}
