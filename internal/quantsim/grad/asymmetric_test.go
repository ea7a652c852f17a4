package grad

import (
	"testing"

	"github.com/qat-ml/quantgrad/internal/backend/cpu"
	"github.com/qat-ml/quantgrad/internal/tensor"
)

func TestAsymmetricGradientsInterior(t *testing.T) {
	b := cpu.New()

	// 2-bit grid over [0, 1]: 3 steps, delta 1/3, zero point 0.
	// x=0.5 rounds from 1.5 to grid value 2 and stays inside.
	// gradScale = (2 - 1.5) = 0.5, gradOffset = 0:
	// dMax = 0.5/3, dMin = -0.5/3.
	x := newF32(t, tensor.Shape{1}, []float32{0.5})
	grad := newF32(t, tensor.Shape{1}, []float32{1})
	encMin := scalarF32(t, 0)
	encMax := scalarF32(t, 1)

	axes := reductionAxes(1, 0)
	dMin, dMax, dx := asymmetricGradients(x, 2, encMin, encMax, grad, axes, b)

	checkF32Values(t, "dx", dx, []float32{1}, 1e-6)
	checkF64Values(t, "dMax", dMax, []float64{0.5 / 3.0}, 1e-6)
	checkF64Values(t, "dMin", dMin, []float64{-0.5 / 3.0}, 1e-6)
}

func TestAsymmetricGradientsClipped(t *testing.T) {
	b := cpu.New()

	// x=2 on the [0, 1] 2-bit grid clips: the input gradient is zeroed
	// and the zero-point term kicks in.
	// gradScale = (3 + 0 - 0) = 3, gradOffset = delta = 1/3,
	// term1 = 1, term2 = 3 * (1/3) / 1 = 1:
	// dMin = -1 + 1*1 = 0, dMax = 1 - 0*1 = 1.
	x := newF32(t, tensor.Shape{1}, []float32{2})
	grad := newF32(t, tensor.Shape{1}, []float32{1})
	encMin := scalarF32(t, 0)
	encMax := scalarF32(t, 1)

	axes := reductionAxes(1, 0)
	dMin, dMax, dx := asymmetricGradients(x, 2, encMin, encMax, grad, axes, b)

	checkF32Values(t, "dx", dx, []float32{0}, 1e-6)
	checkF64Values(t, "dMax", dMax, []float64{1}, 1e-5)
	checkF64Values(t, "dMin", dMin, []float64{0}, 1e-5)
}

func TestAsymmetricMaskBoundaries(t *testing.T) {
	b := cpu.New()

	// On the [0, 1] 2-bit grid, grid values 0 and 3 are inside the mask
	// (bounds inclusive); values rounding below 0 or above 3 are not.
	x := newF32(t, tensor.Shape{5}, []float32{-0.4, 0, 0.5, 1, 1.2})
	grad := newF32(t, tensor.Shape{5}, []float32{1, 1, 1, 1, 1})
	encMin := scalarF32(t, 0)
	encMax := scalarF32(t, 1)

	axes := reductionAxes(1, 0)
	_, _, dx := asymmetricGradients(x, 2, encMin, encMax, grad, axes, b)

	checkF32Values(t, "dx", dx, []float32{0, 1, 1, 1, 0}, 1e-6)
}

func TestAsymmetricGradientsPerChannelShapes(t *testing.T) {
	b := cpu.New()

	x := newF32(t, tensor.Shape{4, 2}, []float32{0.1, 0.9, 0.4, 1.6, -0.3, 0.2, 0.7, 0.5})
	grad := onesLike(t, x)
	encMin := newF32(t, tensor.Shape{2}, []float32{0, -1})
	encMax := newF32(t, tensor.Shape{2}, []float32{1, 1})

	axes := reductionAxes(2, 1)
	dMin, dMax, dx := asymmetricGradients(x, 8, encMin, encMax, grad, axes, b)

	if !dx.Shape().Equal(x.Shape()) {
		t.Errorf("dx shape = %v, want %v", dx.Shape(), x.Shape())
	}
	if !dMin.Shape().Equal(tensor.Shape{2}) {
		t.Errorf("dMin shape = %v, want [2]", dMin.Shape())
	}
	if !dMax.Shape().Equal(tensor.Shape{2}) {
		t.Errorf("dMax shape = %v, want [2]", dMax.Shape())
	}
}
