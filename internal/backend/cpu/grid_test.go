package cpu

import (
	"testing"

	"github.com/qat-ml/quantgrad/internal/tensor"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	b := New()

	// Ties round away from zero, not to even: 0.5 -> 1, -0.5 -> -1,
	// 2.5 -> 3. This matches the forward quantization kernel.
	x := rawF32(t, tensor.Shape{7}, []float32{-2.5, -1.5, -0.5, 0, 0.5, 1.5, 2.5})
	wantF32(t, "round", b.Round(x), []float32{-3, -2, -1, 0, 1, 2, 3})
}

func TestRoundFloat64(t *testing.T) {
	b := New()

	x := rawF64(t, tensor.Shape{3}, []float64{-0.5, 1.4, 1.5})
	got := b.Round(x).AsFloat64()
	want := []float64{-1, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("round[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestClip(t *testing.T) {
	b := New()

	x := rawF32(t, tensor.Shape{5}, []float32{-2, 0, 3, 7, 10})
	wantF32(t, "clip", b.Clip(x, 0, 7), []float32{0, 0, 3, 7, 7})
}

func TestClipInvertedBoundsPanics(t *testing.T) {
	b := New()
	defer func() {
		if recover() == nil {
			t.Error("expected panic when lo > hi")
		}
	}()
	x := rawF32(t, tensor.Shape{1}, []float32{0})
	b.Clip(x, 1, 0)
}

func TestMaximum(t *testing.T) {
	b := New()

	x := rawF32(t, tensor.Shape{4}, []float32{-1, 0.5, 2, -3})
	y := rawF32(t, tensor.Shape{4}, []float32{0, 0.25, 3, -4})
	wantF32(t, "maximum", b.Maximum(x, y), []float32{0, 0.5, 3, -3})
}

func TestMaximumShapeMismatchPanics(t *testing.T) {
	b := New()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on shape mismatch")
		}
	}()
	x := rawF32(t, tensor.Shape{2}, []float32{0, 0})
	y := rawF32(t, tensor.Shape{3}, []float32{0, 0, 0})
	b.Maximum(x, y)
}
