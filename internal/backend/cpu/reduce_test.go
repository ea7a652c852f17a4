package cpu

import (
	"testing"

	"github.com/qat-ml/quantgrad/internal/tensor"
)

func TestSumAxesAll(t *testing.T) {
	b := New()

	x := rawF32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	got := b.SumAxes(x, []int{0, 1})

	if got.Shape().Rank() != 0 {
		t.Fatalf("shape = %v, want scalar", got.Shape())
	}
	if v := got.AsFloat32()[0]; v != 21 {
		t.Errorf("sum = %v, want 21", v)
	}
}

func TestSumAxesKeepLast(t *testing.T) {
	b := New()

	// The per-channel reduction: all axes but the last.
	x := rawF32(t, tensor.Shape{2, 2, 3}, []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
		10, 11, 12,
	})
	got := b.SumAxes(x, []int{0, 1})

	if !got.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("shape = %v, want [3]", got.Shape())
	}
	wantF32(t, "sum", got, []float32{22, 26, 30})
}

func TestSumAxesMiddle(t *testing.T) {
	b := New()

	x := rawF32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	got := b.SumAxes(x, []int{1})

	if !got.Shape().Equal(tensor.Shape{2}) {
		t.Fatalf("shape = %v, want [2]", got.Shape())
	}
	wantF32(t, "sum", got, []float32{6, 15})
}

func TestSumAxesNone(t *testing.T) {
	b := New()

	x := rawF32(t, tensor.Shape{3}, []float32{1, 2, 3})
	got := b.SumAxes(x, nil)
	wantF32(t, "sum", got, []float32{1, 2, 3})
}

func TestSumAxesScalarInput(t *testing.T) {
	b := New()

	x := rawF32(t, tensor.Shape{}, []float32{5})
	got := b.SumAxes(x, nil)
	if got.Shape().Rank() != 0 || got.AsFloat32()[0] != 5 {
		t.Errorf("got shape %v value %v, want scalar 5", got.Shape(), got.AsFloat32()[0])
	}
}

func TestSumAxesInvalidAxisPanics(t *testing.T) {
	b := New()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range axis")
		}
	}()
	x := rawF32(t, tensor.Shape{2}, []float32{1, 2})
	b.SumAxes(x, []int{2})
}
