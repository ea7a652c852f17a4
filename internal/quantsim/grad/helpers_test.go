package grad

import (
	"math"
	"testing"

	"github.com/qat-ml/quantgrad/internal/tensor"
)

func newF32(t *testing.T, shape tensor.Shape, data []float32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw(%v) failed: %v", shape, err)
	}
	copy(raw.AsFloat32(), data)
	return raw
}

func scalarF32(t *testing.T, v float32) *tensor.RawTensor {
	t.Helper()
	return newF32(t, tensor.Shape{}, []float32{v})
}

func scalarI32(t *testing.T, v int32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{}, tensor.Int32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	raw.AsInt32()[0] = v
	return raw
}

func scalarB(t *testing.T, v bool) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{}, tensor.Bool, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	raw.AsBool()[0] = v
	return raw
}

func onesLike(t *testing.T, x *tensor.RawTensor) *tensor.RawTensor {
	t.Helper()
	data := make([]float32, x.NumElements())
	for i := range data {
		data[i] = 1
	}
	return newF32(t, x.Shape(), data)
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func checkF64Values(t *testing.T, name string, got *tensor.RawTensor, want []float64, tol float64) {
	t.Helper()
	if got.DType() != tensor.Float64 {
		t.Fatalf("%s: dtype = %s, want float64", name, got.DType())
	}
	data := got.AsFloat64()
	if len(data) != len(want) {
		t.Fatalf("%s: %d elements, want %d", name, len(data), len(want))
	}
	for i := range want {
		if !almostEqual(data[i], want[i], tol) {
			t.Errorf("%s[%d] = %v, want %v", name, i, data[i], want[i])
		}
	}
}

func checkF32Values(t *testing.T, name string, got *tensor.RawTensor, want []float32, tol float64) {
	t.Helper()
	if got.DType() != tensor.Float32 {
		t.Fatalf("%s: dtype = %s, want float32", name, got.DType())
	}
	data := got.AsFloat32()
	if len(data) != len(want) {
		t.Fatalf("%s: %d elements, want %d", name, len(data), len(want))
	}
	for i := range want {
		if !almostEqual(float64(data[i]), float64(want[i]), tol) {
			t.Errorf("%s[%d] = %v, want %v", name, i, data[i], want[i])
		}
	}
}
