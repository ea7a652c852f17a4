package tensor

import "testing"

func TestNewRawZeroInitialized(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if raw.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize = %d, want 24", raw.ByteSize())
	}
	for i, v := range raw.AsFloat32() {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, -1}, Float32, CPU); err == nil {
		t.Error("expected error for negative dimension")
	}
}

func TestRawScalar(t *testing.T) {
	raw, err := NewRaw(Shape{}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if raw.NumElements() != 1 {
		t.Errorf("scalar NumElements = %d, want 1", raw.NumElements())
	}
	raw.AsFloat64()[0] = 3.5
	if raw.AsFloat64()[0] != 3.5 {
		t.Error("scalar round trip failed")
	}
}

func TestAsViewDTypeMismatchPanics(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float32, CPU)
	defer func() {
		if recover() == nil {
			t.Error("expected panic viewing float32 data as float64")
		}
	}()
	raw.AsFloat64()
}

func TestRawClone(t *testing.T) {
	raw, _ := NewRaw(Shape{3}, Float32, CPU)
	copy(raw.AsFloat32(), []float32{1, 2, 3})

	clone := raw.Clone()
	clone.AsFloat32()[0] = 99

	if raw.AsFloat32()[0] != 1 {
		t.Error("clone shares the source buffer")
	}
	if !clone.Shape().Equal(raw.Shape()) {
		t.Errorf("clone shape = %v, want %v", clone.Shape(), raw.Shape())
	}
}

func TestWithShape(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float32, CPU)
	copy(raw.AsFloat32(), []float32{1, 2, 3, 4, 5, 6})

	view, err := raw.WithShape(Shape{3, 2})
	if err != nil {
		t.Fatalf("WithShape failed: %v", err)
	}
	if !view.Shape().Equal(Shape{3, 2}) {
		t.Errorf("view shape = %v, want [3 2]", view.Shape())
	}

	// The view shares the buffer.
	view.AsFloat32()[0] = 42
	if raw.AsFloat32()[0] != 42 {
		t.Error("view does not share the source buffer")
	}

	if _, err := raw.WithShape(Shape{4}); err == nil {
		t.Error("expected error for element count mismatch")
	}
}
