package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{}).Validate(); err != nil {
		t.Errorf("scalar shape rejected: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("zero dimension accepted")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("strides[%d] = %d, want %d", i, strides[i], want[i])
		}
	}

	if got := (Shape{}).ComputeStrides(); len(got) != 0 {
		t.Errorf("scalar strides = %v, want empty", got)
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b   Shape
		want   Shape
		bcast  bool
		hasErr bool
	}{
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{2, 4, 8}, Shape{8}, Shape{2, 4, 8}, true, false},
		{Shape{2, 3}, Shape{}, Shape{2, 3}, true, false},
		{Shape{3, 4}, Shape{3, 5}, nil, false, true},
	}

	for _, tt := range tests {
		got, bcast, err := BroadcastShapes(tt.a, tt.b)
		if tt.hasErr {
			if err == nil {
				t.Errorf("BroadcastShapes(%v, %v): expected error", tt.a, tt.b)
			}
			continue
		}
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v): %v", tt.a, tt.b, err)
			continue
		}
		if !got.Equal(tt.want) || bcast != tt.bcast {
			t.Errorf("BroadcastShapes(%v, %v) = %v, %t; want %v, %t",
				tt.a, tt.b, got, bcast, tt.want, tt.bcast)
		}
	}
}
