package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
// An empty Shape is a scalar (rank 0, one element).
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Shapes are compared element-wise from right to left; dimensions are
// compatible when equal or when one of them is 1, and missing dimensions
// are treated as 1. A scalar (rank 0) broadcasts against anything.
//
// Returns the broadcast shape, a flag indicating whether broadcasting is
// needed, and an error if the shapes are incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(2, 4, 8) + (8) → (2, 4, 8), true, nil
//	(3, 4) + (3, 5) → nil, false, error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < maxLen; i++ {
		aDim, bDim := 1, 1
		if idx := len(a) - 1 - i; idx >= 0 {
			aDim = a[idx]
		}
		if idx := len(b) - 1 - i; idx >= 0 {
			bDim = b[idx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}
