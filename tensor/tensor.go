// Copyright 2025 QuantGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/qat-ml/quantgrad/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation: a flat row-major
// buffer plus shape and runtime type information. The gradient entry
// points consume and return RawTensors.
type RawTensor = tensor.RawTensor

// Backend is the compute interface the gradient engine runs on.
type Backend = tensor.Backend

// Tensor is a generic type-safe tensor.
//
// T is the data type (float32, float64, int32, bool).
// B is the backend implementation.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// NewRaw creates a zero-initialized RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// New creates a Tensor from a RawTensor and backend.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Scalar creates a 0-D tensor holding a single value. Per-tensor
// encoding boundaries are represented this way.
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return tensor.Scalar[T, B](value, b)
}

// Randn creates a tensor with values drawn from N(0, 1).
// Only float32 and float64 are supported.
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, b)
}

// BroadcastShapes implements NumPy-style broadcasting rules. It returns
// the broadcast shape, whether broadcasting is needed, and an error when
// the shapes are incompatible.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
