package tensor

import (
	"fmt"
	"unsafe"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices. The gradient engine is CPU only; the enum
// exists so backends stay swappable at the interface level.
const (
	CPU Device = iota
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// RawTensor is the low-level tensor representation: a flat row-major
// buffer plus shape and runtime type information.
//
// The gradient engine is a pure function of its inputs: every backend
// operation allocates a fresh result and never mutates its operands, so
// RawTensor carries no reference counting or copy-on-write machinery.
// Concurrent backward passes over shared inputs are safe because inputs
// are only ever read.
type RawTensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
	device Device
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &RawTensor{
		data:   make([]byte, byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("tensor dtype is %s, not bool", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// Clone creates a deep copy of the RawTensor.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
	}
}

// WithShape returns a view of the same data under a different shape.
// The element counts must match. The returned tensor shares the buffer;
// callers that need isolation should Clone first.
func (r *RawTensor) WithShape(newShape Shape) (*RawTensor, error) {
	if err := newShape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if newShape.NumElements() != r.NumElements() {
		return nil, fmt.Errorf("shape %v requires %d elements, tensor has %d",
			newShape, newShape.NumElements(), r.NumElements())
	}
	return &RawTensor{
		data:   r.data,
		shape:  newShape.Clone(),
		stride: newShape.ComputeStrides(),
		dtype:  r.dtype,
		device: r.device,
	}, nil
}
