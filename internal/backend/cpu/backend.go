// Package cpu implements the CPU compute backend for the gradient engine.
package cpu

import (
	"fmt"

	"github.com/qat-ml/quantgrad/internal/parallel"
	"github.com/qat-ml/quantgrad/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
//
// All operations allocate fresh result tensors; operands are never written.
// Large element-wise kernels are chunked across goroutines.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend with default parallelism.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// NewSequential creates a CPU backend with parallel execution disabled.
// Useful for deterministic profiling and debugging.
func NewSequential() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.Config{Enabled: false},
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b, addKernel32, addKernel64)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b, subKernel32, subKernel64)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b, mulKernel32, mulKernel64)
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("div", a, b, divKernel32, divKernel64)
}

// binaryOp dispatches an element-wise binary operation by dtype, choosing
// the contiguous fast path when no broadcasting is needed.
func (cpu *CPUBackend) binaryOp(name string, a, b *tensor.RawTensor,
	k32 func(dst, a, b []float32), k64 func(dst, a, b []float64),
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		switch a.DType() {
		case tensor.Float32:
			dst, av, bv := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
			parallel.ForRange(len(dst), func(s, e int) {
				k32(dst[s:e], av[s:e], bv[s:e])
			}, cpu.par)
		case tensor.Float64:
			dst, av, bv := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
			parallel.ForRange(len(dst), func(s, e int) {
				k64(dst[s:e], av[s:e], bv[s:e])
			}, cpu.par)
		default:
			panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
		}
		return result
	}

	binaryBroadcast(name, result, a, b, outShape, k32, k64)
	return result
}

// Reshape returns a tensor with the same data but a different shape.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}

	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			t.Shape(), newShape))
	}

	result, err := tensor.NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}

	copy(result.Data(), t.Data())
	return result
}
