package cpu

import (
	"fmt"

	"github.com/qat-ml/quantgrad/internal/parallel"
	"github.com/qat-ml/quantgrad/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.
// The scalar must match the tensor's dtype (float32 for Float32 tensors,
// float64 for Float64 tensors).

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", x, scalar,
		func(dst, src []float32, s float32) {
			for i := range dst {
				dst[i] = src[i] + s
			}
		},
		func(dst, src []float64, s float64) {
			for i := range dst {
				dst[i] = src[i] + s
			}
		})
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("subScalar", x, scalar,
		func(dst, src []float32, s float32) {
			for i := range dst {
				dst[i] = src[i] - s
			}
		},
		func(dst, src []float64, s float64) {
			for i := range dst {
				dst[i] = src[i] - s
			}
		})
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", x, scalar,
		func(dst, src []float32, s float32) {
			for i := range dst {
				dst[i] = src[i] * s
			}
		},
		func(dst, src []float64, s float64) {
			for i := range dst {
				dst[i] = src[i] * s
			}
		})
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("divScalar", x, scalar,
		func(dst, src []float32, s float32) {
			for i := range dst {
				dst[i] = src[i] / s
			}
		},
		func(dst, src []float64, s float64) {
			for i := range dst {
				dst[i] = src[i] / s
			}
		})
}

func (cpu *CPUBackend) scalarOp(name string, x *tensor.RawTensor, scalar any,
	k32 func(dst, src []float32, s float32), k64 func(dst, src []float64, s float64),
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		s, ok := scalar.(float32)
		if !ok {
			panic(fmt.Sprintf("%s: scalar %T does not match dtype float32", name, scalar))
		}
		dst, src := result.AsFloat32(), x.AsFloat32()
		parallel.ForRange(len(dst), func(lo, hi int) {
			k32(dst[lo:hi], src[lo:hi], s)
		}, cpu.par)
	case tensor.Float64:
		s, ok := scalar.(float64)
		if !ok {
			panic(fmt.Sprintf("%s: scalar %T does not match dtype float64", name, scalar))
		}
		dst, src := result.AsFloat64(), x.AsFloat64()
		parallel.ForRange(len(dst), func(lo, hi int) {
			k64(dst[lo:hi], src[lo:hi], s)
		}, cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}
