package cpu

import (
	"fmt"
	"math"

	"github.com/qat-ml/quantgrad/internal/parallel"
	"github.com/qat-ml/quantgrad/internal/tensor"
)

// Grid operations: rounding to the integer quantization grid and clipping
// against its bounds.

// Round rounds each element to the nearest integer, half away from zero.
// This matches the rounding of the forward quantization kernel.
func (cpu *CPUBackend) Round(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("round: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		dst, src := result.AsFloat32(), x.AsFloat32()
		parallel.ForRange(len(dst), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = float32(math.Round(float64(src[i])))
			}
		}, cpu.par)
	case tensor.Float64:
		dst, src := result.AsFloat64(), x.AsFloat64()
		parallel.ForRange(len(dst), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = math.Round(src[i])
			}
		}, cpu.par)
	default:
		panic(fmt.Sprintf("round: unsupported dtype %s", x.DType()))
	}

	return result
}

// Clip limits each element to the closed interval [lo, hi].
func (cpu *CPUBackend) Clip(x *tensor.RawTensor, lo, hi float64) *tensor.RawTensor {
	if lo > hi {
		panic(fmt.Sprintf("clip: lo %v > hi %v", lo, hi))
	}

	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("clip: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		lo32, hi32 := float32(lo), float32(hi)
		dst, src := result.AsFloat32(), x.AsFloat32()
		parallel.ForRange(len(dst), func(s, e int) {
			for i := s; i < e; i++ {
				v := src[i]
				if v < lo32 {
					v = lo32
				} else if v > hi32 {
					v = hi32
				}
				dst[i] = v
			}
		}, cpu.par)
	case tensor.Float64:
		dst, src := result.AsFloat64(), x.AsFloat64()
		parallel.ForRange(len(dst), func(s, e int) {
			for i := s; i < e; i++ {
				v := src[i]
				if v < lo {
					v = lo
				} else if v > hi {
					v = hi
				}
				dst[i] = v
			}
		}, cpu.par)
	default:
		panic(fmt.Sprintf("clip: unsupported dtype %s", x.DType()))
	}

	return result
}

// Maximum computes the element-wise maximum of two same-shaped tensors.
func (cpu *CPUBackend) Maximum(a, b *tensor.RawTensor) *tensor.RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("maximum: shape mismatch: %v vs %v", a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("maximum: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("maximum: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		dst, av, bv := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		for i := range dst {
			dst[i] = max(av[i], bv[i])
		}
	case tensor.Float64:
		dst, av, bv := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		for i := range dst {
			dst[i] = max(av[i], bv[i])
		}
	default:
		panic(fmt.Sprintf("maximum: unsupported dtype %s", a.DType()))
	}

	return result
}
