package cpu

import (
	"fmt"

	"github.com/qat-ml/quantgrad/internal/tensor"
)

// SumAxes sums a tensor over a set of axes. Reduced axes are dropped from
// the result shape; reducing over every axis yields a 0-D scalar tensor.
//
// Encoding gradients are accumulated this way: per-tensor encodings reduce
// over all axes of x, per-channel encodings over all axes but the last.
func (cpu *CPUBackend) SumAxes(x *tensor.RawTensor, axes []int) *tensor.RawTensor {
	shape := x.Shape()
	rank := len(shape)

	reduced := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 || ax >= rank {
			panic(fmt.Sprintf("sumAxes: invalid axis %d for shape %v", ax, shape))
		}
		reduced[ax] = true
	}

	outShape := tensor.Shape{}
	for d := 0; d < rank; d++ {
		if !reduced[d] {
			outShape = append(outShape, shape[d])
		}
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sumAxes: failed to create result tensor: %v", err))
	}

	// Map each source dimension to its stride in the output; reduced
	// dimensions contribute nothing.
	strides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	keptStride := make([]int, rank)
	k := 0
	for d := 0; d < rank; d++ {
		if !reduced[d] {
			keptStride[d] = outStrides[k]
			k++
		}
	}

	n := shape.NumElements()
	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i := 0; i < n; i++ {
			dst[reducedIndex(i, strides, keptStride)] += src[i]
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i := 0; i < n; i++ {
			dst[reducedIndex(i, strides, keptStride)] += src[i]
		}
	default:
		panic(fmt.Sprintf("sumAxes: unsupported dtype %s", x.DType()))
	}

	return result
}

// reducedIndex maps a flat source index to the flat index of the reduced
// output it accumulates into.
func reducedIndex(idx int, strides, keptStride []int) int {
	out := 0
	for d := 0; d < len(strides); d++ {
		coord := idx / strides[d]
		idx %= strides[d]
		out += coord * keptStride[d]
	}
	return out
}
