package cpu

import (
	"fmt"

	"github.com/qat-ml/quantgrad/internal/tensor"
)

// computeBroadcastStridesForShape computes strides for broadcasting a shape
// to outShape. Dimensions of size 1 (and left-padded dimensions) get stride
// 0 so the same source element is reused across the broadcast axis.
func computeBroadcastStridesForShape(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// computeFlatIndex maps a flat output index to the flat index in a
// broadcast source array.
func computeFlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := 0; i < len(outStrides); i++ {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}

// binaryBroadcast applies a binary kernel element-by-element under
// broadcast index mapping. Slow path; hit only when shapes differ.
func binaryBroadcast(name string, result, a, b *tensor.RawTensor, outShape tensor.Shape,
	k32 func(dst, a, b []float32), k64 func(dst, a, b []float64),
) {
	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(a.Shape(), outShape)
	bStrides := computeBroadcastStridesForShape(b.Shape(), outShape)
	n := outShape.NumElements()

	switch a.DType() {
	case tensor.Float32:
		dst, av, bv := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		for i := 0; i < n; i++ {
			aIdx := computeFlatIndex(i, outStrides, aStrides)
			bIdx := computeFlatIndex(i, outStrides, bStrides)
			k32(dst[i:i+1], av[aIdx:aIdx+1], bv[bIdx:bIdx+1])
		}
	case tensor.Float64:
		dst, av, bv := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		for i := 0; i < n; i++ {
			aIdx := computeFlatIndex(i, outStrides, aStrides)
			bIdx := computeFlatIndex(i, outStrides, bStrides)
			k64(dst[i:i+1], av[aIdx:aIdx+1], bv[bIdx:bIdx+1])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}
}
