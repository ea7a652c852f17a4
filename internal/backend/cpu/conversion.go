package cpu

import (
	"fmt"

	"github.com/qat-ml/quantgrad/internal/tensor"
)

// Cast converts a tensor to a different data type.
//
// Two conversions matter on the gradient path: Bool masks widen to the
// working float precision, and encoding gradients widen to Float64 before
// they are returned to the host.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		castFromFloat32(result, x, dtype)
	case tensor.Float64:
		castFromFloat64(result, x, dtype)
	case tensor.Int32:
		castFromInt32(result, x, dtype)
	case tensor.Bool:
		castFromBool(result, x, dtype)
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}

	return result
}

func castFromFloat32(result, x *tensor.RawTensor, toDtype tensor.DataType) {
	src := x.AsFloat32()
	switch toDtype {
	case tensor.Float64:
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = float64(v)
		}
	case tensor.Int32:
		dst := result.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: float32 -> %s not supported", toDtype))
	}
}

func castFromFloat64(result, x *tensor.RawTensor, toDtype tensor.DataType) {
	src := x.AsFloat64()
	switch toDtype {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case tensor.Int32:
		dst := result.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: float64 -> %s not supported", toDtype))
	}
}

func castFromInt32(result, x *tensor.RawTensor, toDtype tensor.DataType) {
	src := x.AsInt32()
	switch toDtype {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = float64(v)
		}
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: int32 -> %s not supported", toDtype))
	}
}

func castFromBool(result, x *tensor.RawTensor, toDtype tensor.DataType) {
	src := x.AsBool()
	switch toDtype {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
	case tensor.Int32:
		dst := result.AsInt32()
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
	default:
		panic(fmt.Sprintf("cast: bool -> %s not supported", toDtype))
	}
}
