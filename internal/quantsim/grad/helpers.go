package grad

import (
	"fmt"

	"github.com/qat-ml/quantgrad/internal/tensor"
)

// fullLike creates a tensor shaped and typed like t, filled with v.
func fullLike(t *tensor.RawTensor, v float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(t.Shape(), t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("fullLike: %v", err))
	}

	switch t.DType() {
	case tensor.Float32:
		data := result.AsFloat32()
		v32 := float32(v)
		for i := range data {
			data[i] = v32
		}
	case tensor.Float64:
		data := result.AsFloat64()
		for i := range data {
			data[i] = v
		}
	default:
		panic(fmt.Sprintf("fullLike: unsupported dtype %s", t.DType()))
	}

	return result
}

// zerosFloat64Like creates a Float64 zero tensor shaped like t.
// Pass-through encoding gradients are returned this way.
func zerosFloat64Like(t *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(t.Shape(), tensor.Float64, t.Device())
	if err != nil {
		panic(fmt.Sprintf("zerosFloat64Like: %v", err))
	}
	return result
}

// scalarOf converts a float64 constant to the scalar type the backend
// expects for tensors of the given dtype.
func scalarOf(dt tensor.DataType, v float64) any {
	switch dt {
	case tensor.Float32:
		return float32(v)
	case tensor.Float64:
		return v
	default:
		panic(fmt.Sprintf("scalarOf: unsupported dtype %s", dt))
	}
}

// scalarValue reads the single element of a 0-D or one-element tensor.
func scalarValue(t *tensor.RawTensor) float64 {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("scalarValue: tensor has %d elements, want 1", t.NumElements()))
	}
	switch t.DType() {
	case tensor.Float32:
		return float64(t.AsFloat32()[0])
	case tensor.Float64:
		return t.AsFloat64()[0]
	case tensor.Int32:
		return float64(t.AsInt32()[0])
	default:
		panic(fmt.Sprintf("scalarValue: unsupported dtype %s", t.DType()))
	}
}

// castTo casts t to the requested dtype, returning t unchanged when the
// dtype already matches.
func castTo(t *tensor.RawTensor, dt tensor.DataType, b tensor.Backend) *tensor.RawTensor {
	if t.DType() == dt {
		return t
	}
	return b.Cast(t, dt)
}

// gridMask builds the straight-through pass mask: 1 where the rounded
// grid value landed inside [0, numSteps] (bounds inclusive), 0 where the
// forward pass clipped it.
func gridMask(xRound *tensor.RawTensor, numSteps float64, b tensor.Backend) *tensor.RawTensor {
	dt := xRound.DType()
	ge := b.GreaterEqual(xRound, fullLike(xRound, 0))
	le := b.LowerEqual(xRound, fullLike(xRound, numSteps))
	return b.Mul(b.Cast(ge, dt), b.Cast(le, dt))
}
