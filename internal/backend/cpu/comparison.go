package cpu

import (
	"fmt"

	"github.com/qat-ml/quantgrad/internal/tensor"
)

// Comparison operations return Bool tensors. Shapes must match exactly;
// the gradient engine compares against constant-filled tensors of the same
// shape, so no broadcasting path exists here.

// GreaterEqual computes a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compareOp("greaterEqual", a, b,
		func(a, b float32) bool { return a >= b },
		func(a, b float64) bool { return a >= b })
}

// LowerEqual computes a <= b element-wise.
func (cpu *CPUBackend) LowerEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compareOp("lowerEqual", a, b,
		func(a, b float32) bool { return a <= b },
		func(a, b float64) bool { return a <= b })
}

func (cpu *CPUBackend) compareOp(name string, a, b *tensor.RawTensor,
	cmp32 func(a, b float32) bool, cmp64 func(a, b float64) bool,
) *tensor.RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch: %v vs %v", name, a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	result, err := tensor.NewRaw(a.Shape(), tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	dst := result.AsBool()
	switch a.DType() {
	case tensor.Float32:
		av, bv := a.AsFloat32(), b.AsFloat32()
		for i := range dst {
			dst[i] = cmp32(av[i], bv[i])
		}
	case tensor.Float64:
		av, bv := a.AsFloat64(), b.AsFloat64()
		for i := range dst {
			dst[i] = cmp64(av[i], bv[i])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

// Where selects elements from x where the condition is true and from y
// where it is false. All three tensors must share one shape.
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition must be bool, got %s", condition.DType()))
	}
	if !condition.Shape().Equal(x.Shape()) || !x.Shape().Equal(y.Shape()) {
		panic(fmt.Sprintf("where: shape mismatch: cond %v, x %v, y %v",
			condition.Shape(), x.Shape(), y.Shape()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: dtype mismatch: %s vs %s", x.DType(), y.DType()))
	}

	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("where: failed to create result tensor: %v", err))
	}

	cond := condition.AsBool()
	switch x.DType() {
	case tensor.Float32:
		dst, xv, yv := result.AsFloat32(), x.AsFloat32(), y.AsFloat32()
		for i := range dst {
			if cond[i] {
				dst[i] = xv[i]
			} else {
				dst[i] = yv[i]
			}
		}
	case tensor.Float64:
		dst, xv, yv := result.AsFloat64(), x.AsFloat64(), y.AsFloat64()
		for i := range dst {
			if cond[i] {
				dst[i] = xv[i]
			} else {
				dst[i] = yv[i]
			}
		}
	case tensor.Int32:
		dst, xv, yv := result.AsInt32(), x.AsInt32(), y.AsInt32()
		for i := range dst {
			if cond[i] {
				dst[i] = xv[i]
			} else {
				dst[i] = yv[i]
			}
		}
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", x.DType()))
	}

	return result
}
